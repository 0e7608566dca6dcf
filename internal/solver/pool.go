package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// lexicon is the read-only per-dictionary data every game shares: each
// word's runes and distinct-letter set, indexed by dictionary position.
type lexicon struct {
	words   []string
	runes   [][]rune
	letters []LetterSet
	index   map[string]uint
}

func newLexicon(dict words.Dictionary) *lexicon {
	n := dict.Len()
	lex := &lexicon{
		words:   dict.Words(),
		runes:   make([][]rune, n),
		letters: make([]LetterSet, n),
		index:   make(map[string]uint, n),
	}
	for i, w := range lex.words {
		lex.runes[i] = []rune(w)
		lex.letters[i] = NewLetterSet(w)
		lex.index[w] = uint(i)
	}
	return lex
}

// Pool is the set of words still consistent with the feedback seen so far.
// Membership is a bitset over dictionary positions, so iteration is always
// in dictionary order. A Pool is never modified; Eliminate returns a new one.
type Pool struct {
	lex     *lexicon
	members *bitset.BitSet
}

// NewPool returns a pool holding every word of dict.
func NewPool(dict words.Dictionary) (*Pool, error) {
	if dict.Len() == 0 {
		return nil, words.ErrEmptyDictionary
	}
	return fullPool(newLexicon(dict)), nil
}

func fullPool(lex *lexicon) *Pool {
	n := uint(len(lex.words))
	members := bitset.New(n)
	for i := uint(0); i < n; i++ {
		members.Set(i)
	}
	return &Pool{lex: lex, members: members}
}

// Len is the number of remaining candidates.
func (p *Pool) Len() int { return int(p.members.Count()) }

// each calls fn with the dictionary position of every member, in order.
func (p *Pool) each(fn func(i uint)) {
	for i, ok := p.members.NextSet(0); ok; i, ok = p.members.NextSet(i + 1) {
		fn(i)
	}
}

// Words lists the candidates in dictionary order.
func (p *Pool) Words() []string {
	out := make([]string, 0, p.Len())
	p.each(func(i uint) { out = append(out, p.lex.words[i]) })
	return out
}

// Contains reports whether w is still a candidate.
func (p *Pool) Contains(w string) bool {
	i, ok := p.lex.index[w]
	return ok && p.members.Test(i)
}

// Letters returns the distinct-letter set of candidate w.
func (p *Pool) Letters(w string) (LetterSet, bool) {
	if !p.Contains(w) {
		return nil, false
	}
	return p.lex.letters[p.lex.index[w]], true
}

// Eliminate keeps the candidates that contain every found letter, contain no
// contra letter, and agree with every filled board slot.
func (p *Pool) Eliminate(fb Feedback) *Pool {
	var contra []rune
	if fb.Contra != nil {
		contra = fb.Contra.ToSlice()
	}
	kept := bitset.New(uint(len(p.lex.words)))
	p.each(func(i uint) {
		letters := p.lex.letters[i]
		if fb.Found != nil && !fb.Found.IsSubset(letters) {
			return
		}
		for _, r := range contra {
			if letters.Contains(r) {
				return
			}
		}
		word := p.lex.runes[i]
		for pos, r := range fb.Board {
			if r != 0 && (pos >= len(word) || word[pos] != r) {
				return
			}
		}
		kept.Set(i)
	})
	return &Pool{lex: p.lex, members: kept}
}
