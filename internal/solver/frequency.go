package solver

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// LetterCount is the number of dictionary words containing Letter.
type LetterCount struct {
	Letter rune
	Count  int
}

func (lc LetterCount) String() string { return fmt.Sprintf("%c:%d", lc.Letter, lc.Count) }

// MarshalJSON emits the letter as a string rather than a code point.
func (lc LetterCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Letter string `json:"letter"`
		Count  int    `json:"count"`
	}{string(lc.Letter), lc.Count})
}

// FrequencyTable lists letters by descending word-presence count. Letters
// that appear in no word are absent.
type FrequencyTable []LetterCount

// Ranks derives the tie-break weight of each letter: walking the table in
// ascending count order, letters get 0, 1, 2, ... so the most frequent
// letter weighs the most. Letters missing from the table weigh 0.
func (t FrequencyTable) Ranks() map[rune]int {
	ranks := make(map[rune]int, len(t))
	for rank, i := 0, len(t)-1; i >= 0; rank, i = rank+1, i-1 {
		ranks[t[i].Letter] = rank
	}
	return ranks
}

// Count returns the table entry for r, or 0.
func (t FrequencyTable) Count(r rune) int {
	for _, lc := range t {
		if lc.Letter == r {
			return lc.Count
		}
	}
	return 0
}

// Usage is the result of a frequency analysis over one letter class.
type Usage struct {
	// Words holds every word sharing at least one letter with the class,
	// by descending overlap, dictionary order on ties.
	Words []string
	Table FrequencyTable
}

// ComputeUsage counts, for each class letter, how many words contain it at
// least once, and ranks words by how many distinct class letters they hold.
func ComputeUsage(list []string, class LetterClass) Usage {
	type ranked struct {
		word    string
		overlap int
	}
	counts := make(map[rune]int, class.Len())
	var rk []ranked
	for _, w := range list {
		set := NewLetterSet(w)
		n := 0
		for _, r := range class.letters {
			if set.Contains(r) {
				counts[r]++
				n++
			}
		}
		if n > 0 {
			rk = append(rk, ranked{w, n})
		}
	}
	slices.SortStableFunc(rk, func(a, b ranked) int { return cmp.Compare(b.overlap, a.overlap) })

	var u Usage
	for _, r := range rk {
		u.Words = append(u.Words, r.word)
	}
	for _, r := range class.letters {
		if n := counts[r]; n > 0 {
			u.Table = append(u.Table, LetterCount{Letter: r, Count: n})
		}
	}
	// Stable: ties keep class order.
	slices.SortStableFunc(u.Table, func(a, b LetterCount) int { return cmp.Compare(b.Count, a.Count) })
	return u
}

// Tables holds the frequency tables of both phases for one dictionary.
type Tables struct {
	Vowel     FrequencyTable
	Consonant FrequencyTable
}

// For returns the table matching the phase's letter class.
func (t Tables) For(p Phase) FrequencyTable {
	if p == PhaseVowel {
		return t.Vowel
	}
	return t.Consonant
}

// Analyze builds both frequency tables for dict.
func Analyze(dict words.Dictionary, vowels, consonants LetterClass) (Tables, error) {
	if dict.Len() == 0 {
		return Tables{}, words.ErrEmptyDictionary
	}
	list := dict.Words()
	return Tables{
		Vowel:     ComputeUsage(list, vowels).Table,
		Consonant: ComputeUsage(list, consonants).Table,
	}, nil
}
