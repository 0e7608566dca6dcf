package solver

import (
	"cmp"
	"slices"
)

// Buckets groups candidates by how many distinct letters they share with a
// letter class. Each bucket is ordered by descending tie-break score, then
// dictionary order.
type Buckets map[int][]string

// MaxKey returns the highest overlap with a bucket, if any.
func (b Buckets) MaxKey() (int, bool) {
	best, ok := 0, false
	for k := range b {
		if !ok || k > best {
			best, ok = k, true
		}
	}
	return best, ok
}

// Bucketize partitions the pool by overlap with class and orders every
// bucket with weights derived from table.
func Bucketize(p *Pool, class LetterClass, table FrequencyTable) Buckets {
	type entry struct {
		index uint
		score int
	}
	ranks := table.Ranks()
	grouped := make(map[int][]entry)
	p.each(func(i uint) {
		k := class.Overlap(p.lex.letters[i])
		grouped[k] = append(grouped[k], entry{i, score(p.lex.runes[i], ranks)})
	})

	out := make(Buckets, len(grouped))
	for k, es := range grouped {
		slices.SortFunc(es, func(a, b entry) int {
			if c := cmp.Compare(b.score, a.score); c != 0 {
				return c
			}
			return cmp.Compare(a.index, b.index)
		})
		ws := make([]string, len(es))
		for j, e := range es {
			ws[j] = p.lex.words[e.index]
		}
		out[k] = ws
	}
	return out
}

// score sums the rank weight of every position, so a repeated letter
// counts once per occurrence.
func score(word []rune, ranks map[rune]int) int {
	total := 0
	for _, r := range word {
		total += ranks[r]
	}
	return total
}

// ChooseGuess returns the first word of the highest-overlap bucket.
func ChooseGuess(b Buckets) (string, error) {
	k, ok := b.MaxKey()
	if !ok || len(b[k]) == 0 {
		return "", ErrNoCandidates
	}
	return b[k][0], nil
}
