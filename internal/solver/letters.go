// internal/solver/letters.go
//
// Letter classes and letter sets.
//
// A LetterClass is an ordered, immutable set of characters (vowels,
// consonants, or any other grouping for a different alphabet). Its order is
// the tie-break order of the frequency table built from it.
//
// A LetterSet holds the distinct letters of a word. Sets are presence-only:
// a word with a repeated letter has the same set as one with a single
// occurrence.

package solver

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// LetterSet is a presence-only set of letters.
type LetterSet = mapset.Set[rune]

// NewLetterSet returns the distinct letters of word.
func NewLetterSet(word string) LetterSet {
	s := mapset.NewThreadUnsafeSet[rune]()
	for _, r := range word {
		s.Add(r)
	}
	return s
}

// sortedLetters renders a set as sorted one-letter strings.
func sortedLetters(s LetterSet) []string {
	rs := s.ToSlice()
	slices.Sort(rs)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// LetterClass is an immutable, ordered set of characters.
type LetterClass struct {
	name    string
	letters []rune
	set     LetterSet
}

// NewLetterClass builds a class from the letters of s in order, ignoring
// repeats.
func NewLetterClass(name, s string) LetterClass {
	c := LetterClass{name: name, set: mapset.NewThreadUnsafeSet[rune]()}
	for _, r := range s {
		if c.set.Add(r) {
			c.letters = append(c.letters, r)
		}
	}
	return c
}

// Vowels is the Latin vowel class used by default.
func Vowels() LetterClass { return NewLetterClass("vowels", "aeiou") }

// Consonants is the Latin consonant class used by default.
func Consonants() LetterClass {
	return NewLetterClass("consonants", "bcdfghjklmnpqrstvwxyz")
}

func (c LetterClass) Name() string { return c.name }

// Letters returns the class letters in class order.
func (c LetterClass) Letters() []rune { return slices.Clone(c.letters) }

func (c LetterClass) Len() int { return len(c.letters) }

func (c LetterClass) Contains(r rune) bool {
	return c.set != nil && c.set.Contains(r)
}

// Overlap counts the letters of s that belong to the class.
func (c LetterClass) Overlap(s LetterSet) int {
	n := 0
	for _, r := range c.letters {
		if s.Contains(r) {
			n++
		}
	}
	return n
}

// Phase selects which letter class guides a guess.
type Phase int

const (
	PhaseVowel Phase = iota
	PhaseConsonant
)

// Next flips between the vowel and consonant phases.
func (p Phase) Next() Phase {
	if p == PhaseVowel {
		return PhaseConsonant
	}
	return PhaseVowel
}

func (p Phase) String() string {
	if p == PhaseVowel {
		return "vowel"
	}
	return "consonant"
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "vowel":
		*p = PhaseVowel
	case "consonant":
		*p = PhaseConsonant
	default:
		return fmt.Errorf("solver: unknown phase %q", b)
	}
	return nil
}
