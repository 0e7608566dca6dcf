package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterClass(t *testing.T) {
	c := NewLetterClass("abc", "cabbac")
	assert.Equal(t, "abc", c.Name())
	assert.Equal(t, []rune{'c', 'a', 'b'}, c.Letters())
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains('a'))
	assert.False(t, c.Contains('d'))

	letters := c.Letters()
	letters[0] = 'z'
	assert.Equal(t, 'c', c.Letters()[0])

	assert.False(t, LetterClass{}.Contains('a'))
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, 4, Vowels().Overlap(NewLetterSet("adieu")))
	assert.Equal(t, 1, Consonants().Overlap(NewLetterSet("adieu")))
	assert.Equal(t, 2, Vowels().Overlap(NewLetterSet("eerie")))
	assert.Equal(t, 0, Vowels().Overlap(NewLetterSet("crwth")))
}

func TestClassesPartitionAlphabet(t *testing.T) {
	v, c := Vowels(), Consonants()
	for r := 'a'; r <= 'z'; r++ {
		assert.True(t, v.Contains(r) != c.Contains(r), string(r))
	}
}

func TestPhase(t *testing.T) {
	assert.Equal(t, PhaseConsonant, PhaseVowel.Next())
	assert.Equal(t, PhaseVowel, PhaseConsonant.Next())
	assert.Equal(t, "vowel", PhaseVowel.String())
	assert.Equal(t, "consonant", PhaseConsonant.String())
}

func TestNewLetterSet(t *testing.T) {
	s := NewLetterSet("sissy")
	assert.Equal(t, 3, s.Cardinality())
	assert.Equal(t, []string{"i", "s", "y"}, sortedLetters(s))
}

func TestPhaseText(t *testing.T) {
	var p Phase
	assert.NoError(t, p.UnmarshalText([]byte("consonant")))
	assert.Equal(t, PhaseConsonant, p)
	assert.Error(t, p.UnmarshalText([]byte("both")))
}
