package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func testDict(t *testing.T) words.Dictionary {
	t.Helper()
	d, err := words.Load("", words.DefaultLength)
	require.NoError(t, err)
	return d
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	assert.Equal(t, "2026-10-18", DateKey(time.Date(2026, 10, 19, 5, 0, 0, 0, loc)))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	i := WordIndex(day, "salt", 390)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 390)
	assert.Equal(t, i, WordIndex(later, "salt", 390), "same day, same index")
	assert.Equal(t, 0, WordIndex(day, "salt", 0))

	// Different days or salts spread across the list.
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(day.AddDate(0, 0, d), "salt", 390)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSecret(t *testing.T) {
	d := testDict(t)
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	w, i := Secret(d, day, "salt")
	assert.Equal(t, d.At(i), w)
	assert.Equal(t, i, WordIndex(day, "salt", d.Len()))
}

func TestSample(t *testing.T) {
	d := testDict(t)

	a := Sample(d, 42, 25)
	b := Sample(d, 42, 25)
	require.Len(t, a, 25)
	assert.Equal(t, a, b)

	seen := map[string]bool{}
	for _, w := range a {
		assert.True(t, d.Contains(w))
		assert.False(t, seen[w], "duplicate %s", w)
		seen[w] = true
	}

	assert.NotEqual(t, a, Sample(d, 43, 25))
	assert.Len(t, Sample(d, 1, d.Len()+10), d.Len())
	assert.Nil(t, Sample(d, 1, 0))
}
