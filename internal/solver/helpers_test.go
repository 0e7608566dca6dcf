package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// small is a dictionary small enough to follow a game by hand.
var small = []string{"adieu", "audio", "cigar", "onset", "stone", "notes", "humph"}

func dict(t *testing.T, list ...string) words.Dictionary {
	t.Helper()
	d, err := words.New(list, 5)
	require.NoError(t, err)
	return d
}

func embedded(t *testing.T) words.Dictionary {
	t.Helper()
	d, err := words.Load("", words.DefaultLength)
	require.NoError(t, err)
	return d
}
