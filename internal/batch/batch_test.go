package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newSolver(t *testing.T) *solver.Solver {
	t.Helper()
	d, err := words.New([]string{"adieu", "audio", "cigar", "onset", "stone", "notes", "humph"}, 5)
	require.NoError(t, err)
	s, err := solver.New(d, solver.DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestRunCapturesFailures(t *testing.T) {
	s := newSolver(t)
	var done atomic.Int32

	out, err := Run(context.Background(), s, []string{"onset", "notes", "zzzzz", "abc"}, Options{
		Workers: 3,
		OnDone:  func(Outcome) { done.Add(1) },
	})
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.EqualValues(t, 4, done.Load())

	assert.Equal(t, "onset", out[0].Secret)
	assert.Equal(t, KindSolved, out[0].Kind)
	assert.Equal(t, 2, out[0].Result.Attempts)

	assert.Equal(t, KindExhausted, out[1].Kind)
	assert.Empty(t, out[1].Error())

	assert.Equal(t, KindNoCandidates, out[2].Kind)
	assert.ErrorIs(t, out[2].Err, solver.ErrNoCandidates)

	assert.Equal(t, KindInvalidWord, out[3].Kind)
	assert.NotEmpty(t, out[3].Error())

	sum := Summarize(out)
	assert.Equal(t, Summary{
		Games:        4,
		Solved:       1,
		Exhausted:    1,
		Failed:       2,
		SuccessRate:  0.25,
		MeanAttempts: 2,
		Histogram:    map[int]int{2: 1},
		Failures:     map[string]int{KindNoCandidates: 1, KindInvalidWord: 1},
	}, sum)
}

func TestRunMatchesSequentialSolve(t *testing.T) {
	s := newSolver(t)
	secrets := s.Dictionary().Words()

	out, err := Run(context.Background(), s, secrets, Options{Workers: 8})
	require.NoError(t, err)
	for i, secret := range secrets {
		res, err := s.Solve(secret)
		require.NoError(t, err)
		assert.Equal(t, res, out[i].Result, secret)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, newSolver(t), []string{"onset"}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindSolved, Kind(solver.Result{Solved: true}, nil))
	assert.Equal(t, KindExhausted, Kind(solver.Result{}, nil))
	assert.Equal(t, KindNoCandidates, Kind(solver.Result{}, fmt.Errorf("attempt 2: %w", solver.ErrNoCandidates)))
	assert.Equal(t, KindInvalidWord, Kind(solver.Result{}, words.ErrInvalidWord))
	assert.Equal(t, KindError, Kind(solver.Result{}, errors.New("boom")))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Games)
	assert.Zero(t, s.SuccessRate)
	assert.Empty(t, s.Histogram)
}
