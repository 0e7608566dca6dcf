package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func sampleRun(id string, started time.Time) *Run {
	outcomes := []batch.Outcome{
		{Secret: "onset", Result: solver.Result{Board: "onset", Attempts: 2, Solved: true}, Kind: batch.KindSolved},
		{Secret: "notes", Result: solver.Result{Board: "e", Attempts: 6}, Kind: batch.KindExhausted},
		{Secret: "zzzzz", Kind: batch.KindNoCandidates, Err: solver.ErrNoCandidates},
	}
	return &Run{
		ID:         id,
		Seed:       42,
		Sample:     3,
		MaxTries:   6,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Summary:    batch.Summarize(outcomes),
		Games:      GamesFrom(outcomes),
	}
}

func testStore(t *testing.T, st Store) {
	ctx := context.Background()
	t0 := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	first := sampleRun("run-1", t0)
	require.NoError(t, st.Save(ctx, first))
	require.NoError(t, st.Save(ctx, sampleRun("run-2", t0.Add(time.Hour))))

	got, err := st.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, uint64(42), got.Seed)
	assert.True(t, first.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, first.Games, got.Games)
	assert.Equal(t, first.Summary, got.Summary)
	assert.Equal(t, "solver: no candidates remaining", got.Games[2].Error)

	list, err := st.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "run-2", list[0].ID)
	assert.Empty(t, list[0].Games)
	assert.Equal(t, 3, list[0].Summary.Games)

	list, err = st.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Saving again replaces the run.
	first.Games = first.Games[:1]
	first.Summary = batch.Summary{Games: 1, Solved: 1}
	require.NoError(t, st.Save(ctx, first))
	got, err = st.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, got.Games, 1)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	r := sampleRun("run-1", time.Now())
	require.NoError(t, st.Save(ctx, r))

	r.Games[0].Secret = "mutated"
	got, err := st.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "onset", got.Games[0].Secret)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "runs.db")
	st, closeDB, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeDB() })

	testStore(t, st)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	st, closeDB, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), sampleRun("run-1", time.Now())))
	require.NoError(t, closeDB())

	st, closeDB, err = OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeDB() })
	_, err = st.Get(context.Background(), "run-1")
	assert.NoError(t, err)
}
