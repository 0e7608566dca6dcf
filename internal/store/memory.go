// internal/store/memory.go
//
// Persistence for batch simulation runs.
//
// Characteristics of the in-memory implementation:
//   - Runs keyed by ID in a map, guarded by an RWMutex.
//   - Stored runs are copies; callers cannot mutate them afterwards.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
)

var ErrNotFound = errors.New("store: run not found")

// Game is one game of a stored run.
type Game struct {
	Secret   string `json:"secret"`
	Board    string `json:"board"`
	Attempts int    `json:"attempts"`
	Solved   bool   `json:"solved"`
	Kind     string `json:"kind"`
	Error    string `json:"error,omitempty"`
}

// Run is a persisted batch simulation.
type Run struct {
	ID         string        `json:"id"`
	Seed       uint64        `json:"seed"`
	Sample     int           `json:"sample"`
	MaxTries   int           `json:"maxTries"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
	Summary    batch.Summary `json:"summary"`
	Games      []Game        `json:"games,omitempty"`
}

// GamesFrom converts batch outcomes into stored games.
func GamesFrom(outcomes []batch.Outcome) []Game {
	out := make([]Game, len(outcomes))
	for i, o := range outcomes {
		out[i] = Game{
			Secret:   o.Secret,
			Board:    o.Result.Board,
			Attempts: o.Result.Attempts,
			Solved:   o.Result.Solved,
			Kind:     o.Kind,
			Error:    o.Error(),
		}
	}
	return out
}

// Store persists runs.
type Store interface {
	// Save inserts or replaces a run.
	Save(ctx context.Context, r *Run) error

	// Get returns a run with its games, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns up to limit runs, newest first, without games.
	List(ctx context.Context, limit int) ([]*Run, error)
}

type memory struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]*Run)}
}

func (m *memory) Save(ctx context.Context, r *Run) error {
	cp := *r
	cp.Games = slices.Clone(r.Games)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = &cp
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	cp.Games = slices.Clone(r.Games)
	return &cp, nil
}

func (m *memory) List(ctx context.Context, limit int) ([]*Run, error) {
	m.mu.RLock()
	out := make([]*Run, 0, len(m.runs))
	for _, r := range m.runs {
		cp := *r
		cp.Games = nil
		out = append(out, &cp)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Run) int { return b.StartedAt.Compare(a.StartedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
