// internal/batch/batch.go
//
// Batch driver: plays one game per secret and aggregates the outcomes.
//
// Notes:
//   - Games run in parallel on an errgroup bounded by Options.Workers. They
//     share only the read-only Solver.
//   - A failing game never stops the batch: its error is kept in its Outcome.
//   - Only context cancellation aborts a run.

package batch

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Outcome kinds.
const (
	KindSolved       = "solved"
	KindExhausted    = "exhausted"
	KindNoCandidates = "no_candidates"
	KindInvalidWord  = "invalid_word"
	KindError        = "error"
)

// Outcome is the result of one game in a batch.
type Outcome struct {
	Secret string        `json:"secret"`
	Result solver.Result `json:"result"`
	Kind   string        `json:"kind"`
	Err    error         `json:"-"`
}

// Error returns the failure message, or "".
func (o Outcome) Error() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Kind classifies a game's result or error.
func Kind(res solver.Result, err error) string {
	switch {
	case err == nil && res.Solved:
		return KindSolved
	case err == nil:
		return KindExhausted
	case errors.Is(err, solver.ErrNoCandidates):
		return KindNoCandidates
	case errors.Is(err, words.ErrInvalidWordLength), errors.Is(err, words.ErrInvalidWord):
		return KindInvalidWord
	}
	return KindError
}

// Options controls a batch run.
type Options struct {
	// Workers bounds parallel games; values below 1 mean 1.
	Workers int
	// OnDone, if set, is called after each game. It may be called from
	// several goroutines at once.
	OnDone func(Outcome)
}

// Run plays every secret and returns the outcomes in input order.
func Run(ctx context.Context, s *solver.Solver, secrets []string, opts Options) ([]Outcome, error) {
	out := make([]Outcome, len(secrets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, secret := range secrets {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Solve(secret)
			o := Outcome{Secret: secret, Result: res, Kind: Kind(res, err), Err: err}
			if err != nil {
				log.Warn().Err(err).Str("secret", secret).Str("kind", o.Kind).Msg("game failed")
			}
			out[i] = o
			if opts.OnDone != nil {
				opts.OnDone(o)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
