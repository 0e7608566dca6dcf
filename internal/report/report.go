// Package report renders solver progress and batch summaries for humans.
// Nothing here feeds back into a game.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/TwiN/go-color"
	"golang.org/x/exp/constraints"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Board renders filled slots as their letter and empty slots as "_".
func Board(b solver.Board) string {
	var sb strings.Builder
	for _, r := range b {
		if r == 0 {
			sb.WriteByte('_')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Guess colours each letter of guess: green for an exact slot, yellow for a
// found letter elsewhere, plain otherwise.
func Guess(guess string, b solver.Board, found []string) string {
	var sb strings.Builder
	for i, r := range []rune(guess) {
		switch {
		case i < len(b) && b[i] == r:
			sb.WriteString(color.Ize(color.Green, string(r)))
		case slices.Contains(found, string(r)):
			sb.WriteString(color.Ize(color.Yellow, string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Console is a solver.Observer printing one line per attempt.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole writes progress lines to w.
func NewConsole(w io.Writer) *Console { return &Console{w: w} }

func (c *Console) Attempt(st solver.Step) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "attempt %d (%s): %s  board=%s  found=[%s]  pool=%d->%d\n",
		st.Attempt, st.Phase, Guess(st.Guess, st.Board, st.Found), Board(st.Board),
		strings.Join(st.Found, ","), st.PoolBefore, st.PoolAfter)
}

// Result prints the end of a game.
func Result(w io.Writer, secret string, res solver.Result) {
	if res.Solved {
		fmt.Fprintf(w, "%s solved in %d attempts\n", color.Ize(color.Green, secret), res.Attempts)
		return
	}
	fmt.Fprintf(w, "%s not solved after %d attempts (board %q)\n", color.Ize(color.Red, secret), res.Attempts, res.Board)
}

// WriteSummary prints success rate, histogram and failures.
func WriteSummary(w io.Writer, s batch.Summary) {
	fmt.Fprintf(w, "games: %d  solved: %d  exhausted: %d  failed: %d\n", s.Games, s.Solved, s.Exhausted, s.Failed)
	fmt.Fprintf(w, "success rate: %.1f%%  mean attempts: %.2f\n", 100*s.SuccessRate, s.MeanAttempts)
	for _, k := range sortedKeys(s.Histogram) {
		fmt.Fprintf(w, "%3d: %-5d %s\n", k, s.Histogram[k], strings.Repeat("#", bar(s.Histogram[k], s.Solved)))
	}
	for _, k := range sortedKeys(s.Failures) {
		fmt.Fprintf(w, "%s: %d\n", color.Ize(color.Red, k), s.Failures[k])
	}
}

// bar scales n out of total to at most 40 columns.
func bar(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 40 / total
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
