// internal/solver/feedback.go
//
// The scoring oracle. Unlike the official game it does not resolve repeated
// letters: a guessed letter is either found (present somewhere in the
// secret) or contra (absent), and only exact positions are reported
// per slot.

package solver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Board is the per-position exact-match result of a guess. A zero rune is
// an empty slot.
type Board []rune

// Solved reports whether every slot is filled.
func (b Board) Solved() bool {
	if len(b) == 0 {
		return false
	}
	for _, r := range b {
		if r == 0 {
			return false
		}
	}
	return true
}

// String joins the filled slots; empty slots contribute nothing.
func (b Board) String() string {
	var sb strings.Builder
	for _, r := range b {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Slots returns one string per position, "" for empty slots.
func (b Board) Slots() []string {
	out := make([]string, len(b))
	for i, r := range b {
		if r != 0 {
			out[i] = string(r)
		}
	}
	return out
}

func (b Board) MarshalJSON() ([]byte, error) { return json.Marshal(b.Slots()) }

func (b *Board) UnmarshalJSON(data []byte) error {
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	out := make(Board, len(slots))
	for i, s := range slots {
		if s != "" {
			out[i] = []rune(s)[0]
		}
	}
	*b = out
	return nil
}

// Feedback is what one guess reveals about the secret.
type Feedback struct {
	Board  Board
	Found  LetterSet // guess letters present anywhere in the secret
	Contra LetterSet // guess letters absent from the secret
}

// Evaluate scores guess against secret. Both must have the same length.
func Evaluate(guess, secret string) (Feedback, error) {
	g, s := []rune(guess), []rune(secret)
	if len(g) != len(s) {
		return Feedback{}, fmt.Errorf("%w: guess %q vs secret %q", words.ErrInvalidWordLength, guess, secret)
	}
	board := make(Board, len(g))
	for i := range g {
		if g[i] == s[i] {
			board[i] = g[i]
		}
	}
	gs := NewLetterSet(guess)
	found := gs.Intersect(NewLetterSet(secret))
	return Feedback{
		Board:  board,
		Found:  found,
		Contra: gs.Difference(found),
	}, nil
}
