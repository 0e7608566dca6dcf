// internal/solver/solver.go
//
// The attempt loop for a single game.
// Responsibilities:
//   - Build the shared per-dictionary data once (letter sets, frequency tables).
//   - Alternate vowel- and consonant-guided guesses, starting with vowels.
//   - Evaluate each guess, stop when the board is full, otherwise eliminate
//     candidates and move to the next attempt.
//   - Give up after MaxTries guesses.
//
// Notes:
//   - A Solver is read-only after New, so Solve may run concurrently.
//   - Every game starts from the full dictionary; nothing carries over.

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxTries is the attempt budget of the official game.
const DefaultMaxTries = 6

var (
	ErrNoCandidates         = errors.New("solver: no candidates remaining")
	ErrInvalidConfiguration = errors.New("solver: invalid configuration")
)

// TieBreak selects which frequency table orders words inside a bucket.
type TieBreak int

const (
	// TieBreakVowel always scores with the vowel table, whatever the phase.
	TieBreakVowel TieBreak = iota
	// TieBreakPhase scores with the table of the active phase's class.
	TieBreakPhase
)

func (t TieBreak) String() string {
	if t == TieBreakPhase {
		return "phase"
	}
	return "vowel"
}

// ParseTieBreak parses "vowel" or "phase".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vowel":
		return TieBreakVowel, nil
	case "phase":
		return TieBreakPhase, nil
	}
	return 0, fmt.Errorf("%w: unknown tie-break %q", ErrInvalidConfiguration, s)
}

// Config tunes a Solver.
type Config struct {
	MaxTries   int
	Vowels     LetterClass
	Consonants LetterClass
	TieBreak   TieBreak
}

// DefaultConfig is the standard configuration: six tries, Latin vowels and
// consonants, vowel-table tie-breaking.
func DefaultConfig() Config {
	return Config{
		MaxTries:   DefaultMaxTries,
		Vowels:     Vowels(),
		Consonants: Consonants(),
		TieBreak:   TieBreakVowel,
	}
}

func (c Config) validate() error {
	if c.MaxTries <= 0 {
		return fmt.Errorf("%w: max tries must be positive, got %d", ErrInvalidConfiguration, c.MaxTries)
	}
	if c.Vowels.Len() == 0 || c.Consonants.Len() == 0 {
		return fmt.Errorf("%w: letter classes must not be empty", ErrInvalidConfiguration)
	}
	return nil
}

// Result is the outcome of one game.
type Result struct {
	Board    string `json:"board"`
	Attempts int    `json:"attempts"`
	Solved   bool   `json:"solved"`
}

// Step records one attempt.
type Step struct {
	Attempt    int      `json:"attempt"`
	Phase      Phase    `json:"phase"`
	Guess      string   `json:"guess"`
	Board      Board    `json:"board"`
	Found      []string `json:"found"`
	Contra     []string `json:"contra"`
	PoolBefore int      `json:"poolBefore"`
	PoolAfter  int      `json:"poolAfter"`
}

// Observer is told about every attempt. It cannot influence the game.
type Observer interface {
	Attempt(Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Step)

func (f ObserverFunc) Attempt(s Step) { f(s) }

// Solver plays games against one dictionary.
type Solver struct {
	dict   words.Dictionary
	lex    *lexicon
	tables Tables
	cfg    Config
}

// New validates cfg and precomputes the frequency tables for dict.
func New(dict words.Dictionary, cfg Config) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tables, err := Analyze(dict, cfg.Vowels, cfg.Consonants)
	if err != nil {
		return nil, err
	}
	return &Solver{dict: dict, lex: newLexicon(dict), tables: tables, cfg: cfg}, nil
}

// NewWithTables is New with frequency tables computed elsewhere.
func NewWithTables(dict words.Dictionary, cfg Config, tables Tables) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if dict.Len() == 0 {
		return nil, words.ErrEmptyDictionary
	}
	return &Solver{dict: dict, lex: newLexicon(dict), tables: tables, cfg: cfg}, nil
}

// RunGame plays one game with the default letter classes.
func RunGame(dict words.Dictionary, secret string, tables Tables, maxTries int) (Result, error) {
	cfg := DefaultConfig()
	cfg.MaxTries = maxTries
	s, err := NewWithTables(dict, cfg, tables)
	if err != nil {
		return Result{}, err
	}
	return s.Solve(secret)
}

func (s *Solver) Dictionary() words.Dictionary { return s.dict }
func (s *Solver) Tables() Tables               { return s.tables }
func (s *Solver) Config() Config               { return s.cfg }

// Solve plays one game against secret.
func (s *Solver) Solve(secret string) (Result, error) {
	return s.SolveObserved(secret, nil)
}

// Trace plays one game and returns every attempt alongside the result.
func (s *Solver) Trace(secret string) (Result, []Step, error) {
	var steps []Step
	res, err := s.SolveObserved(secret, ObserverFunc(func(st Step) { steps = append(steps, st) }))
	return res, steps, err
}

// SolveObserved plays one game, reporting each attempt to obs if non-nil.
func (s *Solver) SolveObserved(secret string, obs Observer) (Result, error) {
	secret = words.Normalize(secret)
	if err := words.CheckWord(secret, s.dict.WordLength()); err != nil {
		return Result{}, fmt.Errorf("secret: %w", err)
	}

	pool := fullPool(s.lex)
	phase := PhaseVowel
	var board Board
	for attempt := 1; attempt <= s.cfg.MaxTries; attempt++ {
		guess, err := ChooseGuess(Bucketize(pool, s.class(phase), s.scoring(phase)))
		if err != nil {
			return Result{}, fmt.Errorf("attempt %d: %w", attempt, err)
		}
		fb, err := Evaluate(guess, secret)
		if err != nil {
			return Result{}, err
		}
		board = fb.Board

		next := pool
		if !board.Solved() {
			next = pool.Eliminate(fb)
		}
		log.Debug().
			Int("attempt", attempt).
			Stringer("phase", phase).
			Str("guess", guess).
			Int("pool", pool.Len()).
			Int("remaining", next.Len()).
			Msg("guess evaluated")
		if obs != nil {
			obs.Attempt(Step{
				Attempt:    attempt,
				Phase:      phase,
				Guess:      guess,
				Board:      board,
				Found:      sortedLetters(fb.Found),
				Contra:     sortedLetters(fb.Contra),
				PoolBefore: pool.Len(),
				PoolAfter:  next.Len(),
			})
		}

		if board.Solved() {
			return Result{Board: board.String(), Attempts: attempt, Solved: true}, nil
		}
		pool = next
		phase = phase.Next()
	}
	return Result{Board: board.String(), Attempts: s.cfg.MaxTries}, nil
}

func (s *Solver) class(p Phase) LetterClass {
	if p == PhaseVowel {
		return s.cfg.Vowels
	}
	return s.cfg.Consonants
}

func (s *Solver) scoring(p Phase) FrequencyTable {
	if s.cfg.TieBreak == TieBreakPhase {
		return s.tables.For(p)
	}
	return s.tables.Vowel
}
