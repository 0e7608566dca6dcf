// Command go-solver plays Wordle-style games against a fixed dictionary.
//
// Usage:
//
//	go-solver serve
//	go-solver solve -secret onset [-v]
//	go-solver simulate [-seed 1] [-n 100]
//	go-solver analyze
//	go-solver daily [-date 2026-10-19]
//	go-solver token -sub ci [-ttl 24h]
//
// Configuration comes from the environment (see internal/config).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/report"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	cfg := config.Load()
	cfg.Apply()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "serve":
		err = serve(cfg)
	case "solve":
		err = solve(cfg, args)
	case "simulate":
		err = simulate(cfg, args)
	case "analyze":
		err = analyze(cfg)
	case "daily":
		err = today(cfg, args)
	case "token":
		err = token(cfg, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: go-solver serve|solve|simulate|analyze|daily|token [flags]")
}

// newSolver loads the dictionary and builds the solver from cfg.
func newSolver(cfg config.Config) (*solver.Solver, error) {
	dict, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	tb, err := solver.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, err
	}
	sc := solver.DefaultConfig()
	sc.MaxTries = cfg.MaxTries
	sc.TieBreak = tb
	s, err := solver.New(dict, sc)
	if err != nil {
		return nil, err
	}
	log.Info().Int("words", dict.Len()).Int("length", dict.WordLength()).Stringer("tieBreak", tb).Msg("dictionary loaded")
	return s, nil
}

// openStore returns the SQLite store when DB_PATH is set, memory otherwise.
func openStore(cfg config.Config) (store.Store, func() error, error) {
	if cfg.DBPath == "" {
		return store.NewMemoryStore(), func() error { return nil }, nil
	}
	return store.OpenSQLite(cfg.DBPath)
}

func serve(cfg config.Config) error {
	s, err := newSolver(cfg)
	if err != nil {
		return err
	}
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := httpserver.New(s, st, httpserver.Options{
		JWTSecret: cfg.JWTSecret,
		DailySalt: cfg.DailySalt,
		Workers:   cfg.Workers,
	})
	log.Info().Str("port", cfg.Port).Msg("starting go-solver")
	return srv.Start(":" + cfg.Port)
}

func solve(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	secret := fs.String("secret", "", "word to find")
	verbose := fs.Bool("v", false, "print every attempt")
	_ = fs.Parse(args)
	if *secret == "" {
		return fmt.Errorf("solve: -secret is required")
	}

	s, err := newSolver(cfg)
	if err != nil {
		return err
	}
	var obs solver.Observer
	if *verbose {
		obs = report.NewConsole(os.Stdout)
	}
	res, err := s.SolveObserved(*secret, obs)
	if err != nil {
		return err
	}
	report.Result(os.Stdout, *secret, res)
	return nil
}

func simulate(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	seed := fs.Uint64("seed", 1, "sampling seed")
	n := fs.Int("n", 100, "number of secrets")
	_ = fs.Parse(args)

	s, err := newSolver(cfg)
	if err != nil {
		return err
	}
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	secrets := daily.Sample(s.Dictionary(), *seed, *n)
	run := &store.Run{
		ID:        fmt.Sprintf("cli-%d-%d", *seed, time.Now().Unix()),
		Seed:      *seed,
		Sample:    len(secrets),
		MaxTries:  s.Config().MaxTries,
		StartedAt: time.Now().UTC(),
	}
	bar := progressbar.Default(int64(len(secrets)), "simulating")
	outcomes, err := batch.Run(ctx, s, secrets, batch.Options{
		Workers: cfg.Workers,
		OnDone:  func(batch.Outcome) { _ = bar.Add(1) },
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}
	run.FinishedAt = time.Now().UTC()
	run.Summary = batch.Summarize(outcomes)
	run.Games = store.GamesFrom(outcomes)
	if err := st.Save(ctx, run); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	report.WriteSummary(os.Stdout, run.Summary)
	log.Info().Str("run", run.ID).Msg("run saved")
	return nil
}

func analyze(cfg config.Config) error {
	s, err := newSolver(cfg)
	if err != nil {
		return err
	}
	list := s.Dictionary().Words()
	for _, class := range []solver.LetterClass{s.Config().Vowels, s.Config().Consonants} {
		u := solver.ComputeUsage(list, class)
		fmt.Printf("%s: %d of %d words\n", class.Name(), len(u.Words), len(list))
		for _, lc := range u.Table {
			fmt.Printf("  %c %d\n", lc.Letter, lc.Count)
		}
		if len(u.Words) > 0 {
			fmt.Printf("  top: %s\n", u.Words[0])
		}
	}
	return nil
}

func today(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("daily", flag.ExitOnError)
	date := fs.String("date", "", "YYYY-MM-DD, default today (UTC)")
	_ = fs.Parse(args)

	day := time.Now()
	if *date != "" {
		t, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("daily: %w", err)
		}
		day = t
	}
	s, err := newSolver(cfg)
	if err != nil {
		return err
	}
	secret, idx := daily.Secret(s.Dictionary(), day, cfg.DailySalt)
	fmt.Printf("%s: word #%d\n", daily.DateKey(day), idx)
	res, err := s.SolveObserved(secret, report.NewConsole(os.Stdout))
	if err != nil {
		return err
	}
	report.Result(os.Stdout, secret, res)
	return nil
}

func token(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	sub := fs.String("sub", "", "token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "validity")
	_ = fs.Parse(args)
	if *sub == "" {
		return fmt.Errorf("token: -sub is required")
	}
	tok, exp, err := httpserver.SignToken(cfg.JWTSecret, *sub, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	log.Info().Time("expires", exp).Msg("token issued")
	return nil
}
