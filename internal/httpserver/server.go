// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/words".
//   - Solver endpoints: POST /solve, GET /daily.
//   - Batch endpoints: POST /simulate (bearer JWT required), GET /runs, GET /runs/{id}.
//
// Notes:
//   - The Solver is shared by every request; it is read-only.
//   - Simulation runs are persisted through store.Store (memory or SQLite).

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/batch"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// maxSample bounds the number of games a single /simulate call may play.
const maxSample = 100_000

// Options configures a Server.
type Options struct {
	JWTSecret string
	DailySalt string
	Workers   int
}

// Server bundles router, solver and run store.
type Server struct {
	r      *chi.Mux
	solver *solver.Solver
	store  store.Store
	opts   Options
	now    func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(s *solver.Solver, st store.Store, opts Options) *Server {
	srv := &Server{r: chi.NewRouter(), solver: s, store: st, opts: opts, now: time.Now}

	// --- middleware ---
	srv.r.Use(chimw.RequestID)                 // add X-Request-ID
	srv.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	srv.r.Use(accessLog)                       // zerolog request log
	srv.r.Use(chimw.Recoverer)                 // recover from panics
	srv.r.Use(chimw.Timeout(60 * time.Second)) // bound handler time
	srv.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	srv.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/words","POST /solve","/daily","POST /simulate","/runs"]}`))
	})
	srv.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	srv.r.Get("/words", srv.handleWords)

	srv.r.Post("/solve", srv.handleSolve)
	srv.r.Get("/daily", srv.handleDaily)

	srv.r.With(srv.requireAuth()).Post("/simulate", srv.handleSimulate)
	srv.r.Get("/runs", srv.handleListRuns)
	srv.r.Get("/runs/{id}", srv.handleGetRun)

	srv.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpError(w, http.StatusNotFound, "not_found")
	})
	return srv
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog logs one line per request at debug level.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// httpError writes {"error": msg} with the given status.
func httpError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// gameError maps a solver error to a status code.
func gameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, words.ErrInvalidWordLength), errors.Is(err, words.ErrInvalidWord):
		httpError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, solver.ErrNoCandidates):
		httpError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).Msg("solve")
		httpError(w, http.StatusInternalServerError, "solve_failed")
	}
}

// ------------------------------ SOLVER -------------------------------------

type wordsRes struct {
	Words      int                   `json:"words"`
	WordLength int                   `json:"wordLength"`
	MaxTries   int                   `json:"maxTries"`
	TieBreak   string                `json:"tieBreak"`
	Vowels     solver.FrequencyTable `json:"vowels"`
	Consonants solver.FrequencyTable `json:"consonants"`
}

// handleWords reports the dictionary and its frequency tables.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	d, t, cfg := s.solver.Dictionary(), s.solver.Tables(), s.solver.Config()
	_ = json.NewEncoder(w).Encode(wordsRes{
		Words:      d.Len(),
		WordLength: d.WordLength(),
		MaxTries:   cfg.MaxTries,
		TieBreak:   cfg.TieBreak.String(),
		Vowels:     t.Vowel,
		Consonants: t.Consonant,
	})
}

type solveReq struct {
	Secret string `json:"secret"`
	Trace  bool   `json:"trace"`
}
type solveRes struct {
	Result solver.Result `json:"result"`
	Steps  []solver.Step `json:"steps,omitempty"`
}

// handleSolve plays one game against the posted secret.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var (
		res   solver.Result
		steps []solver.Step
		err   error
	)
	if req.Trace {
		res, steps, err = s.solver.Trace(req.Secret)
	} else {
		res, err = s.solver.Solve(req.Secret)
	}
	if err != nil {
		gameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(solveRes{Result: res, Steps: steps})
}

// ------------------------------ BATCH --------------------------------------

type simulateReq struct {
	Seed   uint64 `json:"seed"`
	Sample int    `json:"sample"`
}

// handleSimulate samples secrets, plays them all, and stores the run.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Sample <= 0 || req.Sample > maxSample {
		httpError(w, http.StatusBadRequest, "sample must be between 1 and "+strconv.Itoa(maxSample))
		return
	}

	run := &store.Run{
		ID:        genID(),
		Seed:      req.Seed,
		MaxTries:  s.solver.Config().MaxTries,
		StartedAt: s.now().UTC(),
	}
	secrets := daily.Sample(s.solver.Dictionary(), req.Seed, req.Sample)
	run.Sample = len(secrets)

	outcomes, err := batch.Run(r.Context(), s.solver, secrets, batch.Options{Workers: s.opts.Workers})
	if err != nil {
		log.Warn().Err(err).Str("run", run.ID).Msg("simulation aborted")
		httpError(w, http.StatusServiceUnavailable, "simulation_aborted")
		return
	}
	run.FinishedAt = s.now().UTC()
	run.Summary = batch.Summarize(outcomes)
	run.Games = store.GamesFrom(outcomes)

	if err := s.store.Save(r.Context(), run); err != nil {
		log.Error().Err(err).Str("run", run.ID).Msg("save run")
		httpError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().
		Str("run", run.ID).
		Str("by", subject(r.Context())).
		Int("games", run.Summary.Games).
		Float64("successRate", run.Summary.SuccessRate).
		Msg("simulation finished")
	_ = json.NewEncoder(w).Encode(run)
}

// handleListRuns returns recent runs without their games.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.store.List(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list runs")
		httpError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	_ = json.NewEncoder(w).Encode(runs)
}

// handleGetRun returns one run with its games.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		httpError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get run")
		httpError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(run)
}

// ------------------------------- small util --------------------------------

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
