// internal/httpserver/routes_daily.go
//
// GET /daily[?date=YYYY-MM-DD] solves the word of the day.
// The word is chosen deterministically from the date and DAILY_SALT, so every
// instance with the same dictionary and salt agrees on it.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

type dailyRes struct {
	Date   string        `json:"date"`
	Index  int           `json:"index"`
	Secret string        `json:"secret"`
	Result solver.Result `json:"result"`
	Steps  []solver.Step `json:"steps"`
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	day := s.now()
	if q := r.URL.Query().Get("date"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			httpError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = t
	}

	secret, idx := daily.Secret(s.solver.Dictionary(), day, s.opts.DailySalt)
	res, steps, err := s.solver.Trace(secret)
	if err != nil {
		gameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(dailyRes{
		Date:   daily.DateKey(day),
		Index:  idx,
		Secret: secret,
		Result: res,
		Steps:  steps,
	})
}
