package batch

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Games        int            `json:"games"`
	Solved       int            `json:"solved"`
	Exhausted    int            `json:"exhausted"`
	Failed       int            `json:"failed"`
	SuccessRate  float64        `json:"successRate"`
	MeanAttempts float64        `json:"meanAttempts"` // over solved games
	Histogram    map[int]int    `json:"histogram"`    // attempts -> solved games
	Failures     map[string]int `json:"failures"`     // kind -> games
}

// Summarize counts solved, exhausted and failed games.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Games:     len(outcomes),
		Histogram: map[int]int{},
		Failures:  map[string]int{},
	}
	attempts := 0
	for _, o := range outcomes {
		switch o.Kind {
		case KindSolved:
			s.Solved++
			s.Histogram[o.Result.Attempts]++
			attempts += o.Result.Attempts
		case KindExhausted:
			s.Exhausted++
		default:
			s.Failed++
			s.Failures[o.Kind]++
		}
	}
	if s.Games > 0 {
		s.SuccessRate = float64(s.Solved) / float64(s.Games)
	}
	if s.Solved > 0 {
		s.MeanAttempts = float64(attempts) / float64(s.Solved)
	}
	return s
}
