package model

// Round is one practice challenge: identify the chord whose notes are shown.
type Round struct {
	ID         string   `json:"id"`
	Root       string   `json:"root"`
	ScaleType  string   `json:"scale_type"`
	Difficulty string   `json:"difficulty"`
	Notes      []string `json:"notes"`
	Choices    []string `json:"choices"`
	// Answer is the correct chord symbol. Stripped before a round is sent
	// over the wire.
	Answer string `json:"-"`
}

// RoundResult is the outcome of answering a round.
type RoundResult struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
	Stats   Stats  `json:"stats"`
}

// Stats is a player's accumulated practice record.
type Stats struct {
	Total      int `json:"total"`
	Correct    int `json:"correct"`
	Streak     int `json:"streak"`
	BestStreak int `json:"best_streak"`
}

// Accuracy is Correct/Total, 0 when nothing has been answered.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}
