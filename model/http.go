package model

type ChordsResponse struct {
	Root      string  `json:"root"`
	ScaleType string  `json:"scale_type"`
	Chords    []Chord `json:"chords"`
}

type RelatedResponse struct {
	Root      string       `json:"root"`
	ScaleType string       `json:"scale_type"`
	Related   []RelatedKey `json:"related"`
}

type PivotsResponse struct {
	Pivots []PivotChord `json:"pivots"`
}

type NewRoundRequestBody struct {
	Player     string `json:"player"`
	Difficulty string `json:"difficulty"`
	Root       string `json:"root,omitempty"`
	ScaleType  string `json:"scale_type,omitempty"`
}

type AnswerRequestBody struct {
	Player  string `json:"player"`
	RoundID string `json:"round_id"`
	Symbol  string `json:"symbol"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
