package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/keyatlas/keyatlas/logging"
	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/practice"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *httptest.Server {
	s := &server{store: practice.NewMemoryStore(), log: logging.New()}
	return httptest.NewServer(s.router())
}

func TestChordsEndpoint(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/chords?root=C&scale=major")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var body model.ChordsResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(body.Chords, 7)
	assert.Equal("Cmaj7", body.Chords[0].Symbol)
}

func TestChordsEndpointRejectsBadScale(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/chords?root=C&scale=mixolydian")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusBadRequest, resp.StatusCode)

	var body model.ErrorResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(body.Error)
}

func TestPivotsEndpoint(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/pivots?from_root=C&from_scale=major&to_root=A&to_scale=natural_minor")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var body model.PivotsResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(body.Pivots, 7)
}

func TestPracticeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	reqBody, _ := json.Marshal(model.NewRoundRequestBody{
		Player:     "tester",
		Difficulty: "easy",
		Root:       "C",
		ScaleType:  "major",
	})
	resp, err := http.Post(ts.URL+"/practice/round", "application/json", bytes.NewReader(reqBody))
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var round model.Round
	assert.NoError(json.NewDecoder(resp.Body).Decode(&round))
	assert.NotEmpty(round.ID)
	assert.Len(round.Choices, 4)
	// the answer never crosses the wire
	assert.Empty(round.Answer)

	// answer with every choice being wrong is impossible; just answer the
	// first choice and accept either outcome, then check stats moved
	ansBody, _ := json.Marshal(model.AnswerRequestBody{
		Player:  "tester",
		RoundID: round.ID,
		Symbol:  round.Choices[0],
	})
	resp2, err := http.Post(ts.URL+"/practice/answer", "application/json", bytes.NewReader(ansBody))
	assert.NoError(err)
	defer resp2.Body.Close()
	assert.Equal(http.StatusOK, resp2.StatusCode)

	var result model.RoundResult
	assert.NoError(json.NewDecoder(resp2.Body).Decode(&result))
	assert.NotEmpty(result.Answer)
	assert.Equal(1, result.Stats.Total)
	assert.Equal(result.Correct, result.Answer == round.Choices[0])

	// rounds are single-use
	ansBody2, _ := json.Marshal(model.AnswerRequestBody{
		Player:  "tester",
		RoundID: round.ID,
		Symbol:  round.Choices[0],
	})
	resp3, err := http.Post(ts.URL+"/practice/answer", "application/json", bytes.NewReader(ansBody2))
	assert.NoError(err)
	defer resp3.Body.Close()
	assert.Equal(http.StatusNotFound, resp3.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/practice/stats?player=nobody")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var stats model.Stats
	assert.NoError(json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(0, stats.Total)
}
