package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/keyatlas/keyatlas/config"
	"github.com/keyatlas/keyatlas/logging"
	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/pivot"
	"github.com/keyatlas/keyatlas/practice"
	"github.com/keyatlas/keyatlas/related"
	"github.com/keyatlas/keyatlas/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveVerbose bool

func init() {
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "log debug output")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine as a JSON API",
	Long:  `Serves chord generation, related keys, pivot analysis and the practice game over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type server struct {
	store practice.Store
	log   *logging.Logger
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	log := logging.New()
	if serveVerbose {
		log.SetLevel(logging.DebugLevel)
	}
	log.Debug("config loaded", logging.Fields{
		"addr":  cfg.Server.Addr,
		"redis": cfg.Redis.Addr,
	})

	var store practice.Store
	if cfg.Redis.Addr == "" {
		log.Warn("no redis configured, practice stats will not survive a restart")
		store = practice.NewMemoryStore()
	} else {
		store, err = practice.NewRedisStore(cfg.Redis, cfg.Practice,
			log.WithFields(logging.Fields{"component": "practice"}))
		if err != nil {
			return errors.Wrap(err, "connecting to redis")
		}
	}
	defer store.Close()

	s := &server{store: store, log: log}
	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.Server.CORSOrigin},
		AllowedMethods: []string{"GET", "POST"},
	})

	log.Info("listening", logging.Fields{"addr": cfg.Server.Addr})
	return http.ListenAndServe(cfg.Server.Addr, c.Handler(s.router()))
}

func (s *server) router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", s.handleChords).Methods("GET")
	router.HandleFunc("/related", s.handleRelated).Methods("GET")
	router.HandleFunc("/pivots", s.handlePivots).Methods("GET")
	router.HandleFunc("/practice/round", s.handleNewRound).Methods("POST")
	router.HandleFunc("/practice/answer", s.handleAnswer).Methods("POST")
	router.HandleFunc("/practice/stats", s.handleStats).Methods("GET")
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	scaleTag := r.URL.Query().Get("scale")
	chords, err := scale.GenerateByTag(root, scaleTag)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChordsResponse{
		Root:      root,
		ScaleType: scaleTag,
		Chords:    chords,
	})
}

func (s *server) handleRelated(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	scaleTag := r.URL.Query().Get("scale")
	keys, err := related.FindRelatedKeysByTag(root, scaleTag)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.RelatedResponse{
		Root:      root,
		ScaleType: scaleTag,
		Related:   keys,
	})
}

func (s *server) handlePivots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pivots, err := pivot.FindPivotChordsByTag(
		q.Get("from_root"), q.Get("from_scale"),
		q.Get("to_root"), q.Get("to_scale"),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PivotsResponse{Pivots: pivots})
}

func playerOrDefault(player string) string {
	if player == "" {
		return "default"
	}
	return player
}

func (s *server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var body model.NewRoundRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding request body"))
		return
	}

	round, err := practice.NewRound(practice.Options{
		Difficulty: body.Difficulty,
		Root:       body.Root,
		ScaleType:  body.ScaleType,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	player := playerOrDefault(body.Player)
	if err := s.store.SaveRound(r.Context(), player, round); err != nil {
		s.log.Error(errors.Wrap(err, "saving round"), "practice round failed", logging.Fields{"player": player})
		writeError(w, http.StatusInternalServerError, errors.New("could not save round"))
		return
	}
	writeJSON(w, http.StatusOK, round)
}

func (s *server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var body model.AnswerRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding request body"))
		return
	}

	player := playerOrDefault(body.Player)
	round, err := s.store.TakeRound(r.Context(), player, body.RoundID)
	if err == practice.ErrRoundNotFound {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.log.Error(errors.Wrap(err, "fetching round"), "practice answer failed", logging.Fields{"player": player})
		writeError(w, http.StatusInternalServerError, errors.New("could not fetch round"))
		return
	}

	correct := practice.Check(round, body.Symbol)
	stats, err := s.store.RecordAnswer(r.Context(), player, correct)
	if err != nil {
		s.log.Error(errors.Wrap(err, "recording answer"), "practice answer failed", logging.Fields{"player": player})
		writeError(w, http.StatusInternalServerError, errors.New("could not record answer"))
		return
	}

	writeJSON(w, http.StatusOK, model.RoundResult{
		Correct: correct,
		Answer:  round.Answer,
		Stats:   stats,
	})
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	player := playerOrDefault(r.URL.Query().Get("player"))
	stats, err := s.store.Stats(r.Context(), player)
	if err != nil {
		s.log.Error(errors.Wrap(err, "loading stats"), "stats lookup failed", logging.Fields{"player": player})
		writeError(w, http.StatusInternalServerError, errors.New("could not load stats"))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
