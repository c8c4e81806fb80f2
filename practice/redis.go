package practice

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/keyatlas/keyatlas/config"
	"github.com/keyatlas/keyatlas/logging"
	"github.com/keyatlas/keyatlas/model"
	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix = "practice:stats:"
	roundKeyPrefix = "practice:round:"
)

// storedRound round plus the answer, which model.Round hides from JSON.
type storedRound struct {
	Round  model.Round `json:"round"`
	Answer string      `json:"answer"`
}

// RedisStore keeps pending rounds in TTL keys and stats in one hash per
// player. Stat writes are debounced so a fast answer streak collapses into a
// single flush.
type RedisStore struct {
	client   *redis.Client
	log      *logging.Logger
	roundTTL time.Duration

	mu       sync.Mutex
	cached   map[string]model.Stats
	dirty    map[string]bool
	debounce func(func())
}

func NewRedisStore(cfg config.RedisConfig, pcfg config.PracticeConfig, log *logging.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client:   client,
		log:      log,
		roundTTL: time.Duration(pcfg.RoundTTLSec) * time.Second,
		cached:   make(map[string]model.Stats),
		dirty:    make(map[string]bool),
		debounce: debounce.New(time.Duration(pcfg.FlushMs) * time.Millisecond),
	}, nil
}

func statsKey(player string) string {
	return statsKeyPrefix + player
}

func roundKey(player, id string) string {
	return roundKeyPrefix + player + ":" + id
}

func (r *RedisStore) SaveRound(ctx context.Context, player string, round model.Round) error {
	data, err := json.Marshal(storedRound{Round: round, Answer: round.Answer})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, roundKey(player, round.ID), data, r.roundTTL).Err()
}

func (r *RedisStore) TakeRound(ctx context.Context, player, id string) (model.Round, error) {
	data, err := r.client.GetDel(ctx, roundKey(player, id)).Bytes()
	if err == redis.Nil {
		return model.Round{}, ErrRoundNotFound
	}
	if err != nil {
		return model.Round{}, err
	}
	var sr storedRound
	if err := json.Unmarshal(data, &sr); err != nil {
		return model.Round{}, err
	}
	sr.Round.Answer = sr.Answer
	return sr.Round, nil
}

func (r *RedisStore) RecordAnswer(ctx context.Context, player string, correct bool) (model.Stats, error) {
	current, err := r.loadStats(ctx, player)
	if err != nil {
		return model.Stats{}, err
	}

	r.mu.Lock()
	s := applyAnswer(current, correct)
	r.cached[player] = s
	r.dirty[player] = true
	r.mu.Unlock()

	r.debounce(r.flush)
	return s, nil
}

func (r *RedisStore) Stats(ctx context.Context, player string) (model.Stats, error) {
	return r.loadStats(ctx, player)
}

func (r *RedisStore) Players(ctx context.Context) ([]string, error) {
	var players []string
	iter := r.client.Scan(ctx, 0, statsKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		players = append(players, iter.Val()[len(statsKeyPrefix):])
	}
	return players, iter.Err()
}

// Close flushes pending stats before shutting the client down.
func (r *RedisStore) Close() error {
	r.flush()
	return r.client.Close()
}

func (r *RedisStore) loadStats(ctx context.Context, player string) (model.Stats, error) {
	r.mu.Lock()
	if s, ok := r.cached[player]; ok {
		r.mu.Unlock()
		return s, nil
	}
	r.mu.Unlock()

	fields, err := r.client.HGetAll(ctx, statsKey(player)).Result()
	if err != nil {
		return model.Stats{}, err
	}
	s := model.Stats{
		Total:      atoi(fields["total"]),
		Correct:    atoi(fields["correct"]),
		Streak:     atoi(fields["streak"]),
		BestStreak: atoi(fields["best_streak"]),
	}

	r.mu.Lock()
	r.cached[player] = s
	r.mu.Unlock()
	return s, nil
}

func (r *RedisStore) flush() {
	r.mu.Lock()
	pending := make(map[string]model.Stats, len(r.dirty))
	for player := range r.dirty {
		pending[player] = r.cached[player]
	}
	r.dirty = make(map[string]bool)
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for player, s := range pending {
		err := r.client.HSet(ctx, statsKey(player),
			"total", s.Total,
			"correct", s.Correct,
			"streak", s.Streak,
			"best_streak", s.BestStreak,
		).Err()
		if err != nil {
			r.log.Error(err, "could not flush practice stats", logging.Fields{"player": player})
		}
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
