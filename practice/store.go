package practice

import (
	"context"
	"errors"
	"sync"

	"github.com/keyatlas/keyatlas/model"
	"github.com/keyatlas/keyatlas/util"
)

var ErrRoundNotFound = errors.New("round not found")

// Store persists pending rounds and per-player statistics.
type Store interface {
	SaveRound(ctx context.Context, player string, round model.Round) error
	// TakeRound fetches a pending round and removes it; answering twice is
	// not a thing.
	TakeRound(ctx context.Context, player, id string) (model.Round, error)
	RecordAnswer(ctx context.Context, player string, correct bool) (model.Stats, error)
	Stats(ctx context.Context, player string) (model.Stats, error)
	Players(ctx context.Context) ([]string, error)
	Close() error
}

// MemoryStore keeps everything in process. Used by the terminal game and by
// the server when no Redis address is configured.
type MemoryStore struct {
	mu     sync.Mutex
	rounds map[string]model.Round
	stats  map[string]model.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds: make(map[string]model.Round),
		stats:  make(map[string]model.Stats),
	}
}

func (m *MemoryStore) SaveRound(_ context.Context, player string, round model.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[player+":"+round.ID] = round
	return nil
}

func (m *MemoryStore) TakeRound(_ context.Context, player, id string) (model.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := player + ":" + id
	round, ok := m.rounds[key]
	if !ok {
		return model.Round{}, ErrRoundNotFound
	}
	delete(m.rounds, key)
	return round, nil
}

func (m *MemoryStore) RecordAnswer(_ context.Context, player string, correct bool) (model.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := applyAnswer(m.stats[player], correct)
	m.stats[player] = s
	return s, nil
}

func (m *MemoryStore) Stats(_ context.Context, player string) (model.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats[player], nil
}

func (m *MemoryStore) Players(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return util.GetKeysSorted(m.stats), nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func applyAnswer(s model.Stats, correct bool) model.Stats {
	s.Total++
	if correct {
		s.Correct++
		s.Streak++
		s.BestStreak = util.Max(s.BestStreak, s.Streak)
	} else {
		s.Streak = 0
	}
	return s
}
