// internal/store/memory.go
//
// In-memory record of the games played during one run of the command.
// Nothing is written to disk; state is lost when the process exits.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID, remembering insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/mastermind/internal/game"
)

// Store defines the interface for recording games.
type Store interface {
	// Save records or updates a game.
	Save(ctx context.Context, g *game.Game) error

	// List returns all games in the order they were first saved.
	List(ctx context.Context) ([]*game.Game, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and order
	games map[string]*game.Game // keyed by Game.ID
	order []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; !ok {
		m.order = append(m.order, g.ID)
	}
	m.games[g.ID] = g
	return nil
}

func (m *memory) List(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Game, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.games[id])
	}
	return out, nil
}

// Stats tallies finished games.
type Stats struct {
	GamesPlayed int
	Wins        int
	Streak      int // current run of wins, counting back from the last game
	BestStreak  int
}

// Summarize computes Stats over games in play order. Unfinished games are skipped.
func Summarize(games []*game.Game) Stats {
	var s Stats
	for _, g := range games {
		if !g.Finished {
			continue
		}
		s.GamesPlayed++
		if g.Won {
			s.Wins++
			s.Streak++
			s.BestStreak = max(s.BestStreak, s.Streak)
		} else {
			s.Streak = 0
		}
	}
	return s
}
