package console

import (
	"context"
	"fmt"

	"github.com/robalobadob/mastermind/internal/store"
)

// Session plays several games in a row on one Console and keeps a tally.
type Session struct {
	c  *Console
	st store.Store
}

// NewSession records every finished game in st.
func NewSession(c *Console, st store.Store) *Session {
	return &Session{c: c, st: st}
}

// Run plays rounds games (at least one). With more than one round a summary
// line is printed at the end.
func (s *Session) Run(ctx context.Context, rounds int) (store.Stats, error) {
	rounds = max(rounds, 1)
	for i := 1; i <= rounds; i++ {
		if err := ctx.Err(); err != nil {
			return s.stats(ctx), err
		}
		if i > 1 {
			s.c.printf("\n")
		}
		g, err := s.c.Play()
		if g != nil && g.Finished {
			if serr := s.st.Save(ctx, g); serr != nil {
				return s.stats(ctx), fmt.Errorf("save game %s: %w", g.ID, serr)
			}
		}
		if err != nil {
			return s.stats(ctx), err
		}
	}

	stats := s.stats(ctx)
	s.c.log.Info().Int("played", stats.GamesPlayed).Int("won", stats.Wins).Msg("session finished")
	if rounds > 1 {
		s.c.printf("Games played: %d, won: %d, best streak: %d\n", stats.GamesPlayed, stats.Wins, stats.BestStreak)
	}
	return stats, nil
}

func (s *Session) stats(ctx context.Context) store.Stats {
	games, err := s.st.List(ctx)
	if err != nil {
		s.c.log.Error().Err(err).Msg("list games")
		return store.Stats{}
	}
	return store.Summarize(games)
}
