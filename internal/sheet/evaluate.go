package sheet

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/appengine-ltd/ideawatch/internal/game"
)

// Row pairs a citizen with its computed watch stats.
type Row struct {
	Citizen game.CitizenContext
	Result  game.CitizenResult
}

// Evaluate computes every citizen with at most workers computations in
// flight. Rows keep the order of citizens.
func Evaluate(ctx context.Context, calc game.Calculator, town game.TownContext, citizens []game.CitizenContext, workers int) ([]Row, error) {
	if workers < 1 {
		workers = 1
	}
	rows := make([]Row, len(citizens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range citizens {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = Row{Citizen: c, Result: calc.CitizenStats(town, c)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Debug("sheet evaluated", "citizens", len(rows), "workers", workers)
	return rows, nil
}

// Run resolves the sheet and evaluates it.
func (s *Sheet) Run(ctx context.Context, calc game.Calculator, workers int) ([]Row, error) {
	town, err := s.Town()
	if err != nil {
		return nil, err
	}
	citizens, err := s.Citizens()
	if err != nil {
		return nil, err
	}
	return Evaluate(ctx, calc, town, citizens, workers)
}
