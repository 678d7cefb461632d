package projection

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/aevon-lab/adperf/internal/core/aggregation"
	"github.com/aevon-lab/adperf/internal/core/storage"
)

// Service builds the ROAS report from the joined ad group / search item rows.
type Service struct {
	store storage.ReportStore
	nowFn func() time.Time
}

func NewService(store storage.ReportStore) *Service {
	if store == nil {
		panic("projection: report store must not be nil")
	}
	return &Service{
		store: store,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Build materializes the join, derives ROAS, country and priority per row and
// sums ROAS per (country, priority). A malformed alias anywhere fails the build.
func (s *Service) Build(ctx context.Context, filter Filter) (*Report, error) {
	rows, err := s.store.JoinedRows(ctx)
	if err != nil {
		return nil, err
	}

	enriched, err := aggregation.Enrich(rows)
	if err != nil {
		return nil, err
	}

	nonFinite := 0
	for _, r := range enriched {
		if math.IsInf(r.ROAS, 0) || math.IsNaN(r.ROAS) {
			nonFinite++
		}
	}
	if nonFinite > 0 {
		slog.Warn("Rows with zero cost produce non-finite ROAS", "rows", nonFinite)
	}

	groups := aggregation.GroupByCountryPriority(enriched)
	filtered := groups[:0]
	for _, g := range groups {
		if filter.match(g) {
			filtered = append(filtered, g)
		}
	}

	slog.Debug("Report built", "joined_rows", len(rows), "groups", len(filtered))

	return &Report{
		GeneratedAt: s.nowFn(),
		JoinedRows:  len(rows),
		NonFinite:   nonFinite,
		Groups:      filtered,
	}, nil
}
