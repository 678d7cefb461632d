package postgres

import (
	"context"
	"fmt"

	"github.com/aevon-lab/adperf/internal/core/adperf"
)

// JoinedRows returns every ad group / search item pair matched on
// (campaign_id, ad_group_id). The whole result is materialized in memory.
func (a *Adapter) JoinedRows(ctx context.Context) ([]adperf.JoinedRow, error) {
	rows, err := a.db.QueryContext(ctx, queryJoinedRows)
	if err != nil {
		return nil, fmt.Errorf("failed to query joined rows: %w", classify(err))
	}
	defer rows.Close()

	var out []adperf.JoinedRow
	for rows.Next() {
		var r adperf.JoinedRow
		if err := rows.Scan(
			&r.CampaignID,
			&r.AdGroupID,
			&r.Alias,
			&r.ConversionValue,
			&r.Cost,
		); err != nil {
			return nil, fmt.Errorf("failed to scan joined row: %w", err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating joined rows: %w", err)
	}

	return out, nil
}
