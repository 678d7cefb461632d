package aggregation

import (
	"fmt"
	"sort"

	"github.com/aevon-lab/adperf/internal/core/adperf"
	"github.com/shopspring/decimal"
)

// Enrich derives ROAS, country and priority for every joined row.
// The first malformed alias aborts the whole batch; the returned error names
// the row index and unwraps to adperf.ErrMalformedAlias.
// A zero cost is not an error: ROAS becomes +Inf or NaN and flows into the sums.
func Enrich(rows []adperf.JoinedRow) ([]adperf.EnrichedRow, error) {
	out := make([]adperf.EnrichedRow, 0, len(rows))
	for i, row := range rows {
		alias, err := adperf.ParseAlias(row.Alias)
		if err != nil {
			return nil, fmt.Errorf("row %d (campaign_id=%d, ad_group_id=%d): %w",
				i, row.CampaignID, row.AdGroupID, err)
		}
		out = append(out, adperf.EnrichedRow{
			JoinedRow: row,
			ROAS:      row.ROAS(),
			Country:   alias.Country,
			Priority:  alias.Priority,
		})
	}
	return out, nil
}

type groupState struct {
	roasSum         float64
	rows            int64
	cost            decimal.Decimal
	conversionValue decimal.Decimal
}

// GroupByCountryPriority sums ROAS per (country, priority).
// Groups come back sorted by country, then priority.
func GroupByCountryPriority(rows []adperf.EnrichedRow) []adperf.GroupTotal {
	groups := make(map[adperf.GroupKey]*groupState)
	for _, row := range rows {
		key := adperf.GroupKey{Country: row.Country, Priority: row.Priority}
		st, ok := groups[key]
		if !ok {
			st = &groupState{cost: decimal.Zero, conversionValue: decimal.Zero}
			groups[key] = st
		}
		st.roasSum += row.ROAS
		st.rows++
		st.cost = st.cost.Add(row.Cost)
		st.conversionValue = st.conversionValue.Add(row.ConversionValue)
	}

	totals := make([]adperf.GroupTotal, 0, len(groups))
	for key, st := range groups {
		totals = append(totals, adperf.GroupTotal{
			Country:              key.Country,
			Priority:             key.Priority,
			ROAS:                 adperf.Float(st.roasSum),
			Rows:                 st.rows,
			TotalCost:            st.cost,
			TotalConversionValue: st.conversionValue,
			PooledROAS:           adperf.Float(st.conversionValue.InexactFloat64() / st.cost.InexactFloat64()),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Country != totals[j].Country {
			return totals[i].Country < totals[j].Country
		}
		return totals[i].Priority < totals[j].Priority
	})
	return totals
}
