package adperf

import (
	"math"

	"github.com/shopspring/decimal"
)

// JoinedRow is one adgroups x search_items pair returned by the report join.
type JoinedRow struct {
	CampaignID      int64
	AdGroupID       int64
	Alias           string
	ConversionValue decimal.Decimal
	Cost            decimal.Decimal
}

// ROAS divides conversion value by cost in floating point. A zero cost yields
// +Inf (or NaN when conversion value is also zero); callers propagate it as is.
func (r JoinedRow) ROAS() float64 {
	return r.ConversionValue.InexactFloat64() / r.Cost.InexactFloat64()
}

// EnrichedRow is a JoinedRow with its derived columns.
type EnrichedRow struct {
	JoinedRow
	ROAS     float64
	Country  string
	Priority string
}

// GroupKey identifies one report group.
type GroupKey struct {
	Country  string
	Priority string
}

// GroupTotal is the aggregated result for one (country, priority) group.
type GroupTotal struct {
	Country              string          `json:"country" yaml:"country"`
	Priority             string          `json:"priority" yaml:"priority"`
	ROAS                 Float           `json:"roas" yaml:"roas"`
	Rows                 int64           `json:"rows" yaml:"rows"`
	TotalCost            decimal.Decimal `json:"total_cost" yaml:"total_cost"`
	TotalConversionValue decimal.Decimal `json:"total_conversion_value" yaml:"total_conversion_value"`
	PooledROAS           Float           `json:"pooled_roas" yaml:"pooled_roas"`
}

// Float is a float64 that survives encoding when it is not finite.
// encoding/json rejects Inf and NaN, so those encode as strings.
type Float float64

func (f Float) String() string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).String()
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f Float) IsFinite() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.IsFinite() {
		return []byte(`"` + f.String() + `"`), nil
	}
	return []byte(f.String()), nil
}

// MarshalYAML keeps YAML output aligned with the table and JSON renderings.
func (f Float) MarshalYAML() (interface{}, error) {
	if !f.IsFinite() {
		return f.String(), nil
	}
	return float64(f), nil
}
