package projection

import (
	"time"

	"github.com/aevon-lab/adperf/internal/core/adperf"
)

// Filter narrows a report to matching groups. Empty fields match everything.
type Filter struct {
	Country  string `form:"country"`
	Priority string `form:"priority"`
}

func (f Filter) match(g adperf.GroupTotal) bool {
	if f.Country != "" && f.Country != g.Country {
		return false
	}
	if f.Priority != "" && f.Priority != g.Priority {
		return false
	}
	return true
}

// Report is the grouped ROAS result.
type Report struct {
	GeneratedAt time.Time           `json:"generated_at" yaml:"generated_at"`
	JoinedRows  int                 `json:"joined_rows" yaml:"joined_rows"`
	NonFinite   int                 `json:"non_finite_rows" yaml:"non_finite_rows"`
	Groups      []adperf.GroupTotal `json:"groups" yaml:"groups"`
}
