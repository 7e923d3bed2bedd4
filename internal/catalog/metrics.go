package catalog

import (
	"strings"

	"directorybolt/pkg/domain"
)

// Metrics are the planning attributes filled for a directory spreadsheet row.
type Metrics struct {
	Impact         string `json:"impact"`
	TierLevel      string `json:"tierLevel"`
	Difficulty     string `json:"difficulty"`
	TimeToApproval string `json:"timeToApproval"`
}

// FillMetrics derives planning attributes from the domain authority and the
// monthly traffic estimate; either may be unknown.
func FillMetrics(category string, da *float64, traffic *int) Metrics {
	var m Metrics

	switch {
	case da != nil && *da >= 70, traffic != nil && *traffic >= 500_000:
		m.Impact, m.TierLevel, m.Difficulty = "High", "1", "Medium-High"
	case da != nil && *da >= 40, traffic != nil && *traffic >= 100_000:
		m.Impact, m.TierLevel, m.Difficulty = "Medium", "2-3", "Medium"
	default:
		m.Impact, m.TierLevel, m.Difficulty = "Low", "4", "Low-Medium"
	}

	cat := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(category)))
	switch {
	case cat == "social media" || cat == "content media" || cat == "social platform":
		m.TimeToApproval = "N/A"
	case da == nil:
		m.TimeToApproval = "TBD"
	case *da >= 70:
		m.TimeToApproval = "1-3 days"
	case *da >= 40:
		m.TimeToApproval = "2-5 days"
	default:
		m.TimeToApproval = "3-7 days"
	}

	return m
}

// MetricsFor fills the planning attributes of a catalog entry. A zero domain
// authority counts as unknown, and no traffic measurement is available.
func MetricsFor(d domain.Directory) Metrics {
	var da *float64
	if d.DomainAuthority > 0 {
		v := float64(d.DomainAuthority)
		da = &v
	}

	return FillMetrics(d.Category, da, nil)
}
