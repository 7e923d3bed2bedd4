package audit_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"directorybolt/internal/audit"

	"github.com/stretchr/testify/require"
)

func result(name, category string, da int, check audit.Check) audit.Result {
	return audit.Result{
		DirectoryID:     strings.ToLower(name),
		Name:            name,
		URL:             "https://" + strings.ToLower(name) + ".com",
		Category:        category,
		DomainAuthority: da,
		Check:           check,
	}
}

func TestBuildReport(t *testing.T) {
	ok := audit.Check{StatusCode: 200, Accessible: true, ResponseTimeMs: 100}
	sub := audit.Check{StatusCode: 200, Accessible: true}

	yelp := result("Yelp", "review-platform", 93, ok)
	yelp.Submission = &sub

	results := []audit.Result{
		yelp,
		result("Manta", "general-directory", 79, audit.Check{Error: audit.ErrorTimeout, ResponseTimeMs: 300}),
		result("Hotfrog", "general-directory", 61, ok),
		result("Cylex", "local-directory", 45, audit.Check{StatusCode: 404}),
		result("n49", "general-directory", 29, audit.Check{Error: "Get \"x\": unsupported protocol scheme"}),
	}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	r := audit.BuildReport(results, 20, now)

	require.Equal(t, 20, r.TotalDirectories)
	require.Equal(t, 5, r.Tested)
	require.Equal(t, 2, r.Accessible)
	require.Equal(t, 3, r.Inaccessible)
	require.InDelta(t, 40.0, r.AccessibilityRate, 0.001)
	require.Equal(t, 1, r.SubmissionFormsAccessible)
	require.EqualValues(t, 166, r.AverageResponseMs)
	require.Equal(t, map[string]int{"Timeout": 1, "Get \"x\"": 1}, r.Errors)
	require.Equal(t, audit.Ratio{Accessible: 1, Total: 3, Rate: 33.3}, r.Categories["general-directory"])
	require.Equal(t, audit.Ratio{Accessible: 2, Total: 3, Rate: 66.7}, r.HighAuthority)

	require.Equal(t, []string{"yelp", "hotfrog"}, resultIDs(r.TopAccessible))
	require.Equal(t, []string{"manta", "cylex", "n49"}, resultIDs(r.TopInaccessible))

	var b strings.Builder
	require.NoError(t, r.WriteText(&b))
	text := b.String()
	require.Contains(t, text, "Generated: 2026-01-02 03:04:05")
	require.Contains(t, text, "Accessible: 2 (40.0%)")
	require.Contains(t, text, "general-directory      1/  3 ( 33.3%)")
	require.Contains(t, text, "(DA:  45) - HTTP 404")
	require.Contains(t, text, "Timeout: 1")
}

func TestBuildReport_TopTen(t *testing.T) {
	var results []audit.Result
	for i := range 15 {
		results = append(results, result(fmt.Sprintf("Dir%02d", i), "general-directory", i, audit.Check{Accessible: true}))
	}

	r := audit.BuildReport(results, 0, time.Now())
	require.Equal(t, 15, r.TotalDirectories)
	require.Len(t, r.TopAccessible, 10)
	require.Equal(t, 14, r.TopAccessible[0].DomainAuthority)
	require.Empty(t, r.TopInaccessible)
	require.Zero(t, r.AverageResponseMs)

	empty := audit.BuildReport(nil, 0, time.Now())
	require.Zero(t, empty.AccessibilityRate)
}

func resultIDs(results []audit.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.DirectoryID)
	}

	return out
}
