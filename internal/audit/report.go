package audit

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"
)

const (
	highAuthority = 60
	topCount      = 10
)

// Ratio is a count of accessible entries out of a total.
type Ratio struct {
	Accessible int     `json:"accessible"`
	Total      int     `json:"total"`
	Rate       float64 `json:"rate"`
}

func newRatio(accessible, total int) Ratio {
	return Ratio{Accessible: accessible, Total: total, Rate: percent(accessible, total)}
}

// Report summarizes an audit run.
type Report struct {
	GeneratedAt       time.Time `json:"generatedAt"`
	TotalDirectories  int       `json:"totalDirectories"`
	Tested            int       `json:"tested"`
	Accessible        int       `json:"accessible"`
	Inaccessible      int       `json:"inaccessible"`
	AccessibilityRate float64   `json:"accessibilityRate"`
	// SubmissionFormsAccessible counts accessible submission pages.
	SubmissionFormsAccessible int   `json:"submissionFormsAccessible"`
	AverageResponseMs         int64 `json:"averageResponseMs"`

	// Errors counts failures by error class.
	Errors        map[string]int   `json:"errors"`
	Categories    map[string]Ratio `json:"categories"`
	HighAuthority Ratio            `json:"highAuthority"`

	TopAccessible   []Result `json:"topAccessible"`
	TopInaccessible []Result `json:"topInaccessible"`
	Results         []Result `json:"results"`
}

// BuildReport aggregates results. totalDirectories is the catalog size, which
// may exceed the number of audited directories.
func BuildReport(results []Result, totalDirectories int, now time.Time) Report {
	r := Report{
		GeneratedAt:      now,
		TotalDirectories: max(totalDirectories, len(results)),
		Tested:           len(results),
		Errors:           map[string]int{},
		Categories:       map[string]Ratio{},
		Results:          results,
	}

	var (
		totalMs, timed     int64
		highTotal, highAcc int
		accessible         []Result
		inaccessible       []Result
	)
	for _, res := range results {
		cat := r.Categories[res.Category]
		cat.Total++
		if res.Accessible {
			r.Accessible++
			cat.Accessible++
			accessible = append(accessible, res)
		} else {
			inaccessible = append(inaccessible, res)
		}
		r.Categories[res.Category] = cat

		if res.SubmissionAccessible() {
			r.SubmissionFormsAccessible++
		}
		if res.Error != "" {
			class, _, _ := strings.Cut(res.Error, ":")
			r.Errors[strings.TrimSpace(class)]++
		}
		if res.ResponseTimeMs > 0 {
			totalMs += res.ResponseTimeMs
			timed++
		}
		if res.DomainAuthority >= highAuthority {
			highTotal++
			if res.Accessible {
				highAcc++
			}
		}
	}

	for name, cat := range r.Categories {
		r.Categories[name] = newRatio(cat.Accessible, cat.Total)
	}
	r.Inaccessible = r.Tested - r.Accessible
	r.AccessibilityRate = percent(r.Accessible, r.Tested)
	r.HighAuthority = newRatio(highAcc, highTotal)
	if timed > 0 {
		r.AverageResponseMs = totalMs / timed
	}
	r.TopAccessible = topByAuthority(accessible)
	r.TopInaccessible = topByAuthority(inaccessible)

	return r
}

func topByAuthority(results []Result) []Result {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b Result) int {
		if c := cmp.Compare(b.DomainAuthority, a.DomainAuthority); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})
	if len(out) > topCount {
		out = out[:topCount]
	}

	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(n)/float64(total)*1000) / 10
}

// WriteText renders the report for humans.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\nDIRECTORYBOLT URL ACCESSIBILITY AUDIT REPORT\nGenerated: %s\n%s\n\n",
		rule, r.GeneratedAt.Format(time.DateTime), rule)

	section(&b, "SUMMARY")
	fmt.Fprintf(&b, "Total directories: %d\n", r.TotalDirectories)
	fmt.Fprintf(&b, "Directories tested: %d (%.1f%%)\n", r.Tested, percent(r.Tested, r.TotalDirectories))
	fmt.Fprintf(&b, "Accessible: %d (%.1f%%)\n", r.Accessible, r.AccessibilityRate)
	fmt.Fprintf(&b, "Inaccessible: %d (%.1f%%)\n", r.Inaccessible, percent(r.Inaccessible, r.Tested))
	fmt.Fprintf(&b, "Average response time: %dms\n\n", r.AverageResponseMs)

	section(&b, "SUBMISSION FORMS")
	fmt.Fprintf(&b, "Accessible: %d / %d accessible sites (%.1f%%)\n\n",
		r.SubmissionFormsAccessible, r.Accessible, percent(r.SubmissionFormsAccessible, r.Accessible))

	section(&b, fmt.Sprintf("HIGH-VALUE DIRECTORIES (DA >= %d)", highAuthority))
	fmt.Fprintf(&b, "Tested: %d\nAccessible: %d (%.1f%%)\n\n",
		r.HighAuthority.Total, r.HighAuthority.Accessible, r.HighAuthority.Rate)

	section(&b, "ERROR BREAKDOWN")
	errs := make([]string, 0, len(r.Errors))
	for class := range r.Errors {
		errs = append(errs, class)
	}
	slices.SortFunc(errs, func(a, c string) int {
		return cmp.Or(cmp.Compare(r.Errors[c], r.Errors[a]), cmp.Compare(a, c))
	})
	for _, class := range errs {
		fmt.Fprintf(&b, "%s: %d\n", class, r.Errors[class])
	}
	b.WriteString("\n")

	section(&b, "CATEGORY PERFORMANCE")
	cats := make([]string, 0, len(r.Categories))
	for name := range r.Categories {
		cats = append(cats, name)
	}
	slices.SortFunc(cats, func(a, c string) int {
		return cmp.Or(cmp.Compare(r.Categories[c].Total, r.Categories[a].Total), cmp.Compare(a, c))
	})
	for _, name := range cats {
		cat := r.Categories[name]
		fmt.Fprintf(&b, "%-20s %3d/%3d (%5.1f%%)\n", name, cat.Accessible, cat.Total, cat.Rate)
	}
	b.WriteString("\n")

	section(&b, "TOP ACCESSIBLE DIRECTORIES")
	for i, res := range r.TopAccessible {
		fmt.Fprintf(&b, "%2d. %-30s (DA: %3d) - %s\n", i+1, truncate(res.Name, 30), res.DomainAuthority, res.URL)
	}
	b.WriteString("\n")

	section(&b, "TOP INACCESSIBLE DIRECTORIES")
	for i, res := range r.TopInaccessible {
		reason := res.Error
		if reason == "" {
			reason = fmt.Sprintf("HTTP %d", res.StatusCode)
		}
		fmt.Fprintf(&b, "%2d. %-30s (DA: %3d) - %s\n", i+1, truncate(res.Name, 30), res.DomainAuthority, reason)
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}

	return s
}
