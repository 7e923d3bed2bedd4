package catalog

import (
	"net/url"
	"strings"

	"directorybolt/pkg/domain"
)

// DefaultDomainAuthority is assumed for imported entries without a score.
const DefaultDomainAuthority = 30

const generalCategory = "general-directory"

// categoryKeywords is matched against lower-cased names; the first match wins.
var categoryKeywords = []struct { //nolint: gochecknoglobals
	category string
	keywords []string
}{
	{"healthcare", []string{"health", "medical", "doctor", "dental", "clinic", "vitals"}},
	{"legal", []string{"law", "legal", "attorney", "lawyer"}},
	{"food-beverage", []string{"restaurant", "food", "dining"}},
	{"travel-hospitality", []string{"hotel", "travel", "tourism", "trip"}},
	{"real-estate", []string{"real estate", "property", "realty", "zillow", "trulia"}},
	{"automotive", []string{"auto", "car", "vehicle"}},
	{"technology", []string{"tech", "startup", "github", "product hunt"}},
	{"events", []string{"wedding", "event", "knot"}},
	{"review-platform", []string{"review", "rating", "yelp"}},
	{"social-platform", []string{"social", "community", "facebook"}},
	{"marketplace", []string{"marketplace", "market"}},
	{"local-directory", []string{"local", "city", "regional"}},
}

// Categorize guesses the category of a directory from its name.
func Categorize(name string) string {
	name = strings.ToLower(name)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(name, kw) {
				return c.category
			}
		}
	}

	return generalCategory
}

// Derive recomputes every authority based attribute of d from its domain
// authority.
func Derive(d *domain.Directory) {
	da := d.DomainAuthority

	switch {
	case da >= 60:
		d.Priority = domain.PriorityHigh
		d.Tier = domain.DirectoryTier1
	case da >= 30:
		d.Priority = domain.PriorityMedium
		d.Tier = domain.DirectoryTier2
	default:
		d.Priority = domain.PriorityLow
		d.Tier = domain.DirectoryTier3
	}

	switch {
	case da >= 70:
		d.Difficulty = domain.DifficultyHard
	case da >= 40:
		d.Difficulty = domain.DifficultyMedium
	default:
		d.Difficulty = domain.DifficultyEasy
	}

	d.TrafficPotential = da * 500
	d.RequiresRegistration = da >= 50
	if d.RequiresRegistration {
		d.ApprovalTime = "24-48 hours"
	} else {
		d.ApprovalTime = "instant"
	}
}

// fillDerived derives only the attributes the source left empty.
func fillDerived(d *domain.Directory) {
	derived := *d
	Derive(&derived)

	if d.Priority == "" {
		d.Priority = derived.Priority
	}
	if d.Tier == "" {
		d.Tier = derived.Tier
	}
	if d.Difficulty == "" {
		d.Difficulty = derived.Difficulty
	}
	if d.TrafficPotential == 0 {
		d.TrafficPotential = derived.TrafficPotential
	}
	if d.ApprovalTime == "" {
		d.ApprovalTime = derived.ApprovalTime
		d.RequiresRegistration = derived.RequiresRegistration
	}
	if d.Category == "" {
		d.Category = Categorize(d.Name)
	}
}

// NormalizeURL trims a URL, adds https:// when no scheme is given and drops
// trailing slashes.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	return strings.TrimRight(raw, "/")
}

// IDFromURL returns the directory id of a URL: its host without "www." with
// dots replaced by dashes.
func IDFromURL(raw string) string {
	u, err := url.Parse(NormalizeURL(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	return strings.ReplaceAll(host, ".", "-")
}

// urlKey reduces a URL to the form shared by its http/https, www and
// trailing slash variants.
func urlKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.TrimPrefix(key, "https://")
	key = strings.TrimPrefix(key, "http://")
	key = strings.TrimPrefix(key, "www.")

	return strings.TrimRight(key, "/")
}

// Merge concatenates sources in order, keeping the first directory seen for
// each id or URL. It returns the merged catalog and the number of dropped
// duplicates.
func Merge(sources ...[]domain.Directory) ([]domain.Directory, int) {
	var (
		out        []domain.Directory
		duplicates int
		seenIDs    = make(map[string]struct{})
		seenURLs   = make(map[string]struct{})
	)

	for _, src := range sources {
		for _, d := range src {
			key := urlKey(d.URL)
			_, dupID := seenIDs[d.ID]
			_, dupURL := seenURLs[key]
			if dupID || dupURL {
				duplicates++

				continue
			}
			seenIDs[d.ID] = struct{}{}
			seenURLs[key] = struct{}{}
			out = append(out, d)
		}
	}

	return out, duplicates
}
