package catalog

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"directorybolt/pkg/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Sort orders a directory listing.
type Sort string

const (
	SortDADesc     Sort = "da_desc"
	SortDAAsc      Sort = "da_asc"
	SortName       Sort = "name"
	SortPriority   Sort = "priority"
	SortDifficulty Sort = "difficulty"
)

// Valid reports whether s is a known sort; the empty sort is valid.
func (s Sort) Valid() bool {
	switch s {
	case "", SortDADesc, SortDAAsc, SortName, SortPriority, SortDifficulty:
		return true
	}

	return false
}

// Filter narrows a directory listing. Zero values do not filter.
type Filter struct {
	Category       string
	Tier           domain.DirectoryTier
	Difficulty     domain.Difficulty
	Priority       domain.Priority
	MinDA          *int
	MaxDA          *int
	Search         string
	AccessibleOnly bool
	Sort           Sort
	Limit          int
	Offset         int
}

// Page is a filtered slice of the catalog; Total counts all matches.
type Page struct {
	Directories []domain.Directory `json:"directories"`
	Total       int                `json:"total"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
}

func (f Filter) matches(d domain.Directory) bool {
	switch {
	case f.Category != "" && !strings.EqualFold(d.Category, f.Category):
		return false
	case f.Tier != "" && d.Tier != f.Tier:
		return false
	case f.Difficulty != "" && d.Difficulty != f.Difficulty:
		return false
	case f.Priority != "" && d.Priority != f.Priority:
		return false
	case f.MinDA != nil && d.DomainAuthority < *f.MinDA:
		return false
	case f.MaxDA != nil && d.DomainAuthority > *f.MaxDA:
		return false
	case f.AccessibleOnly && (d.Accessible == nil || !*d.Accessible):
		return false
	case f.Search != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(strings.TrimSpace(f.Search))):
		return false
	}

	return true
}

var priorityRank = map[domain.Priority]int{ //nolint: gochecknoglobals
	domain.PriorityHigh:   0,
	domain.PriorityMedium: 1,
	domain.PriorityLow:    2,
}

var difficultyRank = map[domain.Difficulty]int{ //nolint: gochecknoglobals
	domain.DifficultyEasy:   0,
	domain.DifficultyMedium: 1,
	domain.DifficultyHard:   2,
}

func compareFor(s Sort) func(a, b domain.Directory) int {
	byDADesc := func(a, b domain.Directory) int { return cmp.Compare(b.DomainAuthority, a.DomainAuthority) }

	switch s {
	case SortDAAsc:
		return func(a, b domain.Directory) int {
			return cmp.Or(cmp.Compare(a.DomainAuthority, b.DomainAuthority), strings.Compare(a.ID, b.ID))
		}
	case SortName:
		return func(a, b domain.Directory) int {
			return cmp.Or(strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)), strings.Compare(a.ID, b.ID))
		}
	case SortPriority:
		return func(a, b domain.Directory) int {
			return cmp.Or(cmp.Compare(priorityRank[a.Priority], priorityRank[b.Priority]), byDADesc(a, b), strings.Compare(a.ID, b.ID))
		}
	case SortDifficulty:
		return func(a, b domain.Directory) int {
			return cmp.Or(cmp.Compare(difficultyRank[a.Difficulty], difficultyRank[b.Difficulty]), byDADesc(a, b), strings.Compare(a.ID, b.ID))
		}
	default:
		return func(a, b domain.Directory) int {
			return cmp.Or(byDADesc(a, b), strings.Compare(a.ID, b.ID))
		}
	}
}

// Apply filters, sorts and pages dirs. dirs is not modified.
func Apply(dirs []domain.Directory, f Filter) Page {
	matched := make([]domain.Directory, 0, len(dirs))
	for _, d := range dirs {
		if f.matches(d) {
			matched = append(matched, d)
		}
	}
	slices.SortStableFunc(matched, compareFor(f.Sort))

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset := max(f.Offset, 0)

	page := Page{Total: len(matched), Limit: limit, Offset: offset, Directories: []domain.Directory{}}
	if offset < len(matched) {
		page.Directories = matched[offset:min(offset+limit, len(matched))]
	}

	return page
}

// Stats summarizes a catalog.
type Stats struct {
	Total                  int            `json:"total"`
	Accessible             int            `json:"accessible"`
	AverageDomainAuthority float64        `json:"averageDomainAuthority"`
	ByCategory             map[string]int `json:"byCategory"`
	ByTier                 map[string]int `json:"byTier"`
	ByDifficulty           map[string]int `json:"byDifficulty"`
}

// Summarize computes Stats over dirs.
func Summarize(dirs []domain.Directory) Stats {
	s := Stats{
		Total:        len(dirs),
		ByCategory:   make(map[string]int),
		ByTier:       make(map[string]int),
		ByDifficulty: make(map[string]int),
	}

	var totalDA int
	for _, d := range dirs {
		s.ByCategory[d.Category]++
		s.ByTier[string(d.Tier)]++
		s.ByDifficulty[string(d.Difficulty)]++
		totalDA += d.DomainAuthority
		if d.Accessible != nil && *d.Accessible {
			s.Accessible++
		}
	}
	if len(dirs) > 0 {
		s.AverageDomainAuthority = math.Round(float64(totalDA)/float64(len(dirs))*10) / 10
	}

	return s
}
