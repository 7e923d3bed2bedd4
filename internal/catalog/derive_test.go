package catalog_test

import (
	"testing"

	"directorybolt/internal/catalog"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := map[string]string{
		"Healthgrades":          "healthcare",
		"Dental Directory":      "healthcare",
		"Avvo Lawyer Directory": "legal",
		"Restaurant Guide":      "food-beverage",
		"Hotel Finder":          "travel-hospitality",
		"Zillow":                "real-estate",
		"Cars.com":              "automotive",
		"Product Hunt":          "technology",
		"The Knot":              "events",
		"Yelp":                  "review-platform",
		"Facebook":              "social-platform",
		"Local Marketplace":     "marketplace",
		"Regional Listings":     "local-directory",
		"Manta":                 "general-directory",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, want, catalog.Categorize(name))
		})
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		da           int
		priority     domain.Priority
		difficulty   domain.Difficulty
		tier         domain.DirectoryTier
		registration bool
		approval     string
	}{
		{da: 93, priority: domain.PriorityHigh, difficulty: domain.DifficultyHard, tier: domain.DirectoryTier1, registration: true, approval: "24-48 hours"},
		{da: 70, priority: domain.PriorityHigh, difficulty: domain.DifficultyHard, tier: domain.DirectoryTier1, registration: true, approval: "24-48 hours"},
		{da: 60, priority: domain.PriorityHigh, difficulty: domain.DifficultyMedium, tier: domain.DirectoryTier1, registration: true, approval: "24-48 hours"},
		{da: 50, priority: domain.PriorityMedium, difficulty: domain.DifficultyMedium, tier: domain.DirectoryTier2, registration: true, approval: "24-48 hours"},
		{da: 40, priority: domain.PriorityMedium, difficulty: domain.DifficultyMedium, tier: domain.DirectoryTier2, approval: "instant"},
		{da: 30, priority: domain.PriorityMedium, difficulty: domain.DifficultyEasy, tier: domain.DirectoryTier2, approval: "instant"},
		{da: 29, priority: domain.PriorityLow, difficulty: domain.DifficultyEasy, tier: domain.DirectoryTier3, approval: "instant"},
	}

	for _, tt := range tests {
		d := domain.Directory{DomainAuthority: tt.da}
		catalog.Derive(&d)

		require.Equal(t, tt.priority, d.Priority, "da %d", tt.da)
		require.Equal(t, tt.difficulty, d.Difficulty, "da %d", tt.da)
		require.Equal(t, tt.tier, d.Tier, "da %d", tt.da)
		require.Equal(t, tt.da*500, d.TrafficPotential, "da %d", tt.da)
		require.Equal(t, tt.registration, d.RequiresRegistration, "da %d", tt.da)
		require.Equal(t, tt.approval, d.ApprovalTime, "da %d", tt.da)
	}
}

func TestIDFromURL(t *testing.T) {
	require.Equal(t, "yelp-com", catalog.IDFromURL("https://www.yelp.com/biz"))
	require.Equal(t, "business-google-com", catalog.IDFromURL("business.google.com"))
	require.Equal(t, "cylex-us-com", catalog.IDFromURL("http://WWW.Cylex-US.com/"))
	require.Empty(t, catalog.IDFromURL(""))
}

func TestMerge(t *testing.T) {
	first := []domain.Directory{
		{ID: "yelp-com", Name: "Yelp", URL: "https://www.yelp.com"},
		{ID: "manta-com", Name: "Manta", URL: "https://www.manta.com/"},
	}
	second := []domain.Directory{
		{ID: "yelp", Name: "Yelp duplicate by URL", URL: "http://yelp.com/"},
		{ID: "manta-com", Name: "Manta duplicate by id", URL: "https://manta.example"},
		{ID: "hotfrog-com", Name: "Hotfrog", URL: "https://hotfrog.com"},
	}

	merged, duplicates := catalog.Merge(first, second)
	require.Equal(t, 2, duplicates)
	require.Len(t, merged, 3)
	require.Equal(t, "Yelp", merged[0].Name)
	require.Equal(t, "Manta", merged[1].Name)
	require.Equal(t, "hotfrog-com", merged[2].ID)
}

func TestFillMetrics(t *testing.T) {
	da := func(v float64) *float64 { return &v }
	traffic := func(v int) *int { return &v }
	metrics := func(impact, tier, difficulty, approval string) catalog.Metrics {
		return catalog.Metrics{Impact: impact, TierLevel: tier, Difficulty: difficulty, TimeToApproval: approval}
	}

	tests := []struct {
		name     string
		category string
		da       *float64
		traffic  *int
		want     catalog.Metrics
	}{
		{"high da", "Directory", da(72), nil, metrics("High", "1", "Medium-High", "1-3 days")},
		{"high traffic", "Directory", da(20), traffic(600_000), metrics("High", "1", "Medium-High", "3-7 days")},
		{"medium da", "Directory", da(45), nil, metrics("Medium", "2-3", "Medium", "2-5 days")},
		{"medium traffic", "Directory", nil, traffic(100_000), metrics("Medium", "2-3", "Medium", "TBD")},
		{"low", "Directory", da(10), traffic(50), metrics("Low", "4", "Low-Medium", "3-7 days")},
		{"social", "Social Media", da(95), nil, metrics("High", "1", "Medium-High", "N/A")},
		{"social platform slug", "social-platform", da(95), nil, metrics("High", "1", "Medium-High", "N/A")},
		{"unknown", "", nil, nil, metrics("Low", "4", "Low-Medium", "TBD")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, catalog.FillMetrics(tt.category, tt.da, tt.traffic))
		})
	}
}

func TestMetricsFor(t *testing.T) {
	require.Equal(t, "2-5 days", catalog.MetricsFor(domain.Directory{Category: "legal", DomainAuthority: 55}).TimeToApproval)
	require.Equal(t, "TBD", catalog.MetricsFor(domain.Directory{Category: "legal"}).TimeToApproval)
	require.Equal(t, "Low", catalog.MetricsFor(domain.Directory{Category: "legal"}).Impact)
}
