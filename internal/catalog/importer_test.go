package catalog_test

import (
	"testing"

	"directorybolt/internal/catalog"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_Markdown(t *testing.T) {
	md := `# Free directories

1. **Yelp** - https://www.yelp.com (DA: 93)
2. **Hotfrog** - https://www.hotfrog.com/
**Manta** - https://www.manta.com (DA: 79)
Local Dental Finder - https://dentalfinder.example
- not a directory
`

	dirs, err := catalog.Parse(catalog.Source{Name: "list.md", Format: catalog.FormatMarkdown, Data: []byte(md)})
	require.NoError(t, err)
	require.Len(t, dirs, 4)

	byID := make(map[string]domain.Directory)
	for _, d := range dirs {
		byID[d.ID] = d
	}

	yelp := byID["yelp-com"]
	require.Equal(t, "Yelp", yelp.Name)
	require.Equal(t, 93, yelp.DomainAuthority)
	require.Equal(t, domain.DirectoryTier1, yelp.Tier)
	require.Equal(t, "review-platform", yelp.Category)
	require.True(t, yelp.IsActive)

	hotfrog := byID["hotfrog-com"]
	require.Equal(t, "https://www.hotfrog.com", hotfrog.URL)
	require.Equal(t, catalog.DefaultDomainAuthority, hotfrog.DomainAuthority)

	require.Equal(t, 79, byID["manta-com"].DomainAuthority)
	require.Equal(t, "healthcare", byID["dentalfinder-example"].Category)
}

func TestParse_JSON(t *testing.T) {
	data := `{"directories": [
		{"id": "yelp-com", "name": "Yelp", "url": "https://www.yelp.com/", "category": "review-platform", "domainAuthority": 93, "priority": "medium"},
		{"name": "No Id", "url": "https://noid.example", "isActive": false},
		{"name": "", "url": "https://skipped.example"}
	]}`

	dirs, err := catalog.Parse(catalog.Source{Name: "catalog.json", Format: catalog.FormatJSON, Data: []byte(data)})
	require.NoError(t, err)
	require.Len(t, dirs, 2)

	// explicit values win over derived ones
	require.Equal(t, domain.PriorityMedium, dirs[0].Priority)
	require.Equal(t, domain.DifficultyHard, dirs[0].Difficulty)
	require.Equal(t, "https://www.yelp.com", dirs[0].URL)
	require.True(t, dirs[0].IsActive)

	require.Equal(t, "noid-example", dirs[1].ID)
	require.False(t, dirs[1].IsActive)
	require.Equal(t, catalog.DefaultDomainAuthority, dirs[1].DomainAuthority)

	arr, err := catalog.Parse(catalog.Source{Format: catalog.FormatJSON, Data: []byte(`[{"name":"Yelp","url":"yelp.com"}]`)})
	require.NoError(t, err)
	require.Equal(t, "yelp-com", arr[0].ID)

	_, err = catalog.Parse(catalog.Source{Format: catalog.FormatJSON, Data: []byte(`{`)})
	require.Error(t, err)
}

func TestParse_CSV(t *testing.T) {
	data := "Name,Website,Category,DA\n" +
		"Yelp,yelp.com,review-platform,93\n" +
		"Brownbook,https://www.brownbook.net/,,51.6\n" +
		",https://missing-name.example,,\n"

	dirs, err := catalog.Parse(catalog.Source{Name: "dirs.csv", Format: catalog.FormatCSV, Data: []byte(data)})
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	require.Equal(t, "https://yelp.com", dirs[0].URL)
	require.Equal(t, 93, dirs[0].DomainAuthority)
	require.Equal(t, "brownbook-net", dirs[1].ID)
	require.Equal(t, 52, dirs[1].DomainAuthority)
	require.Equal(t, "general-directory", dirs[1].Category)

	_, err = catalog.Parse(catalog.Source{Format: catalog.FormatCSV, Data: []byte("title,link\nx,y\n")})
	require.ErrorContains(t, err, "missing name column")
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Directory Name", "URL", "Category", "Domain Authority"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Avvo", "https://www.avvo.com", "legal", 81}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"EZlocal", "ezlocal.com", "", 38}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	dirs, err := catalog.Parse(catalog.Source{Name: "dirs.xlsx", Format: catalog.FormatXLSX, Data: buf.Bytes()})
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	require.Equal(t, "avvo-com", dirs[0].ID)
	require.Equal(t, 81, dirs[0].DomainAuthority)
	require.Equal(t, "local-directory", dirs[1].Category)
	require.Equal(t, domain.DifficultyEasy, dirs[1].Difficulty)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]catalog.Format{
		"a/catalog.JSON": catalog.FormatJSON,
		"list.md":        catalog.FormatMarkdown,
		"dirs.csv":       catalog.FormatCSV,
		"dirs.xlsx":      catalog.FormatXLSX,
	} {
		got, err := catalog.FormatFromPath(path)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := catalog.FormatFromPath("dirs.xls")
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	dirs, err := catalog.Defaults()
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	merged, duplicates := catalog.Merge(dirs)
	require.Zero(t, duplicates)
	require.Len(t, merged, len(dirs))

	for _, d := range dirs {
		require.NotEmpty(t, d.Tier, d.ID)
		require.True(t, d.IsActive, d.ID)
	}
}
