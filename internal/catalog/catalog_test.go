package catalog_test

import (
	"context"
	"errors"
	"testing"

	"directorybolt/internal/catalog"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"
	mockstorage "directorybolt/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func testDirectories() []domain.Directory {
	dirs := []domain.Directory{
		{ID: "yelp-com", Name: "Yelp", Category: "review-platform", DomainAuthority: 93, Accessible: ptr(true)},
		{ID: "manta-com", Name: "Manta", Category: "general-directory", DomainAuthority: 79, Accessible: ptr(false)},
		{ID: "hotfrog-com", Name: "Hotfrog", Category: "general-directory", DomainAuthority: 61},
		{ID: "cylex-us-com", Name: "Cylex", Category: "local-directory", DomainAuthority: 45, Accessible: ptr(true)},
		{ID: "n49-com", Name: "n49", Category: "general-directory", DomainAuthority: 29},
	}
	for i := range dirs {
		catalog.Derive(&dirs[i])
	}

	return dirs
}

func ids(dirs []domain.Directory) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, d.ID)
	}

	return out
}

func TestApply(t *testing.T) {
	dirs := testDirectories()

	tests := []struct {
		name   string
		filter catalog.Filter
		want   []string
		total  int
	}{
		{"default sort", catalog.Filter{}, []string{"yelp-com", "manta-com", "hotfrog-com", "cylex-us-com", "n49-com"}, 5},
		{"da asc", catalog.Filter{Sort: catalog.SortDAAsc, Limit: 2}, []string{"n49-com", "cylex-us-com"}, 5},
		{"name", catalog.Filter{Sort: catalog.SortName}, []string{"cylex-us-com", "hotfrog-com", "manta-com", "n49-com", "yelp-com"}, 5},
		{"difficulty", catalog.Filter{Sort: catalog.SortDifficulty}, []string{"n49-com", "hotfrog-com", "cylex-us-com", "yelp-com", "manta-com"}, 5},
		{"priority", catalog.Filter{Sort: catalog.SortPriority}, []string{"yelp-com", "manta-com", "hotfrog-com", "cylex-us-com", "n49-com"}, 5},
		{"category", catalog.Filter{Category: "General-Directory"}, []string{"manta-com", "hotfrog-com", "n49-com"}, 3},
		{"da range", catalog.Filter{MinDA: ptr(40), MaxDA: ptr(80)}, []string{"manta-com", "hotfrog-com", "cylex-us-com"}, 3},
		{"tier", catalog.Filter{Tier: domain.DirectoryTier2}, []string{"cylex-us-com"}, 1},
		{"search", catalog.Filter{Search: " MAN "}, []string{"manta-com"}, 1},
		{"accessible", catalog.Filter{AccessibleOnly: true}, []string{"yelp-com", "cylex-us-com"}, 2},
		{"offset", catalog.Filter{Offset: 3, Limit: 10}, []string{"cylex-us-com", "n49-com"}, 5},
		{"offset past end", catalog.Filter{Offset: 10}, []string{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := catalog.Apply(dirs, tt.filter)
			require.Equal(t, tt.want, ids(page.Directories))
			require.Equal(t, tt.total, page.Total)
		})
	}

	require.Equal(t, 500, catalog.Apply(dirs, catalog.Filter{Limit: 10_000}).Limit)
}

func TestSummarize(t *testing.T) {
	s := catalog.Summarize(testDirectories())

	require.Equal(t, 5, s.Total)
	require.Equal(t, 2, s.Accessible)
	require.InDelta(t, 61.4, s.AverageDomainAuthority, 0.001)
	require.Equal(t, 3, s.ByCategory["general-directory"])
	require.Equal(t, map[string]int{"tier1": 3, "tier2": 1, "tier3": 1}, s.ByTier)
	require.Equal(t, map[string]int{"easy": 1, "medium": 2, "hard": 2}, s.ByDifficulty)

	require.Zero(t, catalog.Summarize(nil).AverageDomainAuthority)
}

func TestService_ListFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := catalog.New(st)
	ctx := context.Background()

	st.EXPECT().ListDirectories(gomock.Any(), true).Return(testDirectories(), nil)
	page, err := s.List(ctx, catalog.Filter{Limit: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"yelp-com"}, ids(page.Directories))

	defaults, err := catalog.Defaults()
	require.NoError(t, err)

	st.EXPECT().ListDirectories(gomock.Any(), true).Return(nil, errors.New("connection refused"))
	page, err = s.List(ctx, catalog.Filter{})
	require.NoError(t, err)
	require.Equal(t, len(defaults), page.Total)

	_, err = s.List(ctx, catalog.Filter{Sort: "random"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = s.List(ctx, catalog.Filter{MinDA: ptr(50), MaxDA: ptr(10)})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := catalog.New(st)
	ctx := context.Background()

	st.EXPECT().DirectoryByID(gomock.Any(), "yelp-com").Return(&domain.Directory{ID: "yelp-com"}, nil)
	d, err := s.Get(ctx, "yelp-com")
	require.NoError(t, err)
	require.Equal(t, "yelp-com", d.ID)

	st.EXPECT().DirectoryByID(gomock.Any(), "missing").Return(nil, nil)
	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().DirectoryByID(gomock.Any(), "manta-com").Return(nil, errors.New("connection refused"))
	d, err = s.Get(ctx, "manta-com")
	require.NoError(t, err)
	require.Equal(t, "Manta", d.Name)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := catalog.New(st)

	st.EXPECT().ListDirectories(gomock.Any(), true).Return(testDirectories(), nil)
	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, stats.Total)
}

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := catalog.New(st)

	jsonSrc := catalog.Source{
		Name:   "catalog.json",
		Format: catalog.FormatJSON,
		Data:   []byte(`{"directories":[{"id":"yelp-com","name":"Yelp","url":"https://www.yelp.com","domainAuthority":93}]}`),
	}
	mdSrc := catalog.Source{
		Name:   "extra.md",
		Format: catalog.FormatMarkdown,
		Data:   []byte("**Yelp** - http://yelp.com/\n**Hotfrog** - https://www.hotfrog.com (DA: 61)\n"),
	}

	st.EXPECT().UpsertDirectories(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dirs ...domain.Directory) (int64, error) {
			require.Equal(t, []string{"yelp-com", "hotfrog-com"}, ids(dirs))
			require.Equal(t, domain.DirectoryTier1, dirs[1].Tier)

			return int64(len(dirs)), nil
		})

	res, err := s.Import(context.Background(), jsonSrc, mdSrc)
	require.NoError(t, err)
	require.Equal(t, catalog.ImportResult{Parsed: 3, Duplicates: 1, Upserted: 2}, res)

	_, err = s.Import(context.Background(), catalog.Source{Name: "bad.json", Format: catalog.FormatJSON, Data: []byte("{")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
