package formmap_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"directorybolt/internal/formmap"
	mockformmap "directorybolt/internal/formmap/mock"
	mockblob "directorybolt/pkg/blob/mock"
	"directorybolt/pkg/domain"
	mockevents "directorybolt/pkg/events/mock"
	mockstorage "directorybolt/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type monitorDeps struct {
	renderer  *mockformmap.MockRenderer
	storage   *mockstorage.MockStorage
	blob      *mockblob.MockStore
	publisher *mockevents.MockPublisher
	monitor   *formmap.Monitor

	mu      sync.Mutex
	objects map[string]string
}

func newMonitorDeps(t *testing.T) *monitorDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := &monitorDeps{
		renderer:  mockformmap.NewMockRenderer(ctrl),
		storage:   mockstorage.NewMockStorage(ctrl),
		blob:      mockblob.NewMockStore(ctrl),
		publisher: mockevents.NewMockPublisher(ctrl),
		objects:   map[string]string{},
	}
	d.monitor = formmap.NewMonitor(d.renderer, d.storage, d.blob, d.publisher)

	return d
}

// expectArtifacts records every object written and returns fake URIs.
func (d *monitorDeps) expectArtifacts(n int) {
	d.blob.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path, _ string, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			d.mu.Lock()
			d.objects[path] = string(data)
			d.mu.Unlock()

			return "mem://" + path, nil
		}).Times(n)
}

func (d *monitorDeps) paths() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, 0, len(d.objects))
	for p := range d.objects {
		out = append(out, p)
	}

	return out
}

func storeSnapshot(_ context.Context, s domain.FormSnapshot) (*domain.FormSnapshot, error) {
	s.ID = 7

	return &s, nil
}

var yelpTarget = formmap.TargetFor(domain.Directory{ //nolint: gochecknoglobals
	ID:            "Yelp.com",
	URL:           "https://yelp.com",
	SubmissionURL: "https://biz.yelp.com/signup",
})

func TestTargetFor(t *testing.T) {
	require.Equal(t, formmap.Target{
		SiteID:        "yelp-com",
		DirectoryID:   "Yelp.com",
		Homepage:      "https://yelp.com",
		SubmissionURL: "https://biz.yelp.com/signup",
	}, yelpTarget)
	require.Equal(t, "https://biz.yelp.com/signup", yelpTarget.URL())
	require.Equal(t, "https://x.com", formmap.Target{Homepage: "https://x.com"}.URL())
}

func TestParseMode(t *testing.T) {
	m, err := formmap.ParseMode("MONITOR")
	require.NoError(t, err)
	require.Equal(t, formmap.ModeMonitor, m)

	_, err = formmap.ParseMode("watch")
	require.Error(t, err)
}

func TestMonitor_ProcessMap(t *testing.T) {
	d := newMonitorDeps(t)
	ctx := context.Background()

	d.renderer.EXPECT().Render(gomock.Any(), "https://biz.yelp.com/signup").Return(&formmap.Rendered{
		HTML:        signupPage,
		ResolvedURL: "https://biz.yelp.com/signup/",
		StatusCode:  200,
		Screenshot:  []byte("png"),
	}, nil)
	d.expectArtifacts(3)
	d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

	out, err := d.monitor.Process(ctx, formmap.ModeMap, yelpTarget)
	require.NoError(t, err)
	require.Nil(t, out.Change)

	snap := out.Snapshot
	require.EqualValues(t, 7, snap.ID)
	require.Equal(t, domain.SnapshotStatusOK, snap.Status)
	require.Equal(t, "yelp-com", snap.SiteID)
	require.Equal(t, "https://biz.yelp.com/signup/", snap.ResolvedURL)
	require.Equal(t, 2, snap.FormCount)
	require.Equal(t, 7, snap.FieldCount)
	require.True(t, snap.HasCaptcha)
	require.True(t, snap.LikelyMultiStep)
	require.Equal(t, formmap.DOMChecksum(signupPage), snap.DOMChecksum)
	require.Len(t, snap.Artifacts, 3)

	paths := d.paths()
	require.Len(t, paths, 3)
	for _, p := range paths {
		require.True(t, strings.HasPrefix(p, "yelp-com/"), p)
	}
	require.True(t, strings.HasSuffix(snap.Artifacts[formmap.ArtifactHTML], "/map.html"))
	require.True(t, strings.HasSuffix(snap.Artifacts[formmap.ArtifactScreenshot], "/sshot.png"))

	mapJSON := d.objects[strings.TrimPrefix(snap.Artifacts[formmap.ArtifactMap], "mem://")]
	require.Contains(t, mapJSON, `"formSignature": "`+snap.FormSignature+`"`)
	require.Contains(t, mapJSON, `"loadDurationMs"`)
}

func TestMonitor_ProcessMonitorDetectsChange(t *testing.T) {
	d := newMonitorDeps(t)
	ctx := context.Background()

	prev := &domain.FormSnapshot{
		ID:            3,
		SiteID:        "yelp-com",
		Status:        domain.SnapshotStatusOK,
		DOMChecksum:   "old-dom",
		FormSignature: "old-sig",
		ResolvedURL:   "https://biz.yelp.com/signup/",
		HasCaptcha:    true,
	}

	d.storage.EXPECT().LatestFormSnapshot(gomock.Any(), "yelp-com").Return(prev, nil)
	d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(&formmap.Rendered{
		HTML:        signupPage,
		ResolvedURL: "https://biz.yelp.com/signup/",
	}, nil)
	d.expectArtifacts(2)
	d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

	var stored domain.FormChangeEvent
	d.storage.EXPECT().StoreFormChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.FormChangeEvent) (*domain.FormChangeEvent, error) {
			stored = e
			e.ID = 11

			return &e, nil
		})
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.FormChangeEvent) (string, error) {
			require.EqualValues(t, 11, e.ID)

			return "msg-1", nil
		})

	out, err := d.monitor.Process(ctx, formmap.ModeMonitor, yelpTarget)
	require.NoError(t, err)
	require.NotNil(t, out.Change)

	require.Equal(t, formmap.ChangeLevel, stored.Level)
	require.Equal(t, []domain.FormChangeType{
		domain.FormChangeDOM, domain.FormChangeForms, domain.FormChangeStepHint,
	}, stored.ChangeTypes)
	require.Equal(t, "old-sig", stored.PreviousSignature)
	require.Equal(t, out.Snapshot.FormSignature, stored.NewSignature)
	require.Equal(t, "DOM; FORMS; STEP_HINT", stored.Details["summary"])
}

func TestMonitor_ProcessMonitorUnchanged(t *testing.T) {
	d := newMonitorDeps(t)

	p, err := formmap.ParsePage(signupPage)
	require.NoError(t, err)
	forms := p.Forms()
	prev := &domain.FormSnapshot{
		SiteID:          "yelp-com",
		Status:          domain.SnapshotStatusOK,
		DOMChecksum:     formmap.DOMChecksum(signupPage),
		FormSignature:   formmap.FormSignature(forms),
		ResolvedURL:     "https://biz.yelp.com/signup",
		HasCaptcha:      true,
		LikelyMultiStep: true,
	}

	d.storage.EXPECT().LatestFormSnapshot(gomock.Any(), "yelp-com").Return(prev, nil)
	d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(&formmap.Rendered{
		HTML:        signupPage,
		ResolvedURL: "https://biz.yelp.com/signup",
	}, nil)
	d.expectArtifacts(2)
	d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

	out, err := d.monitor.Process(context.Background(), formmap.ModeMonitor, yelpTarget)
	require.NoError(t, err)
	require.Nil(t, out.Change)
}

func TestMonitor_ProcessBaselineAndFailures(t *testing.T) {
	t.Run("baseline", func(t *testing.T) {
		d := newMonitorDeps(t)
		d.storage.EXPECT().LatestFormSnapshot(gomock.Any(), "yelp-com").Return(nil, nil)
		d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(&formmap.Rendered{HTML: "<form></form>"}, nil)
		d.expectArtifacts(2)
		d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

		out, err := d.monitor.Process(context.Background(), formmap.ModeMonitor, yelpTarget)
		require.NoError(t, err)
		require.Nil(t, out.Change)
		require.Equal(t, 1, out.Snapshot.FormCount)
	})

	t.Run("render error is stored", func(t *testing.T) {
		d := newMonitorDeps(t)
		d.storage.EXPECT().LatestFormSnapshot(gomock.Any(), "yelp-com").Return(&domain.FormSnapshot{DOMChecksum: "x"}, nil)
		d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("navigation timeout after 45s"))
		d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

		out, err := d.monitor.Process(context.Background(), formmap.ModeMonitor, yelpTarget)
		require.NoError(t, err)
		require.Nil(t, out.Change)
		require.Equal(t, domain.SnapshotStatusError, out.Snapshot.Status)
		require.Equal(t, "navigation timeout after 45s", out.Snapshot.Error)
		require.Empty(t, out.Snapshot.Artifacts)
	})

	t.Run("missing url", func(t *testing.T) {
		d := newMonitorDeps(t)
		d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

		out, err := d.monitor.Process(context.Background(), formmap.ModeMap, formmap.Target{SiteID: "empty"})
		require.NoError(t, err)
		require.Equal(t, domain.SnapshotStatusError, out.Snapshot.Status)
	})

	t.Run("artifact failure keeps capture", func(t *testing.T) {
		d := newMonitorDeps(t)
		d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(&formmap.Rendered{HTML: "<p></p>"}, nil)
		d.blob.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("disk full")).Times(2)
		d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)

		out, err := d.monitor.Process(context.Background(), formmap.ModeMap, yelpTarget)
		require.NoError(t, err)
		require.Equal(t, domain.SnapshotStatusOK, out.Snapshot.Status)
		require.Empty(t, out.Snapshot.Artifacts)
	})

	t.Run("storage error", func(t *testing.T) {
		d := newMonitorDeps(t)
		d.storage.EXPECT().LatestFormSnapshot(gomock.Any(), "yelp-com").Return(nil, errors.New("db down"))

		_, err := d.monitor.Process(context.Background(), formmap.ModeMonitor, yelpTarget)
		require.ErrorContains(t, err, "db down")
	})

	t.Run("publish error is not fatal", func(t *testing.T) {
		d := newMonitorDeps(t)
		d.storage.EXPECT().LatestFormSnapshot(gomock.Any(), "yelp-com").
			Return(&domain.FormSnapshot{DOMChecksum: "old"}, nil)
		d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(&formmap.Rendered{HTML: "<p></p>"}, nil)
		d.expectArtifacts(2)
		d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(storeSnapshot)
		d.storage.EXPECT().StoreFormChange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.FormChangeEvent) (*domain.FormChangeEvent, error) {
				return &e, nil
			})
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return("", errors.New("topic gone"))

		out, err := d.monitor.Process(context.Background(), formmap.ModeMonitor, yelpTarget)
		require.NoError(t, err)
		require.NotNil(t, out.Change)
	})
}

func TestMonitor_Run(t *testing.T) {
	d := newMonitorDeps(t)

	targets := []formmap.Target{
		{SiteID: "a", Homepage: "https://a.example"},
		{SiteID: "b", Homepage: "https://b.example"},
	}
	d.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(&formmap.Rendered{HTML: "<p></p>"}, nil).Times(2)
	d.expectArtifacts(4)
	d.storage.EXPECT().StoreFormSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s domain.FormSnapshot) (*domain.FormSnapshot, error) {
			if s.SiteID == "b" {
				return nil, errors.New("constraint violation")
			}

			return storeSnapshot(ctx, s)
		}).Times(2)

	outcomes, err := d.monitor.Run(context.Background(), formmap.ModeMap, targets, 2)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	require.NoError(t, outcomes[0].Err)
	require.Equal(t, "a", outcomes[0].Snapshot.SiteID)
	require.ErrorContains(t, outcomes[1].Err, "constraint violation")
	require.Equal(t, "b", outcomes[1].Target.SiteID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.monitor.Run(ctx, formmap.ModeMap, targets, 1)
	require.ErrorIs(t, err, context.Canceled)
}
