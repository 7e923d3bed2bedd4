package audit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"directorybolt/internal/audit"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
)

const userAgent = "directorybolt-audit-test"

func newSite(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.UserAgent() != userAgent {
			w.WriteHeader(http.StatusForbidden)

			return
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.NotFound(w, nil)
	})
	mux.HandleFunc("/slow", func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, &hits
}

func newAuditor() *audit.Auditor {
	return audit.New(audit.Options{
		Concurrency:       4,
		Timeout:           200 * time.Millisecond,
		SubmissionTimeout: 200 * time.Millisecond,
		UserAgent:         userAgent,
	})
}

func TestAuditor_Check(t *testing.T) {
	srv, _ := newSite(t)
	a := newAuditor()
	ctx := context.Background()

	res := a.Check(ctx, srv.URL+"/ok", time.Second)
	require.True(t, res.Accessible)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Empty(t, res.RedirectURL)
	require.Empty(t, res.Error)

	res = a.Check(ctx, srv.URL+"/old", time.Second)
	require.True(t, res.Accessible)
	require.Equal(t, srv.URL+"/ok", res.RedirectURL)

	res = a.Check(ctx, srv.URL+"/missing", time.Second)
	require.False(t, res.Accessible)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Empty(t, res.Error)

	res = a.Check(ctx, srv.URL+"/slow", 50*time.Millisecond)
	require.False(t, res.Accessible)
	require.Equal(t, audit.ErrorTimeout, res.Error)
}

func TestAuditor_CheckConnectionErrors(t *testing.T) {
	a := newAuditor()
	ctx := context.Background()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	res := a.Check(ctx, closedURL, time.Second)
	require.False(t, res.Accessible)
	require.Equal(t, audit.ErrorConnection, res.Error)

	tlsSrv := httptest.NewTLSServer(http.NotFoundHandler())
	t.Cleanup(tlsSrv.Close)

	res = a.Check(ctx, tlsSrv.URL, time.Second)
	require.False(t, res.Accessible)
	require.Equal(t, audit.ErrorSSL, res.Error)
}

func TestAuditor_Run(t *testing.T) {
	srv, hits := newSite(t)
	a := newAuditor()

	dirs := []domain.Directory{
		{ID: "up", Name: "Up", URL: srv.URL + "/ok", SubmissionURL: srv.URL + "/missing", DomainAuthority: 80},
		{ID: "down", Name: "Down", URL: srv.URL + "/missing", SubmissionURL: srv.URL + "/ok", DomainAuthority: 70},
		{ID: "moved", Name: "Moved", URL: srv.URL + "/old", DomainAuthority: 20},
	}

	results, err := a.Run(context.Background(), dirs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "up", results[0].DirectoryID)
	require.True(t, results[0].Accessible)
	require.NotNil(t, results[0].Submission)
	require.False(t, results[0].SubmissionAccessible())

	require.Equal(t, "down", results[1].DirectoryID)
	require.False(t, results[1].Accessible)
	require.Nil(t, results[1].Submission)

	require.True(t, results[2].Accessible)
	require.NotEmpty(t, results[2].RedirectURL)
	require.False(t, results[2].CheckedAt.IsZero())

	// up + its submission, down, moved's redirect target
	require.EqualValues(t, 4, hits.Load())
}

func TestAuditor_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAuditor().Run(ctx, []domain.Directory{{ID: "x", URL: "http://127.0.0.1:1"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestClassifyError(t *testing.T) {
	long := strings.Repeat("e", 150)
	require.Len(t, audit.ClassifyError(errString(long)), 100)

	// 99 ASCII bytes followed by multi-byte characters
	mixed := audit.ClassifyError(errString(strings.Repeat("a", 99) + strings.Repeat("é", 10)))
	require.True(t, utf8.ValidString(mixed))
	require.Equal(t, 100, utf8.RuneCountInString(mixed))
	require.True(t, strings.HasSuffix(mixed, "é"))
	require.Equal(t, "unsupported protocol scheme", audit.ClassifyError(errString("unsupported protocol scheme")))
	require.Equal(t, audit.ErrorTimeout, audit.ClassifyError(context.DeadlineExceeded))
}

type errString string

func (e errString) Error() string { return string(e) }
