package gcs_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directorybolt/pkg/blob/gcs"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newStore(t *testing.T, handler http.Handler) *gcs.Store {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := storage.NewClient(context.Background(), option.WithEndpoint(srv.URL), option.WithoutAuthentication())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	s, err := gcs.New(client, "reports", "/audits/")
	require.NoError(t, err)

	return s
}

func TestStore_PutObject(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/upload/storage/v1/b/reports/o")
		assert.Equal(t, "audits/2026/report.json", r.URL.Query().Get("name"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), `{"tested":3}`)

		fmt.Fprintln(w, `{"name":"audits/2026/report.json","bucket":"reports"}`)
	}))

	uri, err := s.PutObject(context.Background(), "2026/report.json", "application/json", strings.NewReader(`{"tested":3}`))
	require.NoError(t, err)
	require.Equal(t, "gs://reports/audits/2026/report.json", uri)
}

func TestStore_PutObjectError(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := s.PutObject(context.Background(), "report.json", "", strings.NewReader("x"))
	require.Error(t, err)

	_, err = gcs.New(nil, "reports", "")
	require.Error(t, err)
}
