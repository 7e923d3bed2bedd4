package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"directorybolt/internal/api"
	"directorybolt/internal/api/handler/v1handler"
	"directorybolt/internal/catalog"
	mockcatalog "directorybolt/internal/catalog/mock"
	"directorybolt/pkg/logger"
	mockstorage "directorybolt/pkg/storage/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestRouter(t *testing.T) (http.Handler, *mockstorage.MockStorage, *mockcatalog.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	cat := mockcatalog.NewMockService(ctrl)

	h, err := api.NewRouter(context.Background(), api.Deps{
		Deps: v1handler.Deps{Storage: st, Catalog: cat},
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		HandlerOptions:    v1handler.Options{MaxBodyBytes: 1 << 16},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		AllowedOrigins:    []string{"https://directorybolt.com"},
		Registry:          prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return h, st, cat
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestRouter_HealthChecks(t *testing.T) {
	h, st, _ := newTestRouter(t)

	require.Equal(t, http.StatusOK, get(h, "/healthz").Code)

	st.EXPECT().Ping(gomock.Any()).Return(nil)
	require.Equal(t, http.StatusOK, get(h, "/readyz").Code)

	st.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rec := get(h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRouter_OpenAPIAndDocs(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Body.String(), "openapi: 3"))

	require.Equal(t, http.StatusOK, get(h, "/v1/docs/").Code)
}

func TestRouter_V1RequestsAreMeasured(t *testing.T) {
	h, _, cat := newTestRouter(t)

	cat.EXPECT().Stats(gomock.Any()).Return(catalog.Stats{Total: 3}, nil)
	rec := get(h, "/v1/directories/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_server_request_duration")
	require.Contains(t, rec.Body.String(), `"/v1/directories/stats"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/checkout", nil)
	req.Header.Set("Origin", "https://directorybolt.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://directorybolt.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_NoDashboardsByDefault(t *testing.T) {
	h, _, _ := newTestRouter(t)

	require.Equal(t, http.StatusNotFound, get(h, api.RiverUIPrefix+"/").Code)
	require.Equal(t, http.StatusNotFound, get(h, "/debug/pprof/").Code)
}
