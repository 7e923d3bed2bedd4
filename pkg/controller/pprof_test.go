package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"directorybolt/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"", "cmdline", "goroutine"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local"+controller.PprofPrefix+path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
