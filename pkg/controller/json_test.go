package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directorybolt/pkg/controller"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error is hidden",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "message of semantic error",
			err:     serrors.With(serrors.ErrBadRequest, "email is required"),
			status:  http.StatusBadRequest,
			code:    "BAD_REQUEST",
			message: "email is required",
		},
		{
			name:    "wrapped cause is not exposed",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("crypto/bcrypt: mismatch"), "invalid credentials"),
			status:  http.StatusUnauthorized,
			code:    "UNAUTHORIZED",
			message: "invalid credentials",
		},
		{
			name:    "bare kind",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "NOT_FOUND",
		},
		{
			name:    "internal kind keeps generic message",
			err:     serrors.With(serrors.ErrInternal, "secret detail"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			controller.WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body controller.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.code, body.Code)
			require.Equal(t, tt.message, body.Message)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	decode := func(body string, limit int64) (payload, error) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := controller.DecodeJSON(httptest.NewRecorder(), req, limit, &p)

		return p, err
	}

	p, err := decode(`{"email":"a@b.co"}`, 1024)
	require.NoError(t, err)
	require.Equal(t, "a@b.co", p.Email)

	for name, body := range map[string]string{
		"empty":     "",
		"malformed": `{"email":`,
		"trailing":  `{"email":"a@b.co"} {}`,
	} {
		_, err := decode(body, 1024)
		require.ErrorIs(t, err, serrors.ErrBadRequest, name)
	}

	_, err = decode(`{"email":"`+strings.Repeat("a", 100)+`"}`, 16)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WriteJSON(rec, http.StatusAccepted, map[string]int{"accepted": 3})

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"accepted":3}`, rec.Body.String())
}
