package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"directorybolt/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", serrors.With(serrors.ErrNotFound, "missing"), http.StatusNotFound},
		{"wrapped conflict", fmt.Errorf("storing: %w", serrors.KindOnly(serrors.ErrConflict)), http.StatusConflict},
		{"limit", serrors.With(serrors.ErrLimitExceeded, "tier limit reached"), http.StatusForbidden},
		{"payment", serrors.KindOnly(serrors.ErrPaymentRequired), http.StatusPaymentRequired},
		{"bare kind", serrors.ErrUnauthorized, http.StatusUnauthorized},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serrors.HTTPStatus(tc.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "invalid cursor",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrBadRequest, errors.New("parse error"), "invalid cursor")))
	require.Equal(t, "NOT_FOUND", serrors.PublicMessage(fmt.Errorf("x: %w", serrors.KindOnly(serrors.ErrNotFound))))
	require.Equal(t, "internal error", serrors.PublicMessage(errors.New("db password is hunter2")))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(fmt.Errorf("a: %w", serrors.With(serrors.ErrTimeout, "slow"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
}
