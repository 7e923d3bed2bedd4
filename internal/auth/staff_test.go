package auth_test

import (
	"context"
	"errors"
	"testing"

	"directorybolt/internal/auth"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"
	mockstorage "directorybolt/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var errDBDown = errors.New("dial tcp: connection refused")

func newTestStaffAuth(t *testing.T) (*mockstorage.MockStorage, auth.StaffAuthenticator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := auth.NewStaffAuthenticator(st, auth.FallbackCredentials{
		Admin: auth.Credentials{APIKey: "admin-key", Username: "admin", Password: "admin-pass"},
		Staff: auth.Credentials{APIKey: "staff-key", Username: "staff", Password: "staff-pass"},
	}, bcrypt.MinCost)

	return st, a
}

func TestStaff_APIKey_Database(t *testing.T) {
	st, a := newTestStaffAuth(t)
	ctx := context.Background()

	id := uuid.New()
	st.EXPECT().APIKeyByHash(gomock.Any(), auth.HashToken("db-key")).
		Return(&domain.APIKey{ID: id, Name: "ci", Role: domain.StaffRoleStaff}, nil)
	st.EXPECT().TouchAPIKey(gomock.Any(), id).Return(nil)

	p, err := a.AuthenticateAPIKey(ctx, "db-key")
	require.NoError(t, err)
	require.Equal(t, auth.Principal{Name: "ci", Role: domain.StaffRoleStaff}, *p)
}

func TestStaff_APIKey_FallbackOnlyWhenDatabaseFails(t *testing.T) {
	st, a := newTestStaffAuth(t)
	ctx := context.Background()

	// reachable database that does not know the key: fallback key is rejected
	st.EXPECT().APIKeyByHash(gomock.Any(), auth.HashToken("admin-key")).Return(nil, nil)
	_, err := a.AuthenticateAPIKey(ctx, "admin-key")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().APIKeyByHash(gomock.Any(), gomock.Any()).Return(nil, errDBDown).Times(3)

	p, err := a.AuthenticateAPIKey(ctx, "admin-key")
	require.NoError(t, err)
	require.Equal(t, domain.StaffRoleAdmin, p.Role)
	require.True(t, p.Fallback)

	p, err = a.AuthenticateAPIKey(ctx, "staff-key")
	require.NoError(t, err)
	require.Equal(t, domain.StaffRoleStaff, p.Role)

	_, err = a.AuthenticateAPIKey(ctx, "guess")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestStaff_Basic(t *testing.T) {
	st, a := newTestStaffAuth(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	st.EXPECT().StaffUserByUsername(gomock.Any(), "ops").
		Return(&domain.StaffUser{Username: "ops", PasswordHash: string(hash), Role: domain.StaffRoleAdmin}, nil).
		Times(2)

	p, err := a.AuthenticateBasic(ctx, "ops", "s3cret")
	require.NoError(t, err)
	require.Equal(t, domain.StaffRoleAdmin, p.Role)
	require.False(t, p.Fallback)

	_, err = a.AuthenticateBasic(ctx, "ops", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().StaffUserByUsername(gomock.Any(), "admin").Return(nil, nil)
	_, err = a.AuthenticateBasic(ctx, "admin", "admin-pass")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().StaffUserByUsername(gomock.Any(), gomock.Any()).Return(nil, errDBDown).Times(3)

	p, err = a.AuthenticateBasic(ctx, "staff", "staff-pass")
	require.NoError(t, err)
	require.Equal(t, domain.StaffRoleStaff, p.Role)
	require.True(t, p.Fallback)

	_, err = a.AuthenticateBasic(ctx, "staff", "admin-pass")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = a.AuthenticateBasic(ctx, "admin", "staff-pass")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestStaff_EmptyFallbackNeverMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := auth.NewStaffAuthenticator(st, auth.FallbackCredentials{}, bcrypt.MinCost)

	st.EXPECT().StaffUserByUsername(gomock.Any(), gomock.Any()).Return(nil, errDBDown)
	_, err := a.AuthenticateBasic(context.Background(), "x", "y")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestStaff_CreateAPIKey(t *testing.T) {
	st, a := newTestStaffAuth(t)

	_, _, err := a.CreateAPIKey(context.Background(), "ci", "root")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().CreateAPIKey(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, k domain.APIKey) (*domain.APIKey, error) {
			k.ID = uuid.New()

			return &k, nil
		})

	key, rec, err := a.CreateAPIKey(context.Background(), "ci", domain.StaffRoleStaff)
	require.NoError(t, err)
	require.Equal(t, auth.HashToken(key), rec.KeyHash)
}

func TestStaff_CreateStaffUser(t *testing.T) {
	st, a := newTestStaffAuth(t)

	st.EXPECT().CreateStaffUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.StaffUser) (*domain.StaffUser, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))

			return &u, nil
		})

	u, err := a.CreateStaffUser(context.Background(), " ops ", "pw", domain.StaffRoleStaff)
	require.NoError(t, err)
	require.Equal(t, "ops", u.Username)
}
