package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/storage"
	"directorybolt/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestUser() domain.User {
	return domain.User{
		Email:    uuid.NewString() + "@example.com",
		FullName: "Test User",
		Tier:     domain.TierStarter,
	}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	// committed user is visible outside the tx
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	committed, err := tx.CreateUser(ctx, newTestUser())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := pg.UserByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// rolled back user is not
	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	discarded, err := tx.CreateUser(ctx, newTestUser())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err = pg.UserByID(ctx, discarded.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var kept *domain.User
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		var e error
		kept, e = s.CreateUser(ctx, newTestUser())

		return e
	})
	require.NoError(t, err)
	got, err := pg.UserByEmail(ctx, kept.Email)
	require.NoError(t, err)
	require.NotNil(t, got)

	boom := errors.New("boom")
	lost := newTestUser()
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, e := s.CreateUser(ctx, lost); e != nil {
			return e
		}

		return boom
	})
	require.ErrorIs(t, err, boom)
	got, err = pg.UserByEmail(ctx, lost.Email)
	require.NoError(t, err)
	require.Nil(t, got)
}
