package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"directorybolt/pkg/storage"
	"directorybolt/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type followUpArgs struct {
	Email string `json:"email"`
}

func (followUpArgs) Kind() string { return "follow_up" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, followUpArgs{Email: "a@example.com"}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&followUpArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, followUpArgs{Email: "b@example.com"}, &river.InsertOpts{})
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&followUpArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_RolledBackWithState(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	boom := errors.New("boom")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, e := s.CreateUser(ctx, newTestUser()); e != nil {
			return e
		}
		if _, e := s.AddJob(ctx, followUpArgs{Email: "c@example.com"}, nil); e != nil {
			return e
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	var jobs int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM river_job WHERE kind = $1`, followUpArgs{}.Kind()).Scan(&jobs))
	require.Zero(t, jobs)
}
