package db

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

func init() {
	RegisterSchema("dbtest", 0, "counters", `
CREATE TABLE IF NOT EXISTS counters(
  name VARCHAR(32) NOT NULL,
  value BIGINT NOT NULL,
  PRIMARY KEY(name)
);
`)
}

func setup(
	t *testing.T,
) context.Context {
	ctx := context.Background()
	testDB, err := NewDBForDSN(ctx, "", "sqlite3://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { testDB.Close() })
	require.NoError(t, CreateDBTables(ctx, testDB, "dbtest"))
	// Applying the same schemas twice is a no-op.
	require.NoError(t, CreateDBTables(ctx, testDB, "dbtest"))
	return WithDB(ctx, testDB)
}

func insert(
	ctx context.Context,
	name string,
) error {
	_, err := sqlx.NamedExec(Ext(ctx), `
INSERT INTO counters (name, value) VALUES (:name, 1)
`, map[string]interface{}{"name": name})
	return errors.Trace(err)
}

func count(
	t *testing.T,
	ctx context.Context,
) int {
	var n int
	require.NoError(t, sqlx.Get(Ext(ctx), &n, "SELECT COUNT(*) FROM counters"))
	return n
}

func TestTransactCommitsAndRollsBack(
	t *testing.T,
) {
	ctx := setup(t)

	require.NoError(t, Transact(ctx, func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		return insert(ctx, "a")
	}))
	assert.Equal(t, 1, count(t, ctx))

	err := Transact(ctx, func(ctx context.Context) error {
		if err := insert(ctx, "b"); err != nil {
			return err
		}
		return errors.Newf("abort")
	})
	assert.EqualError(t, err, "abort")
	assert.Equal(t, 1, count(t, ctx))
}

func TestTransactJoinsOuterTransaction(
	t *testing.T,
) {
	ctx := setup(t)

	outer := Begin(ctx)
	require.NoError(t, Transact(outer, func(ctx context.Context) error {
		return insert(ctx, "a")
	}))
	// The inner call did not commit, the outer rollback discards its work.
	LoggedRollback(outer)
	assert.Equal(t, 0, count(t, ctx))

	outer = Begin(ctx)
	require.NoError(t, Transact(outer, func(ctx context.Context) error {
		return insert(ctx, "a")
	}))
	Commit(outer)
	assert.Equal(t, 1, count(t, ctx))
}

func TestNewDBForDSN(
	t *testing.T,
) {
	ctx := context.Background()

	_, err := NewDBForDSN(ctx, "mysql://localhost", "")
	assert.Error(t, err)
	_, err = NewDBForDSN(ctx, "localhost", "")
	assert.Error(t, err)
}
