package db

import (
	"context"
	"database/sql"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/token"
	"github.com/jmoiron/sqlx"
)

const (
	// transactionKey the context.Context key to store the current transaction.
	transactionKey ContextKey = "db.transaction"
)

// Transaction stores the current DB transaction.
type Transaction struct {
	Tx    *sqlx.Tx
	Token string
}

// WithTransaction stores the transaction in the provided context.
func WithTransaction(
	ctx context.Context,
	transaction Transaction,
) context.Context {
	return context.WithValue(ctx, transactionKey, transaction)
}

// GetTransaction retrieves the current transaction form the context.
func GetTransaction(
	ctx context.Context,
) Transaction {
	return ctx.Value(transactionKey).(Transaction)
}

// InTransaction returns whether a transaction is set in the context.
func InTransaction(
	ctx context.Context,
) bool {
	t, ok := ctx.Value(transactionKey).(Transaction)
	return ok && t.Tx != nil
}

// Begin returns a new context with a new transaction set.
func Begin(
	ctx context.Context,
) context.Context {
	if GetDB(ctx) == nil {
		panic("db: no DB in context")
	}
	token := token.New("tx")
	ctx = logging.WithScope(ctx, token)
	logging.Logf(ctx,
		"Transaction: begin %s.", token)

	// sqlite3 serializes through its exclusive lock, postgres needs to be
	// asked for it.
	var opts *sql.TxOptions
	if GetDB(ctx).DriverName() == "postgres" {
		opts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return WithTransaction(ctx, Transaction{
		Tx:    GetDB(ctx).MustBeginTx(ctx, opts),
		Token: token,
	})
}

// Commit commits the transaction in the current context.
func Commit(
	ctx context.Context,
) {
	logging.Logf(ctx,
		"Transaction: commit %s.", GetTransaction(ctx).Token)
	err := GetTransaction(ctx).Tx.Commit()
	if err != nil {
		panic(err)
	}
}

// LoggedRollback logs a rollback a commit or another rollback didn't take
// place before this call. Used in general with defer right after calling
// `Begin`.
// ```
//   ctx = db.Begin(ctx)
//   defer db.LoggedRollback(ctx)
// ```
func LoggedRollback(ctx context.Context) {
	err := GetTransaction(ctx).Tx.Rollback()
	if err != sql.ErrTxDone && err != nil {
		panic(err)
	} else if err == nil {
		logging.Logf(ctx,
			"Transaction: rollback %s.", GetTransaction(ctx).Token)
	}
}

// Transact runs fn within a transaction, committing if fn returns no error
// and rolling back otherwise. If a transaction is already set in the context,
// fn joins it and the outermost caller decides its outcome.
func Transact(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	ctx = Begin(ctx)
	defer LoggedRollback(ctx)

	if err := fn(ctx); err != nil {
		return errors.Trace(err)
	}

	Commit(ctx)
	return nil
}

// Ext returns the current Ext (a transaction if one has begin, or the DB
// otherwise).
func Ext(
	ctx context.Context,
) sqlx.Ext {
	if InTransaction(ctx) {
		return GetTransaction(ctx).Tx
	}
	return GetDB(ctx)
}
