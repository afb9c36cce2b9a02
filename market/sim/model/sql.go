package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/jmoiron/sqlx"
)

// load runs a named query and scans its first row into dest. It returns false
// if the query returned no row.
func load(
	ctx context.Context,
	dest interface{},
	query string,
	arg interface{},
) (bool, error) {
	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, query, arg)
	if err != nil {
		return false, errors.Trace(err)
	}
	defer rows.Close()

	if !rows.Next() {
		return false, errors.Trace(rows.Err())
	}
	if err := rows.StructScan(dest); err != nil {
		return false, errors.Trace(err)
	}
	return true, nil
}

// exec runs a named statement.
func exec(
	ctx context.Context,
	query string,
	arg interface{},
) error {
	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, query, arg); err != nil {
		return errors.Trace(err)
	}
	return nil
}
