package model

import (
	"context"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/jmoiron/sqlx"
)

// Audit is the single slot recording the last completed proxy action of a
// wrapper contract.
type Audit struct {
	Scope      string    `db:"scope"`
	LastAction string    `db:"last_action"`
	Updated    time.Time `db:"updated"`
}

// SaveAudit upserts the audit slot of scope.
func SaveAudit(
	ctx context.Context,
	scope chain.Name,
	action string,
) (*Audit, error) {
	audit := Audit{
		Scope:      string(scope),
		LastAction: action,
		Updated:    time.Now().UTC(),
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO wrapper_audit
  (scope, last_action, updated)
VALUES
  (:scope, :last_action, :updated)
ON CONFLICT(scope) DO UPDATE
SET last_action = excluded.last_action,
    updated = excluded.updated
`, audit); err != nil {
		return nil, errors.Trace(err)
	}

	return &audit, nil
}

// LoadAuditByScope loads the audit slot of scope, nil if no proxy action
// completed yet.
func LoadAuditByScope(
	ctx context.Context,
	scope chain.Name,
) (*Audit, error) {
	audit := Audit{
		Scope: string(scope),
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM wrapper_audit
WHERE scope = :scope
`, audit); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, nil
	} else if err := rows.StructScan(&audit); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &audit, nil
}
