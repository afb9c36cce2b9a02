package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/jmoiron/sqlx"
)

// Blocked marks an account that refuses to receive swapped tokens.
type Blocked struct {
	Contract string `db:"contract"`
	Account  string `db:"account"`
}

// CreateBlocked creates and stores a new Blocked record.
func CreateBlocked(
	ctx context.Context,
	contract chain.Name,
	account chain.Name,
) (*Blocked, error) {
	blocked := Blocked{
		Contract: string(contract),
		Account:  string(account),
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO wrapper_blocked
  (contract, account)
VALUES
  (:contract, :account)
`, blocked); err != nil {
		return nil, translate(err)
	}

	return &blocked, nil
}

// Delete removes the record from the database.
func (b *Blocked) Delete(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
DELETE FROM wrapper_blocked
WHERE contract = :contract
  AND account = :account
`, b)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadBlockedByContractAccount loads the Blocked record of account, nil if
// the account is not blocked.
func LoadBlockedByContractAccount(
	ctx context.Context,
	contract chain.Name,
	account chain.Name,
) (*Blocked, error) {
	blocked := Blocked{
		Contract: string(contract),
		Account:  string(account),
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM wrapper_blocked
WHERE contract = :contract
  AND account = :account
`, blocked); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, nil
	} else if err := rows.StructScan(&blocked); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &blocked, nil
}
