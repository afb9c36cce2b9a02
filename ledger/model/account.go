package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/jmoiron/sqlx"
)

// Account is the balance record of an owner for a currency of a ledger
// contract. Only one account can exist per (contract, owner, code).
type Account struct {
	Contract string `db:"contract"`
	Owner    string `db:"owner"`
	Code     string `db:"code"`
	Decimals int    `db:"decimals"`
	Balance  int64  `db:"balance"`
}

// CreateAccount creates and stores a new Account with the provided balance.
func CreateAccount(
	ctx context.Context,
	contract chain.Name,
	owner chain.Name,
	balance chain.Asset,
) (*Account, error) {
	account := Account{
		Contract: string(contract),
		Owner:    string(owner),
		Code:     balance.Symbol.Code,
		Decimals: int(balance.Symbol.Precision),
		Balance:  balance.Amount,
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO accounts
  (contract, owner, code, decimals, balance)
VALUES
  (:contract, :owner, :code, :decimals, :balance)
`, account); err != nil {
		return nil, translate(err)
	}

	return &account, nil
}

// Save updates the object database representation with the in-memory values.
func (a *Account) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE accounts
SET balance = :balance
WHERE contract = :contract
  AND owner = :owner
  AND code = :code
`, a)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// Delete removes the account from the database.
func (a *Account) Delete(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
DELETE FROM accounts
WHERE contract = :contract
  AND owner = :owner
  AND code = :code
`, a)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// Asset returns the balance as an asset.
func (a *Account) Asset() chain.Asset {
	return chain.NewAsset(a.Balance,
		chain.NewSymbol(a.Code, uint8(a.Decimals)))
}

// LoadAccountByContractOwnerCode attempts to load the account for the given
// contract, owner and code. It returns nil if no account exists.
func LoadAccountByContractOwnerCode(
	ctx context.Context,
	contract chain.Name,
	owner chain.Name,
	code string,
) (*Account, error) {
	account := Account{
		Contract: string(contract),
		Owner:    string(owner),
		Code:     code,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM accounts
WHERE contract = :contract
  AND owner = :owner
  AND code = :code
`, account); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, nil
	} else if err := rows.StructScan(&account); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &account, nil
}

// LoadAccountsByContractOwner loads all the accounts of an owner on a
// contract ordered by code.
func LoadAccountsByContractOwner(
	ctx context.Context,
	contract chain.Name,
	owner chain.Name,
) ([]Account, error) {
	query := map[string]interface{}{
		"contract": string(contract),
		"owner":    string(owner),
	}

	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM accounts
WHERE contract = :contract
  AND owner = :owner
ORDER BY code
`, query)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rows.Close()

	accounts := []Account{}
	for rows.Next() {
		a := Account{}
		if err := rows.StructScan(&a); err != nil {
			return nil, errors.Trace(err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	return accounts, nil
}

// SumBalancesByContractCode returns the sum of all the balances of a currency
// on a contract.
func SumBalancesByContractCode(
	ctx context.Context,
	contract chain.Name,
	code string,
) (int64, error) {
	var sum int64
	ext := db.Ext(ctx)
	if err := sqlx.Get(ext, &sum, ext.Rebind(`
SELECT COALESCE(SUM(balance), 0)
FROM accounts
WHERE contract = ?
  AND code = ?
`), string(contract), code); err != nil {
		return 0, errors.Trace(err)
	}
	return sum, nil
}
