package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/jmoiron/sqlx"
)

// Stat is the descriptor of a currency managed by a ledger contract. There is
// at most one stat per (contract, code).
type Stat struct {
	Contract  string `db:"contract"`
	Code      string `db:"code"`
	Decimals  int    `db:"decimals"`
	Supply    int64  `db:"supply"`
	MaxSupply int64  `db:"max_supply"`
	Issuer    string `db:"issuer"`
}

// CreateStat creates and stores a new Stat with a zero supply.
func CreateStat(
	ctx context.Context,
	contract chain.Name,
	maxSupply chain.Asset,
	issuer chain.Name,
) (*Stat, error) {
	stat := Stat{
		Contract:  string(contract),
		Code:      maxSupply.Symbol.Code,
		Decimals:  int(maxSupply.Symbol.Precision),
		Supply:    0,
		MaxSupply: maxSupply.Amount,
		Issuer:    string(issuer),
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO stats
  (contract, code, decimals, supply, max_supply, issuer)
VALUES
  (:contract, :code, :decimals, :supply, :max_supply, :issuer)
`, stat); err != nil {
		return nil, translate(err)
	}

	return &stat, nil
}

// Save updates the object database representation with the in-memory values.
func (s *Stat) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE stats
SET supply = :supply, max_supply = :max_supply, issuer = :issuer
WHERE contract = :contract
  AND code = :code
`, s)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// Symbol returns the symbol of the currency.
func (s *Stat) Symbol() chain.Symbol {
	return chain.NewSymbol(s.Code, uint8(s.Decimals))
}

// SupplyAsset returns the current supply as an asset.
func (s *Stat) SupplyAsset() chain.Asset {
	return chain.NewAsset(s.Supply, s.Symbol())
}

// MaxSupplyAsset returns the maximum supply as an asset.
func (s *Stat) MaxSupplyAsset() chain.Asset {
	return chain.NewAsset(s.MaxSupply, s.Symbol())
}

// LoadStatByContractCode attempts to load the stat for the given contract and
// symbol code. It returns nil if no stat exists.
func LoadStatByContractCode(
	ctx context.Context,
	contract chain.Name,
	code string,
) (*Stat, error) {
	stat := Stat{
		Contract: string(contract),
		Code:     code,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM stats
WHERE contract = :contract
  AND code = :code
`, stat); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, nil
	} else if err := rows.StructScan(&stat); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &stat, nil
}

// LoadStatsByContract loads all the stats of a contract ordered by code.
func LoadStatsByContract(
	ctx context.Context,
	contract chain.Name,
) ([]Stat, error) {
	query := map[string]interface{}{
		"contract": string(contract),
	}

	ext := db.Ext(ctx)
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM stats
WHERE contract = :contract
ORDER BY code
`, query)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rows.Close()

	stats := []Stat{}
	for rows.Next() {
		s := Stat{}
		if err := rows.StructScan(&s); err != nil {
			return nil, errors.Trace(err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	return stats, nil
}
