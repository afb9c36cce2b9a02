package model

import (
	"context"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/jmoiron/sqlx"
)

// Config is the singleton configuration of a wrapper contract, written once
// by init.
type Config struct {
	Contract string    `db:"contract"`
	Created  time.Time `db:"created"`

	Code     string `db:"code"`
	Decimals int    `db:"decimals"`
}

// CreateConfig creates and stores the configuration of contract. It fails
// with ErrUniqueConstraintViolation if the contract is already configured.
func CreateConfig(
	ctx context.Context,
	contract chain.Name,
	symbol chain.Symbol,
) (*Config, error) {
	config := Config{
		Contract: string(contract),
		Created:  time.Now().UTC(),
		Code:     symbol.Code,
		Decimals: int(symbol.Precision),
	}

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO wrapper_config
  (contract, created, code, decimals)
VALUES
  (:contract, :created, :code, :decimals)
`, config); err != nil {
		return nil, translate(err)
	}

	return &config, nil
}

// Symbol returns the wrapped token symbol.
func (c *Config) Symbol() chain.Symbol {
	return chain.NewSymbol(c.Code, uint8(c.Decimals))
}

// LoadConfigByContract loads the configuration of contract, nil if the
// contract was never initialized.
func LoadConfigByContract(
	ctx context.Context,
	contract chain.Name,
) (*Config, error) {
	config := Config{
		Contract: string(contract),
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM wrapper_config
WHERE contract = :contract
`, config); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, nil
	} else if err := rows.StructScan(&config); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &config, nil
}
