package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	accountsSQL = `
CREATE TABLE IF NOT EXISTS accounts(
  contract VARCHAR(12) NOT NULL, -- ledger contract account
  owner VARCHAR(12) NOT NULL,    -- balance owner
  code VARCHAR(7) NOT NULL,      -- symbol code
  decimals INTEGER NOT NULL,     -- symbol precision

  balance BIGINT NOT NULL,       -- balance in smallest units

  PRIMARY KEY(contract, owner, code)
);
`
)

func init() {
	db.RegisterSchema(
		"ledger", 1,
		"accounts",
		accountsSQL,
	)
}
