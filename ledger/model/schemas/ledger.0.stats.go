package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	statsSQL = `
CREATE TABLE IF NOT EXISTS stats(
  contract VARCHAR(12) NOT NULL, -- ledger contract account
  code VARCHAR(7) NOT NULL,      -- symbol code
  decimals INTEGER NOT NULL,     -- symbol precision

  supply BIGINT NOT NULL,        -- current supply in smallest units
  max_supply BIGINT NOT NULL,    -- maximum supply in smallest units
  issuer VARCHAR(12) NOT NULL,   -- issuer account

  PRIMARY KEY(contract, code)
);
`
)

func init() {
	db.RegisterSchema(
		"ledger", 0,
		"stats",
		statsSQL,
	)
}
