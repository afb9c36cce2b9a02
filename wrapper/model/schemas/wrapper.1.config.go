package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	configSQL = `
CREATE TABLE IF NOT EXISTS wrapper_config(
  contract VARCHAR(12) NOT NULL, -- wrapper contract account
  created TIMESTAMP NOT NULL,

  code VARCHAR(7) NOT NULL,      -- wrapped symbol code
  decimals INTEGER NOT NULL,     -- wrapped symbol precision

  PRIMARY KEY(contract)
);
`
)

func init() {
	db.RegisterSchema(
		"wrapper", 1,
		"wrapper_config",
		configSQL,
	)
}
