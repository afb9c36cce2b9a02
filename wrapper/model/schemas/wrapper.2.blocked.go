package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	blockedSQL = `
CREATE TABLE IF NOT EXISTS wrapper_blocked(
  contract VARCHAR(12) NOT NULL,
  account VARCHAR(12) NOT NULL,  -- account refusing swapped tokens

  PRIMARY KEY(contract, account)
);
`
)

func init() {
	db.RegisterSchema(
		"wrapper", 2,
		"wrapper_blocked",
		blockedSQL,
	)
}
