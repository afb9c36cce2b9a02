package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	rexbalSQL = `
CREATE TABLE IF NOT EXISTS sim_rexbal(
  market VARCHAR(12) NOT NULL,
  owner VARCHAR(12) NOT NULL,

  staked BIGINT NOT NULL,      -- REX held
  unstaking BIGINT NOT NULL,   -- REX moved out of savings, available to sell
  matured BIGINT NOT NULL,     -- matured REX

  PRIMARY KEY(market, owner)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 4,
		"sim_rexbal",
		rexbalSQL,
	)
}
