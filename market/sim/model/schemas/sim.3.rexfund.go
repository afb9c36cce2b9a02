package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	rexfundSQL = `
CREATE TABLE IF NOT EXISTS sim_rexfund(
  market VARCHAR(12) NOT NULL,
  owner VARCHAR(12) NOT NULL,

  balance BIGINT NOT NULL,     -- deposited native in smallest units

  PRIMARY KEY(market, owner)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 3,
		"sim_rexfund",
		rexfundSQL,
	)
}
