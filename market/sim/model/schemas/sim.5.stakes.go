package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	stakesSQL = `
CREATE TABLE IF NOT EXISTS sim_stakes(
  market VARCHAR(12) NOT NULL,
  owner VARCHAR(12) NOT NULL,
  receiver VARCHAR(12) NOT NULL,

  net BIGINT NOT NULL,         -- net weight in smallest units
  cpu BIGINT NOT NULL,         -- cpu weight in smallest units

  PRIMARY KEY(market, owner, receiver)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 5,
		"sim_stakes",
		stakesSQL,
	)
}
