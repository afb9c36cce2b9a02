package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	rexpoolSQL = `
CREATE TABLE IF NOT EXISTS sim_rexpool(
  market VARCHAR(12) NOT NULL,

  total_lendable BIGINT NOT NULL, -- native lendable in smallest units
  total_rex BIGINT NOT NULL,      -- REX outstanding in smallest units

  PRIMARY KEY(market)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 2,
		"sim_rexpool",
		rexpoolSQL,
	)
}
