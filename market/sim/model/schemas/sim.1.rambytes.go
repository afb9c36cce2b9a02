package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	rambytesSQL = `
CREATE TABLE IF NOT EXISTS sim_rambytes(
  market VARCHAR(12) NOT NULL,
  owner VARCHAR(12) NOT NULL,

  bytes BIGINT NOT NULL,       -- RAM quota in bytes

  PRIMARY KEY(market, owner)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 1,
		"sim_rambytes",
		rambytesSQL,
	)
}
