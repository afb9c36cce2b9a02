package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	rammarketSQL = `
CREATE TABLE IF NOT EXISTS sim_rammarket(
  market VARCHAR(12) NOT NULL, -- market contract account

  ram BIGINT NOT NULL,         -- RAM reserve in bytes
  quote BIGINT NOT NULL,       -- native reserve in smallest units

  PRIMARY KEY(market)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 0,
		"sim_rammarket",
		rammarketSQL,
	)
}
