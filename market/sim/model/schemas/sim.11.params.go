package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	paramsSQL = `
CREATE TABLE IF NOT EXISTS sim_params(
  market VARCHAR(12) NOT NULL,

  powerup_fee BIGINT NOT NULL, -- native charged per powerup

  PRIMARY KEY(market)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 11,
		"sim_params",
		paramsSQL,
	)
}
