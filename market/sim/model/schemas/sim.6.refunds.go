package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	refundsSQL = `
CREATE TABLE IF NOT EXISTS sim_refunds(
  market VARCHAR(12) NOT NULL,
  owner VARCHAR(12) NOT NULL,

  request_time TIMESTAMP NOT NULL,
  net BIGINT NOT NULL,
  cpu BIGINT NOT NULL,

  PRIMARY KEY(market, owner)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 6,
		"sim_refunds",
		refundsSQL,
	)
}
