package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	bidrefundsSQL = `
CREATE TABLE IF NOT EXISTS sim_bidrefunds(
  market VARCHAR(12) NOT NULL,
  newname VARCHAR(12) NOT NULL,
  bidder VARCHAR(12) NOT NULL,

  amount BIGINT NOT NULL,      -- outbid amount owed to the bidder

  PRIMARY KEY(market, newname, bidder)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 8,
		"sim_bidrefunds",
		bidrefundsSQL,
	)
}
