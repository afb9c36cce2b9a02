package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	namebidsSQL = `
CREATE TABLE IF NOT EXISTS sim_namebids(
  market VARCHAR(12) NOT NULL,
  newname VARCHAR(12) NOT NULL,

  high_bidder VARCHAR(12) NOT NULL,
  high_bid BIGINT NOT NULL,

  PRIMARY KEY(market, newname)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 7,
		"sim_namebids",
		namebidsSQL,
	)
}
