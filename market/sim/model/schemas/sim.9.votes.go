package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	votesSQL = `
CREATE TABLE IF NOT EXISTS sim_votes(
  market VARCHAR(12) NOT NULL,
  voter VARCHAR(12) NOT NULL,

  proxy VARCHAR(12) NOT NULL,
  producers TEXT NOT NULL,     -- comma separated producer names
  updated TIMESTAMP NOT NULL,

  PRIMARY KEY(market, voter)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 9,
		"sim_votes",
		votesSQL,
	)
}
