package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	rewardsSQL = `
CREATE TABLE IF NOT EXISTS sim_rewards(
  market VARCHAR(12) NOT NULL,
  owner VARCHAR(12) NOT NULL,

  amount BIGINT NOT NULL,      -- claimable native in smallest units

  PRIMARY KEY(market, owner)
);`
)

func init() {
	db.RegisterSchema(
		"sim", 10,
		"sim_rewards",
		rewardsSQL,
	)
}
