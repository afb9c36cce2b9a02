package model

import (
	"context"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// Vote is the producer selection (or proxy) of a voter. Producers are stored
// comma separated.
type Vote struct {
	Market    string    `db:"market"`
	Voter     string    `db:"voter"`
	Proxy     string    `db:"proxy"`
	Producers string    `db:"producers"`
	Updated   time.Time `db:"updated"`
}

// LoadVote loads the vote of voter, nil if none exists.
func LoadVote(
	ctx context.Context,
	market chain.Name,
	voter chain.Name,
) (*Vote, error) {
	v := Vote{Market: string(market), Voter: string(voter)}
	found, err := load(ctx, &v, `
SELECT *
FROM sim_votes
WHERE market = :market
  AND voter = :voter
`, v)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &v, nil
}

// Save upserts the vote.
func (v *Vote) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_votes
  (market, voter, proxy, producers, updated)
VALUES
  (:market, :voter, :proxy, :producers, :updated)
ON CONFLICT(market, voter) DO UPDATE
SET proxy = excluded.proxy,
    producers = excluded.producers,
    updated = excluded.updated
`, v)
}

// Reward is native currency an account can claim.
type Reward struct {
	Market string `db:"market"`
	Owner  string `db:"owner"`
	Amount int64  `db:"amount"`
}

// LoadReward loads the unclaimed reward of owner, nil if none exists.
func LoadReward(
	ctx context.Context,
	market chain.Name,
	owner chain.Name,
) (*Reward, error) {
	r := Reward{Market: string(market), Owner: string(owner)}
	found, err := load(ctx, &r, `
SELECT *
FROM sim_rewards
WHERE market = :market
  AND owner = :owner
`, r)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &r, nil
}

// Save upserts the reward.
func (r *Reward) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_rewards
  (market, owner, amount)
VALUES
  (:market, :owner, :amount)
ON CONFLICT(market, owner) DO UPDATE
SET amount = excluded.amount
`, r)
}

// Delete removes the reward.
func (r *Reward) Delete(
	ctx context.Context,
) error {
	return exec(ctx, `
DELETE FROM sim_rewards
WHERE market = :market
  AND owner = :owner
`, r)
}

// Params holds the tunable prices of the market.
type Params struct {
	Market     string `db:"market"`
	PowerUpFee int64  `db:"powerup_fee"`
}

// LoadParams loads the params of market, nil if they are not set.
func LoadParams(
	ctx context.Context,
	market chain.Name,
) (*Params, error) {
	p := Params{Market: string(market)}
	found, err := load(ctx, &p, `
SELECT *
FROM sim_params
WHERE market = :market
`, p)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &p, nil
}

// Save upserts the params.
func (p *Params) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_params
  (market, powerup_fee)
VALUES
  (:market, :powerup_fee)
ON CONFLICT(market) DO UPDATE
SET powerup_fee = excluded.powerup_fee
`, p)
}
