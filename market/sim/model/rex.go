package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// RexPool is the REX pool state used to price REX against native currency.
type RexPool struct {
	Market        string `db:"market"`
	TotalLendable int64  `db:"total_lendable"`
	TotalRex      int64  `db:"total_rex"`
}

// LoadRexPool loads the REX pool of market, nil if it is not set.
func LoadRexPool(
	ctx context.Context,
	market chain.Name,
) (*RexPool, error) {
	p := RexPool{Market: string(market)}
	found, err := load(ctx, &p, `
SELECT *
FROM sim_rexpool
WHERE market = :market
`, p)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &p, nil
}

// Save upserts the pool.
func (p *RexPool) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_rexpool
  (market, total_lendable, total_rex)
VALUES
  (:market, :total_lendable, :total_rex)
ON CONFLICT(market) DO UPDATE
SET total_lendable = excluded.total_lendable, total_rex = excluded.total_rex
`, p)
}

// RexFund is the native currency an owner deposited to buy REX with.
type RexFund struct {
	Market  string `db:"market"`
	Owner   string `db:"owner"`
	Balance int64  `db:"balance"`
}

// LoadRexFund loads the fund of owner, nil if none exists.
func LoadRexFund(
	ctx context.Context,
	market chain.Name,
	owner chain.Name,
) (*RexFund, error) {
	f := RexFund{Market: string(market), Owner: string(owner)}
	found, err := load(ctx, &f, `
SELECT *
FROM sim_rexfund
WHERE market = :market
  AND owner = :owner
`, f)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &f, nil
}

// Save upserts the fund.
func (f *RexFund) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_rexfund
  (market, owner, balance)
VALUES
  (:market, :owner, :balance)
ON CONFLICT(market, owner) DO UPDATE
SET balance = excluded.balance
`, f)
}

// RexBalance is the REX an owner holds, split between the staked bucket and
// the unstaking bucket REX is sold from.
type RexBalance struct {
	Market    string `db:"market"`
	Owner     string `db:"owner"`
	Staked    int64  `db:"staked"`
	Unstaking int64  `db:"unstaking"`
	Matured   int64  `db:"matured"`
}

// LoadRexBalance loads the REX balance of owner, nil if none exists.
func LoadRexBalance(
	ctx context.Context,
	market chain.Name,
	owner chain.Name,
) (*RexBalance, error) {
	b := RexBalance{Market: string(market), Owner: string(owner)}
	found, err := load(ctx, &b, `
SELECT *
FROM sim_rexbal
WHERE market = :market
  AND owner = :owner
`, b)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &b, nil
}

// Save upserts the REX balance.
func (b *RexBalance) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_rexbal
  (market, owner, staked, unstaking, matured)
VALUES
  (:market, :owner, :staked, :unstaking, :matured)
ON CONFLICT(market, owner) DO UPDATE
SET staked = excluded.staked,
    unstaking = excluded.unstaking,
    matured = excluded.matured
`, b)
}
