package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// RamMarket is the bancor connector state of the RAM market: the RAM and
// native currency reserves.
type RamMarket struct {
	Market string `db:"market"`
	Ram    int64  `db:"ram"`
	Quote  int64  `db:"quote"`
}

// LoadRamMarket loads the RAM market of market, nil if it is not set.
func LoadRamMarket(
	ctx context.Context,
	market chain.Name,
) (*RamMarket, error) {
	m := RamMarket{Market: string(market)}
	found, err := load(ctx, &m, `
SELECT *
FROM sim_rammarket
WHERE market = :market
`, m)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &m, nil
}

// Save upserts the RAM market.
func (m *RamMarket) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_rammarket
  (market, ram, quote)
VALUES
  (:market, :ram, :quote)
ON CONFLICT(market) DO UPDATE
SET ram = excluded.ram, quote = excluded.quote
`, m)
}

// RamBytes is the RAM quota an account holds.
type RamBytes struct {
	Market string `db:"market"`
	Owner  string `db:"owner"`
	Bytes  int64  `db:"bytes"`
}

// LoadRamBytes loads the quota of owner, zero if none is recorded.
func LoadRamBytes(
	ctx context.Context,
	market chain.Name,
	owner chain.Name,
) (*RamBytes, error) {
	r := RamBytes{Market: string(market), Owner: string(owner)}
	if _, err := load(ctx, &r, `
SELECT *
FROM sim_rambytes
WHERE market = :market
  AND owner = :owner
`, r); err != nil {
		return nil, errors.Trace(err)
	}
	return &r, nil
}

// Save upserts the quota.
func (r *RamBytes) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_rambytes
  (market, owner, bytes)
VALUES
  (:market, :owner, :bytes)
ON CONFLICT(market, owner) DO UPDATE
SET bytes = excluded.bytes
`, r)
}
