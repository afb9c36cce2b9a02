package model

import (
	"context"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// Stake is the bandwidth an owner delegated to a receiver.
type Stake struct {
	Market   string `db:"market"`
	Owner    string `db:"owner"`
	Receiver string `db:"receiver"`
	Net      int64  `db:"net"`
	CPU      int64  `db:"cpu"`
}

// LoadStake loads the stake from owner to receiver, nil if none exists.
func LoadStake(
	ctx context.Context,
	market chain.Name,
	owner chain.Name,
	receiver chain.Name,
) (*Stake, error) {
	s := Stake{
		Market:   string(market),
		Owner:    string(owner),
		Receiver: string(receiver),
	}
	found, err := load(ctx, &s, `
SELECT *
FROM sim_stakes
WHERE market = :market
  AND owner = :owner
  AND receiver = :receiver
`, s)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &s, nil
}

// Save upserts the stake.
func (s *Stake) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_stakes
  (market, owner, receiver, net, cpu)
VALUES
  (:market, :owner, :receiver, :net, :cpu)
ON CONFLICT(market, owner, receiver) DO UPDATE
SET net = excluded.net, cpu = excluded.cpu
`, s)
}

// RefundRequest is native currency released by undelegation, claimable once
// the refund delay has passed.
type RefundRequest struct {
	Market      string    `db:"market"`
	Owner       string    `db:"owner"`
	RequestTime time.Time `db:"request_time"`
	Net         int64     `db:"net"`
	CPU         int64     `db:"cpu"`
}

// LoadRefundRequest loads the refund request of owner, nil if none exists.
func LoadRefundRequest(
	ctx context.Context,
	market chain.Name,
	owner chain.Name,
) (*RefundRequest, error) {
	r := RefundRequest{Market: string(market), Owner: string(owner)}
	found, err := load(ctx, &r, `
SELECT *
FROM sim_refunds
WHERE market = :market
  AND owner = :owner
`, r)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &r, nil
}

// Save upserts the refund request.
func (r *RefundRequest) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_refunds
  (market, owner, request_time, net, cpu)
VALUES
  (:market, :owner, :request_time, :net, :cpu)
ON CONFLICT(market, owner) DO UPDATE
SET request_time = excluded.request_time,
    net = excluded.net,
    cpu = excluded.cpu
`, r)
}

// Delete removes the refund request.
func (r *RefundRequest) Delete(
	ctx context.Context,
) error {
	return exec(ctx, `
DELETE FROM sim_refunds
WHERE market = :market
  AND owner = :owner
`, r)
}
