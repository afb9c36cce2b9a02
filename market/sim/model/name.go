package model

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// NameBid is the highest bid on a premium name.
type NameBid struct {
	Market     string `db:"market"`
	NewName    string `db:"newname"`
	HighBidder string `db:"high_bidder"`
	HighBid    int64  `db:"high_bid"`
}

// LoadNameBid loads the bid on newname, nil if none exists.
func LoadNameBid(
	ctx context.Context,
	market chain.Name,
	newname chain.Name,
) (*NameBid, error) {
	b := NameBid{Market: string(market), NewName: string(newname)}
	found, err := load(ctx, &b, `
SELECT *
FROM sim_namebids
WHERE market = :market
  AND newname = :newname
`, b)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &b, nil
}

// Save upserts the bid.
func (b *NameBid) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_namebids
  (market, newname, high_bidder, high_bid)
VALUES
  (:market, :newname, :high_bidder, :high_bid)
ON CONFLICT(market, newname) DO UPDATE
SET high_bidder = excluded.high_bidder, high_bid = excluded.high_bid
`, b)
}

// BidRefund is an outbid amount owed back to a bidder.
type BidRefund struct {
	Market  string `db:"market"`
	NewName string `db:"newname"`
	Bidder  string `db:"bidder"`
	Amount  int64  `db:"amount"`
}

// LoadBidRefund loads the refund owed to bidder on newname, nil if none
// exists.
func LoadBidRefund(
	ctx context.Context,
	market chain.Name,
	newname chain.Name,
	bidder chain.Name,
) (*BidRefund, error) {
	r := BidRefund{
		Market:  string(market),
		NewName: string(newname),
		Bidder:  string(bidder),
	}
	found, err := load(ctx, &r, `
SELECT *
FROM sim_bidrefunds
WHERE market = :market
  AND newname = :newname
  AND bidder = :bidder
`, r)
	if err != nil || !found {
		return nil, errors.Trace(err)
	}
	return &r, nil
}

// Save upserts the refund.
func (r *BidRefund) Save(
	ctx context.Context,
) error {
	return exec(ctx, `
INSERT INTO sim_bidrefunds
  (market, newname, bidder, amount)
VALUES
  (:market, :newname, :bidder, :amount)
ON CONFLICT(market, newname, bidder) DO UPDATE
SET amount = excluded.amount
`, r)
}

// Delete removes the refund.
func (r *BidRefund) Delete(
	ctx context.Context,
) error {
	return exec(ctx, `
DELETE FROM sim_bidrefunds
WHERE market = :market
  AND newname = :newname
  AND bidder = :bidder
`, r)
}
