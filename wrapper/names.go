package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
)

// BidName bids on newname with wrapped tokens. An outbid bidder gets a bid
// refund claimable through BidRefund.
func (c *Contract) BidName(
	ctx context.Context,
	bidder chain.Name,
	newname chain.Name,
	bid chain.Asset,
) error {
	return c.proxy(ctx, "bidname", bidder, []chain.Asset{bid},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.BidName(ctx, bidder, newname, native)
		}, refundNone)
}

// BidRefund claims the refund of an outbid bid and wraps it.
func (c *Contract) BidRefund(
	ctx context.Context,
	bidder chain.Name,
	newname chain.Name,
) error {
	return c.proxy(ctx, "bidrefund", bidder, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.BidRefund(ctx, bidder, newname)
		}, refundExcess)
}
