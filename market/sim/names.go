package sim

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
)

// BidName bids bid on newname. An outbid bidder is owed its bid back through
// BidRefund.
func (s *System) BidName(
	ctx context.Context,
	bidder chain.Name,
	newname chain.Name,
	bid chain.Asset,
) error {
	return s.act(ctx, "bidname", bidder, func(ctx context.Context) error {
		if bid.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if !bid.IsPositive() {
			return chain.Invalidf("insufficient bid")
		}
		if !newname.IsValid() {
			return chain.Invalidf("invalid name")
		}

		b, err := model.LoadNameBid(ctx, s.Account, newname)
		if err != nil {
			return errors.Trace(err)
		}
		if b == nil {
			b = &model.NameBid{
				Market:  string(s.Account),
				NewName: string(newname),
			}
		} else {
			if b.HighBidder == string(bidder) {
				return chain.Invalidf("account is already highest bidder")
			}
			if bid.Amount*10 <= b.HighBid*11 {
				return chain.Invalidf("must increase bid by 10%%")
			}
			r, err := model.LoadBidRefund(
				ctx, s.Account, newname, chain.Name(b.HighBidder))
			if err != nil {
				return errors.Trace(err)
			} else if r == nil {
				r = &model.BidRefund{
					Market:  string(s.Account),
					NewName: string(newname),
					Bidder:  b.HighBidder,
				}
			}
			r.Amount += b.HighBid
			if err := r.Save(ctx); err != nil {
				return errors.Trace(err)
			}
		}
		b.HighBidder = string(bidder)
		b.HighBid = bid.Amount
		if err := b.Save(ctx); err != nil {
			return errors.Trace(err)
		}

		return errors.Trace(s.collect(ctx, bidder, bid, "bid name "+string(newname)))
	})
}

// BidRefund pays bidder back what it is owed on newname.
func (s *System) BidRefund(
	ctx context.Context,
	bidder chain.Name,
	newname chain.Name,
) error {
	return s.act(ctx, "bidrefund", bidder, func(ctx context.Context) error {
		r, err := model.LoadBidRefund(ctx, s.Account, newname, bidder)
		if err != nil {
			return errors.Trace(err)
		} else if r == nil {
			return chain.Invalidf("refund not found")
		}
		if err := r.Delete(ctx); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.pay(ctx, bidder, s.native(r.Amount),
			"refund bid on name "+string(newname)))
	})
}
