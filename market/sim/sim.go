// Package sim is a simulated native system contract. It keeps the resource
// markets (RAM, REX, bandwidth, name bids, powerup) in the same database as
// the ledgers and settles every purchase through the native ledger.
package sim

import (
	"context"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/ledger"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/market"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"

	// force initialization of schemas
	_ "github.com/VaultaFoundation/vaulta-system-contract/market/sim/model/schemas"
)

const (
	// DefaultPowerUpFee is the native amount (in smallest units) a powerup
	// costs when no fee was configured.
	DefaultPowerUpFee int64 = 10000
	// NullAccount receives burnt RAM.
	NullAccount chain.Name = "eosio.null"
)

var (
	// RamSymbol is the symbol RAM reserves are expressed in.
	RamSymbol = chain.NewSymbol("RAM", 0)
	// RexSymbol is the symbol of REX.
	RexSymbol = chain.NewSymbol("REX", 4)
)

var _ market.Market = (*System)(nil)

// System is a simulated system contract deployed at Account, holding its
// native currency on Native.
type System struct {
	Account chain.Name
	Native  *ledger.Ledger
	Symbol  chain.Symbol

	// RefundDelay is how long undelegated stake matures before it can be
	// refunded.
	RefundDelay time.Duration
	// Now returns the current time.
	Now func() time.Time
}

// New returns a system contract deployed at account settling in the symbol
// currency of native.
func New(
	account chain.Name,
	native *ledger.Ledger,
	symbol chain.Symbol,
) *System {
	return &System{
		Account: account,
		Native:  native,
		Symbol:  symbol,
		Now:     time.Now,
	}
}

// asSelf returns a context running with the system account authority.
func (s *System) asSelf(
	ctx context.Context,
) context.Context {
	return chain.WithAuthority(ctx, s.Account)
}

// collect transfers quantity from from to the system account. The context
// must carry from's authority.
func (s *System) collect(
	ctx context.Context,
	from chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return errors.Trace(s.Native.Transfer(ctx, from, s.Account, quantity, memo))
}

// pay transfers quantity from the system account to to.
func (s *System) pay(
	ctx context.Context,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return errors.Trace(
		s.Native.Transfer(s.asSelf(ctx), s.Account, to, quantity, memo))
}

func (s *System) native(
	amount int64,
) chain.Asset {
	return chain.NewAsset(amount, s.Symbol)
}

// act runs fn as the action named action within a transaction, requiring the
// authority of account.
func (s *System) act(
	ctx context.Context,
	action string,
	account chain.Name,
	fn func(ctx context.Context) error,
) error {
	if err := chain.RequireAuth(ctx, account); err != nil {
		return errors.Trace(err)
	}
	return db.Transact(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"System action: market=%s action=%s account=%s",
			s.Account, action, account)
		return nil
	})
}

// SetRamMarket sets the RAM market reserves.
func (s *System) SetRamMarket(
	ctx context.Context,
	ram chain.Asset,
	quote chain.Asset,
) error {
	return s.act(ctx, "setrammarket", s.Account, func(ctx context.Context) error {
		if ram.Symbol != RamSymbol {
			return chain.Invalidf("ram symbol must be RAM")
		}
		if quote.Symbol != s.Symbol {
			return chain.Invalidf("eos symbol must be %s", s.Symbol.Code)
		}
		m := model.RamMarket{
			Market: string(s.Account),
			Ram:    ram.Amount,
			Quote:  quote.Amount,
		}
		return errors.Trace(m.Save(ctx))
	})
}

// SetRex sets the REX pool state.
func (s *System) SetRex(
	ctx context.Context,
	totalLendable chain.Asset,
	totalRex chain.Asset,
) error {
	return s.act(ctx, "setrex", s.Account, func(ctx context.Context) error {
		if totalLendable.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if totalRex.Symbol != RexSymbol {
			return chain.Invalidf("asset must be REX")
		}
		if !totalLendable.IsPositive() || !totalRex.IsPositive() {
			return chain.Invalidf("REX pool must be positive")
		}
		p := model.RexPool{
			Market:        string(s.Account),
			TotalLendable: totalLendable.Amount,
			TotalRex:      totalRex.Amount,
		}
		return errors.Trace(p.Save(ctx))
	})
}

// SetPowerUpFee sets the native amount a powerup costs.
func (s *System) SetPowerUpFee(
	ctx context.Context,
	fee chain.Asset,
) error {
	return s.act(ctx, "setpowerup", s.Account, func(ctx context.Context) error {
		if fee.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if !fee.IsPositive() {
			return chain.Invalidf("fee must be positive")
		}
		p := model.Params{
			Market:     string(s.Account),
			PowerUpFee: fee.Amount,
		}
		return errors.Trace(p.Save(ctx))
	})
}

// InsertBidRefund records that amount is owed back to bidder on newname.
func (s *System) InsertBidRefund(
	ctx context.Context,
	bidder chain.Name,
	newname chain.Name,
	amount chain.Asset,
) error {
	return s.act(ctx, "insertrefund", s.Account, func(ctx context.Context) error {
		if amount.Symbol != s.Symbol || !amount.IsPositive() {
			return chain.Invalidf("refund must be a positive amount of system token")
		}
		r, err := model.LoadBidRefund(ctx, s.Account, newname, bidder)
		if err != nil {
			return errors.Trace(err)
		} else if r == nil {
			r = &model.BidRefund{
				Market:  string(s.Account),
				NewName: string(newname),
				Bidder:  string(bidder),
			}
		}
		r.Amount += amount.Amount
		return errors.Trace(r.Save(ctx))
	})
}

// AddReward makes amount claimable by owner.
func (s *System) AddReward(
	ctx context.Context,
	owner chain.Name,
	amount chain.Asset,
) error {
	return s.act(ctx, "addreward", s.Account, func(ctx context.Context) error {
		if amount.Symbol != s.Symbol || !amount.IsPositive() {
			return chain.Invalidf("reward must be a positive amount of system token")
		}
		r, err := model.LoadReward(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if r == nil {
			r = &model.Reward{Market: string(s.Account), Owner: string(owner)}
		}
		r.Amount += amount.Amount
		return errors.Trace(r.Save(ctx))
	})
}
