package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// nativeOf checks quantities are wrapped tokens and returns their native
// equivalents.
func (c *Contract) nativeOf(
	ctx context.Context,
	quantities ...chain.Asset,
) ([]chain.Asset, error) {
	if err := c.enforceSymbol(ctx, quantities...); err != nil {
		return nil, errors.Trace(err)
	}
	res := []chain.Asset{}
	for _, q := range quantities {
		n, err := c.Convert(q, c.NativeSymbol)
		if err != nil {
			return nil, errors.Trace(err)
		}
		res = append(res, n)
	}
	return res, nil
}

// Deposit funds owner's REX fund with wrapped tokens.
func (c *Contract) Deposit(
	ctx context.Context,
	owner chain.Name,
	amount chain.Asset,
) error {
	return c.proxy(ctx, "deposit", owner, []chain.Asset{amount},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.Deposit(ctx, owner, native)
		}, refundNone)
}

// Withdraw withdraws amount from owner's REX fund and wraps it.
func (c *Contract) Withdraw(
	ctx context.Context,
	owner chain.Name,
	amount chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		native, err := c.nativeOf(ctx, amount)
		if err != nil {
			return errors.Trace(err)
		}
		return c.proxy(ctx, "withdraw", owner, nil,
			func(ctx context.Context, _ chain.Asset) error {
				return c.Market.Withdraw(ctx, owner, native[0])
			}, refundExact(native[0]))
	})
}

// BuyRex buys REX with amount out of from's REX fund. The fund is already in
// native currency so no swap takes place.
func (c *Contract) BuyRex(
	ctx context.Context,
	from chain.Name,
	amount chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		native, err := c.nativeOf(ctx, amount)
		if err != nil {
			return errors.Trace(err)
		}
		return c.proxy(ctx, "buyrex", from, nil,
			func(ctx context.Context, _ chain.Asset) error {
				return c.Market.BuyRex(ctx, from, native[0])
			}, refundNone)
	})
}

// SellRex sells rex. The proceeds go to from's REX fund.
func (c *Contract) SellRex(
	ctx context.Context,
	from chain.Name,
	rex chain.Asset,
) error {
	return c.proxy(ctx, "sellrex", from, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.SellRex(ctx, from, rex)
		}, refundNone)
}

// MvFrSavings moves rex out of owner's savings bucket.
func (c *Contract) MvFrSavings(
	ctx context.Context,
	owner chain.Name,
	rex chain.Asset,
) error {
	return c.proxy(ctx, "mvfrsavings", owner, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.MvFrSavings(ctx, owner, rex)
		}, refundNone)
}

// MvToSavings moves rex into owner's savings bucket.
func (c *Contract) MvToSavings(
	ctx context.Context,
	owner chain.Name,
	rex chain.Asset,
) error {
	return c.proxy(ctx, "mvtosavings", owner, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.MvToSavings(ctx, owner, rex)
		}, refundNone)
}

// DonateToRex donates quantity wrapped tokens to the REX pool.
func (c *Contract) DonateToRex(
	ctx context.Context,
	payer chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return c.proxy(ctx, "donatetorex", payer, []chain.Asset{quantity},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.DonateToRex(ctx, payer, native, memo)
		}, refundNone)
}
