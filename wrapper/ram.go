package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// BuyRam buys RAM for receiver, paid by payer in wrapped tokens.
func (c *Contract) BuyRam(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	quant chain.Asset,
) error {
	return c.proxy(ctx, "buyram", payer, []chain.Asset{quant},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.BuyRam(ctx, payer, receiver, native)
		}, refundNone)
}

// BuyRamSelf buys RAM for payer, paid in wrapped tokens.
func (c *Contract) BuyRamSelf(
	ctx context.Context,
	payer chain.Name,
	quant chain.Asset,
) error {
	return c.proxy(ctx, "buyramself", payer, []chain.Asset{quant},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.BuyRamSelf(ctx, payer, native)
		}, refundNone)
}

// BuyRamBurn buys RAM with wrapped tokens and burns it. The native currency
// spent leaves the reserve while the wrapped tokens return to the float, so
// circulating supply and reserve shrink together.
func (c *Contract) BuyRamBurn(
	ctx context.Context,
	payer chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return c.proxy(ctx, "buyramburn", payer, []chain.Asset{quantity},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.BuyRamBurn(ctx, payer, native, memo)
		}, refundNone)
}

// BuyRamBytes buys bytes of RAM for receiver. The market prices the bytes;
// the payer's native balance must be left untouched.
func (c *Contract) BuyRamBytes(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	bytes uint32,
) error {
	if err := chain.RequireAuth(ctx, payer); err != nil {
		return errors.Trace(err)
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		cost, err := c.Market.QuoteRamBytes(ctx, bytes)
		if err != nil {
			return marketRejected(err)
		}
		sym, err := c.TokenSymbol(ctx)
		if err != nil {
			return errors.Trace(err)
		}
		payment, err := c.Convert(cost, sym)
		if err != nil {
			return errors.Trace(err)
		}

		return c.proxy(ctx, "buyrambytes", payer, []chain.Asset{payment},
			func(ctx context.Context, native chain.Asset) error {
				return c.Market.BuyRamBytes(ctx, payer, receiver, bytes)
			},
			func(
				ctx context.Context,
				c *Contract,
				payer chain.Name,
				before chain.Asset,
			) error {
				if err := c.swapExcess(ctx, payer, before); err != nil {
					return errors.Trace(err)
				}
				return errors.Trace(c.EnforceBalance(ctx, payer, before))
			})
	})
}

// RamBurn burns bytes of owner's RAM.
func (c *Contract) RamBurn(
	ctx context.Context,
	owner chain.Name,
	bytes int64,
	memo string,
) error {
	return c.proxy(ctx, "ramburn", owner, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.RamBurn(ctx, owner, bytes, memo)
		}, refundNone)
}

// RamTransfer moves bytes of RAM from from to to.
func (c *Contract) RamTransfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	bytes int64,
	memo string,
) error {
	return c.proxy(ctx, "ramtransfer", from, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.RamTransfer(ctx, from, to, bytes, memo)
		}, refundNone)
}

// SellRam sells bytes of account's RAM and wraps the proceeds.
func (c *Contract) SellRam(
	ctx context.Context,
	account chain.Name,
	bytes int64,
) error {
	return c.proxy(ctx, "sellram", account, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.SellRam(ctx, account, bytes)
		}, refundExcess)
}
