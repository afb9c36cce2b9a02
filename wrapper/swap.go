package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"
)

// SwapBeforeForwarding moves quantity wrapped tokens from account to the
// contract float and credits account the native equivalent, ready to be
// spent on a market action. It requires account's authority.
func (c *Contract) SwapBeforeForwarding(
	ctx context.Context,
	account chain.Name,
	quantity chain.Asset,
) error {
	if err := chain.RequireAuth(ctx, account); err != nil {
		return errors.Trace(err)
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		if err := c.enforceSymbol(ctx, quantity); err != nil {
			return errors.Trace(err)
		}
		if !quantity.IsPositive() {
			return chain.Invalidf("Swap before amount must be greater than 0")
		}
		if err := c.Token.SubBalance(ctx, account, quantity); err != nil {
			return errors.Trace(err)
		}
		if err := c.Token.AddBalance(ctx, c.Self, quantity); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(c.creditNative(ctx, account, quantity))
	})
}

// SwapAfterForwarding sends native from account back to the contract, which
// wraps it for account. It requires account's authority.
func (c *Contract) SwapAfterForwarding(
	ctx context.Context,
	account chain.Name,
	native chain.Asset,
) error {
	if err := chain.RequireAuth(ctx, account); err != nil {
		return errors.Trace(err)
	}
	native, err := c.Convert(native, c.NativeSymbol)
	if err != nil {
		return errors.Trace(err)
	}
	if !native.IsPositive() {
		return chain.Invalidf("Swap after amount must be greater than 0")
	}
	return errors.Trace(c.Wrap(ctx, account, native))
}

// EnforceBalance checks account's native balance equals expected.
func (c *Contract) EnforceBalance(
	ctx context.Context,
	account chain.Name,
	expected chain.Asset,
) error {
	balance, err := c.Native.Balance(ctx, account, c.NativeSymbol)
	if err != nil {
		return errors.Trace(err)
	}
	if balance != expected {
		return chain.Invalidf(
			"EOS balance mismatch: %s != %s", balance, expected)
	}
	return nil
}

// SwapExcess wraps back whatever native account holds above before. It
// requires the contract authority.
func (c *Contract) SwapExcess(
	ctx context.Context,
	account chain.Name,
	before chain.Asset,
) error {
	if err := chain.RequireAuth(ctx, c.Self); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.swapExcess(ctx, account, before))
}

func (c *Contract) swapExcess(
	ctx context.Context,
	account chain.Name,
	before chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		after, err := c.Native.Balance(ctx, account, c.NativeSymbol)
		if err != nil {
			return errors.Trace(err)
		}
		if after.Amount <= before.Amount {
			return nil
		}
		excess, err := after.Sub(before)
		if err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(c.SwapAfterForwarding(
			chain.WithAuthority(ctx, account), account, excess))
	})
}

// BlockSwapTo adds account to, or removes it from, the recipients SwapTo
// refuses. It requires account's or the contract authority.
func (c *Contract) BlockSwapTo(
	ctx context.Context,
	account chain.Name,
	block bool,
) error {
	if !chain.HasAuth(ctx, c.Self) {
		if err := chain.RequireAuth(ctx, account); err != nil {
			return errors.Trace(err)
		}
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		blocked, err := model.LoadBlockedByContractAccount(ctx, c.Self, account)
		if err != nil {
			return errors.Trace(err)
		}
		switch {
		case block && blocked == nil:
			if _, err := model.CreateBlocked(ctx, c.Self, account); err != nil {
				return errors.Trace(err)
			}
		case !block && blocked != nil:
			if err := blocked.Delete(ctx); err != nil {
				return errors.Trace(err)
			}
		default:
			return nil
		}
		logging.Logf(ctx,
			"Swap recipient updated: contract=%s account=%s blocked=%t",
			c.Self, account, block)
		return nil
	})
}

// SwapTo swaps quantity for from and sends the swapped currency to to.
// Native quantities are wrapped, wrapped quantities are unwrapped.
func (c *Contract) SwapTo(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	if err := chain.RequireAuth(ctx, from); err != nil {
		return errors.Trace(err)
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		blocked, err := model.LoadBlockedByContractAccount(ctx, c.Self, to)
		if err != nil {
			return errors.Trace(err)
		} else if blocked != nil {
			return chain.Invalidf(
				"Recipient is blocked from receiving swapped tokens: %s", to)
		}
		sym, err := c.TokenSymbol(ctx)
		if err != nil {
			return errors.Trace(err)
		}

		ctx = chain.WithAuthority(ctx, from)
		switch quantity.Symbol {
		case c.NativeSymbol:
			wrapped, err := c.Convert(quantity, sym)
			if err != nil {
				return errors.Trace(err)
			}
			if err := c.Native.Transfer(ctx, from, c.Self, quantity, memo); err != nil {
				return errors.Trace(err)
			}
			return errors.Trace(c.Token.Transfer(ctx, from, to, wrapped, memo))
		case sym:
			native, err := c.Convert(quantity, c.NativeSymbol)
			if err != nil {
				return errors.Trace(err)
			}
			if err := c.Token.Transfer(ctx, from, c.Self, quantity, memo); err != nil {
				return errors.Trace(err)
			}
			return errors.Trace(c.Native.Transfer(ctx, from, to, native, memo))
		}
		return chain.Invalidf("Invalid symbol")
	})
}
