package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
)

// Reserve is the backing report of the contract.
type Reserve struct {
	// Native is the native balance of the contract.
	Native chain.Asset `json:"native"`
	// Supply is the wrapped token supply, float included.
	Supply chain.Asset `json:"supply"`
	// Float is the wrapped balance held by the contract itself.
	Float chain.Asset `json:"float"`
	// Circulating is Supply minus Float.
	Circulating chain.Asset `json:"circulating"`
}

// Convert returns quantity expressed in the to symbol at the 1:1 peg.
func (c *Contract) Convert(
	quantity chain.Asset,
	to chain.Symbol,
) (chain.Asset, error) {
	return quantity.Convert(to)
}

// Wrap sends native from owner to the contract, which credits owner the same
// amount of wrapped tokens.
func (c *Contract) Wrap(
	ctx context.Context,
	owner chain.Name,
	native chain.Asset,
) error {
	return errors.Trace(c.Native.Transfer(ctx, owner, c.Self, native, ""))
}

// Unwrap sends wrapped from owner to the contract, which credits owner the
// same amount of native currency out of its reserve.
func (c *Contract) Unwrap(
	ctx context.Context,
	owner chain.Name,
	wrapped chain.Asset,
) error {
	return errors.Trace(c.Token.Transfer(ctx, owner, c.Self, wrapped, ""))
}

// onNativeTransfer wraps the native currency received by the contract.
func (c *Contract) onNativeTransfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
) error {
	if from == c.Self || to != c.Self {
		return nil
	}
	if !quantity.IsPositive() {
		return chain.Invalidf("Swap amount must be greater than 0")
	}
	for _, s := range c.IgnoredSenders {
		if from == s {
			return nil
		}
	}
	if quantity.Symbol != c.NativeSymbol {
		return chain.Invalidf("Invalid symbol")
	}

	sym, err := c.TokenSymbol(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	wrapped, err := c.Convert(quantity, sym)
	if err != nil {
		return errors.Trace(err)
	}
	logging.Logf(ctx,
		"Wrap: contract=%s owner=%s quantity=%s", c.Self, from, wrapped)
	return errors.Trace(
		c.Token.Transfer(c.asSelf(ctx), c.Self, from, wrapped, ""))
}

// onTokenTransfer unwraps the wrapped tokens received by the contract. The
// ledger already debited the sender.
func (c *Contract) onTokenTransfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
) error {
	if from == c.Self || to != c.Self {
		return nil
	}
	if err := c.enforceSymbol(ctx, quantity); err != nil {
		return errors.Trace(err)
	}
	logging.Logf(ctx,
		"Unwrap: contract=%s owner=%s quantity=%s", c.Self, from, quantity)
	return errors.Trace(c.creditNative(ctx, from, quantity))
}

// creditNative sends the native equivalent of quantity from the reserve to
// account. It must only follow a debit of account's wrapped balance.
func (c *Contract) creditNative(
	ctx context.Context,
	account chain.Name,
	quantity chain.Asset,
) error {
	if !quantity.IsPositive() {
		return chain.Invalidf("Credit amount must be greater than 0")
	}
	native, err := c.Convert(quantity, c.NativeSymbol)
	if err != nil {
		return errors.Trace(err)
	}
	reserve, err := c.Native.Balance(ctx, c.Self, c.NativeSymbol)
	if err != nil {
		return errors.Trace(err)
	}
	if reserve.Amount < native.Amount {
		return ErrInsufficientReserve(ctx, reserve, native)
	}
	return errors.Trace(
		c.Native.Transfer(c.asSelf(ctx), c.Self, account, native, ""))
}

// Reserve computes the backing report of the contract.
func (c *Contract) Reserve(
	ctx context.Context,
) (*Reserve, error) {
	sym, err := c.TokenSymbol(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	stat, err := c.Token.Stat(ctx, sym.Code)
	if err != nil {
		return nil, errors.Trace(err)
	} else if stat == nil {
		return nil, chain.Invalidf("token with symbol does not exist")
	}
	float, err := c.Token.Balance(ctx, c.Self, sym)
	if err != nil {
		return nil, errors.Trace(err)
	}
	native, err := c.Native.Balance(ctx, c.Self, c.NativeSymbol)
	if err != nil {
		return nil, errors.Trace(err)
	}
	circulating, err := stat.Supply.Sub(float)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &Reserve{
		Native:      native,
		Supply:      stat.Supply,
		Float:       float,
		Circulating: circulating,
	}, nil
}

// CheckBacking verifies the native reserve covers the circulating wrapped
// supply.
func (c *Contract) CheckBacking(
	ctx context.Context,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		r, err := c.Reserve(ctx)
		if err != nil {
			return errors.Trace(err)
		}
		required, err := c.Convert(r.Circulating, c.NativeSymbol)
		if err != nil {
			return errors.Trace(err)
		}
		if r.Native.Amount < required.Amount {
			return ErrInsufficientReserve(ctx, r.Native, required)
		}
		return nil
	})
}
