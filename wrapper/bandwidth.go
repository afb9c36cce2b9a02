package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// PowerUp rents capacity for receiver. The whole maxPayment is swapped and
// what the market does not charge is wrapped back.
func (c *Contract) PowerUp(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	days uint32,
	netFrac int64,
	cpuFrac int64,
	maxPayment chain.Asset,
) error {
	return c.proxy(ctx, "powerup", payer, []chain.Asset{maxPayment},
		func(ctx context.Context, native chain.Asset) error {
			return c.Market.PowerUp(
				ctx, payer, receiver, days, netFrac, cpuFrac, native)
		}, refundExcess)
}

// DelegateBW stakes net and cpu, paid in wrapped tokens, to receiver.
func (c *Contract) DelegateBW(
	ctx context.Context,
	from chain.Name,
	receiver chain.Name,
	net chain.Asset,
	cpu chain.Asset,
	transfer bool,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		native, err := c.nativeOf(ctx, net, cpu)
		if err != nil {
			return errors.Trace(err)
		}
		return c.proxy(ctx, "delegatebw", from, []chain.Asset{net, cpu},
			func(ctx context.Context, _ chain.Asset) error {
				return c.Market.DelegateBW(
					ctx, from, receiver, native[0], native[1], transfer)
			}, refundNone)
	})
}

// UndelegateBW unstakes net and cpu. The stake is released through Refund
// once matured.
func (c *Contract) UndelegateBW(
	ctx context.Context,
	from chain.Name,
	receiver chain.Name,
	net chain.Asset,
	cpu chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		native, err := c.nativeOf(ctx, net, cpu)
		if err != nil {
			return errors.Trace(err)
		}
		return c.proxy(ctx, "undelegatebw", from, nil,
			func(ctx context.Context, _ chain.Asset) error {
				return c.Market.UndelegateBW(
					ctx, from, receiver, native[0], native[1])
			}, refundNone)
	})
}

// Refund claims owner's matured unstaked funds and wraps them.
func (c *Contract) Refund(
	ctx context.Context,
	owner chain.Name,
) error {
	return c.proxy(ctx, "refund", owner, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.Refund(ctx, owner)
		}, refundExcess)
}

// UnstakeToRex moves stake delegated to receiver into REX.
func (c *Contract) UnstakeToRex(
	ctx context.Context,
	owner chain.Name,
	receiver chain.Name,
	fromNet chain.Asset,
	fromCPU chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		native, err := c.nativeOf(ctx, fromNet, fromCPU)
		if err != nil {
			return errors.Trace(err)
		}
		return c.proxy(ctx, "unstaketorex", owner, nil,
			func(ctx context.Context, _ chain.Asset) error {
				return c.Market.UnstakeToRex(
					ctx, owner, receiver, native[0], native[1])
			}, refundNone)
	})
}
