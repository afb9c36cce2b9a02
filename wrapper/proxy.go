package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"
)

// refund reconciles the payer's native balance once the market action ran.
// before is the payer's native balance prior to any swap.
type refund func(
	ctx context.Context,
	c *Contract,
	payer chain.Name,
	before chain.Asset,
) error

// refundNone leaves the payer's native balance as the market left it.
func refundNone(
	ctx context.Context,
	c *Contract,
	payer chain.Name,
	before chain.Asset,
) error {
	return nil
}

// refundExcess wraps back any native the payer gained during the action.
func refundExcess(
	ctx context.Context,
	c *Contract,
	payer chain.Name,
	before chain.Asset,
) error {
	return errors.Trace(c.swapExcess(ctx, payer, before))
}

// refundExact wraps back exactly amount.
func refundExact(
	amount chain.Asset,
) refund {
	return func(
		ctx context.Context,
		c *Contract,
		payer chain.Name,
		before chain.Asset,
	) error {
		return errors.Trace(c.SwapAfterForwarding(ctx, payer, amount))
	}
}

// proxy runs a market action on behalf of payer. The wrapped payments are
// swapped to native beforehand, forward receives their native total and the
// refund policy reconciles what the market sent back. The whole action runs
// in one transaction; the audit slot is updated last.
func (c *Contract) proxy(
	ctx context.Context,
	action string,
	payer chain.Name,
	payments []chain.Asset,
	forward func(ctx context.Context, native chain.Asset) error,
	policy refund,
) error {
	if err := chain.RequireAuth(ctx, payer); err != nil {
		return errors.Trace(err)
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		ctx = chain.WithAuthority(ctx, payer)

		before, err := c.Native.Balance(ctx, payer, c.NativeSymbol)
		if err != nil {
			return errors.Trace(err)
		}

		native := chain.NewAsset(0, c.NativeSymbol)
		if len(payments) > 0 {
			if err := c.enforceSymbol(ctx, payments...); err != nil {
				return errors.Trace(err)
			}
			total := payments[0]
			for _, p := range payments[1:] {
				if total, err = total.Add(p); err != nil {
					return errors.Trace(err)
				}
			}
			if err := c.SwapBeforeForwarding(ctx, payer, total); err != nil {
				return errors.Trace(err)
			}
			if native, err = c.Convert(total, c.NativeSymbol); err != nil {
				return errors.Trace(err)
			}
		}

		if err := marketRejected(forward(ctx, native)); err != nil {
			return errors.Trace(err)
		}
		if err := policy(ctx, c, payer, before); err != nil {
			return errors.Trace(err)
		}
		if err := c.CheckBacking(ctx); err != nil {
			return errors.Trace(err)
		}

		if _, err := model.SaveAudit(ctx, c.Self, action); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"Proxy action: contract=%s action=%s payer=%s native=%s",
			c.Self, action, payer, native)
		return nil
	})
}

// LastAction returns the name of the last completed proxy action, empty if
// none completed yet.
func (c *Contract) LastAction(
	ctx context.Context,
) (string, error) {
	audit, err := model.LoadAuditByScope(ctx, c.Self)
	if err != nil {
		return "", errors.Trace(err)
	} else if audit == nil {
		return "", nil
	}
	return audit.LastAction, nil
}
