package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/ledger"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"
)

// BalancesResource is the representation of the balances of an account on
// both ledgers.
type BalancesResource struct {
	Owner   chain.Name    `json:"owner"`
	Native  []chain.Asset `json:"native"`
	Wrapped []chain.Asset `json:"wrapped"`
}

// ActionResource is the representation of a completed action.
type ActionResource struct {
	Action   string           `json:"action"`
	Account  chain.Name       `json:"account"`
	Balances BalancesResource `json:"balances"`
}

// StatsResource is the representation of the currencies of both ledgers.
type StatsResource struct {
	Native  []ledger.Stat `json:"native"`
	Wrapped []ledger.Stat `json:"wrapped"`
}

// AuditResource is the representation of the audit slot.
type AuditResource struct {
	Scope      chain.Name `json:"scope"`
	LastAction string     `json:"last_action"`
	Updated    *int64     `json:"updated"`
}

// NewBalancesResource loads the balances of owner.
func (c *Contract) NewBalancesResource(
	ctx context.Context,
	owner chain.Name,
) (*BalancesResource, error) {
	native, err := c.Native.Accounts(ctx, owner)
	if err != nil {
		return nil, errors.Trace(err)
	}
	wrapped, err := c.Token.Accounts(ctx, owner)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &BalancesResource{
		Owner:   owner,
		Native:  native,
		Wrapped: wrapped,
	}, nil
}

// NewStatsResource loads the currencies of both ledgers.
func (c *Contract) NewStatsResource(
	ctx context.Context,
) (*StatsResource, error) {
	native, err := c.Native.Stats(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	wrapped, err := c.Token.Stats(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &StatsResource{
		Native:  native,
		Wrapped: wrapped,
	}, nil
}

// NewAuditResource loads the audit slot.
func (c *Contract) NewAuditResource(
	ctx context.Context,
) (*AuditResource, error) {
	audit, err := model.LoadAuditByScope(ctx, c.Self)
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := AuditResource{Scope: c.Self}
	if audit != nil {
		updated := audit.Updated.UnixNano() / (1000 * 1000)
		res.LastAction = audit.LastAction
		res.Updated = &updated
	}
	return &res, nil
}
