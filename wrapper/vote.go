package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
)

// VoteProducer votes for producers, or delegates the vote to proxy.
func (c *Contract) VoteProducer(
	ctx context.Context,
	voter chain.Name,
	proxy chain.Name,
	producers []chain.Name,
) error {
	return c.proxy(ctx, "voteproducer", voter, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.VoteProducer(ctx, voter, proxy, producers)
		}, refundNone)
}

// VoteUpdate refreshes the vote weight of voter.
func (c *Contract) VoteUpdate(
	ctx context.Context,
	voter chain.Name,
) error {
	return c.proxy(ctx, "voteupdate", voter, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.VoteUpdate(ctx, voter)
		}, refundNone)
}

// ClaimRewards claims owner's rewards and wraps them.
func (c *Contract) ClaimRewards(
	ctx context.Context,
	owner chain.Name,
) error {
	return c.proxy(ctx, "claimrewards", owner, nil,
		func(ctx context.Context, _ chain.Asset) error {
			return c.Market.ClaimRewards(ctx, owner)
		}, refundExcess)
}
