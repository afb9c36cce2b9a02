package sim

import (
	"context"
	"strings"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
)

// MaxProducerVotes is the maximum number of producers a voter can vote for.
const MaxProducerVotes = 30

// VoteProducer records voter's producer selection, or its proxy.
func (s *System) VoteProducer(
	ctx context.Context,
	voter chain.Name,
	proxy chain.Name,
	producers []chain.Name,
) error {
	return s.act(ctx, "voteproducer", voter, func(ctx context.Context) error {
		if proxy != "" {
			if len(producers) > 0 {
				return chain.Invalidf("cannot vote for producers and proxy at same time")
			}
			if proxy == voter {
				return chain.Invalidf("cannot proxy to self")
			}
		}
		if len(producers) > MaxProducerVotes {
			return chain.Invalidf("attempt to vote for too many producers")
		}
		names := make([]string, 0, len(producers))
		for i, p := range producers {
			if i > 0 && producers[i-1] >= p {
				return chain.Invalidf("producer votes must be unique and sorted")
			}
			names = append(names, string(p))
		}

		v := model.Vote{
			Market:    string(s.Account),
			Voter:     string(voter),
			Proxy:     string(proxy),
			Producers: strings.Join(names, ","),
			Updated:   s.Now().UTC(),
		}
		return errors.Trace(v.Save(ctx))
	})
}

// VoteUpdate refreshes the weight of voter's existing vote.
func (s *System) VoteUpdate(
	ctx context.Context,
	voter chain.Name,
) error {
	return s.act(ctx, "voteupdate", voter, func(ctx context.Context) error {
		v, err := model.LoadVote(ctx, s.Account, voter)
		if err != nil {
			return errors.Trace(err)
		} else if v == nil {
			return chain.Invalidf("no voter found")
		}
		v.Updated = s.Now().UTC()
		return errors.Trace(v.Save(ctx))
	})
}

// ClaimRewards pays owner its unclaimed rewards.
func (s *System) ClaimRewards(
	ctx context.Context,
	owner chain.Name,
) error {
	return s.act(ctx, "claimrewards", owner, func(ctx context.Context) error {
		r, err := model.LoadReward(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if r == nil || r.Amount <= 0 {
			return chain.Invalidf("no rewards to claim")
		}
		if err := r.Delete(ctx); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.pay(ctx, owner, s.native(r.Amount), "claim rewards"))
	})
}

// Votes returns the proxy and producers voter voted for.
func (s *System) Votes(
	ctx context.Context,
	voter chain.Name,
) (chain.Name, []chain.Name, error) {
	v, err := model.LoadVote(ctx, s.Account, voter)
	if err != nil {
		return "", nil, errors.Trace(err)
	} else if v == nil {
		return "", nil, nil
	}
	producers := []chain.Name{}
	for _, p := range strings.Split(v.Producers, ",") {
		if p != "" {
			producers = append(producers, chain.Name(p))
		}
	}
	return chain.Name(v.Proxy), producers, nil
}
