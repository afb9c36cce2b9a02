package sim

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
)

// PowerUp rents resources for receiver. It charges the configured fee, or the
// whole of maxPayment when it does not cover the fee.
func (s *System) PowerUp(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	days uint32,
	netFrac int64,
	cpuFrac int64,
	maxPayment chain.Asset,
) error {
	return s.act(ctx, "powerup", payer, func(ctx context.Context) error {
		if maxPayment.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if !maxPayment.IsPositive() {
			return chain.Invalidf("insufficient payment")
		}
		if netFrac < 0 || cpuFrac < 0 {
			return chain.Invalidf("resource fractions can't be negative")
		}
		if !receiver.IsValid() {
			return chain.Invalidf("receiver account does not exist")
		}

		fee := DefaultPowerUpFee
		p, err := model.LoadParams(ctx, s.Account)
		if err != nil {
			return errors.Trace(err)
		} else if p != nil {
			fee = p.PowerUpFee
		}
		if maxPayment.Amount < fee {
			fee = maxPayment.Amount
		}
		return errors.Trace(s.collect(ctx, payer, s.native(fee), "powerup"))
	})
}

func (s *System) checkStakeQuantities(
	net chain.Asset,
	cpu chain.Asset,
	verb string,
) error {
	if net.Symbol != s.Symbol {
		return chain.Invalidf("net asset must be system token")
	}
	if cpu.Symbol != s.Symbol {
		return chain.Invalidf("cpu asset must be system token")
	}
	if net.Amount < 0 {
		return chain.Invalidf("must %s net a positive amount", verb)
	}
	if cpu.Amount < 0 {
		return chain.Invalidf("must %s cpu a positive amount", verb)
	}
	if net.Amount+cpu.Amount <= 0 {
		return chain.Invalidf("must %s a positive amount", verb)
	}
	return nil
}

// DelegateBW stakes net and cpu from from to receiver. When transfer is set
// receiver owns the stake.
func (s *System) DelegateBW(
	ctx context.Context,
	from chain.Name,
	receiver chain.Name,
	net chain.Asset,
	cpu chain.Asset,
	transfer bool,
) error {
	return s.act(ctx, "delegatebw", from, func(ctx context.Context) error {
		if err := s.checkStakeQuantities(net, cpu, "stake"); err != nil {
			return errors.Trace(err)
		}
		if !receiver.IsValid() {
			return chain.Invalidf("receiver account does not exist")
		}

		owner := from
		if transfer && receiver != from {
			owner = receiver
		}
		st, err := model.LoadStake(ctx, s.Account, owner, receiver)
		if err != nil {
			return errors.Trace(err)
		} else if st == nil {
			st = &model.Stake{
				Market:   string(s.Account),
				Owner:    string(owner),
				Receiver: string(receiver),
			}
		}
		st.Net += net.Amount
		st.CPU += cpu.Amount
		if err := st.Save(ctx); err != nil {
			return errors.Trace(err)
		}

		return errors.Trace(s.collect(
			ctx, from, s.native(net.Amount+cpu.Amount), "stake bandwidth"))
	})
}

// UndelegateBW unstakes net and cpu from receiver. The released amount is
// claimable through Refund once matured.
func (s *System) UndelegateBW(
	ctx context.Context,
	from chain.Name,
	receiver chain.Name,
	net chain.Asset,
	cpu chain.Asset,
) error {
	return s.act(ctx, "undelegatebw", from, func(ctx context.Context) error {
		if err := s.checkStakeQuantities(net, cpu, "unstake"); err != nil {
			return errors.Trace(err)
		}
		if err := s.unstake(ctx, from, receiver, net, cpu); err != nil {
			return errors.Trace(err)
		}

		r, err := model.LoadRefundRequest(ctx, s.Account, from)
		if err != nil {
			return errors.Trace(err)
		} else if r == nil {
			r = &model.RefundRequest{Market: string(s.Account), Owner: string(from)}
		}
		r.RequestTime = s.Now().UTC()
		r.Net += net.Amount
		r.CPU += cpu.Amount
		return errors.Trace(r.Save(ctx))
	})
}

func (s *System) unstake(
	ctx context.Context,
	from chain.Name,
	receiver chain.Name,
	net chain.Asset,
	cpu chain.Asset,
) error {
	st, err := model.LoadStake(ctx, s.Account, from, receiver)
	if err != nil {
		return errors.Trace(err)
	} else if st == nil {
		return chain.Invalidf("no stake found")
	}
	if st.Net < net.Amount {
		return chain.Invalidf("insufficient net stake")
	}
	if st.CPU < cpu.Amount {
		return chain.Invalidf("insufficient cpu stake")
	}
	st.Net -= net.Amount
	st.CPU -= cpu.Amount
	return errors.Trace(st.Save(ctx))
}

// Refund pays owner its matured undelegated stake.
func (s *System) Refund(
	ctx context.Context,
	owner chain.Name,
) error {
	return s.act(ctx, "refund", owner, func(ctx context.Context) error {
		r, err := model.LoadRefundRequest(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if r == nil {
			return chain.Invalidf("no refund found")
		}
		if s.Now().UTC().Before(r.RequestTime.Add(s.RefundDelay)) {
			return chain.Invalidf("refund is not available yet")
		}
		if err := r.Delete(ctx); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.pay(ctx, owner, s.native(r.Net+r.CPU), "unstake"))
	})
}

// UnstakeToRex moves staked bandwidth directly into REX.
func (s *System) UnstakeToRex(
	ctx context.Context,
	owner chain.Name,
	receiver chain.Name,
	fromNet chain.Asset,
	fromCPU chain.Asset,
) error {
	return s.act(ctx, "unstaketorex", owner, func(ctx context.Context) error {
		if err := s.checkStakeQuantities(fromNet, fromCPU, "unstake"); err != nil {
			return errors.Trace(err)
		}
		if err := s.unstake(ctx, owner, receiver, fromNet, fromCPU); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(
			s.stakeToRex(ctx, owner, fromNet.Amount+fromCPU.Amount))
	})
}

// Delegated returns the net and cpu owner staked to receiver.
func (s *System) Delegated(
	ctx context.Context,
	owner chain.Name,
	receiver chain.Name,
) (net chain.Asset, cpu chain.Asset, err error) {
	st, err := model.LoadStake(ctx, s.Account, owner, receiver)
	if err != nil {
		return chain.Asset{}, chain.Asset{}, errors.Trace(err)
	} else if st == nil {
		return s.native(0), s.native(0), nil
	}
	return s.native(st.Net), s.native(st.CPU), nil
}
