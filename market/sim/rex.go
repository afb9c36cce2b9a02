package sim

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
)

func (s *System) rexPool(
	ctx context.Context,
) (*model.RexPool, error) {
	p, err := model.LoadRexPool(ctx, s.Account)
	if err != nil {
		return nil, errors.Trace(err)
	} else if p == nil {
		return nil, chain.Invalidf("REX pool not found")
	}
	return p, nil
}

// eosToRex returns the REX amount bought would add to the pool.
func eosToRex(
	p *model.RexPool,
	amount int64,
) int64 {
	return mulDiv(p.TotalRex, amount, p.TotalLendable)
}

// rexToEos returns the native amount rex is worth in the pool.
func rexToEos(
	p *model.RexPool,
	rex int64,
) int64 {
	if p.TotalRex <= 0 {
		return 0
	}
	s0 := p.TotalLendable
	r1 := p.TotalRex + rex
	s1 := mulDiv(s0, r1, p.TotalRex)
	return s1 - s0
}

func (s *System) rexBalance(
	ctx context.Context,
	owner chain.Name,
) (*model.RexBalance, error) {
	b, err := model.LoadRexBalance(ctx, s.Account, owner)
	if err != nil {
		return nil, errors.Trace(err)
	} else if b == nil {
		b = &model.RexBalance{Market: string(s.Account), Owner: string(owner)}
	}
	return b, nil
}

// stakeToRex adds amount to the REX pool and credits the resulting REX to
// owner.
func (s *System) stakeToRex(
	ctx context.Context,
	owner chain.Name,
	amount int64,
) error {
	p, err := s.rexPool(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	rex := eosToRex(p, amount)
	if rex <= 0 {
		return chain.Invalidf("amount too low to buy REX")
	}
	p.TotalLendable += amount
	p.TotalRex += rex
	if err := p.Save(ctx); err != nil {
		return errors.Trace(err)
	}

	b, err := s.rexBalance(ctx, owner)
	if err != nil {
		return errors.Trace(err)
	}
	b.Staked += rex
	return errors.Trace(b.Save(ctx))
}

// Deposit moves amount from owner to its REX fund.
func (s *System) Deposit(
	ctx context.Context,
	owner chain.Name,
	amount chain.Asset,
) error {
	return s.act(ctx, "deposit", owner, func(ctx context.Context) error {
		if amount.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if !amount.IsPositive() {
			return chain.Invalidf("insufficient deposit")
		}
		if err := s.collect(ctx, owner, amount, "deposit to REX fund"); err != nil {
			return errors.Trace(err)
		}

		f, err := model.LoadRexFund(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if f == nil {
			f = &model.RexFund{Market: string(s.Account), Owner: string(owner)}
		}
		f.Balance += amount.Amount
		return errors.Trace(f.Save(ctx))
	})
}

// Withdraw sends amount from owner's REX fund back to owner.
func (s *System) Withdraw(
	ctx context.Context,
	owner chain.Name,
	amount chain.Asset,
) error {
	return s.act(ctx, "withdraw", owner, func(ctx context.Context) error {
		if amount.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if !amount.IsPositive() {
			return chain.Invalidf("withdraw quantity must be positive")
		}
		f, err := model.LoadRexFund(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if f == nil {
			return chain.Invalidf("no deposit found")
		}
		if f.Balance < amount.Amount {
			return chain.Invalidf("insufficient balance")
		}
		f.Balance -= amount.Amount
		if err := f.Save(ctx); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.pay(ctx, owner, amount, "withdraw from REX fund"))
	})
}

// BuyRex buys REX with amount taken from from's REX fund.
func (s *System) BuyRex(
	ctx context.Context,
	from chain.Name,
	amount chain.Asset,
) error {
	return s.act(ctx, "buyrex", from, func(ctx context.Context) error {
		if amount.Symbol != s.Symbol {
			return chain.Invalidf("asset must be system token")
		}
		if !amount.IsPositive() {
			return chain.Invalidf("must use positive amount")
		}
		f, err := model.LoadRexFund(ctx, s.Account, from)
		if err != nil {
			return errors.Trace(err)
		} else if f == nil {
			return chain.Invalidf("no deposit found")
		}
		if f.Balance < amount.Amount {
			return chain.Invalidf("insufficient balance")
		}
		f.Balance -= amount.Amount
		if err := f.Save(ctx); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.stakeToRex(ctx, from, amount.Amount))
	})
}

// SellRex sells rex out of from's unstaking bucket. Proceeds go to from's REX
// fund.
func (s *System) SellRex(
	ctx context.Context,
	from chain.Name,
	rex chain.Asset,
) error {
	return s.act(ctx, "sellrex", from, func(ctx context.Context) error {
		if rex.Symbol != RexSymbol || !rex.IsPositive() {
			return chain.Invalidf("asset must be a positive amount of (REX, 4)")
		}
		b, err := model.LoadRexBalance(ctx, s.Account, from)
		if err != nil {
			return errors.Trace(err)
		} else if b == nil {
			return chain.Invalidf("no unstaking found")
		}
		if b.Unstaking < rex.Amount {
			return chain.Invalidf("insufficient balance")
		}
		p, err := s.rexPool(ctx)
		if err != nil {
			return errors.Trace(err)
		}

		proceeds := rexToEos(p, rex.Amount)
		b.Unstaking -= rex.Amount
		if err := b.Save(ctx); err != nil {
			return errors.Trace(err)
		}
		p.TotalLendable -= proceeds
		p.TotalRex -= rex.Amount
		if err := p.Save(ctx); err != nil {
			return errors.Trace(err)
		}

		f, err := model.LoadRexFund(ctx, s.Account, from)
		if err != nil {
			return errors.Trace(err)
		} else if f == nil {
			f = &model.RexFund{Market: string(s.Account), Owner: string(from)}
		}
		f.Balance += proceeds
		return errors.Trace(f.Save(ctx))
	})
}

// MvFrSavings moves rex out of owner's savings, making it available to sell.
func (s *System) MvFrSavings(
	ctx context.Context,
	owner chain.Name,
	rex chain.Asset,
) error {
	return s.act(ctx, "mvfrsavings", owner, func(ctx context.Context) error {
		if rex.Symbol != RexSymbol || !rex.IsPositive() {
			return chain.Invalidf("asset must be a positive amount of (REX, 4)")
		}
		b, err := model.LoadRexBalance(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if b == nil {
			return chain.Invalidf("no staked found")
		}
		if b.Staked < rex.Amount {
			return chain.Invalidf("insufficient balance")
		}
		b.Staked -= rex.Amount
		b.Unstaking += rex.Amount
		b.Matured += rex.Amount
		return errors.Trace(b.Save(ctx))
	})
}

// MvToSavings moves rex back into owner's savings.
func (s *System) MvToSavings(
	ctx context.Context,
	owner chain.Name,
	rex chain.Asset,
) error {
	return s.act(ctx, "mvtosavings", owner, func(ctx context.Context) error {
		if rex.Symbol != RexSymbol || !rex.IsPositive() {
			return chain.Invalidf("asset must be a positive amount of (REX, 4)")
		}
		b, err := model.LoadRexBalance(ctx, s.Account, owner)
		if err != nil {
			return errors.Trace(err)
		} else if b == nil || b.Unstaking < rex.Amount {
			return chain.Invalidf("insufficient REX balance")
		}
		b.Unstaking -= rex.Amount
		b.Staked += rex.Amount
		b.Matured -= rex.Amount
		if b.Matured < 0 {
			b.Matured = 0
		}
		return errors.Trace(b.Save(ctx))
	})
}

// DonateToRex adds quantity to the REX pool without minting REX.
func (s *System) DonateToRex(
	ctx context.Context,
	payer chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return s.act(ctx, "donatetorex", payer, func(ctx context.Context) error {
		if quantity.Symbol != s.Symbol {
			return chain.Invalidf("quantity must be core token")
		}
		if !quantity.IsPositive() {
			return chain.Invalidf("quantity must be positive")
		}
		p, err := model.LoadRexPool(ctx, s.Account)
		if err != nil {
			return errors.Trace(err)
		} else if p == nil {
			return chain.Invalidf("rex system not initialized yet")
		}
		if err := s.collect(ctx, payer, quantity, memo); err != nil {
			return errors.Trace(err)
		}
		p.TotalLendable += quantity.Amount
		return errors.Trace(p.Save(ctx))
	})
}

// RexBalance returns the staked and unstaking REX of owner.
func (s *System) RexBalance(
	ctx context.Context,
	owner chain.Name,
) (staked chain.Asset, unstaking chain.Asset, err error) {
	b, err := s.rexBalance(ctx, owner)
	if err != nil {
		return chain.Asset{}, chain.Asset{}, errors.Trace(err)
	}
	return chain.NewAsset(b.Staked, RexSymbol),
		chain.NewAsset(b.Unstaking, RexSymbol), nil
}

// RexFund returns the native amount owner has in its REX fund.
func (s *System) RexFund(
	ctx context.Context,
	owner chain.Name,
) (chain.Asset, error) {
	f, err := model.LoadRexFund(ctx, s.Account, owner)
	if err != nil {
		return chain.Asset{}, errors.Trace(err)
	} else if f == nil {
		return s.native(0), nil
	}
	return s.native(f.Balance), nil
}
