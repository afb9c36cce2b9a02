package sim

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
	"github.com/shopspring/decimal"
)

// mulDiv returns a * b / c truncated toward zero, computed without loss of
// precision. It returns 0 when c is not positive.
func mulDiv(
	a int64,
	b int64,
	c int64,
) int64 {
	if c <= 0 {
		return 0
	}
	q, _ := decimal.NewFromInt(a).Mul(decimal.NewFromInt(b)).
		QuoRem(decimal.NewFromInt(c), 0)
	return q.IntPart()
}

// bancorOutput returns what inp buys out of a connector with the provided
// reserves.
func bancorOutput(
	inpReserve int64,
	outReserve int64,
	inp int64,
) int64 {
	out := mulDiv(inp, outReserve, inpReserve+inp)
	if out < 0 {
		out = 0
	}
	return out
}

// bancorInput returns what must be paid to get out of a connector with the
// provided reserves.
func bancorInput(
	outReserve int64,
	inpReserve int64,
	out int64,
) int64 {
	inp := mulDiv(inpReserve, out, outReserve-out)
	if inp < 0 {
		inp = 0
	}
	return inp
}

// withRamFee grosses cost up by the 0.5% RAM fee, truncated.
func withRamFee(
	cost int64,
) int64 {
	return mulDiv(cost, 1000, 995)
}

// ramFee is the 0.5% fee on RAM trades, rounded up.
func ramFee(
	amount int64,
) int64 {
	return (amount + 199) / 200
}

func (s *System) ramMarket(
	ctx context.Context,
) (*model.RamMarket, error) {
	m, err := model.LoadRamMarket(ctx, s.Account)
	if err != nil {
		return nil, errors.Trace(err)
	} else if m == nil {
		return nil, chain.Invalidf("ram market not initialized")
	}
	return m, nil
}

// addQuota adds bytes (possibly negative) to owner's RAM quota.
func (s *System) addQuota(
	ctx context.Context,
	owner chain.Name,
	bytes int64,
) error {
	q, err := model.LoadRamBytes(ctx, s.Account, owner)
	if err != nil {
		return errors.Trace(err)
	}
	if q.Bytes+bytes < 0 {
		return chain.Invalidf("insufficient quota")
	}
	q.Bytes += bytes
	return errors.Trace(q.Save(ctx))
}

func (s *System) buyRam(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	quant chain.Asset,
) (int64, error) {
	if quant.Symbol != s.Symbol {
		return 0, chain.Invalidf("must buy ram with core token")
	}
	if !quant.IsPositive() {
		return 0, chain.Invalidf("must purchase a positive amount")
	}
	if !receiver.IsValid() {
		return 0, chain.Invalidf("receiver account does not exist")
	}
	m, err := s.ramMarket(ctx)
	if err != nil {
		return 0, errors.Trace(err)
	}

	afterFee := quant.Amount - ramFee(quant.Amount)
	bytes := bancorOutput(m.Quote, m.Ram, afterFee)
	if bytes <= 0 {
		return 0, chain.Invalidf("must reserve a positive amount")
	}
	m.Quote += afterFee
	m.Ram -= bytes
	if err := m.Save(ctx); err != nil {
		return 0, errors.Trace(err)
	}

	if err := s.collect(ctx, payer, quant, "buy ram"); err != nil {
		return 0, errors.Trace(err)
	}
	if err := s.addQuota(ctx, receiver, bytes); err != nil {
		return 0, errors.Trace(err)
	}
	return bytes, nil
}

// BuyRam buys RAM for receiver with quant.
func (s *System) BuyRam(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	quant chain.Asset,
) error {
	return s.act(ctx, "buyram", payer, func(ctx context.Context) error {
		_, err := s.buyRam(ctx, payer, receiver, quant)
		return errors.Trace(err)
	})
}

// BuyRamSelf buys RAM for payer with quant.
func (s *System) BuyRamSelf(
	ctx context.Context,
	payer chain.Name,
	quant chain.Asset,
) error {
	return s.act(ctx, "buyramself", payer, func(ctx context.Context) error {
		_, err := s.buyRam(ctx, payer, payer, quant)
		return errors.Trace(err)
	})
}

// BuyRamBurn buys RAM with quantity and burns it right away. The native
// currency paid stays with the market.
func (s *System) BuyRamBurn(
	ctx context.Context,
	payer chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return s.act(ctx, "buyramburn", payer, func(ctx context.Context) error {
		bytes, err := s.buyRam(ctx, payer, payer, quantity)
		if err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.ramTransfer(ctx, payer, NullAccount, bytes))
	})
}

// QuoteRamBytes returns the native amount, fee included, that buys bytes at
// the current market state.
func (s *System) QuoteRamBytes(
	ctx context.Context,
	bytes uint32,
) (chain.Asset, error) {
	m, err := s.ramMarket(ctx)
	if err != nil {
		return chain.Asset{}, errors.Trace(err)
	}
	if int64(bytes) >= m.Ram {
		return chain.Asset{}, chain.Invalidf("insufficient ram in market")
	}
	cost := bancorInput(m.Ram, m.Quote, int64(bytes))
	return s.native(withRamFee(cost)), nil
}

// BuyRamBytes buys bytes of RAM for receiver at the market price.
func (s *System) BuyRamBytes(
	ctx context.Context,
	payer chain.Name,
	receiver chain.Name,
	bytes uint32,
) error {
	return s.act(ctx, "buyrambytes", payer, func(ctx context.Context) error {
		quant, err := s.QuoteRamBytes(ctx, bytes)
		if err != nil {
			return errors.Trace(err)
		}
		_, err = s.buyRam(ctx, payer, receiver, quant)
		return errors.Trace(err)
	})
}

func (s *System) ramTransfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	bytes int64,
) error {
	if bytes <= 0 {
		return chain.Invalidf("must transfer positive bytes")
	}
	if !to.IsValid() {
		return chain.Invalidf("to account does not exist")
	}
	if err := s.addQuota(ctx, from, -bytes); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(s.addQuota(ctx, to, bytes))
}

// RamBurn burns bytes of owner's RAM.
func (s *System) RamBurn(
	ctx context.Context,
	owner chain.Name,
	bytes int64,
	memo string,
) error {
	return s.act(ctx, "ramburn", owner, func(ctx context.Context) error {
		return errors.Trace(s.ramTransfer(ctx, owner, NullAccount, bytes))
	})
}

// RamTransfer moves bytes of RAM from from to to.
func (s *System) RamTransfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	bytes int64,
	memo string,
) error {
	return s.act(ctx, "ramtransfer", from, func(ctx context.Context) error {
		return errors.Trace(s.ramTransfer(ctx, from, to, bytes))
	})
}

// SellRam sells bytes of account's RAM back to the market.
func (s *System) SellRam(
	ctx context.Context,
	account chain.Name,
	bytes int64,
) error {
	return s.act(ctx, "sellram", account, func(ctx context.Context) error {
		if bytes <= 0 {
			return chain.Invalidf("cannot sell negative byte")
		}
		m, err := s.ramMarket(ctx)
		if err != nil {
			return errors.Trace(err)
		}
		if err := s.addQuota(ctx, account, -bytes); err != nil {
			return errors.Trace(err)
		}

		out := bancorOutput(m.Ram, m.Quote, bytes)
		proceeds := out - ramFee(out)
		if proceeds <= 0 {
			return chain.Invalidf("token amount received from selling ram is too low")
		}
		m.Ram += bytes
		m.Quote -= out
		if err := m.Save(ctx); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(s.pay(ctx, account, s.native(proceeds), "sell ram"))
	})
}

// RamQuota returns the RAM bytes owner holds.
func (s *System) RamQuota(
	ctx context.Context,
	owner chain.Name,
) (int64, error) {
	q, err := model.LoadRamBytes(ctx, s.Account, owner)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return q.Bytes, nil
}
