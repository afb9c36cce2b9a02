package app

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/env"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim"
	simmodel "github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"
)

// QA seeding amounts, in units of the native currency.
const (
	qaNativeMaxSupply = 10000000000
	qaNativeIssued    = 1000000000
	qaRamReserve      = 85450299267
	qaRamQuote        = 22319041
	qaRexLendable     = 130094250
	qaRex             = 1081803903132
)

// Bootstrap prepares the state a node needs to serve. In QA it creates the
// native currency (issued to the market account) and the simulated RAM market
// and REX pool when missing. In every environment it initializes the wrapped
// token with maxSupply if provided and the contract is not initialized yet.
func Bootstrap(
	ctx context.Context,
	maxSupply string,
) error {
	c := wrapper.Get(ctx)

	return db.Transact(ctx, func(ctx context.Context) error {
		if env.Get(ctx).Environment == env.QA {
			if err := seedNative(ctx, c); err != nil {
				return errors.Trace(err)
			}
			if s, ok := c.Market.(*sim.System); ok {
				if err := seedMarket(ctx, s); err != nil {
					return errors.Trace(err)
				}
			}
		}

		if maxSupply == "" {
			return nil
		}
		config, err := model.LoadConfigByContract(ctx, c.Self)
		if err != nil {
			return errors.Trace(err)
		} else if config != nil {
			return nil
		}
		supply, err := chain.ParseAsset(maxSupply)
		if err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(c.Init(chain.WithAuthority(ctx, c.Self), supply))
	})
}

// units returns amount whole units of the symbol currency.
func units(
	symbol chain.Symbol,
	amount int64,
) chain.Asset {
	u := int64(1)
	for i := uint8(0); i < symbol.Precision; i++ {
		u *= 10
	}
	return chain.NewAsset(amount*u, symbol)
}

func seedNative(
	ctx context.Context,
	c *wrapper.Contract,
) error {
	stat, err := c.Native.Stat(ctx, c.NativeSymbol.Code)
	if err != nil {
		return errors.Trace(err)
	} else if stat != nil {
		return nil
	}

	issuer := chain.Name("eosio")
	if s, ok := c.Market.(*sim.System); ok {
		issuer = s.Account
	}

	err = c.Native.Create(chain.WithAuthority(ctx, c.Native.Account),
		issuer, units(c.NativeSymbol, qaNativeMaxSupply))
	if err != nil {
		return errors.Trace(err)
	}
	err = c.Native.Issue(chain.WithAuthority(ctx, issuer),
		issuer, units(c.NativeSymbol, qaNativeIssued), "qa")
	if err != nil {
		return errors.Trace(err)
	}

	logging.Logf(ctx,
		"Seeded native currency: ledger=%s issuer=%s issued=%s",
		c.Native.Account, issuer, units(c.NativeSymbol, qaNativeIssued))

	return nil
}

func seedMarket(
	ctx context.Context,
	s *sim.System,
) error {
	admin := chain.WithAuthority(ctx, s.Account)

	ram, err := simmodel.LoadRamMarket(ctx, s.Account)
	if err != nil {
		return errors.Trace(err)
	} else if ram == nil {
		err := s.SetRamMarket(admin,
			chain.NewAsset(qaRamReserve, sim.RamSymbol),
			units(s.Symbol, qaRamQuote))
		if err != nil {
			return errors.Trace(err)
		}
	}

	rex, err := simmodel.LoadRexPool(ctx, s.Account)
	if err != nil {
		return errors.Trace(err)
	} else if rex == nil {
		err := s.SetRex(admin,
			units(s.Symbol, qaRexLendable),
			units(sim.RexSymbol, qaRex))
		if err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}

// Fund transfers native currency from the market account to account. It is
// only available in QA.
func Fund(
	ctx context.Context,
	account chain.Name,
	quantity chain.Asset,
) error {
	if env.Get(ctx).Environment != env.QA {
		return errors.Trace(errors.Newf(
			"Funding accounts is only available in QA"))
	}
	c := wrapper.Get(ctx)
	s, ok := c.Market.(*sim.System)
	if !ok {
		return errors.Trace(errors.Newf(
			"Funding accounts requires the simulated market"))
	}
	return errors.Trace(c.Native.Transfer(chain.WithAuthority(ctx, s.Account),
		s.Account, account, quantity, "qa funding"))
}
