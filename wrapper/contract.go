// Package wrapper implements a token pegged 1:1 to the native currency. The
// contract holds the native reserve backing every wrapped token in
// circulation and proxies the resource market actions so that holders can
// pay them in wrapped tokens.
package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/ledger"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/market"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"

	// force initialization of schemas
	_ "github.com/VaultaFoundation/vaulta-system-contract/wrapper/model/schemas"
)

// DefaultIgnoredSenders are the system accounts whose native transfers to the
// contract are not wrapped. Unstaked or sold funds sent by them would
// otherwise be wrapped for an account that cannot claim them.
var DefaultIgnoredSenders = []chain.Name{"eosio.ram", "eosio.stake"}

var _ ledger.Notifiable = (*Contract)(nil)

// Contract is the wrapper contract deployed at Self. Its wrapped token lives
// on Token (a ledger deployed at Self as well), its reserve on Native.
type Contract struct {
	Self         chain.Name
	Native       *ledger.Ledger
	NativeSymbol chain.Symbol
	Token        *ledger.Ledger
	Market       market.Market

	IgnoredSenders []chain.Name
}

// New returns a wrapper contract deployed at self, and subscribes it to the
// transfers it takes part in on both ledgers.
func New(
	self chain.Name,
	native *ledger.Ledger,
	nativeSymbol chain.Symbol,
	m market.Market,
) *Contract {
	c := &Contract{
		Self:           self,
		Native:         native,
		NativeSymbol:   nativeSymbol,
		Token:          ledger.New(self),
		Market:         m,
		IgnoredSenders: DefaultIgnoredSenders,
	}
	native.Subscribe(self, c)
	c.Token.Subscribe(self, c)
	return c
}

// asSelf returns a context running with the contract authority only.
func (c *Contract) asSelf(
	ctx context.Context,
) context.Context {
	return chain.WithAuthority(ctx, c.Self)
}

// TokenSymbol returns the wrapped token symbol chosen at init.
func (c *Contract) TokenSymbol(
	ctx context.Context,
) (chain.Symbol, error) {
	config, err := model.LoadConfigByContract(ctx, c.Self)
	if err != nil {
		return chain.Symbol{}, errors.Trace(err)
	} else if config == nil {
		return chain.Symbol{}, chain.Invalidf("Contract is not initialized")
	}
	return config.Symbol(), nil
}

func (c *Contract) enforceSymbol(
	ctx context.Context,
	quantities ...chain.Asset,
) error {
	sym, err := c.TokenSymbol(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	for _, q := range quantities {
		if q.Symbol != sym {
			return chain.Invalidf("Wrong token used")
		}
	}
	return nil
}

// Init creates the wrapped token with maxSupply and credits the whole supply
// to the contract itself. Wrapped tokens held by the contract are not in
// circulation. It requires the contract authority and succeeds only once.
func (c *Contract) Init(
	ctx context.Context,
	maxSupply chain.Asset,
) error {
	if err := chain.RequireAuth(ctx, c.Self); err != nil {
		return errors.Trace(err)
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		existing, err := model.LoadConfigByContract(ctx, c.Self)
		if err != nil {
			return errors.Trace(err)
		} else if existing != nil {
			return chain.Invalidf("This system contract is already initialized")
		}
		if !maxSupply.IsValid() {
			return chain.Invalidf("invalid supply")
		}
		if !maxSupply.IsPositive() {
			return chain.Invalidf("max-supply must be positive")
		}

		if _, err := model.CreateConfig(ctx, c.Self, maxSupply.Symbol); err != nil {
			return errors.Trace(err)
		}
		ctx = c.asSelf(ctx)
		if err := c.Token.Create(ctx, c.Self, maxSupply); err != nil {
			return errors.Trace(err)
		}
		if err := c.Token.Issue(ctx, c.Self, maxSupply, ""); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"Wrapper initialized: contract=%s max_supply=%s",
			c.Self, maxSupply)
		return nil
	})
}

// Transfer moves wrapped tokens. Sending them to the contract unwraps them.
func (c *Contract) Transfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	return errors.Trace(c.Token.Transfer(ctx, from, to, quantity, memo))
}

// Open creates a zero wrapped balance record for owner.
func (c *Contract) Open(
	ctx context.Context,
	owner chain.Name,
	symbol chain.Symbol,
	payer chain.Name,
) error {
	return errors.Trace(c.Token.Open(ctx, owner, symbol, payer))
}

// Close deletes the zero wrapped balance record of owner.
func (c *Contract) Close(
	ctx context.Context,
	owner chain.Name,
	symbol chain.Symbol,
) error {
	return errors.Trace(c.Token.Close(ctx, owner, symbol))
}

// Retire burns wrapped tokens out of the contract float. It requires the
// contract authority.
func (c *Contract) Retire(
	ctx context.Context,
	quantity chain.Asset,
	memo string,
) error {
	return errors.Trace(c.Token.Retire(ctx, quantity, memo))
}

// OnTransfer is notified of the transfers the contract takes part in on the
// native and the wrapped ledgers.
func (c *Contract) OnTransfer(
	ctx context.Context,
	ledger chain.Name,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	switch ledger {
	case c.Native.Account:
		return errors.Trace(c.onNativeTransfer(ctx, from, to, quantity))
	case c.Token.Account:
		return errors.Trace(c.onTokenTransfer(ctx, from, to, quantity))
	}
	return nil
}
