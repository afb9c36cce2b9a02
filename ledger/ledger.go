package ledger

import (
	"context"
	"sync"

	"github.com/VaultaFoundation/vaulta-system-contract/ledger/model"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"

	// force initialization of schemas
	_ "github.com/VaultaFoundation/vaulta-system-contract/ledger/model/schemas"
)

const (
	// MaxMemoSize is the maximum size in bytes of a transfer memo.
	MaxMemoSize = 256
)

// Notifiable is implemented by contracts that want to be notified of the
// transfers in which they are sender or recipient.
type Notifiable interface {
	OnTransfer(
		ctx context.Context,
		ledger chain.Name,
		from chain.Name,
		to chain.Name,
		quantity chain.Asset,
		memo string,
	) error
}

// Stat is the descriptor of a currency.
type Stat struct {
	Supply    chain.Asset `json:"supply"`
	MaxSupply chain.Asset `json:"max_supply"`
	Issuer    chain.Name  `json:"issuer"`
}

// Ledger is a standard fungible token contract deployed at Account. All
// ledgers share the same tables, scoped by contract account.
type Ledger struct {
	Account chain.Name

	mu          sync.RWMutex
	subscribers map[chain.Name]Notifiable
}

// New returns a ledger contract deployed at account.
func New(
	account chain.Name,
) *Ledger {
	return &Ledger{
		Account:     account,
		subscribers: map[chain.Name]Notifiable{},
	}
}

// Subscribe registers n to be notified of the transfers account takes part
// in.
func (l *Ledger) Subscribe(
	account chain.Name,
	n Notifiable,
) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers[account] = n
}

func (l *Ledger) subscriber(
	account chain.Name,
) Notifiable {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.subscribers[account]
}

// Create creates a new currency with issuer and maxSupply. It requires the
// ledger contract authority.
func (l *Ledger) Create(
	ctx context.Context,
	issuer chain.Name,
	maxSupply chain.Asset,
) error {
	if err := chain.RequireAuth(ctx, l.Account); err != nil {
		return errors.Trace(err)
	}
	if !maxSupply.IsValid() {
		return chain.Invalidf("invalid supply")
	}
	if !maxSupply.IsPositive() {
		return chain.Invalidf("max-supply must be positive")
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		existing, err := model.LoadStatByContractCode(
			ctx, l.Account, maxSupply.Symbol.Code)
		if err != nil {
			return errors.Trace(err)
		} else if existing != nil {
			return chain.Invalidf("token with symbol already exists")
		}
		if _, err := model.CreateStat(ctx, l.Account, maxSupply, issuer); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"Ledger created: contract=%s issuer=%s max_supply=%s",
			l.Account, issuer, maxSupply)
		return nil
	})
}

// loadStat loads the stat for sym and checks the precision matches.
func (l *Ledger) loadStat(
	ctx context.Context,
	sym chain.Symbol,
) (*model.Stat, error) {
	stat, err := model.LoadStatByContractCode(ctx, l.Account, sym.Code)
	if err != nil {
		return nil, errors.Trace(err)
	} else if stat == nil {
		return nil, chain.Invalidf("token with symbol does not exist")
	}
	if stat.Symbol() != sym {
		return nil, chain.Invalidf("symbol precision mismatch")
	}
	return stat, nil
}

// Issue issues quantity to to, which must be the issuer of the currency.
func (l *Ledger) Issue(
	ctx context.Context,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	if !quantity.Symbol.IsValid() {
		return chain.Invalidf("invalid symbol name")
	}
	if len(memo) > MaxMemoSize {
		return chain.Invalidf("memo has more than 256 bytes")
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		stat, err := l.loadStat(ctx, quantity.Symbol)
		if err != nil {
			return errors.Trace(err)
		}
		issuer := chain.Name(stat.Issuer)
		if to != issuer {
			return chain.Invalidf("tokens can only be issued to issuer account")
		}
		if err := chain.RequireAuth(ctx, issuer); err != nil {
			return errors.Trace(err)
		}
		if !quantity.IsValid() {
			return chain.Invalidf("invalid quantity")
		}
		if !quantity.IsPositive() {
			return chain.Invalidf("must issue positive quantity")
		}
		if quantity.Amount > stat.MaxSupply-stat.Supply {
			return chain.Invalidf("quantity exceeds available supply")
		}

		stat.Supply += quantity.Amount
		if err := stat.Save(ctx); err != nil {
			return errors.Trace(err)
		}
		if err := l.AddBalance(ctx, issuer, quantity); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"Ledger issued: contract=%s to=%s quantity=%s",
			l.Account, to, quantity)
		return nil
	})
}

// Retire burns quantity from the issuer balance, reducing the supply.
func (l *Ledger) Retire(
	ctx context.Context,
	quantity chain.Asset,
	memo string,
) error {
	if !quantity.Symbol.IsValid() {
		return chain.Invalidf("invalid symbol name")
	}
	if len(memo) > MaxMemoSize {
		return chain.Invalidf("memo has more than 256 bytes")
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		stat, err := l.loadStat(ctx, quantity.Symbol)
		if err != nil {
			return errors.Trace(err)
		}
		issuer := chain.Name(stat.Issuer)
		if err := chain.RequireAuth(ctx, issuer); err != nil {
			return errors.Trace(err)
		}
		if !quantity.IsValid() {
			return chain.Invalidf("invalid quantity")
		}
		if !quantity.IsPositive() {
			return chain.Invalidf("must retire positive quantity")
		}

		stat.Supply -= quantity.Amount
		if err := stat.Save(ctx); err != nil {
			return errors.Trace(err)
		}
		if err := l.SubBalance(ctx, issuer, quantity); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"Ledger retired: contract=%s quantity=%s",
			l.Account, quantity)
		return nil
	})
}

// Transfer moves quantity from from to to and notifies the subscribers of
// both accounts. It requires the authority of from.
func (l *Ledger) Transfer(
	ctx context.Context,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	if from == to {
		return chain.Invalidf("cannot transfer to self")
	}
	if err := chain.RequireAuth(ctx, from); err != nil {
		return errors.Trace(err)
	}
	if !to.IsValid() {
		return chain.Invalidf("to account does not exist")
	}
	if !quantity.IsValid() {
		return chain.Invalidf("invalid quantity")
	}
	if !quantity.IsPositive() {
		return chain.Invalidf("must transfer positive quantity")
	}
	if len(memo) > MaxMemoSize {
		return chain.Invalidf("memo has more than 256 bytes")
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		if _, err := l.loadStat(ctx, quantity.Symbol); err != nil {
			return errors.Trace(err)
		}
		if err := l.SubBalance(ctx, from, quantity); err != nil {
			return errors.Trace(err)
		}
		if err := l.AddBalance(ctx, to, quantity); err != nil {
			return errors.Trace(err)
		}
		logging.Logf(ctx,
			"Ledger transfer: contract=%s from=%s to=%s quantity=%s",
			l.Account, from, to, quantity)

		for _, account := range []chain.Name{from, to} {
			if n := l.subscriber(account); n != nil {
				if err := n.OnTransfer(
					ctx, l.Account, from, to, quantity, memo,
				); err != nil {
					return errors.Trace(err)
				}
			}
		}
		return nil
	})
}

// Open creates a zero balance record for owner, paid for by payer.
func (l *Ledger) Open(
	ctx context.Context,
	owner chain.Name,
	symbol chain.Symbol,
	payer chain.Name,
) error {
	if err := chain.RequireAuth(ctx, payer); err != nil {
		return errors.Trace(err)
	}
	if !owner.IsValid() {
		return chain.Invalidf("owner account does not exist")
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		stat, err := model.LoadStatByContractCode(ctx, l.Account, symbol.Code)
		if err != nil {
			return errors.Trace(err)
		} else if stat == nil {
			return chain.Invalidf("symbol does not exist")
		}
		if stat.Symbol() != symbol {
			return chain.Invalidf("symbol precision mismatch")
		}

		account, err := model.LoadAccountByContractOwnerCode(
			ctx, l.Account, owner, symbol.Code)
		if err != nil {
			return errors.Trace(err)
		} else if account == nil {
			if _, err := model.CreateAccount(
				ctx, l.Account, owner, chain.NewAsset(0, symbol),
			); err != nil {
				return errors.Trace(err)
			}
		}
		return nil
	})
}

// Close deletes the zero balance record of owner.
func (l *Ledger) Close(
	ctx context.Context,
	owner chain.Name,
	symbol chain.Symbol,
) error {
	if err := chain.RequireAuth(ctx, owner); err != nil {
		return errors.Trace(err)
	}

	return db.Transact(ctx, func(ctx context.Context) error {
		account, err := model.LoadAccountByContractOwnerCode(
			ctx, l.Account, owner, symbol.Code)
		if err != nil {
			return errors.Trace(err)
		} else if account == nil {
			return chain.Invalidf(
				"Balance row already deleted or never existed. Action won't have any effect.")
		}
		if account.Balance != 0 {
			return chain.Invalidf("Cannot close because the balance is not zero.")
		}
		return errors.Trace(account.Delete(ctx))
	})
}

// SubBalance debits value from owner's balance record.
func (l *Ledger) SubBalance(
	ctx context.Context,
	owner chain.Name,
	value chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		account, err := model.LoadAccountByContractOwnerCode(
			ctx, l.Account, owner, value.Symbol.Code)
		if err != nil {
			return errors.Trace(err)
		} else if account == nil {
			return ErrNoBalance()
		}
		if account.Balance < value.Amount {
			return ErrOverdrawnBalance()
		}
		account.Balance -= value.Amount
		return errors.Trace(account.Save(ctx))
	})
}

// AddBalance credits value to owner's balance record, creating it on first
// credit.
func (l *Ledger) AddBalance(
	ctx context.Context,
	owner chain.Name,
	value chain.Asset,
) error {
	return db.Transact(ctx, func(ctx context.Context) error {
		account, err := model.LoadAccountByContractOwnerCode(
			ctx, l.Account, owner, value.Symbol.Code)
		if err != nil {
			return errors.Trace(err)
		} else if account == nil {
			_, err := model.CreateAccount(ctx, l.Account, owner, value)
			return errors.Trace(err)
		}
		sum, err := account.Asset().Add(value)
		if err != nil {
			return errors.Trace(err)
		}
		account.Balance = sum.Amount
		return errors.Trace(account.Save(ctx))
	})
}

// Balance returns owner's balance for symbol, a zero asset if the owner has
// no balance record.
func (l *Ledger) Balance(
	ctx context.Context,
	owner chain.Name,
	symbol chain.Symbol,
) (chain.Asset, error) {
	account, err := model.LoadAccountByContractOwnerCode(
		ctx, l.Account, owner, symbol.Code)
	if err != nil {
		return chain.Asset{}, errors.Trace(err)
	} else if account == nil {
		return chain.NewAsset(0, symbol), nil
	}
	return account.Asset(), nil
}

// HasBalance returns whether owner has a balance record for symbol.
func (l *Ledger) HasBalance(
	ctx context.Context,
	owner chain.Name,
	symbol chain.Symbol,
) (bool, error) {
	account, err := model.LoadAccountByContractOwnerCode(
		ctx, l.Account, owner, symbol.Code)
	if err != nil {
		return false, errors.Trace(err)
	}
	return account != nil, nil
}

// Stat returns the descriptor of the currency with the provided code, nil if
// it does not exist.
func (l *Ledger) Stat(
	ctx context.Context,
	code string,
) (*Stat, error) {
	stat, err := model.LoadStatByContractCode(ctx, l.Account, code)
	if err != nil {
		return nil, errors.Trace(err)
	} else if stat == nil {
		return nil, nil
	}
	return &Stat{
		Supply:    stat.SupplyAsset(),
		MaxSupply: stat.MaxSupplyAsset(),
		Issuer:    chain.Name(stat.Issuer),
	}, nil
}

// Stats returns the descriptors of all the currencies of the ledger.
func (l *Ledger) Stats(
	ctx context.Context,
) ([]Stat, error) {
	stats, err := model.LoadStatsByContract(ctx, l.Account)
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := []Stat{}
	for _, s := range stats {
		res = append(res, Stat{
			Supply:    s.SupplyAsset(),
			MaxSupply: s.MaxSupplyAsset(),
			Issuer:    chain.Name(s.Issuer),
		})
	}
	return res, nil
}

// Accounts returns all the balances of owner on the ledger.
func (l *Ledger) Accounts(
	ctx context.Context,
	owner chain.Name,
) ([]chain.Asset, error) {
	accounts, err := model.LoadAccountsByContractOwner(ctx, l.Account, owner)
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := []chain.Asset{}
	for _, a := range accounts {
		res = append(res, a.Asset())
	}
	return res, nil
}

// CheckSupply verifies that the sum of the balance records of the currency
// equals its supply.
func (l *Ledger) CheckSupply(
	ctx context.Context,
	code string,
) error {
	stat, err := model.LoadStatByContractCode(ctx, l.Account, code)
	if err != nil {
		return errors.Trace(err)
	} else if stat == nil {
		return chain.Invalidf("token with symbol does not exist")
	}
	sum, err := model.SumBalancesByContractCode(ctx, l.Account, code)
	if err != nil {
		return errors.Trace(err)
	}
	if sum != stat.Supply {
		return errors.Newf(
			"supply mismatch: contract=%s code=%s supply=%d balances=%d",
			l.Account, code, stat.Supply, sum)
	}
	return nil
}
