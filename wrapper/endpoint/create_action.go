package endpoint

import (
	"context"
	"net/http"
	"sort"

	"goji.io/pat"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/format"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/ptr"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/svc"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/lib/authentication"
)

const (
	// EndPtCreateAction executes a contract action.
	EndPtCreateAction EndPtName = "CreateAction"
)

func init() {
	registrar[EndPtCreateAction] = NewCreateAction
}

// call is a contract action bound to its parameters.
type call func(ctx context.Context, c *wrapper.Contract) error

// actions maps action names to the parsing of their parameters.
var actions = map[string]func(p *params) call{
	"init": func(p *params) call {
		maxSupply := p.Asset("maximum_supply")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Init(ctx, maxSupply)
		}
	},
	"transfer": func(p *params) call {
		from, to := p.Name("from"), p.Name("to")
		quantity, memo := p.Asset("quantity"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Transfer(ctx, from, to, quantity, memo)
		}
	},
	"open": func(p *params) call {
		owner, symbol, payer := p.Name("owner"), p.Symbol("symbol"), p.Name("ram_payer")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Open(ctx, owner, symbol, payer)
		}
	},
	"close": func(p *params) call {
		owner, symbol := p.Name("owner"), p.Symbol("symbol")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Close(ctx, owner, symbol)
		}
	},
	"retire": func(p *params) call {
		quantity, memo := p.Asset("quantity"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Retire(ctx, quantity, memo)
		}
	},
	"wrap": func(p *params) call {
		owner, quantity := p.Name("owner"), p.Asset("quantity")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Wrap(ctx, owner, quantity)
		}
	},
	"unwrap": func(p *params) call {
		owner, quantity := p.Name("owner"), p.Asset("quantity")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Unwrap(ctx, owner, quantity)
		}
	},
	"swapto": func(p *params) call {
		from, to := p.Name("from"), p.Name("to")
		quantity, memo := p.Asset("quantity"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.SwapTo(ctx, from, to, quantity, memo)
		}
	},
	"blockswapto": func(p *params) call {
		account, block := p.Name("account"), p.Bool("block")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BlockSwapTo(ctx, account, block)
		}
	},
	"swapexcess": func(p *params) call {
		account, before := p.Name("account"), p.Asset("eos_before")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.SwapExcess(ctx, account, before)
		}
	},
	"enforcebal": func(p *params) call {
		account, expected := p.Name("account"), p.Asset("expected_eos_balance")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.EnforceBalance(ctx, account, expected)
		}
	},

	"bidname": func(p *params) call {
		bidder, newname, bid := p.Name("bidder"), p.Name("newname"), p.Asset("bid")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BidName(ctx, bidder, newname, bid)
		}
	},
	"bidrefund": func(p *params) call {
		bidder, newname := p.Name("bidder"), p.Name("newname")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BidRefund(ctx, bidder, newname)
		}
	},

	"buyram": func(p *params) call {
		payer, receiver, quant := p.Name("payer"), p.Name("receiver"), p.Asset("quant")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BuyRam(ctx, payer, receiver, quant)
		}
	},
	"buyramself": func(p *params) call {
		payer, quant := p.Name("payer"), p.Asset("quant")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BuyRamSelf(ctx, payer, quant)
		}
	},
	"buyramburn": func(p *params) call {
		payer, quantity, memo := p.Name("payer"), p.Asset("quantity"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BuyRamBurn(ctx, payer, quantity, memo)
		}
	},
	"buyrambytes": func(p *params) call {
		payer, receiver, bytes := p.Name("payer"), p.Name("receiver"), p.Uint32("bytes")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BuyRamBytes(ctx, payer, receiver, bytes)
		}
	},
	"ramburn": func(p *params) call {
		owner, bytes, memo := p.Name("owner"), p.Int64("bytes"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.RamBurn(ctx, owner, bytes, memo)
		}
	},
	"ramtransfer": func(p *params) call {
		from, to := p.Name("from"), p.Name("to")
		bytes, memo := p.Int64("bytes"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.RamTransfer(ctx, from, to, bytes, memo)
		}
	},
	"sellram": func(p *params) call {
		account, bytes := p.Name("account"), p.Int64("bytes")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.SellRam(ctx, account, bytes)
		}
	},

	"deposit": func(p *params) call {
		owner, amount := p.Name("owner"), p.Asset("amount")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Deposit(ctx, owner, amount)
		}
	},
	"withdraw": func(p *params) call {
		owner, amount := p.Name("owner"), p.Asset("amount")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Withdraw(ctx, owner, amount)
		}
	},
	"buyrex": func(p *params) call {
		from, amount := p.Name("from"), p.Asset("amount")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.BuyRex(ctx, from, amount)
		}
	},
	"sellrex": func(p *params) call {
		from, rex := p.Name("from"), p.Asset("rex")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.SellRex(ctx, from, rex)
		}
	},
	"mvfrsavings": func(p *params) call {
		owner, rex := p.Name("owner"), p.Asset("rex")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.MvFrSavings(ctx, owner, rex)
		}
	},
	"mvtosavings": func(p *params) call {
		owner, rex := p.Name("owner"), p.Asset("rex")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.MvToSavings(ctx, owner, rex)
		}
	},
	"donatetorex": func(p *params) call {
		payer, quantity, memo := p.Name("payer"), p.Asset("quantity"), p.Memo("memo")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.DonateToRex(ctx, payer, quantity, memo)
		}
	},

	"powerup": func(p *params) call {
		payer, receiver, days := p.Name("payer"), p.Name("receiver"), p.Uint32("days")
		netFrac, cpuFrac := p.Int64("net_frac"), p.Int64("cpu_frac")
		maxPayment := p.Asset("max_payment")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.PowerUp(ctx, payer, receiver, days, netFrac, cpuFrac, maxPayment)
		}
	},
	"delegatebw": func(p *params) call {
		from, receiver := p.Name("from"), p.Name("receiver")
		net, cpu := p.Asset("stake_net_quantity"), p.Asset("stake_cpu_quantity")
		transfer := p.Bool("transfer")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.DelegateBW(ctx, from, receiver, net, cpu, transfer)
		}
	},
	"undelegatebw": func(p *params) call {
		from, receiver := p.Name("from"), p.Name("receiver")
		net, cpu := p.Asset("unstake_net_quantity"), p.Asset("unstake_cpu_quantity")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.UndelegateBW(ctx, from, receiver, net, cpu)
		}
	},
	"unstaketorex": func(p *params) call {
		owner, receiver := p.Name("owner"), p.Name("receiver")
		net, cpu := p.Asset("from_net"), p.Asset("from_cpu")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.UnstakeToRex(ctx, owner, receiver, net, cpu)
		}
	},
	"refund": func(p *params) call {
		owner := p.Name("owner")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.Refund(ctx, owner)
		}
	},

	"voteproducer": func(p *params) call {
		voter, proxy, producers := p.Name("voter"), p.OptionalName("proxy"), p.Names("producers")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.VoteProducer(ctx, voter, proxy, producers)
		}
	},
	"voteupdate": func(p *params) call {
		voter := p.Name("voter_name")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.VoteUpdate(ctx, voter)
		}
	},
	"claimrewards": func(p *params) call {
		owner := p.Name("owner")
		return func(ctx context.Context, c *wrapper.Contract) error {
			return c.ClaimRewards(ctx, owner)
		}
	},
}

// Actions returns the sorted list of supported action names.
func Actions() []string {
	names := []string{}
	for n := range actions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CreateAction executes a contract action under the authority of the
// authenticated account.
type CreateAction struct {
	Action  string
	Account chain.Name
	Call    call
}

// NewCreateAction constructs and initialiezes the endpoint.
func NewCreateAction(
	r *http.Request,
) (Endpoint, error) {
	return &CreateAction{}, nil
}

// Validate validates the input parameters.
func (e *CreateAction) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Action = pat.Param(r, "action")
	parse, ok := actions[e.Action]
	if !ok {
		return errors.Trace(errors.NewUserErrorf(nil,
			404, "action_not_found",
			"The action you are trying to execute does not exist: %s.",
			e.Action,
		))
	}

	p := &params{r: r}
	e.Call = parse(p)
	if p.err != nil {
		return errors.Trace(p.err)
	}

	e.Account = authentication.Account(ctx)

	return nil
}

// Execute executes the endpoint.
func (e *CreateAction) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	c := wrapper.Get(ctx)

	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	if err := e.Call(ctx, c); err != nil {
		return nil, nil, errors.Trace(err)
	}

	res := wrapper.ActionResource{
		Action:  e.Action,
		Account: e.Account,
	}
	if e.Account != "" {
		balances, err := c.NewBalancesResource(ctx, e.Account)
		if err != nil {
			return nil, nil, errors.Trace(err) // 500
		}
		res.Balances = *balances
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"action": format.JSONPtr(res),
	}, nil
}
