package endpoint

import (
	"context"
	"net/http"

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
	// EndPtCreateLedgerTransfer transfers native currency.
	EndPtCreateLedgerTransfer EndPtName = "CreateLedgerTransfer"
)

func init() {
	registrar[EndPtCreateLedgerTransfer] = NewCreateLedgerTransfer
}

// CreateLedgerTransfer transfers native currency on the native ledger. A
// transfer to the contract wraps the quantity for the sender.
type CreateLedgerTransfer struct {
	From     chain.Name
	To       chain.Name
	Quantity chain.Asset
	Memo     string
}

// NewCreateLedgerTransfer constructs and initialiezes the endpoint.
func NewCreateLedgerTransfer(
	r *http.Request,
) (Endpoint, error) {
	return &CreateLedgerTransfer{}, nil
}

// Validate validates the input parameters.
func (e *CreateLedgerTransfer) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	p := &params{r: r}
	if r.PostFormValue("from") == "" {
		e.From = authentication.Account(ctx)
	} else {
		e.From = p.Name("from")
	}
	e.To = p.Name("to")
	e.Quantity = p.Asset("quantity")
	e.Memo = p.Memo("memo")

	return errors.Trace(p.err)
}

// Execute executes the endpoint.
func (e *CreateLedgerTransfer) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	c := wrapper.Get(ctx)

	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	err := c.Native.Transfer(ctx, e.From, e.To, e.Quantity, e.Memo)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	balances, err := c.NewBalancesResource(ctx, e.From)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"balances": format.JSONPtr(balances),
	}, nil
}
