package endpoint

import (
	"context"
	"net/http"

	"goji.io/pat"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/format"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/ptr"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/svc"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
)

const (
	// EndPtRetrieveBalances retrieves the balances of an account.
	EndPtRetrieveBalances EndPtName = "RetrieveBalances"
)

func init() {
	registrar[EndPtRetrieveBalances] = NewRetrieveBalances
}

// RetrieveBalances retrieves the native and wrapped balances of an account.
// It is not authenticated.
type RetrieveBalances struct {
	Owner chain.Name
}

// NewRetrieveBalances constructs and initialiezes the endpoint.
func NewRetrieveBalances(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveBalances{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveBalances) Validate(
	r *http.Request,
) error {
	owner, err := chain.NewName(pat.Param(r, "owner"))
	if err != nil {
		return errors.Trace(errors.NewUserErrorf(err,
			400, "owner_invalid",
			"The owner you provided is invalid: %s.", pat.Param(r, "owner"),
		))
	}
	e.Owner = owner

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveBalances) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	balances, err := wrapper.Get(ctx).NewBalancesResource(ctx, e.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"balances": format.JSONPtr(balances),
	}, nil
}
