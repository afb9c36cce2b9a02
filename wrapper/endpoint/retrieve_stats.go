package endpoint

import (
	"context"
	"net/http"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/format"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/ptr"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/svc"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
)

const (
	// EndPtRetrieveStats retrieves the currencies of both ledgers.
	EndPtRetrieveStats EndPtName = "RetrieveStats"
	// EndPtRetrieveReserve retrieves the backing report.
	EndPtRetrieveReserve EndPtName = "RetrieveReserve"
	// EndPtRetrieveAudit retrieves the last audited action.
	EndPtRetrieveAudit EndPtName = "RetrieveAudit"
)

func init() {
	registrar[EndPtRetrieveStats] = NewRetrieveState(
		"stats", func(ctx context.Context, c *wrapper.Contract) (interface{}, error) {
			return c.NewStatsResource(ctx)
		})
	registrar[EndPtRetrieveReserve] = NewRetrieveState(
		"reserve", func(ctx context.Context, c *wrapper.Contract) (interface{}, error) {
			return c.Reserve(ctx)
		})
	registrar[EndPtRetrieveAudit] = NewRetrieveState(
		"audit", func(ctx context.Context, c *wrapper.Contract) (interface{}, error) {
			return c.NewAuditResource(ctx)
		})
}

// RetrieveState retrieves a parameterless view of the contract state. It is
// not authenticated.
type RetrieveState struct {
	Key  string
	Load func(ctx context.Context, c *wrapper.Contract) (interface{}, error)
}

// NewRetrieveState returns a constructor for a state endpoint responding with
// the loaded value under key.
func NewRetrieveState(
	key string,
	load func(ctx context.Context, c *wrapper.Contract) (interface{}, error),
) func(*http.Request) (Endpoint, error) {
	return func(r *http.Request) (Endpoint, error) {
		return &RetrieveState{
			Key:  key,
			Load: load,
		}, nil
	}
}

// Validate validates the input parameters.
func (e *RetrieveState) Validate(
	r *http.Request,
) error {
	return nil
}

// Execute executes the endpoint.
func (e *RetrieveState) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	v, err := e.Load(ctx, wrapper.Get(ctx))
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		e.Key: format.JSONPtr(v),
	}, nil
}
