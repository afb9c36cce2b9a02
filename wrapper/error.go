package wrapper

import (
	"context"
	"net/http"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
)

const (
	// ErrCodeInsufficientReserve is returned when the native reserve does not
	// cover the circulating wrapped supply. It reports a broken invariant.
	ErrCodeInsufficientReserve = "insufficient_reserve"
	// ErrCodeMarketRejected is returned when a resource market refuses an
	// action forwarded to it.
	ErrCodeMarketRejected = "market_rejected"
)

// ErrInsufficientReserve logs the invariant breach and returns the matching
// user error.
func ErrInsufficientReserve(
	ctx context.Context,
	reserve chain.Asset,
	required chain.Asset,
) error {
	logging.Logf(ctx,
		"INVARIANT BREACH: reserve=%s required=%s", reserve, required)
	return errors.NewUserErrorf(nil,
		http.StatusInternalServerError, ErrCodeInsufficientReserve,
		"insufficient reserve: %s < %s", reserve, required)
}

// marketRejected rewraps the contract check failures of a market call so
// that callers can tell them apart from the wrapper's own. The message is
// kept unchanged.
func marketRejected(
	err error,
) error {
	if err == nil {
		return nil
	}
	if errors.Code(err) == chain.ErrCodeActionInvalid {
		return errors.NewUserErrorf(err,
			http.StatusBadRequest, ErrCodeMarketRejected,
			"%s", errors.Message(err))
	}
	return errors.Trace(err)
}
