package ledger

import (
	"net/http"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

const (
	// ErrCodeNoBalance is returned when debiting an owner with no balance
	// record for the currency.
	ErrCodeNoBalance = "no_balance"
	// ErrCodeOverdrawnBalance is returned when debiting more than an owner
	// holds.
	ErrCodeOverdrawnBalance = "overdrawn_balance"
)

// ErrNoBalance is the error returned when no balance record exists.
func ErrNoBalance() error {
	return errors.NewUserErrorf(nil,
		http.StatusPaymentRequired, ErrCodeNoBalance,
		"no balance object found")
}

// ErrOverdrawnBalance is the error returned when a balance is insufficient.
func ErrOverdrawnBalance() error {
	return errors.NewUserErrorf(nil,
		http.StatusPaymentRequired, ErrCodeOverdrawnBalance,
		"overdrawn balance")
}

// IsInsufficientBalance returns whether err reports a missing or insufficient
// balance.
func IsInsufficientBalance(
	err error,
) bool {
	switch errors.Code(err) {
	case ErrCodeNoBalance, ErrCodeOverdrawnBalance:
		return true
	}
	return false
}
