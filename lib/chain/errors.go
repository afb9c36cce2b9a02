package chain

import (
	"net/http"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

const (
	// ErrCodeMissingAuthority is returned when an action lacks the signature
	// of the account it acts for.
	ErrCodeMissingAuthority = "missing_authority"
	// ErrCodeActionInvalid is returned when an action fails one of its own
	// checks.
	ErrCodeActionInvalid = "action_invalid"
)

// Invalidf returns a user error marking the current action as invalid with
// the provided message.
func Invalidf(
	format string,
	args ...interface{},
) error {
	return errors.NewUserErrorf(nil,
		http.StatusBadRequest, ErrCodeActionInvalid, format, args...)
}
