package chain

import (
	"context"
	"net/http"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// ContextKey is the type of the key used with context to carry the accounts
// whose authority the current action runs with.
type ContextKey string

const (
	// authorityKey the context.Context key to store the authority.
	authorityKey ContextKey = "chain.authority"
)

// WithAuthority returns a context in which the current action runs with the
// authority of exactly the provided accounts.
func WithAuthority(
	ctx context.Context,
	accounts ...Name,
) context.Context {
	set := make(map[Name]struct{}, len(accounts))
	for _, a := range accounts {
		set[a] = struct{}{}
	}
	return context.WithValue(ctx, authorityKey, set)
}

// Authorities returns the accounts the current action runs with.
func Authorities(
	ctx context.Context,
) []Name {
	set, _ := ctx.Value(authorityKey).(map[Name]struct{})
	names := make([]Name, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	return names
}

// HasAuth returns whether the current action runs with account's authority.
func HasAuth(
	ctx context.Context,
	account Name,
) bool {
	set, _ := ctx.Value(authorityKey).(map[Name]struct{})
	_, ok := set[account]
	return ok
}

// RequireAuth returns an authorization error if the current action does not
// run with account's authority.
func RequireAuth(
	ctx context.Context,
	account Name,
) error {
	if !HasAuth(ctx, account) {
		return errors.NewUserErrorf(nil,
			http.StatusUnauthorized, ErrCodeMissingAuthority,
			"missing required authority %s", account)
	}
	return nil
}
