package wrapper

import (
	"context"
	"net/http"
)

// ContextKey is the type of the key used with context to carry the contract.
type ContextKey string

const (
	// contractKey the context.Context key to store the contract.
	contractKey ContextKey = "wrapper.contract"
)

// With stores the contract in the provided context.
func With(
	ctx context.Context,
	c *Contract,
) context.Context {
	return context.WithValue(ctx, contractKey, c)
}

// Get returns the contract currently stored in the context.
func Get(
	ctx context.Context,
) *Contract {
	return ctx.Value(contractKey).(*Contract)
}

type middleware struct {
	http.Handler
	*Contract
}

// ServeHTTP handles incoming HTTP requests and injects the contract in their
// context.
func (m middleware) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	ctx := r.Context()
	withContract := With(ctx, m.Contract)
	m.Handler.ServeHTTP(w, r.WithContext(withContract))
}

// Middleware returns a middleware that injects the contract in requests.
func Middleware(
	c *Contract,
) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return middleware{h, c}
	}
}
