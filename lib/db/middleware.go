package db

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// Middleware returns a middleware that injects db in the context of requests.
// Endpoints begin their own transaction from it.
func Middleware(
	db *sqlx.DB,
) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(WithDB(r.Context(), db)))
		})
	}
}
