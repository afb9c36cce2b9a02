package env

import "net/http"

// Middleware returns a middleware that injects env in the context of
// requests.
func Middleware(
	env *Env,
) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.WithContext(With(r.Context(), env)))
		})
	}
}
