package requestlogger

import (
	"net/http"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/token"
)

type middleware struct {
	http.Handler
}

// ServeHTTP scopes the request logs with a request token and logs the
// request along with its response status and latency.
func (m middleware) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	ctx := logging.WithScope(r.Context(), token.New("req"))
	start := time.Now()
	wp := mutil.WrapWriter(w)

	logging.Logf(ctx, "HTTP Request: method=%q path=%q remote=%q",
		r.Method, r.URL.RequestURI(), r.RemoteAddr)

	defer func() {
		status := wp.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logging.Logf(ctx, "HTTP Response: status=%d bytes=%d latency=%s",
			status, wp.BytesWritten(), time.Since(start))
	}()

	m.Handler.ServeHTTP(wp, r.WithContext(ctx))
}

// Middleware that logs methods, URLs, remote addresses, status and latency.
func Middleware(h http.Handler) http.Handler {
	return middleware{h}
}
