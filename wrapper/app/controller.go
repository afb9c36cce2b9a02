package app

import (
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/endpoint"
	"goji.io"
	"goji.io/pat"
)

// Controller binds the API
type Controller struct{}

// Bind registers the API routes.
func (c *Controller) Bind(
	mux *goji.Mux,
) {
	// Authenticated.
	mux.HandleFunc(pat.Post("/actions/:action"), endpoint.HandlerFor(endpoint.EndPtCreateAction))
	mux.HandleFunc(pat.Post("/ledger/transfer"), endpoint.HandlerFor(endpoint.EndPtCreateLedgerTransfer))

	// Public.
	mux.HandleFunc(pat.Get("/balances/:owner"), endpoint.HandlerFor(endpoint.EndPtRetrieveBalances))
	mux.HandleFunc(pat.Get("/stats"), endpoint.HandlerFor(endpoint.EndPtRetrieveStats))
	mux.HandleFunc(pat.Get("/reserve"), endpoint.HandlerFor(endpoint.EndPtRetrieveReserve))
	mux.HandleFunc(pat.Get("/audit"), endpoint.HandlerFor(endpoint.EndPtRetrieveAudit))
}
