package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/format"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/svc"
)

// internalError is what clients see of errors that are not user errors.
var internalError = errors.ConcreteUserError{
	ErrStatus:  http.StatusInternalServerError,
	ErrCode:    "internal_error",
	ErrMessage: "There was an error while processing your request.",
}

// Error responds with the content of err if it is a user error, and with a
// generic internal_error otherwise. The error stack is logged in both cases.
func Error(
	ctx context.Context,
	w http.ResponseWriter,
	err error,
) {
	body := internalError
	if e := errors.ExtractUserError(err); e != nil {
		body = errors.Build(e)
		logging.Logf(ctx,
			"UserError: status=%d code=%q message=%q",
			e.Status(), e.Code(), e.Message())
		for _, line := range errors.ErrorStack(e.Cause()) {
			logging.Logf(ctx, "    %s", line)
		}
	} else {
		logging.Errorf(ctx, err, "Unexpected error")
	}
	for _, line := range errors.ErrorStack(err) {
		logging.Logf(ctx, "  %s", line)
	}

	Respond(ctx, w, body.ErrStatus, svc.Resp{
		"error": format.JSONPtr(body),
	})
}

// Respond writes resp as indented JSON with the provided status.
func Respond(
	ctx context.Context,
	w http.ResponseWriter,
	status int,
	resp svc.Resp,
) {
	formatted, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		logging.Errorf(ctx, err, "Failed to format body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var b bytes.Buffer
	json.HTMLEscape(&b, formatted)
	b.WriteByte('\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := b.WriteTo(w); err != nil {
		logging.Errorf(ctx, err, "Failed to write body")
	}
}
