package format

import (
	"bytes"
	"encoding/json"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// JSONPtr formats an object into a json.RawMessage pointer, panicking if it
// cannot be marshalled.
func JSONPtr(
	v interface{},
) *json.RawMessage {
	formatted, err := json.Marshal(v)
	if err != nil {
		panic(errors.Trace(err))
	}
	var b bytes.Buffer
	json.HTMLEscape(&b, formatted)
	msg := json.RawMessage(b.Bytes())
	return &msg
}

// JSONIndentedString formats an object into an indented string, panicking if
// it cannot be marshalled.
func JSONIndentedString(
	v interface{},
) string {
	formatted, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(errors.Trace(err))
	}
	return string(formatted)
}
