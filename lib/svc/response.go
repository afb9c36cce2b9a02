package svc

import (
	"encoding/json"
	"fmt"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
)

// Resp is the structure used to respond to a request
type Resp map[string]*json.RawMessage

// Extract extracts a protocol from a response
func (h Resp) Extract(
	protocol string,
	data interface{},
) error {
	raw, ok := h[protocol]
	if !ok || raw == nil {
		return errors.Trace(ErrProtocolExtraction{protocol})
	}
	if err := json.Unmarshal(*raw, data); err != nil {
		return errors.Trace(ErrProtocolExtraction{protocol})
	}
	return nil
}

// ErrProtocolExtraction is returned when a protocol is missing or cannot be
// unmarshalled from a request or response.
type ErrProtocolExtraction struct {
	Protocol string
}

func (e ErrProtocolExtraction) Error() string {
	return fmt.Sprintf("Failed to extract protocol: %s", e.Protocol)
}
