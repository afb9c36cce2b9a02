package token

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New generates a new token prefixed by the provided object type.
func New(
	objType string,
) string {
	id := strings.Replace(uuid.New().String(), "-", "", -1)
	return fmt.Sprintf("%s_%s", objType, id)
}
