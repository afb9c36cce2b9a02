package model

import (
	"fmt"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// ErrUniqueConstraintViolation is returned when a object insertion violates a
// unique constraint.
type ErrUniqueConstraintViolation struct {
	Err error
}

func (e ErrUniqueConstraintViolation) Error() string {
	return fmt.Sprintf(
		"Unique constraint violation in %s", e.Err.Error())
}

func translate(
	err error,
) error {
	switch e := err.(type) {
	case *pq.Error:
		if e.Code.Name() == "unique_violation" {
			return errors.Trace(ErrUniqueConstraintViolation{e})
		}
	case sqlite3.Error:
		if e.ExtendedCode == sqlite3.ErrConstraintUnique ||
			e.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return errors.Trace(ErrUniqueConstraintViolation{e})
		}
	}
	return errors.Trace(err)
}
