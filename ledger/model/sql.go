package model

import (
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// translate maps driver specific constraint errors to model errors.
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
