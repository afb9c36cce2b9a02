package schemas

import "github.com/VaultaFoundation/vaulta-system-contract/lib/db"

const (
	auditSQL = `
CREATE TABLE IF NOT EXISTS wrapper_audit(
  scope VARCHAR(12) NOT NULL,         -- wrapper contract account
  last_action VARCHAR(32) NOT NULL,
  updated TIMESTAMP NOT NULL,

  PRIMARY KEY(scope)
);
`
)

func init() {
	db.RegisterSchema(
		"wrapper", 3,
		"wrapper_audit",
		auditSQL,
	)
}
