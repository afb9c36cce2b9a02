package db

import (
	"context"
	"fmt"
	"sort"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

type schema struct {
	order int
	table string
	sql   string
}

var schemas = map[string][]schema{}

// RegisterSchema lets schemas register themselves. Schemas of a tag are
// applied by increasing order, so tables with foreign keys or shared
// dependencies should register with a higher order than their dependencies.
func RegisterSchema(
	tag string,
	order int,
	table string,
	sql string,
) {
	schemas[tag] = append(schemas[tag], schema{order, table, sql})
}

// migrationSource builds the sql-migrate source for the schemas registered
// under the provided tags.
func migrationSource(
	tags ...string,
) *migrate.MemoryMigrationSource {
	src := &migrate.MemoryMigrationSource{}
	for _, tag := range tags {
		s := append([]schema{}, schemas[tag]...)
		sort.SliceStable(s, func(i, j int) bool {
			return s[i].order < s[j].order
		})
		for _, sch := range s {
			src.Migrations = append(src.Migrations, &migrate.Migration{
				// Ids sort lexicographically, hence the zero padding.
				Id: fmt.Sprintf("%s.%03d.%s", tag, sch.order, sch.table),
				Up: []string{sch.sql},
			})
		}
	}
	return src
}

// CreateDBTables applies the schemas registered under the provided tags to
// the DB. Schemas already applied are skipped.
func CreateDBTables(
	ctx context.Context,
	db *sqlx.DB,
	tags ...string,
) error {
	dialect := db.DriverName()
	if dialect == "pgx" {
		dialect = "postgres"
	}
	src := migrationSource(tags...)
	n, err := migrate.Exec(db.DB, dialect, src, migrate.Up)
	if err != nil {
		return errors.Trace(err)
	}
	logging.Logf(ctx,
		"Applied schemas: tags=%v applied=%d known=%d",
		tags, n, len(src.Migrations))
	return nil
}
