package migrations

import (
	"database/sql"

	migrate "github.com/rubenv/sql-migrate"
)

const migrationsTable = "migrations"

// Apply runs all pending up migrations and returns the number applied.
func Apply(db *sql.DB) (int, error) {
	migrate.SetTable(migrationsTable)

	return migrate.Exec(db, "postgres", migrate.EmbedFileSystemMigrationSource{
		FileSystem: Migrations,
		Root:       ".",
	}, migrate.Up)
}
