package migrations

import "embed"

// Postgres and SQLite embed the SQL migration files for each dialect. The
// golang-migrate library reads them through the iofs driver.
var (
	//go:embed postgres/*.sql
	Postgres embed.FS

	//go:embed sqlite/*.sql
	SQLite embed.FS
)

// Version is the schema version the binary expects.
const Version = 1
