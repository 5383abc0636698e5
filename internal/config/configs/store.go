package configs

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store selects the persistence backend. Postgres is the production store;
// SQLite keeps local runs and demos free of external services.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// SQLitePath is the database file used when Driver is "sqlite".
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/sem.db"`
}
