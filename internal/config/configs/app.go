package configs

// App identifies the running service in health reports.
type App struct {
	Name    string `env:"NAME" envDefault:"SEM Plan Builder"`
	Version string `env:"VERSION" envDefault:"1.0.0"`
}
