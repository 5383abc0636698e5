package configs

import "time"

// Redis configures the plan cache. An empty Address disables caching.
type Redis struct {
	// Address is either a redis:// URL or a host:port pair.
	Address string        `env:"ADDRESS"`
	TTL     time.Duration `env:"TTL" envDefault:"1h"`
	Prefix  string        `env:"PREFIX" envDefault:"sem:plan:"`
}

func (c Redis) Enabled() bool { return c.Address != "" }
