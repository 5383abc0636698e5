package configs

// Planner points at the optional YAML file with planner tunables and
// controls the random source.
type Planner struct {
	// ConfigPath is a YAML file overriding the built-in tunables. Empty
	// means defaults only.
	ConfigPath string `env:"CONFIG_PATH"`
	// RandomSeed pins keyword synthesis to a reproducible sequence. Zero
	// uses the runtime generator.
	RandomSeed uint64 `env:"RANDOM_SEED" envDefault:"0"`
}
