package configs

// Kafka configures plan event publishing. Without brokers events are
// dropped.
type Kafka struct {
	Brokers          []string `env:"BROKERS" envSeparator:","`
	PlanCreatedTopic string   `env:"TOPIC_PLAN_CREATED" envDefault:"sem.plan.created"`
}

func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }
