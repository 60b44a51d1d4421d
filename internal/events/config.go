package events

type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func (c Config) Enabled() bool {
	return len(c.Brokers) > 0
}
