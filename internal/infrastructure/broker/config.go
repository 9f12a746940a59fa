package broker

import "time"

const (
	DriverRedis = "redis"
	DriverAMQP  = "amqp"

	DefaultTimeout = 1000
)

type Config struct {
	Driver     string `yaml:"driver"`
	URI        string `env:"BROKER_URI"`
	StreamName string `yaml:"stream_name"`
	QueueName  string `yaml:"queue_name"`
	Timeout    int    `yaml:"timeout_in_ms"`
}

// PublishTimeout falls back to DefaultTimeout when timeout_in_ms is unset.
func (c Config) PublishTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout * time.Millisecond
	}

	return time.Duration(c.Timeout) * time.Millisecond
}
