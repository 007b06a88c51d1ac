package cmd

import (
	"fmt"
	"strings"
)

// Event broker choices for EVENT_BROKER.
const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RecordTimezone string
	LogLevel       string

	// Seeded for every role when cancellation_policies is empty.
	DefaultFeePercentage float64
	DefaultWindowMinutes int

	EventBroker      string
	KafkaBrokers     []string
	KafkaStatusTopic string
	RabbitMQURL      string
	RabbitMQExchange string

	RelaySchedule  string
	RelayBatchSize int
}

// DSN is the libpq connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Validate() error {
	switch strings.ToLower(c.EventBroker) {
	case BrokerNone, "":
	case BrokerKafka:
		if len(c.KafkaBrokers) == 0 || c.KafkaStatusTopic == "" {
			return fmt.Errorf("kafka broker requires KAFKA_BROKERS and KAFKA_STATUS_TOPIC")
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" || c.RabbitMQExchange == "" {
			return fmt.Errorf("rabbitmq broker requires RABBITMQ_URL and RABBITMQ_EXCHANGE")
		}
	default:
		return fmt.Errorf("unknown EVENT_BROKER %q", c.EventBroker)
	}
	if c.RelayBatchSize <= 0 {
		return fmt.Errorf("RELAY_BATCH_SIZE must be positive, got %d", c.RelayBatchSize)
	}
	return nil
}
