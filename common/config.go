// Package common provides the worker's environment-driven configuration,
// loaded once at startup and validated eagerly so that a misconfigured
// deployment fails fast instead of during the first delivery.
package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/biel-despair/fiscal-doc-worker/errors"
)

// MaxChannels is the upper bound on NUM_CHANNELS; exceeding it aborts
// startup.
const MaxChannels = 20

// BrokerConfig carries the RabbitMQ connection and topology settings.
type BrokerConfig struct {
	Host         string
	Port         uint16
	User         string
	Password     string
	ConsumeQueue string
	PublishQueue string
	Exchange     string
	RoutingKey   string
	NumChannels  uint8
}

// StorageConfig carries the MinIO/S3 object storage settings.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Config is the complete worker configuration, assembled from
// environment variables.
type Config struct {
	Broker   BrokerConfig
	Storage  StorageConfig
	LogLevel string
}

// LoadConfig reads and validates the worker configuration from the
// process environment. A missing required variable or an invalid
// value is reported as a single aggregated *errors.NFError so startup
// can abort with full context in one log line.
func LoadConfig() (*Config, error) {
	var missing []string

	get := func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			missing = append(missing, name)
		}
		return v
	}

	host := get("RABBIT_HOST")
	portStr := get("RABBIT_PORT")
	user := get("RABBIT_USER")
	pwd := get("RABBIT_PWD")
	consumeQueue := get("CONSUME_QUEUE")
	publishQueue := get("PUBLISH_QUEUE")
	// EXCHANGE must be set but may be empty (no exchange binding).
	exchange, exchangeSet := os.LookupEnv("EXCHANGE")
	if !exchangeSet {
		missing = append(missing, "EXCHANGE")
	}
	routingKey := get("ROUTING_KEY")
	numChannelsStr := get("NUM_CHANNELS")

	endpoint := get("MINIO_ENDPOINT")
	accessKey := get("MINIO_ACCESS_KEY")
	secretKey := get("MINIO_SECRET_KEY")
	bucket := get("MINIO_BUCKET_NAME")

	if len(missing) > 0 {
		return nil, errors.NewConfigError(
			fmt.Sprintf("missing required environment variable(s): %v", missing),
			"environment", missing,
		)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, errors.NewConfigError("RABBIT_PORT must be a valid port number", "RABBIT_PORT", portStr)
	}

	numChannels, err := strconv.ParseUint(numChannelsStr, 10, 8)
	if err != nil {
		return nil, errors.NewConfigError("NUM_CHANNELS must be a valid integer", "NUM_CHANNELS", numChannelsStr)
	}
	if numChannels > MaxChannels {
		return nil, errors.NewConfigError(
			fmt.Sprintf("NUM_CHANNELS cannot exceed %d", MaxChannels),
			"NUM_CHANNELS", numChannels,
		)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Broker: BrokerConfig{
			Host:         host,
			Port:         uint16(port),
			User:         user,
			Password:     pwd,
			ConsumeQueue: consumeQueue,
			PublishQueue: publishQueue,
			Exchange:     exchange,
			RoutingKey:   routingKey,
			NumChannels:  uint8(numChannels),
		},
		Storage: StorageConfig{
			Endpoint:  endpoint,
			AccessKey: accessKey,
			SecretKey: secretKey,
			Bucket:    bucket,
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
		LogLevel: logLevel,
	}, nil
}
