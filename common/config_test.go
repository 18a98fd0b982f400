package common

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	env := map[string]string{
		"RABBIT_HOST":       "localhost",
		"RABBIT_PORT":       "5672",
		"RABBIT_USER":       "guest",
		"RABBIT_PWD":        "guest",
		"CONSUME_QUEUE":     "xml_queue",
		"PUBLISH_QUEUE":     "parsed_queue",
		"EXCHANGE":          "",
		"ROUTING_KEY":       "xml_queue",
		"NUM_CHANNELS":      "5",
		"MINIO_ENDPOINT":    "localhost:9000",
		"MINIO_ACCESS_KEY":  "minioadmin",
		"MINIO_SECRET_KEY":  "minioadmin",
		"MINIO_BUCKET_NAME": "fiscal-docs",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfigValid(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Broker.Host != "localhost" || cfg.Broker.Port != 5672 {
		t.Errorf("unexpected broker config: %+v", cfg.Broker)
	}
	if cfg.Storage.Bucket != "fiscal-docs" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoadConfigMissingVariable(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("RABBIT_HOST")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for missing RABBIT_HOST")
	}
}

func TestLoadConfigTooManyChannels(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NUM_CHANNELS", "21")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for NUM_CHANNELS > 20")
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RABBIT_PORT", "notaport")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for invalid RABBIT_PORT")
	}
}
