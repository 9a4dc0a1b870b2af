package config

import (
	"os"
)

type Config struct {
	HTTP_PORT     string `env:"HTTP_PORT"`
	DB_STRING     string `env:"DB_STRING"`
	KAFKA_BROKERS string `env:"KAFKA_BROKERS"`
	KAFKA_TOPIC   string `env:"KAFKA_TOPIC"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTP_PORT:     os.Getenv("HTTP_PORT"),
		DB_STRING:     os.Getenv("DB_STRING"),
		KAFKA_BROKERS: os.Getenv("KAFKA_BROKERS"),
		KAFKA_TOPIC:   os.Getenv("KAFKA_TOPIC"),
	}

	if cfg.HTTP_PORT == "" {
		cfg.HTTP_PORT = "8080"
	}
	if cfg.KAFKA_TOPIC == "" {
		cfg.KAFKA_TOPIC = "order-confirmations"
	}

	return cfg, nil
}
