package config

import "os"

type Config struct {
	Port        string
	GoEnv       string
	RabbitMQURL string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		GoEnv:       getenv("GO_ENV", "development"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
