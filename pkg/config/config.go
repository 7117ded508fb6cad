package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/depthline/bookmirror/pkg/redis"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load()

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load()

	return env.Parse(cfg)
}

// Config holds the configuration for the depth mirror service.
type Config struct {
	// Pair is the instrument the mirrored book belongs to, e.g. BTC-USD.
	Pair string `env:"PAIR,required"`

	// TickDomain is the number of price ticks the book covers, [0, TickDomain).
	TickDomain int `env:"TICK_DOMAIN" envDefault:"200001"`

	// DepthLevels is the number of levels per side included in published depth.
	DepthLevels int `env:"DEPTH_LEVELS" envDefault:"10"`

	UpdateKafka KafkaConfig  `envPrefix:"UPDATE_KAFKA_"`
	DepthKafka  KafkaConfig  `envPrefix:"DEPTH_KAFKA_"`
	Redis       redis.Config `envPrefix:"REDIS_"`
}

// KafkaConfig holds the configuration for a Kafka consumer or producer.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC,required"`
	GroupID string   `env:"GROUP_ID" envDefault:"default_group"`
	Brokers []string `env:"BROKER,required" envSeparator:","`
}
