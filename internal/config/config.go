package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"FROM_EMAIL"`
	To       string `envconfig:"TO_EMAIL"`
}

// Complete reports whether every parameter needed to send mail is set.
func (s SMTPConfig) Complete() bool {
	return s.Host != "" &&
		s.Port > 0 &&
		s.Username != "" &&
		s.Password != "" &&
		s.From != "" &&
		s.To != ""
}

type KafkaConfig struct {
	Brokers       []string `envconfig:"KAFKA_BROKERS"`
	BookingsTopic string   `envconfig:"KAFKA_TOPIC_BOOKINGS" default:"bookings.created"`
	ContactsTopic string   `envconfig:"KAFKA_TOPIC_CONTACTS" default:"contacts.created"`
}

type Config struct {
	SecretKey   string   `envconfig:"SECRET_KEY"`
	DBUrl       string   `envconfig:"DATABASE_URL" default:"sqlite:///site.db"`
	ServerPort  string   `envconfig:"SERVER_PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string   `envconfig:"LOG_FILE" default:"app.log"`
	SeedOnStart bool     `envconfig:"SEED_ON_START" default:"false"`
	RedisURL    string   `envconfig:"REDIS_URL"`

	SMTP  SMTPConfig
	Kafka KafkaConfig
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// DatabaseDriver returns "postgres" or "sqlite" depending on the URL scheme.
func (c *Config) DatabaseDriver() string {
	if strings.HasPrefix(c.DBUrl, "postgres://") || strings.HasPrefix(c.DBUrl, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

// SQLitePath strips the sqlite:/// prefix used by DATABASE_URL.
func (c *Config) SQLitePath() string {
	return strings.TrimPrefix(c.DBUrl, "sqlite:///")
}
