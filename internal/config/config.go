package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the server and the dbctl tool.
type Config struct {
	App       AppConfig `envPrefix:"APP_"`
	UploadDir string    `env:"UPLOAD_DIR" envDefault:"uploads"`
	// MaxBodyBytes caps every /api request body, uploads included.
	MaxBodyBytes int64           `env:"MAX_BODY_BYTES" envDefault:"10485760"`
	CORS         CORSConfig      `envPrefix:"CORS_"`
	Postgres     PostgresConfig  `envPrefix:"POSTGRES_"`
	JWT          JWTConfig       `envPrefix:"JWT_"`
	Redis        RedisConfig     `envPrefix:"REDIS_"`
	RateLimit    RateLimitConfig `envPrefix:"RATE_LIMIT_"`
	SMTP         SMTPConfig      `envPrefix:"SMTP_"`
	Kafka        KafkaConfig     `envPrefix:"KAFKA_"`
}

type AppConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// TrustProxy takes the client address from X-Forwarded-For or X-Real-IP.
	// Enable it only behind a reverse proxy that overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

type CORSConfig struct {
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`
}

type PostgresConfig struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"postgres"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	DB           string `env:"DB" envDefault:"gradevo"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"8"`
}

type JWTConfig struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"my_super_secret_key"`
}

type RedisConfig struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"6379"`
	DB           int    `env:"DB" envDefault:"0"`
	Password     string `env:"PASSWORD"`
	PoolSize     int    `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
}

type RateLimitConfig struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Max     int64         `env:"MAX" envDefault:"100"`
	Window  time.Duration `env:"WINDOW" envDefault:"15m"`
}

// SMTPConfig configures outgoing mail. When Enabled is false messages are only logged.
type SMTPConfig struct {
	Enabled   bool          `env:"ENABLED" envDefault:"false"`
	Host      string        `env:"HOST"`
	Port      int           `env:"PORT" envDefault:"587"`
	Username  string        `env:"USERNAME"`
	Password  string        `env:"PASSWORD"`
	FromEmail string        `env:"FROM_EMAIL" envDefault:"hello@gradevo.com"`
	FromName  string        `env:"FROM_NAME" envDefault:"Gradevo"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// KafkaConfig configures contact event publishing. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"contact-events"`
}

// Load reads an optional .env style file and then the process environment.
// Variables already present in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Addr is the HTTP listen address.
func (c AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// DSN builds the pgx connection URL.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr is the Redis host:port pair.
func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
