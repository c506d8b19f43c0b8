package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Scheduling SchedulingConfig
	Events     EventsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// SchedulingConfig describes the single resource pool's business calendar.
type SchedulingConfig struct {
	TimeZone           string `envconfig:"SCHEDULE_TIMEZONE" default:"UTC"`
	BusinessStart      string `envconfig:"SCHEDULE_BUSINESS_START" default:"09:00"`
	BusinessEnd        string `envconfig:"SCHEDULE_BUSINESS_END" default:"18:00"`
	GranularityMinutes int    `envconfig:"SCHEDULE_GRANULARITY_MINUTES" default:"30"`
	HorizonDays        int    `envconfig:"SCHEDULE_HORIZON_DAYS" default:"60"`
	RequiredDays       int    `envconfig:"SCHEDULE_REQUIRED_DAYS" default:"30"`
	TxMaxRetries       int    `envconfig:"SCHEDULE_TX_MAX_RETRIES" default:"1"`
}

type EventsConfig struct {
	KafkaBrokers     []string      `envconfig:"EVENTS_KAFKA_BROKERS"`
	KafkaTopic       string        `envconfig:"EVENTS_KAFKA_TOPIC" default:"appointments.events"`
	KafkaCompression string        `envconfig:"EVENTS_KAFKA_COMPRESSION" default:"snappy"`
	RelayInterval    time.Duration `envconfig:"EVENTS_RELAY_INTERVAL" default:"2s"`
	RelayBatch       int32         `envconfig:"EVENTS_RELAY_BATCH" default:"50"`
	MaxAttempts      int32         `envconfig:"EVENTS_MAX_ATTEMPTS" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: "1h",
		},
		Scheduling: SchedulingConfig{
			TimeZone:           "UTC",
			BusinessStart:      "09:00",
			BusinessEnd:        "18:00",
			GranularityMinutes: 30,
			HorizonDays:        60,
			RequiredDays:       30,
			TxMaxRetries:       1,
		},
		Events: EventsConfig{
			KafkaTopic:    "appointments.events",
			RelayInterval: 50 * time.Millisecond,
			RelayBatch:    50,
			MaxAttempts:   3,
		},
	}
}
