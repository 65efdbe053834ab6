package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables read by Load. Nested keys use a
// double underscore: FULFILLMENT_DB__HOST sets db.host.
const EnvPrefix = "FULFILLMENT_"

const (
	defaultHTTPPort              = "8080"
	defaultAppEnv                = "development"
	defaultDisplayTimezone       = "Asia/Kolkata"
	defaultDBPort                = "5432"
	defaultDBSSLMode             = "disable"
	defaultDBDriver              = "pgx"
	defaultIdempotencyTTL        = 24 * time.Hour
	defaultNotificationTopic     = "order-notifications"
	defaultPublishTimeout        = 5 * time.Second
	defaultLogLevel              = "info"
	defaultNotificationRetention = 720 * time.Hour
)

type Config struct {
	HTTPPort        string `koanf:"http_port"`
	AppEnv          string `koanf:"app_env"`
	DisplayTimezone string `koanf:"display_timezone"`

	DB    DBConfig    `koanf:"db"`
	JWT   JWTConfig   `koanf:"jwt"`
	Redis RedisConfig `koanf:"redis"`
	Kafka KafkaConfig `koanf:"kafka"`
	Log   LogConfig   `koanf:"log"`
	Jobs  JobsConfig  `koanf:"jobs"`
}

type DBConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"sslmode"`
	Driver          string        `koanf:"driver"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
	Issuer string `koanf:"issuer"`
}

// RedisConfig enables Idempotency-Key replay when Addr is set.
type RedisConfig struct {
	Addr           string        `koanf:"addr"`
	Password       string        `koanf:"password"`
	IdempotencyTTL time.Duration `koanf:"idempotency_ttl"`
}

// KafkaConfig enables notification events when Brokers (comma separated) is set.
type KafkaConfig struct {
	Brokers           string        `koanf:"brokers"`
	NotificationTopic string        `koanf:"notification_topic"`
	PublishTimeout    time.Duration `koanf:"publish_timeout"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

type JobsConfig struct {
	NotificationRetention time.Duration `koanf:"notification_retention"`
	RetentionSchedule     string        `koanf:"retention_schedule"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:        defaultHTTPPort,
		AppEnv:          defaultAppEnv,
		DisplayTimezone: defaultDisplayTimezone,
		DB: DBConfig{
			Port:    defaultDBPort,
			SSLMode: defaultDBSSLMode,
			Driver:  defaultDBDriver,
		},
		Redis: RedisConfig{IdempotencyTTL: defaultIdempotencyTTL},
		Kafka: KafkaConfig{NotificationTopic: defaultNotificationTopic, PublishTimeout: defaultPublishTimeout},
		Log:   LogConfig{Level: defaultLogLevel},
		Jobs:  JobsConfig{NotificationRetention: defaultNotificationRetention},
	}
}

// Load builds the configuration from, in increasing priority: defaults, an
// optional YAML file at path, an optional .env file and FULFILLMENT_ variables.
func Load(path string) (Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	k := koanf.New(".")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("http_port required"))
	}
	if c.DB.Host == "" {
		problems = append(problems, errors.New("db.host required"))
	}
	if c.DB.Name == "" {
		problems = append(problems, errors.New("db.name required"))
	}
	if c.JWT.Secret == "" {
		problems = append(problems, errors.New("jwt.secret required"))
	}
	if c.Jobs.NotificationRetention <= 0 {
		problems = append(problems, errors.New("jobs.notification_retention must be positive"))
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		problems = append(problems, fmt.Errorf("display_timezone: %w", err))
	}
	return errors.Join(problems...)
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// DisplayLocation is the zone pickup slots are generated and labelled in.
func (c Config) DisplayLocation() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
