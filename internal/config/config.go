// Package config loads runtime settings from defaults, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Port     int            `yaml:"port"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	HTTP     HTTPConfig     `yaml:"http"`
	Paging   PagingConfig   `yaml:"paging"`
	Logging  LoggingConfig  `yaml:"logging"`

	// ApplicationDailyLimit caps applications per job per UTC day.
	ApplicationDailyLimit int `yaml:"application_daily_limit"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host             string `yaml:"host"`
	Port             string `yaml:"port"`
	User             string `yaml:"user"`
	Password         string `yaml:"password"`
	Name             string `yaml:"name"`
	UseConnectionStr bool   `yaml:"use_connection_str"`
	ConnectionStr    string `yaml:"connection_str"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	SecretKey       string        `yaml:"secret_key"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
}

// RedisConfig enables the shared token revocation store when URL is set.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds transport level settings.
type HTTPConfig struct {
	AllowOrigins       []string `yaml:"allow_origins"`
	RateLimitPerSecond uint     `yaml:"rate_limit_per_second"`
	SiteBaseURL        string   `yaml:"site_base_url"`
	MaxBodyBytes       int64    `yaml:"max_body_bytes"`
}

// PagingConfig holds collection paging defaults.
type PagingConfig struct {
	PageSize    int `yaml:"page_size"`
	MaxPageSize int `yaml:"max_page_size"`
}

// LoggingConfig selects the slog level and whether auth attempts are written to log/auth.log.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	AuthFile bool   `yaml:"auth_file"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port: 8080,
		Database: DatabaseConfig{
			Host: "localhost",
			Port: "5432",
		},
		Auth: AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
		HTTP: HTTPConfig{
			AllowOrigins:       []string{"http://localhost:3000"},
			RateLimitPerSecond: 5,
			MaxBodyBytes:       1 << 20,
		},
		Paging: PagingConfig{
			PageSize:    10,
			MaxPageSize: 100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		ApplicationDailyLimit: 5,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when path is empty),
// then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var errs []error

	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setInt("PORT", &cfg.Port)

	setString("DB_HOST", &cfg.Database.Host)
	setString("DB_PORT", &cfg.Database.Port)
	setString("DB_USERNAME", &cfg.Database.User)
	setString("DB_PASSWORD", &cfg.Database.Password)
	setString("DB_DATABASE", &cfg.Database.Name)
	setBool("USE_CONNECTION_STR", &cfg.Database.UseConnectionStr)
	setString("DB_CONNECTION_STR", &cfg.Database.ConnectionStr)

	setString("SECRET_KEY", &cfg.Auth.SecretKey)
	setDuration("ACCESS_TOKEN_TTL", &cfg.Auth.AccessTokenTTL)
	setDuration("REFRESH_TOKEN_TTL", &cfg.Auth.RefreshTokenTTL)

	setString("REDIS_URL", &cfg.Redis.URL)

	if v := os.Getenv("ALLOW_ORIGIN"); v != "" {
		cfg.HTTP.AllowOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"); v != "" {
		n, err := strconv.Atoi(v)
		// keep the default on an unusable value
		if err == nil && n > 0 {
			cfg.HTTP.RateLimitPerSecond = uint(n)
		}
	}
	setString("SITE_BASE_URL", &cfg.HTTP.SiteBaseURL)

	setInt("PAGE_SIZE", &cfg.Paging.PageSize)
	setInt("MAX_PAGE_SIZE", &cfg.Paging.MaxPageSize)
	setInt("APPLICATION_DAILY_LIMIT", &cfg.ApplicationDailyLimit)

	setString("LOG_LEVEL", &cfg.Logging.Level)
	setBool("LOGGING", &cfg.Logging.AuthFile)

	return errors.Join(errs...)
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.Auth.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is empty"))
	}
	if c.Database.UseConnectionStr {
		if c.Database.ConnectionStr == "" {
			errs = append(errs, errors.New("DB_CONNECTION_STR is empty"))
		}
	} else if c.Database.Host == "" || c.Database.Port == "" || c.Database.User == "" ||
		c.Database.Password == "" || c.Database.Name == "" {
		errs = append(errs, errors.New("database configuration is incomplete"))
	}
	if c.Paging.PageSize <= 0 || c.Paging.MaxPageSize < c.Paging.PageSize {
		errs = append(errs, fmt.Errorf("invalid paging: page_size=%d max_page_size=%d", c.Paging.PageSize, c.Paging.MaxPageSize))
	}
	if c.ApplicationDailyLimit <= 0 {
		errs = append(errs, errors.New("APPLICATION_DAILY_LIMIT must be positive"))
	}
	return errors.Join(errs...)
}
