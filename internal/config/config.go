package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"

	AuthModeHeader = "header"
	AuthModeToken  = "token"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppName        string   `yaml:"app_name"`
	AppEnv         string   `yaml:"app_env"`
	AppPort        string   `yaml:"app_port"`
	TrustedProxies []string `yaml:"trusted_proxies"`

	DbDriver      string `yaml:"db_driver"`
	DbHost        string `yaml:"db_host"`
	DbPort        string `yaml:"db_port"`
	DbUser        string `yaml:"db_user"`
	DbPassword    string `yaml:"db_password"`
	DbName        string `yaml:"db_name"`
	DbParams      string `yaml:"db_params"`
	SqlitePath    string `yaml:"sqlite_path"`
	DbAutoMigrate bool   `yaml:"db_auto_migrate"`

	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Metrics   MetricsConfig   `yaml:"metrics"`

	CorsAllowedOrigins []string `yaml:"cors_allowed_origins"`
	BodyLimitBytes     int64    `yaml:"body_limit_bytes"`
	TranslationFolder  string   `yaml:"translation_folder"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type RateLimitConfig struct {
	Max     int           `yaml:"max"`
	Window  time.Duration `yaml:"window"`
	Backend string        `yaml:"backend"`
}

type RedisConfig struct {
	Addresses []string `yaml:"addresses"`
	Password  string   `yaml:"password"`
	DB        int      `yaml:"db"`
}

type AuthConfig struct {
	Mode        string        `yaml:"mode"`
	TokenSecret string        `yaml:"token_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
	BcryptCost  int           `yaml:"bcrypt_cost"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

func Default() *Config {
	return &Config{
		AppName:       "taskboard",
		AppEnv:        "development",
		AppPort:       "8080",
		DbDriver:      DriverMySQL,
		DbHost:        "db",
		DbPort:        "3306",
		DbUser:        "taskboard",
		DbPassword:    "taskboard",
		DbName:        "taskboard",
		DbParams:      "parseTime=true&multiStatements=true",
		SqlitePath:    "taskboard.db",
		DbAutoMigrate: true,
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			Output:     "stdout",
			MaxSizeMB:  100,
			MaxAgeDays: 7,
		},
		RateLimit: RateLimitConfig{
			Max:     100,
			Window:  15 * time.Minute,
			Backend: RateLimitMemory,
		},
		Auth: AuthConfig{
			Mode:       AuthModeHeader,
			TokenTTL:   24 * time.Hour,
			BcryptCost: 12,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		BodyLimitBytes:    10 << 20,
		TranslationFolder: "pkg/translator/translation",
	}
}

// LoadConfig layers .env, an optional YAML file named by CONFIG_FILE and
// the process environment, later layers winning.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.AppName = getEnv("APP_NAME", c.AppName)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.AppPort = getEnv("APP_PORT", c.AppPort)
	if value, ok := os.LookupEnv("TRUSTED_PROXIES"); ok {
		c.TrustedProxies = parseList(value)
	}

	c.DbDriver = getEnv("DB_DRIVER", c.DbDriver)
	c.DbHost = getEnv("MYSQL_HOST", c.DbHost)
	c.DbPort = getEnv("MYSQL_PORT", c.DbPort)
	c.DbUser = getEnv("MYSQL_USER", c.DbUser)
	c.DbPassword = getEnv("MYSQL_PASSWORD", c.DbPassword)
	c.DbName = getEnv("MYSQL_DATABASE", c.DbName)
	c.DbParams = getEnv("MYSQL_PARAMS", c.DbParams)
	c.SqlitePath = getEnv("SQLITE_PATH", c.SqlitePath)
	c.DbAutoMigrate = getEnvBool("DB_AUTO_MIGRATE", c.DbAutoMigrate)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.Output = getEnv("LOG_OUTPUT", c.Log.Output)
	c.Log.MaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", c.Log.MaxSizeMB)
	c.Log.MaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", c.Log.MaxAgeDays)

	c.RateLimit.Max = getEnvInt("RATE_LIMIT_MAX", c.RateLimit.Max)
	c.RateLimit.Window = getEnvDuration("RATE_LIMIT_WINDOW", c.RateLimit.Window)
	c.RateLimit.Backend = getEnv("RATE_LIMIT_BACKEND", c.RateLimit.Backend)

	if value, ok := os.LookupEnv("REDIS_ADDRS"); ok {
		c.Redis.Addresses = parseList(value)
	}
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)

	c.Auth.Mode = getEnv("AUTH_MODE", c.Auth.Mode)
	c.Auth.TokenSecret = getEnv("AUTH_TOKEN_SECRET", c.Auth.TokenSecret)
	c.Auth.TokenTTL = getEnvDuration("AUTH_TOKEN_TTL", c.Auth.TokenTTL)
	c.Auth.BcryptCost = getEnvInt("BCRYPT_COST", c.Auth.BcryptCost)

	c.Metrics.Enabled = getEnvBool("METRICS_ENABLED", c.Metrics.Enabled)
	c.Metrics.Path = getEnv("METRICS_PATH", c.Metrics.Path)

	if value, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		c.CorsAllowedOrigins = parseList(value)
	}
	c.BodyLimitBytes = int64(getEnvInt("BODY_LIMIT_BYTES", int(c.BodyLimitBytes)))
	c.TranslationFolder = getEnv("TRANSLATION_FOLDER", c.TranslationFolder)
}

func (c *Config) Validate() error {
	var errs []error

	switch c.DbDriver {
	case DriverMySQL, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown db driver %q", c.DbDriver))
	}

	switch c.Auth.Mode {
	case AuthModeHeader:
	case AuthModeToken:
		if c.Auth.TokenSecret == "" {
			errs = append(errs, errors.New("token auth mode requires AUTH_TOKEN_SECRET"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown auth mode %q", c.Auth.Mode))
	}

	switch c.RateLimit.Backend {
	case RateLimitMemory:
	case RateLimitRedis:
		if len(c.Redis.Addresses) == 0 {
			errs = append(errs, errors.New("redis rate limit backend requires REDIS_ADDRS"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown rate limit backend %q", c.RateLimit.Backend))
	}

	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate limit max and window must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
