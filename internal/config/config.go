package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/PayRam/go-storefront/internal/db"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPHost string
	HTTPPort int

	DBDriver       string
	DBDSN          string
	DBMaxOpenConns int
	DBMaxIdleConns int

	LogLevel  string
	LogFormat string
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// LoadConfig reads .env, then the environment, then args. Flags take
// precedence over env, env over .env.
func LoadConfig(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	var err error

	cfg.HTTPHost = envString("HTTP_HOST", "127.0.0.1")
	if cfg.HTTPPort, err = envInt("HTTP_PORT", 8000); err != nil {
		return cfg, err
	}
	cfg.DBDriver = envString("DB_DRIVER", db.DriverSQLite)
	cfg.DBDSN = envString("DB_DSN", "storefront.db")
	if cfg.DBMaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return cfg, err
	}
	if cfg.DBMaxIdleConns, err = envInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return cfg, err
	}
	cfg.LogLevel = envString("LOG_LEVEL", "info")
	cfg.LogFormat = envString("LOG_FORMAT", "console")

	flags := flag.NewFlagSet("storefront", flag.ContinueOnError)
	flags.StringVar(&cfg.HTTPHost, "host", cfg.HTTPHost, "HTTP host to listen on")
	flags.IntVar(&cfg.HTTPPort, "port", cfg.HTTPPort, "HTTP port to listen on")
	flags.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "Database driver: sqlite, mysql or postgres")
	flags.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "Database connection string")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTPPort)
	}
	switch strings.ToLower(c.DBDriver) {
	case db.DriverSQLite, db.DriverMySQL, db.DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	value := envString(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
