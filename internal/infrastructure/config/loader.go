package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths are searched, in order, for <environment>.yaml
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths are searched, in order, for a .env file
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig assembles configuration in precedence order: defaults, then
// the environment's yaml file, then CK_* environment variables
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	// Missing config file is fine; defaults plus env cover a stock
	// single-store sqlite deployment.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("CK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyEnvOverrides(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	cfg.Environment = env
	resolveDurations(&cfg)

	return &cfg, nil
}

// loadDotEnvFile loads the first readable .env file from the search paths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	// server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// database: a local sqlite store file unless overridden
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "cashierku.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5) // minutes
	v.SetDefault("database.connMaxIdleTime", 5) // minutes
	v.SetDefault("database.queryTimeout", 10)   // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	// logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	// catalog
	v.SetDefault("catalog.maxItemsPerTransaction", 500)
}

// getEnvironment reads CK_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("CK_ENV")
	if env == "" {
		return Development
	}
	return strings.ToLower(env)
}

// applyEnvOverrides forces CK_* variables over file values. AutomaticEnv
// alone does not override keys that the yaml file set explicitly.
func applyEnvOverrides(v *viper.Viper) {
	stringVars := map[string]string{
		"CK_DB_DRIVER":    "database.driver",
		"CK_DB_PATH":      "database.path",
		"CK_DB_HOST":      "database.host",
		"CK_DB_PORT":      "database.port",
		"CK_DB_USERNAME":  "database.username",
		"CK_DB_PASSWORD":  "database.password",
		"CK_DB_NAME":      "database.database",
		"CK_DB_SSL_MODE":  "database.sslMode",
		"CK_SERVER_HOST":  "server.host",
		"CK_SERVER_PORT":  "server.port",
		"CK_LOGGER_LEVEL": "logger.level",
	}
	for name, key := range stringVars {
		if val := os.Getenv(name); val != "" {
			v.Set(key, val)
		}
	}

	positiveIntVars := map[string]string{
		"CK_DB_MAX_OPEN_CONNS":                 "database.maxOpenConns",
		"CK_DB_MAX_IDLE_CONNS":                 "database.maxIdleConns",
		"CK_DB_CONN_MAX_LIFETIME_MINUTES":      "database.connMaxLifetime",
		"CK_DB_CONN_MAX_IDLE_TIME_MINUTES":     "database.connMaxIdleTime",
		"CK_DB_QUERY_TIMEOUT_SECONDS":          "database.queryTimeout",
		"CK_CATALOG_MAX_ITEMS_PER_TRANSACTION": "catalog.maxItemsPerTransaction",
	}
	for name, key := range positiveIntVars {
		if val := getEnvInt(name, 0); val > 0 {
			v.Set(key, val)
		}
	}

	// zero is a meaningful value for the retry knobs
	if val := getEnvInt("CK_DB_RETRY_ATTEMPTS", -1); val >= 0 {
		v.Set("database.retryAttempts", val)
	}
	if val := getEnvInt("CK_DB_RETRY_DELAY_SECONDS", -1); val >= 0 {
		v.Set("database.retryDelay", val)
	}
}

func getEnvInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

// resolveDurations converts the raw integer config values into durations.
// Timeouts are configured in seconds, connection lifetimes in minutes.
func resolveDurations(cfg *Config) {
	cfg.Server.ReadTimeout *= time.Second
	cfg.Server.WriteTimeout *= time.Second
	cfg.Server.IdleTimeout *= time.Second
	cfg.Server.ReadHeaderTimeout *= time.Second
	cfg.Server.ShutdownTimeout *= time.Second

	cfg.Database.ConnMaxLifetime *= time.Minute
	cfg.Database.ConnMaxIdleTime *= time.Minute
	cfg.Database.QueryTimeout *= time.Second
	cfg.Database.RetryDelay *= time.Second
}
