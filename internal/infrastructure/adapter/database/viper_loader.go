package database

import (
	"strconv"

	"github.com/zakinadhif/cashierku/internal/infrastructure/config"
)

// CreateConfigFromViperConfig projects the application config onto the
// database Config. Environment-derived defaults win for credentials so a
// deployment can keep secrets out of the yaml files.
func CreateConfigFromViperConfig(app *config.Config) *Config {
	out := DefaultConfig()

	if app.Database.Driver != "" {
		out.Driver = app.Database.Driver
	}
	if app.Database.Path != "" {
		out.Path = app.Database.Path
	}

	// postgres connection identity: yaml only fills gaps the env left open
	if out.Host == "" {
		out.Host = app.Database.Host
	}
	if out.Username == "" {
		out.Username = app.Database.Username
	}
	if out.Password == "" {
		out.Password = app.Database.Password
	}
	if out.Database == "" {
		out.Database = app.Database.Database
	}
	if port := ParsePort(app.Database.Port); port > 0 {
		out.Port = port
	}
	if app.Database.SSLMode != "" {
		out.SSLMode = app.Database.SSLMode
	}

	// pool and retry tuning
	if app.Database.MaxOpenConns > 0 {
		out.MaxOpenConns = app.Database.MaxOpenConns
	}
	if app.Database.MaxIdleConns > 0 {
		out.MaxIdleConns = app.Database.MaxIdleConns
	}
	if app.Database.ConnMaxLifetime > 0 {
		out.ConnMaxLifetime = app.Database.ConnMaxLifetime
	}
	if app.Database.ConnMaxIdleTime > 0 {
		out.ConnMaxIdleTime = app.Database.ConnMaxIdleTime
	}
	if app.Database.QueryTimeout > 0 {
		out.QueryTimeout = app.Database.QueryTimeout
	}
	if app.Database.RetryAttempts >= 0 {
		out.RetryAttempts = app.Database.RetryAttempts
	}
	if app.Database.RetryDelay > 0 {
		out.RetryDelay = int(app.Database.RetryDelay.Seconds())
	}
	if app.Logger.Level != "" {
		out.LogLevel = app.Logger.Level
	}

	return out
}

// ParsePort converts a port string to an int, 0 when absent or invalid
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
