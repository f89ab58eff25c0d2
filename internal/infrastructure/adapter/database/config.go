package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver          string
	URL             string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	ConnectAttempts int
	ConnectDelay    time.Duration
	MonitorInterval time.Duration
	LogLevel        string
	SlowThreshold   time.Duration
}

// NewConfig builds the database configuration from the application configuration
func NewConfig(cfg config.DatabaseConfig, logLevel string) *Config {
	return &Config{
		Driver:          strings.ToLower(strings.TrimSpace(cfg.Driver)),
		URL:             strings.TrimSpace(cfg.URL),
		Host:            cfg.Host,
		Port:            cfg.Port,
		Username:        cfg.Username,
		Password:        cfg.Password,
		Database:        cfg.Database,
		SSLMode:         cfg.SSLMode,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		QueryTimeout:    cfg.QueryTimeout,
		ConnectAttempts: cfg.ConnectAttempts,
		ConnectDelay:    cfg.ConnectDelay,
		MonitorInterval: cfg.MonitorInterval,
		LogLevel:        gormLogLevel(logLevel),
		SlowThreshold:   200 * time.Millisecond,
	}
}

// gormLogLevel maps the application log level to a GORM level name.
// SQL statements are only traced when the application logs at debug.
func gormLogLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "info"
	case "error", "fatal":
		return "error"
	default:
		return "warn"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.URL == "" {
			if c.Host == "" {
				return errors.New("database host is required")
			}
			if c.Database == "" {
				return errors.New("database name is required")
			}
		}
	case DriverSQLite:
		if c.URL == "" && c.Database == "" {
			return errors.New("sqlite database path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Driver)
	}

	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return errors.New("connection pool sizes must not be negative")
	}
	if c.MaxOpenConns > 0 && c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max idle connections cannot exceed max open connections")
	}
	return nil
}

// DSN returns the data source name for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		dsn := c.URL
		if dsn == "" {
			dsn = c.Database
		}
		if strings.Contains(dsn, "_busy_timeout") {
			return dsn
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "_busy_timeout=5000"
	}

	if c.URL != "" {
		return c.URL
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.Username, c.Password, c.Database, sslMode)
}

// Target describes the connection for logs without leaking credentials
func (c *Config) Target() map[string]any {
	if c.Driver == DriverSQLite {
		return map[string]any{"driver": c.Driver, "database": c.Database}
	}
	if c.URL != "" {
		return map[string]any{"driver": c.Driver, "source": "url"}
	}
	return map[string]any{
		"driver": c.Driver,
		"host":   c.Host,
		"port":   c.Port,
		"name":   c.Database,
	}
}

// attempts returns the number of connection attempts, at least one
func (c *Config) attempts() int {
	if c.ConnectAttempts < 1 {
		return 1
	}
	return c.ConnectAttempts
}
