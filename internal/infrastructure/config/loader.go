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

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// envPrefix is prepended to every environment override
const envPrefix = "SP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing file is not an error: defaults and environment variables apply.
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

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	return decode(v, env)
}

// decode unmarshals v and normalizes unit-less durations
func decode(v *viper.Viper, env string) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env
	processDurations(&config)
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
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

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.publicBaseURL", "")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "sims_ppob")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.connectAttempts", 3)
	v.SetDefault("database.connectDelay", 2)     // seconds
	v.SetDefault("database.monitorInterval", 60) // seconds
	v.SetDefault("database.seedCatalog", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenTTL", "12h")
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("cors.allowMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowHeaders", []string{"Origin", "Content-Type", "Accept", "Authorization"})

	v.SetDefault("storage.uploadDir", "uploads")
	v.SetDefault("storage.maxUploadSize", 5<<20)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("rateLimit.requestsPerSecond", 5)
	v.SetDefault("rateLimit.burst", 10)
}

// getEnvironment determines the environment from SP_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(envPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the explicit variables win over the config file.
// The unprefixed DATABASE_URL, JWT_SECRET, JWT_EXPIRES_IN and PORT are honored for
// deployments that predate the SP_ prefix; prefixed variables take precedence.
func processEnvOverrides(v *viper.Viper) {
	overrides := []struct {
		key       string
		vars      []string
		normalize func(string) string
	}{
		{"database.url", []string{"SP_DB_URL", "DATABASE_URL"}, nil},
		{"database.driver", []string{"SP_DB_DRIVER"}, nil},
		{"database.host", []string{"SP_DB_HOST"}, nil},
		{"database.port", []string{"SP_DB_PORT"}, nil},
		{"database.username", []string{"SP_DB_USERNAME"}, nil},
		{"database.password", []string{"SP_DB_PASSWORD"}, nil},
		{"database.database", []string{"SP_DB_NAME"}, nil},
		{"database.sslMode", []string{"SP_DB_SSL_MODE"}, nil},
		{"auth.jwtSecret", []string{"SP_AUTH_JWT_SECRET", "JWT_SECRET"}, nil},
		{"auth.tokenTTL", []string{"SP_AUTH_TOKEN_TTL", "JWT_EXPIRES_IN"}, normalizeTTL},
		{"server.host", []string{"SP_SERVER_HOST"}, nil},
		{"server.port", []string{"SP_SERVER_PORT", "PORT"}, nil},
		{"server.publicBaseURL", []string{"SP_SERVER_PUBLIC_BASE_URL"}, nil},
		{"logger.level", []string{"SP_LOGGER_LEVEL"}, nil},
		{"storage.uploadDir", []string{"SP_STORAGE_UPLOAD_DIR"}, nil},
	}
	for _, o := range overrides {
		for _, name := range o.vars {
			if val := os.Getenv(name); val != "" {
				if o.normalize != nil {
					val = o.normalize(val)
				}
				v.Set(o.key, val)
				break
			}
		}
	}

	if maxOpenConns := getEnvInt("SP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("SP_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("SP_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if cost := getEnvInt("SP_AUTH_BCRYPT_COST", 0); cost > 0 {
		v.Set("auth.bcryptCost", cost)
	}
}

// normalizeTTL rewrites the token lifetimes older deployments use into Go duration syntax:
// a bare integer is seconds and "7d" is days. Anything else is left for the duration decoder.
func normalizeTTL(val string) string {
	val = strings.TrimSpace(val)
	if seconds, err := strconv.ParseInt(val, 10, 64); err == nil {
		return strconv.FormatInt(seconds, 10) + "s"
	}
	if days, ok := strings.CutSuffix(val, "d"); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(days), 10, 64); err == nil {
			return strconv.FormatInt(n*24, 10) + "h"
		}
	}
	return val
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the unit-less integers of the config file to durations
func processDurations(config *Config) {
	// Seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.ConnectDelay = time.Duration(config.Database.ConnectDelay) * time.Second
	config.Database.MonitorInterval = time.Duration(config.Database.MonitorInterval) * time.Second

	// Minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
}
