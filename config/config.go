package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"artify-server/internal/logging"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	// MongoURI wins over the DB_* parts when set.
	MongoURI  string `env:"MONGODB_URI"`
	DBUser    string `env:"DB_USER"`
	DBPass    string `env:"DB_PASS"`
	DBHost    string `env:"DB_HOST"`
	DBScheme  string `env:"DB_SCHEME" envDefault:"mongodb+srv"`
	DBAppName string `env:"DB_APP_NAME" envDefault:"Cluster0"`
	DBName    string `env:"DB_NAME" envDefault:"ArtifyDB"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`

	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	EnablePprof   bool `env:"ENABLE_PPROF" envDefault:"false"`
	SanitizeInput bool `env:"SANITIZE_INPUT" envDefault:"false"`
}

var ErrMissingCredentials = errors.New("missing database credentials: set MONGODB_URI or DB_USER, DB_PASS and DB_HOST")

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Logger.Info().Msg("No .env file found. Using system environment variables.")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg.CORSOrigins = cleanOrigins(cfg.CORSOrigins)

	if _, err := cfg.DatabaseURI(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabaseURI returns MONGODB_URI verbatim or assembles one from the DB_* parts.
func (c *Config) DatabaseURI() (string, error) {
	if c.MongoURI != "" {
		return c.MongoURI, nil
	}
	if c.DBUser == "" || c.DBPass == "" || c.DBHost == "" {
		return "", ErrMissingCredentials
	}

	u := url.URL{
		Scheme: c.DBScheme,
		User:   url.UserPassword(c.DBUser, c.DBPass),
		Host:   c.DBHost,
		Path:   "/",
	}
	if c.DBAppName != "" {
		u.RawQuery = url.Values{"appName": {c.DBAppName}}.Encode()
	}
	return u.String(), nil
}

func cleanOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
