// Package logging wraps a process-wide zerolog logger.
//
// Init is called once from main after the configuration is read. Before that the
// package logs JSON at info level to stderr so early startup messages are not lost.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // console or json
	Output io.Writer
}

var Logger zerolog.Logger

func init() {
	Init(Config{Level: "info", Format: "json"})
}

// Init replaces the global logger.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "artify-server").
		Logger()
}

// ParseLevel falls back to info for unknown or empty levels.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// FromGin returns the global logger tagged with the request id, if one was assigned.
func FromGin(c *gin.Context) *zerolog.Logger {
	l := Logger
	if id := c.GetString(RequestIDKey); id != "" {
		l = l.With().Str(RequestIDKey, id).Logger()
	}
	return &l
}
