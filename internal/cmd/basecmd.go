package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mozilla-ai/gnuusage/internal/flags"
	"github.com/mozilla-ai/gnuusage/internal/perms"
)

type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command, creating one from flags and environment if required.
func (c *BaseCmd) Logger() (hclog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}

	logger, err := NewLogger("gnuusage", flags.LogLevel, flags.LogPath)
	if err != nil {
		return nil, err
	}

	c.logger = logger

	return c.logger, nil
}

// NewLogger creates a named logger at the given level.
// Empty values for level or path fall back to the environment, then the defaults.
// Without a log path nothing is logged.
func NewLogger(name string, level string, path string) (hclog.Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = strings.ToLower(strings.TrimSpace(os.Getenv(flags.EnvVarLogLevel)))
	}
	level = normalizeLogLevel(level)

	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	// If GNUUSAGE_LOG_PATH is not set, don't log anywhere.
	var output io.Writer = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perms.RegularFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", path, err)
		}
		output = f
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.LevelFromString(level),
		Output: output,
	}), nil
}

func normalizeLogLevel(lvl string) string {
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return flags.DefaultLogLevel
	}
}
