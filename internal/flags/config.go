package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarLogPath  = "GNUUSAGE_LOG_PATH"
	EnvVarLogLevel = "GNUUSAGE_LOG_LEVEL"

	// Defaults
	DefaultDocumentFile = "usage.toml"
	DefaultLogPath      = ""
	DefaultLogLevel     = "info"

	// Flag names
	FlagNameLogPath  = "log-path"
	FlagNameLogLevel = "log-level"
)

var (
	LogPath  string
	LogLevel string
)

func InitFlags(fs *pflag.FlagSet) {
	initLogger(fs)
}

func initLogger(fs *pflag.FlagSet) {
	if LogPath == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogPath)); env != "" {
			LogPath = env
		} else {
			LogPath = DefaultLogPath
		}
	}
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")

	if LogLevel == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogLevel)); env != "" {
			LogLevel = strings.ToLower(env)
		} else {
			LogLevel = DefaultLogLevel
		}
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for gnuusage logs")
}
