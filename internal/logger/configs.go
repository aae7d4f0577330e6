package logger

import "github.com/kelseyhightower/envconfig"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Level controls verbosity. The default is Error so that diagnostics do
	// not interleave with the interactive console on stderr.
	Level string `envconfig:"LOG_LEVEL"`
}

// NewConfig reads the logger configuration from the environment
// (FRAGDOC_LOG_LEVEL). Unset or unparsable values fall back to Error.
func NewConfig() Config {
	cfg := Config{Level: Error}
	_ = envconfig.Process("fragdoc", &cfg)
	if cfg.Level == "" {
		cfg.Level = Error
	}
	return cfg
}
