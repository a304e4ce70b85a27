package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration contains settings of the CLI application.
type ApplicationConfiguration struct {
	// LogLevel is one of zap levels (debug, info, warn, error).
	LogLevel string `yaml:"LogLevel"`
	// LogPath is a file to write logs to, stderr is used if empty.
	LogPath string `yaml:"LogPath"`
	// LogEncoding is either "console" (default) or "json".
	LogEncoding string `yaml:"LogEncoding"`
}

// Validate checks ApplicationConfiguration for errors.
func (a ApplicationConfiguration) Validate() error {
	if a.LogLevel != "" {
		if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("invalid LogLevel: %w", err)
		}
	}
	switch a.LogEncoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid LogEncoding %q", a.LogEncoding)
	}
	return nil
}
