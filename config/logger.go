package config

import (
	// Go Internal Packages
	"os"

	// External Packages
	_ "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
)

// NewLogger builds the logfmt production logger every binary uses.
func NewLogger(c Config) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	if err := cfg.Level.UnmarshalText([]byte(c.Logger.Level)); err != nil {
		return nil, err
	}
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = c.Application
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}
