package main

import "go.uber.org/zap"

// newLogger writes to the configured log file. The terminal belongs to the
// UI, so without a log file nothing is logged.
func newLogger(config *Config) (*zap.Logger, error) {
	if config.LogFile == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewDevelopmentConfig()
	zc.OutputPaths = []string{config.LogFile}
	zc.ErrorOutputPaths = []string{config.LogFile}
	zc.DisableStacktrace = true
	return zc.Build()
}
