package config

import (
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/logging"
)

// setLogger builds the logger for env and installs it as the zap global
func setLogger(env string) (*zap.Logger, error) {
	logger, err := logging.New(env)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
