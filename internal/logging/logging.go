// Package logging centralizes logrus construction and level setup so every
// entry point (the client builder, the CLI examples) configures logging the
// same way.
package logging

import (
	"github.com/sirupsen/logrus"

	"pangea-client/internal/envutil"
)

// New builds a logrus.Logger whose level is taken from the PANGEA_LOG_LEVEL
// environment variable, defaulting to "info" when unset or unparsable.
func New() *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(envutil.OrDefault("PANGEA_LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
