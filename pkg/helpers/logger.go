package helpers

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. Development gets readable debug
// output, anything else logs JSON at info level for log shippers.
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	switch env {
	case "development":
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logging configured")
	return logger
}
