package internal

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var once sync.Once
var logger *logrus.Logger

// GetLogger returns a singleton logger correctly configured for textapi
func GetLogger() *logrus.Logger {
	// Use a singleton so we can update log level once config is loaded
	once.Do(func() {
		logger = logrus.New()

		logger.Out = os.Stdout
		logger.SetLevel(logrus.InfoLevel)

		logger.SetFormatter(textFormatter())
	})

	return logger
}

func SetLogLevel(level logrus.Level) {
	GetLogger().SetLevel(level)
}

// SetLogFormat switches between the "json" and "text" formatters.
// Unknown formats fall back to text.
func SetLogFormat(format string) {
	switch format {
	case "json":
		GetLogger().SetFormatter(&logrus.JSONFormatter{})
	default:
		GetLogger().SetFormatter(textFormatter())
	}
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
		PadLevelText:  true,
	}
}
