package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New configures the process logger. Production output is JSON for log
// aggregation, everything else gets the human-readable text formatter.
// Unknown levels fall back to info.
func New(level string, production bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
