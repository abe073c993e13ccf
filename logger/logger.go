// file: logger/logger.go

package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init so that packages
// imported by tests never hit a nil logger.
var Log = logrus.New()

// Init configures Log for structured JSON output on stdout.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	Log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the minimum level, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	return nil
}
