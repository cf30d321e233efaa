package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	levelEnv  = "NAMADA_LOG_LEVEL"
	formatEnv = "NAMADA_LOG_FORMAT"
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the process logger. The level is read from NAMADA_LOG_LEVEL
// (default warning) and the format from NAMADA_LOG_FORMAT ("json" or "text")
// on first use.
func Logger() *logrus.Logger {
	once.Do(func() {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)

		level := logrus.WarnLevel
		if text, ok := os.LookupEnv(levelEnv); ok {
			if parsed, err := logrus.ParseLevel(text); err == nil {
				level = parsed
			}
		}
		lg.SetLevel(level)

		if os.Getenv(formatEnv) == "json" {
			lg.SetFormatter(&logrus.JSONFormatter{})
		}
	})

	return lg
}
