// Command lvpage seeds an SQLite table and prints null-padded windows over it.
//
//	lvpage seed   --db items.db --rows 100
//	lvpage window --db items.db --position 40 --page-size 10 --grow-before 1 --grow-after 2
//
// The database path falls back to $LVPAGE_DB; $LOG_LEVEL (or DEBUG=true)
// selects the log level. A .env file in the working directory is loaded first.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultDebugLogLevel   = "debug"
	defaultReleaseLogLevel = "info"
)

// setupLogging configures logrus from DEBUG and LOG_LEVEL.
func setupLogging() {
	defaultLevel := defaultReleaseLogLevel
	if os.Getenv("DEBUG") == "true" {
		defaultLevel = defaultDebugLogLevel
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLevel
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Warnf("Invalid log level '%s', using info level", logLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func main() {
	_ = godotenv.Load()
	setupLogging()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.Fatalf("lvpage: %v", err)
	}
}
