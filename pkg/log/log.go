// Package log builds the logger handed to every other package
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/christophe-duc/lazyts/pkg/config"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a new logger. In debug mode everything at LOG_LEVEL goes
// to development.log in the config dir as JSON. Otherwise only warnings and
// errors are shown, one line each on stderr.
func NewLogger(config *config.AppConfig) *logrus.Entry {
	var log *logrus.Logger
	if config.Debug {
		log = newDevelopmentLogger(config)
	} else {
		log = newProductionLogger(os.Stderr, config.Name)
	}

	return log.WithFields(logrus.Fields{
		"debug":     config.Debug,
		"version":   config.Version,
		"commit":    config.Commit,
		"buildDate": config.BuildDate,
		"project":   config.ProjectDir,
	})
}

// LogFilename is where the development logger writes
func LogFilename(config *config.AppConfig) string {
	return filepath.Join(config.ConfigDir, "development.log")
}

func getLogLevel() logrus.Level {
	strLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel())

	// tail -f development.log | humanlog
	log.Formatter = &logrus.JSONFormatter{}

	file, err := os.OpenFile(LogFilename(config), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to log to file, logging to stderr instead: %v\n", err)
		log.SetOutput(os.Stderr)
		return log
	}
	log.SetOutput(file)
	return log
}

func newProductionLogger(out io.Writer, name string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	log.Formatter = &cliFormatter{name: name}
	return log
}

// cliFormatter prints entries the way command line tools report problems,
// e.g. "lazyts: warning: ignoring unknown language "!!"". Fields are left
// out; they only matter in the development log.
type cliFormatter struct {
	name string
}

func (f *cliFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	name := f.name
	if name == "" {
		name = "lazyts"
	}
	return []byte(fmt.Sprintf("%s: %s: %s\n", name, entry.Level.String(), entry.Message)), nil
}
