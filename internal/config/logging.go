package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	logFileMaxSize    = 50 // megabytes
	logFileMaxBackups = 3
	logFileMaxAge     = 28 // days
)

// SetupLogging applies the level, formatter and optional log file of c
// to every logger given. Hooks set up by an earlier call are dropped.
func SetupLogging(c Config, loggers ...*logrus.Logger) error {
	logLevel, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	if c.Development() {
		logLevel = logrus.DebugLevel
	}

	var hook logrus.Hook
	if c.LogFile != "" {
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.LogFile,
			MaxSize:    logFileMaxSize,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAge,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", c.LogFile, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(logLevel)
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Development(),
			DisableColors: c.Production(),
			FullTimestamp: c.Production(),
		})
		log.ReplaceHooks(make(logrus.LevelHooks))
		if hook != nil {
			log.AddHook(hook)
		}
	}

	return nil
}
