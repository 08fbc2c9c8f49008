package main

import (
	"os"

	"github.com/tuannh982/set-conformance/conformance"

	log "github.com/sirupsen/logrus"
)

const DefaultLogLevel = "info"

func main() {
	logger := log.WithFields(log.Fields{"suite": "set"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(logLevel(logger))
	report := conformance.Default().Run(logger)
	if !report.OK() {
		os.Exit(1)
	}
}

func logLevel(logger *log.Entry) log.Level {
	raw, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		raw = DefaultLogLevel
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		logger.WithError(err).Warn("invalid LOG_LEVEL, falling back to ", DefaultLogLevel)
		return log.InfoLevel
	}
	return level
}
