package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"maze-warden/internal/config"
)

// New builds the process logger from the log section of the config.
// An unknown level falls back to info.
func New(cfg config.Log) *log.Logger {
	l := log.New()
	l.SetOutput(os.Stderr)
	if cfg.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	l.SetLevel(level)
	return l
}

// Discard is a logger for tests and embedders that want silence.
func Discard() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}
