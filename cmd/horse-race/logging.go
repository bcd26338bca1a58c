package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "horse-race.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging enables file logging under logs/ when debug is set
func setupLogging(debug bool) *os.File {
	return setupLoggingIn(logDir, maxLogSize, debug)
}

// setupLoggingIn points the global zerolog logger at dir/horse-race.log, rotating
// the previous file aside once it grows past maxSize. The terminal is owned by
// the race view, so logging never goes to stdout or stderr; with debug off, or
// when the file cannot be opened, the logger is disabled and nil is returned.
func setupLoggingIn(dir string, maxSize int64, debug bool) *os.File {
	if !debug {
		disableLogging()
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		disableLogging()
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		rotated := filepath.Join(dir, fmt.Sprintf("horse-race-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		disableLogging()
		return nil
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Str("file", path).Msg("logging started")
	return f
}

func disableLogging() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	log.Logger = zerolog.New(io.Discard)
}
