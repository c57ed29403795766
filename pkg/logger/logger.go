// Package logger provides the zap-based application logger.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// Log is the global zap logger used across the project. It discards
// everything until Init is called, which keeps tests quiet.
var Log = zap.NewNop()

// Init configures the global logger. APP_ENV=development switches to the
// human-friendly console encoder.
func Init() error {
	var (
		l   *zap.Logger
		err error
	)
	if strings.EqualFold(os.Getenv("APP_ENV"), "development") {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
