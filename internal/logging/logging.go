// Package logging holds the process-wide structured logger.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init is called.
var Logger = zap.NewNop().Sugar()

// Init configures Logger to write console-encoded entries to w. Debug enables
// the development config at debug level; otherwise only warnings and errors
// are written.
func Init(debug bool, w io.Writer) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg.EncoderConfig), zapcore.AddSync(w), cfg.Level)
	Logger = zap.New(core).Sugar()
}

// Sync flushes buffered entries. Errors are ignored: stderr cannot be synced
// on every platform.
func Sync() {
	_ = Logger.Sync()
}
