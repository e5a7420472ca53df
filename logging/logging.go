package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the diagnostics sink of the reader and the fix passes.
//
// Warnf reports recoverable input problems, Infof traces corrections.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Warnf(template string, args ...interface{})
	Infof(template string, args ...interface{})
}

var _ Logger = (*zap.SugaredLogger)(nil)

// New returns a console logger writing to w. Info messages are only
// emitted when verbose is set.
func New(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.InfoLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}
