package debug

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides sanitized debug logging. Callers must never pass input text
// or matched values; only counts, categories and sizes.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New returns a logger writing console lines to stderr when enabled.
func New(enabled bool) *Logger {
	return NewWithWriter(enabled, "console", os.Stderr)
}

// NewWithWriter returns a logger using the given format ("console" or "json").
// A disabled logger discards everything.
func NewWithWriter(enabled bool, format string, out io.Writer) *Logger {
	if !enabled || out == nil {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}
	var encoder zapcore.Encoder
	if format == "json" {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zapcore.DebugLevel)
	return &Logger{sugar: zap.New(core).Sugar()}
}

// Infof writes a formatted log line.
func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

// Debugw writes a structured debug line.
func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

// Named returns a child logger tagged with component.
func (l *Logger) Named(component string) *Logger {
	if l == nil || l.sugar == nil {
		return l
	}
	return &Logger{sugar: l.sugar.Named(component)}
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	if l == nil || l.sugar == nil {
		return nil
	}
	return l.sugar.Sync()
}
