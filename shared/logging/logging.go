package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the logger used by anyref packages. It is a no-op logger until
// Set is called.
func L() *zap.Logger {
	return current.Load()
}

// S returns the sugared form of L.
func S() *zap.SugaredLogger {
	return L().Sugar()
}

// Set installs logger and returns a function restoring the previous one.
// A nil logger installs the no-op logger.
func Set(logger *zap.Logger) (restore func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		current.Store(prev)
	}
}

// NewConsole builds a human-readable logger writing to stderr.
func NewConsole(level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

// NewJSON builds a structured logger writing JSON lines to stderr.
func NewJSON(level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

// WithTestLogger installs a debug-level console logger on stdout for the
// duration of a test. Call the returned function to restore the previous
// logger and flush.
func WithTestLogger() func() {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	logger := zap.New(consoleCore)
	restore := Set(logger)
	return func() {
		_ = logger.Sync()
		restore()
	}
}
