package kinematics

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called while analyses run on other goroutines.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used for solver diagnostics. By default the
// package logs nothing. Pass nil to restore the silent default.
//
// Levels used:
//   - Debug: per-sample infeasibility (degenerate samples, singular intersections)
//   - Warn: geometry that forces the fallback rigid triangle
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current solver logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
