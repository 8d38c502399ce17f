package log

import (
	"sync"
)

var (
	defaultLogger *Logger
	loggerMu      sync.RWMutex
)

// SetDefault sets the process-wide default logger.
func SetDefault(logger *Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	defaultLogger = logger
}

// L returns the process-wide default logger.
// If none was configured, it falls back to a basic logger.
func L() *Logger {
	loggerMu.RLock()
	if defaultLogger != nil {
		defer loggerMu.RUnlock()
		return defaultLogger
	}
	loggerMu.RUnlock()

	// Initialize lazily with standard defaults.
	logger := Default()
	SetDefault(logger)
	return logger
}
