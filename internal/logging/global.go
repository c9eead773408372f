package logging

import (
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	fallbackOnce sync.Once
	fallback     *Logger
)

// InitLogger builds the process-wide logger from config.
// Calling it again replaces the previous logger and closes its file.
func InitLogger(config *LogConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	globalMu.Lock()
	previous := globalLogger
	globalLogger = logger
	globalMu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
	return nil
}

// GetGlobalLogger returns the process-wide logger.
// Before InitLogger is called it returns an info-level stdout logger.
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()
	if logger != nil {
		return logger
	}

	fallbackOnce.Do(func() {
		fallback, _ = NewLogger(&LogConfig{Level: LevelInfo})
	})
	return fallback
}
