package global

import (
	"sync"

	"hypr-desktops/pkg/logger"
)

var (
	log      *logger.Logger
	initOnce sync.Once
	mu       sync.RWMutex
)

// InitGlobals stores the process logger; only the first call has effect.
func InitGlobals(logger *logger.Logger) {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		log = logger
	})
}

// GetLogger returns the global logger instance
func GetLogger() *logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if log == nil {
		return logger.Nop()
	}
	return log
}
