package app

import (
	"sync"

	"image-converter/internal/logger"
	"image-converter/internal/settings"
)

type Lifecycle struct {
	store  *settings.Store
	logger logger.Logger
	once   sync.Once
}

func NewLifecycle(store *settings.Store, log logger.Logger) *Lifecycle {
	return &Lifecycle{store: store, logger: log}
}

// Shutdown flushes settings once, however many times it is called.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if err := l.store.Save(); err != nil {
			l.logger.Error("Lifecycle", err, map[string]interface{}{
				"step": "settings",
			})
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
