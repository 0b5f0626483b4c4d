package config

import (
	"github.com/bnema/shades/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file and reloads it on change.
// Registered callbacks receive the new configuration; an invalid file keeps the old one.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacksLocked releases m.mu before running callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// reload must be called with the lock held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}
