package config

// Config holds the library's tunable defaults.
type Config struct {
	// DebugDrainLimit caps diagnostic forced drains of open streams.
	DebugDrainLimit int64

	// StreamBuffer is the chunk channel depth of a new stream.
	StreamBuffer int

	// Workers is the executor worker goroutine count.
	Workers int

	// QueueDepth is the executor task queue depth.
	QueueDepth int
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		DebugDrainLimit: 1 << 20,
		StreamBuffer:    16,
		Workers:         4,
		QueueDepth:      256,
	}
}

// FromManager overlays values from m onto the defaults.
func FromManager(m *Manager) *Config {
	cfg := Default()
	cfg.DebugDrainLimit = m.GetInt64("body.debug_drain_limit", cfg.DebugDrainLimit)
	cfg.StreamBuffer = m.GetInt("stream.buffer", cfg.StreamBuffer)
	cfg.Workers = m.GetInt("executor.workers", cfg.Workers)
	cfg.QueueDepth = m.GetInt("executor.queue_depth", cfg.QueueDepth)
	return cfg
}
