package termkey

// Backend abstracts the terminal device. The engine's reader goroutine is
// the only caller of Read; the descriptor is never shared.
type Backend interface {
	// Init puts the device into raw mode and applies the initial read
	// timing derived from the live Config.
	Init() error

	// Fini restores the device to its pre-init state. Safe to call more
	// than once.
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. It reapplies device timing first whenever the
	// live Config changed since the last call. A nil slice with nil
	// error means the stop channel fired.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}

// NewBackend returns the platform backend for the current OS, reading its
// timing parameters from cfg.
func NewBackend(cfg *Config) Backend {
	return newBackend(cfg)
}
