package termkey

import (
	"fmt"
	"sync"
)

// InputService manages the input engine lifecycle behind a plain
// Name/Init/Start/Stop service surface.
type InputService struct {
	cfg    *Config
	engine *Engine

	mu      sync.Mutex
	running bool
}

// NewService creates an input service with default configuration
func NewService() *InputService {
	return &InputService{
		cfg: NewConfig(),
	}
}

// Name implements Service
func (s *InputService) Name() string {
	return "input"
}

// Dependencies implements Service
func (s *InputService) Dependencies() []string {
	return nil
}

// Init implements Service - builds the engine.
// Optional args, in any order:
//
//	Backend       - device override, defaults to the platform backend
//	SequenceTable - table override, defaults to LookupTable("")
//	*Config       - timing config override
func (s *InputService) Init(args ...any) error {
	var backend Backend
	var table SequenceTable

	for _, a := range args {
		switch v := a.(type) {
		case Backend:
			backend = v
		case SequenceTable:
			table = v
		case *Config:
			s.cfg = v
		default:
			return fmt.Errorf("input init: unsupported argument %T", a)
		}
	}

	if backend == nil {
		backend = NewBackend(s.cfg)
	}
	if table == nil {
		table = LookupTable("")
	}

	s.engine = NewEngine(backend, table, s.cfg)
	return nil
}

// Start implements Service - enters raw mode and begins reading
func (s *InputService) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	if s.engine == nil {
		s.mu.Unlock()
		return fmt.Errorf("input start: not initialized")
	}
	s.running = true
	s.mu.Unlock()
	if err := s.engine.Start(); err != nil {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	}
	return nil
}

// Stop implements Service - halts the engine and restores the terminal
func (s *InputService) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.engine.Stop()
	return nil
}

// Events returns the engine's output channel
func (s *InputService) Events() <-chan Event {
	return s.engine.Events()
}

// Config returns the live timing configuration
func (s *InputService) Config() *Config {
	return s.cfg
}

// Engine exposes the underlying engine for diagnostics
func (s *InputService) Engine() *Engine {
	return s.engine
}
