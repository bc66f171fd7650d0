package termkey

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// readChunk carries one device read, or the error that ended reading
type readChunk struct {
	data []byte
	err  error
}

// Engine is the input processing loop. A dedicated reader goroutine owns
// the device and pushes chunks onto an internal queue; the loop goroutine
// exclusively owns the pending buffer, classifies it, and emits events in
// byte order. ESC disambiguation runs off a resettable timer inside the
// same select, so the reader and the watchdog can never race.
type Engine struct {
	backend Backend
	rec     *Recognizer
	cfg     *Config

	eventCh chan Event
	postCh  chan Event
	readCh  chan readChunk
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Owned by the run goroutine, never touched elsewhere
	pending []byte

	stats Stats

	mu      sync.Mutex
	running bool
}

// NewEngine wires a backend, a sequence table, and a live config into an
// engine. A nil cfg gets the documented defaults.
func NewEngine(backend Backend, table SequenceTable, cfg *Config) *Engine {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Engine{
		backend: backend,
		rec:     NewRecognizer(table),
		cfg:     cfg,
		eventCh: make(chan Event, 256),
		postCh:  make(chan Event, 16),
		readCh:  make(chan readChunk, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Events returns the output channel. It is closed after Stop, following
// an EventClosed marker.
func (e *Engine) Events() <-chan Event {
	return e.eventCh
}

// Config returns the live timing configuration
func (e *Engine) Config() *Config {
	return e.cfg
}

// Stats returns a snapshot of the diagnostic counters
func (e *Engine) Stats() StatsSnapshot {
	return e.stats.Snapshot()
}

// Start initializes the device and launches the reader and processing
// goroutines. Calling Start on a running engine is a no-op.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = true
	e.mu.Unlock()

	if err := e.backend.Init(); err != nil {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		return fmt.Errorf("backend init: %w", err)
	}

	e.backend.SetResizeHandler(func(w, h int) {
		e.PostEvent(Event{Type: EventResize, Width: w, Height: h})
	})

	go e.readLoop()
	go e.run()
	return nil
}

// Stop requests shutdown, waits for the processing loop to drain, and
// restores the device. Safe to call more than once and after a fatal
// read error already ended the loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	e.mu.Unlock()

	close(e.stopCh)

	// Wait with timeout - don't block forever if the device read is stuck
	select {
	case <-e.doneCh:
	case <-time.After(200 * time.Millisecond):
	}

	e.backend.Fini()
}

// PostEvent injects a synthetic event into the stream, non-blocking
func (e *Engine) PostEvent(ev Event) {
	select {
	case e.postCh <- ev:
	default:
	}
}

// readLoop is the device-owning goroutine: it blocks in Backend.Read and
// forwards every chunk, in order, to the processing loop.
func (e *Engine) readLoop() {
	defer e.recoverCrash("INPUT READER")

	for {
		select {
		case <-e.stopCh:
			return
		default:
		}

		data, err := e.backend.Read(e.stopCh)
		if err != nil {
			select {
			case e.readCh <- readChunk{err: err}:
			case <-e.stopCh:
			}
			return
		}
		if len(data) == 0 {
			// Stop fired mid-read, or a spurious empty read
			continue
		}

		select {
		case e.readCh <- readChunk{data: data}:
		case <-e.stopCh:
			return
		}
	}
}

// run is the processing loop: a single select merging the byte queue, the
// synthetic event queue, the silence watchdog, and the stop signal.
func (e *Engine) run() {
	defer close(e.doneCh)
	defer e.recoverCrash("INPUT ENGINE")

	watchdog := time.NewTimer(time.Hour)
	stopTimer(watchdog)

	for {
		select {
		case <-e.stopCh:
			e.finish(Event{Type: EventClosed})
			return

		case c := <-e.readCh:
			if c.err != nil {
				e.finish(Event{Type: EventError, Err: c.err})
				return
			}
			e.pending = append(e.pending, c.data...)
			e.advance(watchdog)

		case ev := <-e.postCh:
			e.emit(ev)

		case <-watchdog.C:
			e.flushPending()
		}
	}
}

// advance classifies the pending buffer until it runs out of decidable
// input: matches are emitted in order, an ambiguous tail arms the
// watchdog, and an unrecognizable run is dropped whole. Dropping the
// entire run instead of resynchronizing byte-by-byte trades recovery
// speed for predictability.
func (e *Engine) advance(watchdog *time.Timer) {
	for {
		cl := e.rec.Classify(e.pending)
		switch cl.Status {
		case ClassMatched:
			e.emit(cl.Event)
			e.pending = append(e.pending[:0], cl.Remaining...)
			if len(e.pending) == 0 {
				stopTimer(watchdog)
				return
			}

		case ClassAmbiguous:
			if len(e.pending) == 0 {
				stopTimer(watchdog)
				return
			}
			e.armWatchdog(watchdog)
			return

		case ClassInvalid:
			e.stats.bytesDiscarded.Add(uint64(len(e.pending)))
			e.stats.runsDiscarded.Add(1)
			e.pending = e.pending[:0]
			stopTimer(watchdog)
			return
		}
	}
}

// armWatchdog starts the silence timer for the current ambiguous buffer.
// A lone ESC waits the meta-combo period; a longer partial sequence waits
// the control-sequence period. A zero period disables the timer, leaving
// the buffer to wait for more bytes indefinitely.
func (e *Engine) armWatchdog(watchdog *time.Timer) {
	var d time.Duration
	if len(e.pending) == 1 && e.pending[0] == 0x1b {
		d = e.cfg.MetaComboPeriod()
	} else {
		d = e.cfg.ControlSeqPeriod()
	}
	stopTimer(watchdog)
	if d <= 0 {
		return
	}
	watchdog.Reset(d)
}

// flushPending resolves the buffer after the silence window elapsed.
// A lone ESC becomes a real Escape press; anything else is resolved
// longest-match-first against the table, and bytes that cannot match
// anything are dropped.
func (e *Engine) flushPending() {
	if len(e.pending) == 1 && e.pending[0] == 0x1b {
		e.stats.escTimeouts.Add(1)
	}
	for len(e.pending) > 0 {
		ev, rest, ok := e.rec.Resolve(e.pending)
		if !ok {
			e.stats.bytesDiscarded.Add(uint64(len(e.pending)))
			e.stats.runsDiscarded.Add(1)
			e.pending = e.pending[:0]
			return
		}
		e.emit(ev)
		e.pending = append(e.pending[:0], rest...)
	}
}

// emit delivers an event in order, giving up only when shutdown begins
func (e *Engine) emit(ev Event) {
	if ev.Type == EventKey {
		e.stats.keyEvents.Add(1)
	}
	select {
	case e.eventCh <- ev:
	case <-e.stopCh:
	}
}

// finish posts the terminal marker without blocking and closes the
// producing side. run is the only writer, so the close is safe.
func (e *Engine) finish(ev Event) {
	select {
	case e.eventCh <- ev:
	default:
	}
	close(e.eventCh)
}

// recoverCrash restores the terminal before reporting a panic; a raw-mode
// terminal with a half-written escape sequence is unusable otherwise.
func (e *Engine) recoverCrash(who string) {
	if r := recover(); r != nil {
		e.backend.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", who, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

// stopTimer halts a timer and drains a fire that already happened.
// Only called from the run goroutine, so the drain cannot race.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
