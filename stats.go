package termkey

import "sync/atomic"

// Stats counts what the engine did with the byte stream. Malformed input
// never surfaces as an error, so these counters are the only place drops
// become visible.
type Stats struct {
	keyEvents      atomic.Uint64
	bytesDiscarded atomic.Uint64
	runsDiscarded  atomic.Uint64
	escTimeouts    atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of the engine counters
type StatsSnapshot struct {
	KeyEvents      uint64 // key events emitted
	BytesDiscarded uint64 // bytes dropped from unrecognizable runs
	RunsDiscarded  uint64 // discrete discard decisions
	EscTimeouts    uint64 // lone ESC presses resolved by the watchdog
}

// Snapshot returns a consistent-enough copy for diagnostics display
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		KeyEvents:      s.keyEvents.Load(),
		BytesDiscarded: s.bytesDiscarded.Load(),
		RunsDiscarded:  s.runsDiscarded.Load(),
		EscTimeouts:    s.escTimeouts.Load(),
	}
}
