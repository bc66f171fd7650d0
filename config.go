package termkey

import (
	"sync/atomic"
	"time"
)

// Default disambiguation periods. The control-sequence period bounds how
// long a partial escape sequence may sit in the buffer; the meta-combo
// period is how long a lone ESC waits before it is reported as a real
// Escape key press.
const (
	DefaultControlSeqPeriod = 10 * time.Millisecond
	DefaultMetaComboPeriod  = 100 * time.Millisecond
)

// Config holds the two timing windows of the input engine. It is shared
// between the host application, the device reader, and the processing
// loop: setters may be called from any goroutine at any time, and readers
// see a stale-but-consistent snapshot. Changes take effect at the next
// device read or watchdog arm, never mid-sequence.
type Config struct {
	controlSeq atomic.Int64 // nanoseconds
	metaCombo  atomic.Int64 // nanoseconds
}

// NewConfig returns a Config with the documented defaults
func NewConfig() *Config {
	c := &Config{}
	c.controlSeq.Store(int64(DefaultControlSeqPeriod))
	c.metaCombo.Store(int64(DefaultMetaComboPeriod))
	return c
}

// ControlSeqPeriod returns the current control-sequence window
func (c *Config) ControlSeqPeriod() time.Duration {
	return time.Duration(c.controlSeq.Load())
}

// SetControlSeqPeriod updates the control-sequence window.
// Zero disables the partial-sequence watchdog.
func (c *Config) SetControlSeqPeriod(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.controlSeq.Store(int64(d))
}

// MetaComboPeriod returns the current meta-combo window
func (c *Config) MetaComboPeriod() time.Duration {
	return time.Duration(c.metaCombo.Load())
}

// SetMetaComboPeriod updates the meta-combo window.
// Zero disables the lone-ESC watchdog.
func (c *Config) SetMetaComboPeriod(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.metaCombo.Store(int64(d))
}

// vtimeUnits converts a duration to the termios VTIME unit (tenths of a
// second), clamped to the single byte the cc array can represent.
func vtimeUnits(d time.Duration) int {
	v := int(d / (100 * time.Millisecond))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return v
}

// pollTimeoutMs converts the control-sequence period to a poll timeout in
// milliseconds, clamped so shutdown stays responsive and zero-period
// configs do not busy-spin.
func pollTimeoutMs(d time.Duration) int {
	ms := int(d / time.Millisecond)
	if ms < 5 {
		ms = 5
	}
	if ms > 100 {
		ms = 100
	}
	return ms
}
