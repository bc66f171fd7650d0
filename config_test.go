package termkey

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.ControlSeqPeriod() != 10*time.Millisecond {
		t.Errorf("ControlSeqPeriod = %v, want 10ms", c.ControlSeqPeriod())
	}
	if c.MetaComboPeriod() != 100*time.Millisecond {
		t.Errorf("MetaComboPeriod = %v, want 100ms", c.MetaComboPeriod())
	}
}

func TestConfigSetClampsNegative(t *testing.T) {
	c := NewConfig()
	c.SetControlSeqPeriod(-time.Second)
	c.SetMetaComboPeriod(-time.Second)
	if c.ControlSeqPeriod() != 0 || c.MetaComboPeriod() != 0 {
		t.Errorf("negative periods not clamped: %v %v", c.ControlSeqPeriod(), c.MetaComboPeriod())
	}
}

func TestVtimeUnits(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"Default meta period", 100 * time.Millisecond, 1},
		{"Sub-decisecond truncates", 99 * time.Millisecond, 0},
		{"Zero", 0, 0},
		{"One second", time.Second, 10},
		{"Clamped high", time.Hour, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vtimeUnits(tt.d); got != tt.want {
				t.Errorf("vtimeUnits(%v) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}

func TestPollTimeoutMs(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"Default control period", 10 * time.Millisecond, 10},
		{"Zero clamps low", 0, 5},
		{"Large clamps high", time.Second, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pollTimeoutMs(tt.d); got != tt.want {
				t.Errorf("pollTimeoutMs(%v) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}
