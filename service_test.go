package termkey

import (
	"testing"
	"time"
)

func TestServiceLifecycle(t *testing.T) {
	fb := newFakeBackend()
	svc := NewService()

	if svc.Name() != "input" {
		t.Errorf("Name() = %q, want input", svc.Name())
	}
	if deps := svc.Dependencies(); deps != nil {
		t.Errorf("Dependencies() = %v, want nil", deps)
	}

	cfg := NewConfig()
	cfg.SetControlSeqPeriod(time.Hour)
	cfg.SetMetaComboPeriod(time.Hour)

	var backend Backend = fb
	if err := svc.Init(backend, DefaultTable(), cfg); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if svc.Config() != cfg {
		t.Error("Config() does not return the injected config")
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	// Second Start is a no-op
	if err := svc.Start(); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}

	fb.chunks <- []byte("\x1b[A")
	select {
	case ev := <-svc.Events():
		if ev.Key != KeyUp {
			t.Errorf("got %v, want KeyUp", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}

	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}

func TestServiceInitRejectsUnknownArg(t *testing.T) {
	svc := NewService()
	if err := svc.Init(42); err == nil {
		t.Error("Init(42) should error")
	}
}

func TestServiceStartWithoutInit(t *testing.T) {
	svc := NewService()
	if err := svc.Start(); err == nil {
		t.Error("Start() before Init() should error")
	}
}
