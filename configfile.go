package termkey

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// fileSettings is the on-disk form of the timing configuration.
// Periods are in microseconds, matching the engine's external contract.
type fileSettings struct {
	ControlSeqPeriod *int64 `toml:"control_seq_period"`
	MetaComboPeriod  *int64 `toml:"meta_combo_period"`
}

// LoadFile applies TOML timing settings to a live Config. A missing file
// is not an error; absent keys leave their current values untouched.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fs.ControlSeqPeriod != nil {
		cfg.SetControlSeqPeriod(time.Duration(*fs.ControlSeqPeriod) * time.Microsecond)
	}
	if fs.MetaComboPeriod != nil {
		cfg.SetMetaComboPeriod(time.Duration(*fs.MetaComboPeriod) * time.Microsecond)
	}
	return nil
}

// WatchFile reloads path into cfg whenever it changes, so timing tweaks
// take effect without restarting the host. The watch covers the parent
// directory because editors replace files by rename. Returns a stop
// function that releases the watcher.
func WatchFile(path string, cfg *Config) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher: %w", err)
	}

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs {
					continue
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					// Reload errors are transient (partial writes); the
					// next event retries
					_ = LoadFile(abs, cfg)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() {
		close(stopCh)
		w.Close()
		<-doneCh
	}, nil
}
