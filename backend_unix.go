//go:build unix

package termkey

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// readBufSize is the capacity of the single-read buffer
const readBufSize = 1024

type unixBackend struct {
	in      *os.File
	inFd    int
	cfg     *Config
	oldTerm *term.State

	// VTIME value last programmed into the device, -1 before Init
	appliedVtime int

	resizeStopCh chan struct{}
	resizeDoneCh chan struct{}
}

func newBackend(cfg *Config) Backend {
	return &unixBackend{
		in:           os.Stdin,
		inFd:         int(os.Stdin.Fd()),
		cfg:          cfg,
		appliedVtime: -1,
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old

	if err := b.applyTiming(); err != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
		return err
	}
	return nil
}

func (b *unixBackend) Fini() {
	if b.resizeStopCh != nil {
		close(b.resizeStopCh)
		<-b.resizeDoneCh
		b.resizeStopCh = nil
	}
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.inFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

// applyTiming reprograms the device inter-byte timeout when the live
// Config drifted from what the device last saw. VMIN=1 keeps reads
// blocking for the first byte; VTIME bounds the gap between bytes of one
// burst so a full control sequence arrives in a single read.
func (b *unixBackend) applyTiming() error {
	vt := vtimeUnits(b.cfg.MetaComboPeriod())
	if vt == b.appliedVtime {
		return nil
	}

	tio, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("read termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = uint8(vt)
	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, tio); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	b.appliedVtime = vt
	return nil
}

func (b *unixBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	if err := b.applyTiming(); err != nil {
		return nil, err
	}

	buf := make([]byte, readBufSize)

	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		// Poll with timeout to allow checking stopCh
		fds := []unix.PollFd{
			{Fd: int32(b.inFd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, pollTimeoutMs(b.cfg.ControlSeqPeriod()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}

		if n == 0 {
			continue // Timeout
		}

		rn, err := unix.Read(b.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}

		if rn == 0 {
			// The descriptor is gone; fatal to the input subsystem
			return nil, fmt.Errorf("terminal input: %w", io.EOF)
		}

		ret := make([]byte, rn)
		copy(ret, buf[:rn])
		return ret, nil
	}
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.resizeStopCh = make(chan struct{})
	b.resizeDoneCh = make(chan struct{})

	go func() {
		defer close(b.resizeDoneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-b.resizeStopCh:
				return
			case <-sigCh:
				w, h := b.Size()
				handler(w, h)
			}
		}
	}()
}
