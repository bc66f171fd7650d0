// Package termkey turns the raw byte stream of a terminal device into
// discrete key events.
//
// Features:
//   - Table-driven recognition compiled from a terminal capability table
//   - UTF-8 decoding interleaved with escape sequence matching
//   - Timing-based disambiguation of bare ESC vs. control sequences vs.
//     Alt (meta) combinations
//   - Terminfo-backed tables with a builtin xterm-compatible fallback
//   - SIGWINCH resize events, cooperative shutdown, clean terminal restore
//
// The engine runs two goroutines: a reader that owns the file descriptor
// and a processing loop that classifies buffered bytes and emits events.
// The two communicate only through a channel, and silence is detected by
// a resettable timer inside the processing loop, so there are no shared
// mutable flags anywhere on the hot path.
package termkey
