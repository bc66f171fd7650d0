package termkey

import "strings"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error, fatal to the input subsystem
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// String returns a human-readable form, e.g. "ctrl+alt+up" or "a"
func (e Event) String() string {
	switch e.Type {
	case EventResize:
		return "resize"
	case EventError:
		if e.Err != nil {
			return "error: " + e.Err.Error()
		}
		return "error"
	case EventClosed:
		return "closed"
	}

	var sb strings.Builder
	if e.Modifiers&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if e.Modifiers&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if e.Modifiers&ModShift != 0 {
		sb.WriteString("shift+")
	}
	if e.Key == KeyRune {
		sb.WriteRune(e.Rune)
	} else if name := KeyName(e.Key); name != "" {
		sb.WriteString(name)
	} else {
		sb.WriteString("none")
	}
	return sb.String()
}
