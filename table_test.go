package termkey

import (
	"testing"

	"github.com/gdamore/tcell/v2/terminfo"
)

func TestDefaultTableCoverage(t *testing.T) {
	table := DefaultTable()
	bySeq := make(map[string]Entry, len(table))
	for _, e := range table {
		bySeq[e.Seq] = e
	}

	tests := []struct {
		name string
		seq  string
		key  Key
		mod  Modifier
	}{
		{"Space", " ", KeyRune, ModNone},
		{"Tilde", "~", KeyRune, ModNone},
		{"Escape", "\x1b", KeyEscape, ModNone},
		{"Tab", "\t", KeyTab, ModNone},
		{"Ctrl+A", "\x01", KeyCtrlA, ModNone},
		{"Ctrl+Z", "\x1a", KeyCtrlZ, ModNone},
		{"Ctrl+Space", "\x00", KeyCtrlSpace, ModNone},
		{"DEL", "\x7f", KeyBackspace, ModNone},
		{"Home tilde form", "\x1b[1~", KeyHome, ModNone},
		{"F12", "\x1b[24~", KeyF12, ModNone},
		{"F12 all modifiers", "\x1b[24;8~", KeyF12, ModShift | ModAlt | ModCtrl},
		{"Ctrl+F1", "\x1b[1;5P", KeyF1, ModCtrl},
		{"vt F5", "\x1b[[E", KeyF5, ModNone},
		{"SS3 keypad enter", "\x1bOM", KeyEnter, ModNone},
		{"Meta control", "\x1b\x01", KeyCtrlA, ModAlt},
		{"Meta DEL", "\x1b\x7f", KeyBackspace, ModAlt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := bySeq[tt.seq]
			if !ok {
				t.Fatalf("table missing sequence %q", tt.seq)
			}
			if e.Key != tt.key || e.Mod != tt.mod {
				t.Errorf("entry %q = key=%v mod=%v, want key=%v mod=%v", tt.seq, e.Key, e.Mod, tt.key, tt.mod)
			}
		})
	}
}

func TestDefaultTableMetaDoubles(t *testing.T) {
	table := DefaultTable()
	var base, meta int
	for _, e := range table {
		if e.Mod&ModAlt != 0 && len(e.Seq) > 1 && e.Seq[0] == 0x1b {
			meta++
		} else {
			base++
		}
	}
	if meta < base {
		t.Errorf("meta entries = %d, want at least one per base entry (%d)", meta, base)
	}
}

func TestControlKey(t *testing.T) {
	tests := []struct {
		b    byte
		want Key
	}{
		{0x00, KeyCtrlSpace},
		{0x03, KeyCtrlC},
		{0x08, KeyBackspace},
		{0x09, KeyTab},
		{0x0a, KeyEnter},
		{0x0d, KeyEnter},
		{0x1a, KeyCtrlZ},
		{0x1b, KeyEscape},
		{0x1f, KeyCtrlUnderscore},
	}
	for _, tt := range tests {
		if got := controlKey(tt.b); got != tt.want {
			t.Errorf("controlKey(0x%02x) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestTableFromTerminfo(t *testing.T) {
	// A synthetic description using SS3 arrows, as application-mode
	// terminals do; the override must win over the builtin CSI form
	ti := &terminfo.Terminfo{
		Name:     "test-term",
		KeyUp:    "\x1bOA",
		KeyDown:  "\x1bOB",
		KeyHome:  "\x1b[7~",
		KeyF1:    "\x1b[11~",
		KeyShfUp: "\x1b[1;2A",
	}

	r := NewRecognizer(TableFromTerminfo(ti))

	tests := []struct {
		name  string
		input string
		key   Key
		mods  Modifier
	}{
		{"SS3 up", "\x1bOA", KeyUp, ModNone},
		{"rxvt home", "\x1b[7~", KeyHome, ModNone},
		{"xterm F1 tilde form", "\x1b[11~", KeyF1, ModNone},
		{"Shifted up", "\x1b[1;2A", KeyUp, ModShift},
		{"Builtin survives", "\x1b[B", KeyDown, ModNone},
		{"Builtin rune survives", "q", KeyRune, ModNone},
		{"Meta variant of capability", "\x1b\x1bOA", KeyUp, ModAlt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := r.Classify([]byte(tt.input))
			if cl.Status != ClassMatched {
				t.Fatalf("Classify(%q) status = %v, want ClassMatched", tt.input, cl.Status)
			}
			if cl.Event.Key != tt.key || cl.Event.Modifiers != tt.mods {
				t.Errorf("Classify(%q) = key=%v mods=%v, want key=%v mods=%v",
					tt.input, cl.Event.Key, cl.Event.Modifiers, tt.key, tt.mods)
			}
		})
	}
}

func TestLookupTableFallback(t *testing.T) {
	table := LookupTable("no-such-terminal-exists")
	if len(table) == 0 {
		t.Fatal("fallback table is empty")
	}
	r := NewRecognizer(table)
	cl := r.Classify([]byte("\x1b[A"))
	if cl.Status != ClassMatched || cl.Event.Key != KeyUp {
		t.Errorf("fallback table cannot classify Up arrow: status=%v key=%v", cl.Status, cl.Event.Key)
	}
}

func TestMergeOverride(t *testing.T) {
	base := SequenceTable{{Seq: "\x1b[A", Key: KeyUp}}
	over := SequenceTable{{Seq: "\x1b[A", Key: KeyDown}}
	r := NewRecognizer(base.Merge(over))

	cl := r.Classify([]byte("\x1b[A"))
	if cl.Status != ClassMatched || cl.Event.Key != KeyDown {
		t.Errorf("override lost: status=%v key=%v, want KeyDown", cl.Status, cl.Event.Key)
	}
}
