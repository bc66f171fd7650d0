package termkey

import (
	"os"

	"github.com/gdamore/tcell/v2/terminfo"

	// Register the common terminal descriptions
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// TableFromTerminfo overlays the special-key capability strings of a
// terminfo description onto the builtin table. Capabilities the
// description leaves empty keep their builtin encodings, and every
// ESC-prefixed capability also gets a doubled-ESC Alt variant.
func TableFromTerminfo(ti *terminfo.Terminfo) SequenceTable {
	caps := make(SequenceTable, 0, 96)
	add := func(seq string, key Key, mod Modifier) {
		if seq == "" {
			return
		}
		caps = append(caps, Entry{Seq: seq, Key: key, Mod: mod})
		if seq[0] == 0x1b {
			caps = append(caps, Entry{Seq: "\x1b" + seq, Key: key, Mod: mod | ModAlt})
		}
	}

	add(ti.KeyUp, KeyUp, ModNone)
	add(ti.KeyDown, KeyDown, ModNone)
	add(ti.KeyLeft, KeyLeft, ModNone)
	add(ti.KeyRight, KeyRight, ModNone)
	add(ti.KeyHome, KeyHome, ModNone)
	add(ti.KeyEnd, KeyEnd, ModNone)
	add(ti.KeyPgUp, KeyPageUp, ModNone)
	add(ti.KeyPgDn, KeyPageDown, ModNone)
	add(ti.KeyInsert, KeyInsert, ModNone)
	add(ti.KeyDelete, KeyDelete, ModNone)
	add(ti.KeyBackspace, KeyBackspace, ModNone)
	add(ti.KeyBacktab, KeyBacktab, ModShift)

	add(ti.KeyF1, KeyF1, ModNone)
	add(ti.KeyF2, KeyF2, ModNone)
	add(ti.KeyF3, KeyF3, ModNone)
	add(ti.KeyF4, KeyF4, ModNone)
	add(ti.KeyF5, KeyF5, ModNone)
	add(ti.KeyF6, KeyF6, ModNone)
	add(ti.KeyF7, KeyF7, ModNone)
	add(ti.KeyF8, KeyF8, ModNone)
	add(ti.KeyF9, KeyF9, ModNone)
	add(ti.KeyF10, KeyF10, ModNone)
	add(ti.KeyF11, KeyF11, ModNone)
	add(ti.KeyF12, KeyF12, ModNone)

	add(ti.KeyShfUp, KeyUp, ModShift)
	add(ti.KeyShfDown, KeyDown, ModShift)
	add(ti.KeyShfLeft, KeyLeft, ModShift)
	add(ti.KeyShfRight, KeyRight, ModShift)
	add(ti.KeyShfHome, KeyHome, ModShift)
	add(ti.KeyShfEnd, KeyEnd, ModShift)
	add(ti.KeyShfPgUp, KeyPageUp, ModShift)
	add(ti.KeyShfPgDn, KeyPageDown, ModShift)

	add(ti.KeyCtrlUp, KeyUp, ModCtrl)
	add(ti.KeyCtrlDown, KeyDown, ModCtrl)
	add(ti.KeyCtrlLeft, KeyLeft, ModCtrl)
	add(ti.KeyCtrlRight, KeyRight, ModCtrl)
	add(ti.KeyCtrlHome, KeyHome, ModCtrl)
	add(ti.KeyCtrlEnd, KeyEnd, ModCtrl)

	add(ti.KeyAltUp, KeyUp, ModAlt)
	add(ti.KeyAltDown, KeyDown, ModAlt)
	add(ti.KeyAltLeft, KeyLeft, ModAlt)
	add(ti.KeyAltRight, KeyRight, ModAlt)
	add(ti.KeyAltHome, KeyHome, ModAlt)
	add(ti.KeyAltEnd, KeyEnd, ModAlt)

	return DefaultTable().Merge(caps)
}

// LookupTable resolves a terminal name (defaulting to $TERM) against the
// terminfo database. Unknown or empty terminals fall back to the builtin
// xterm-compatible table.
func LookupTable(term string) SequenceTable {
	if term == "" {
		term = os.Getenv("TERM")
	}
	if term == "" {
		return DefaultTable()
	}
	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		return DefaultTable()
	}
	return TableFromTerminfo(ti)
}
