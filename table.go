package termkey

// Entry binds one raw byte sequence to the key event it encodes
type Entry struct {
	Seq  string
	Key  Key
	Rune rune
	Mod  Modifier
}

// SequenceTable is an ordered byte-sequence-to-key table. Sequences need
// not be prefix-free; when one entry is a strict prefix of another both
// remain reachable and the recognizer breaks ties longest-match-first.
// Later entries override earlier ones with the same sequence.
type SequenceTable []Entry

// Merge returns a table where entries of over take precedence over t
func (t SequenceTable) Merge(over SequenceTable) SequenceTable {
	out := make(SequenceTable, 0, len(t)+len(over))
	out = append(out, t...)
	out = append(out, over...)
	return out
}

// csiKey is a final byte of an xterm-style CSI sequence
type csiKey struct {
	final byte
	key   Key
}

// letter-terminated CSI keys: ESC [ <final> and ESC [ 1 ; <mod> <final>
var csiLetterKeys = []csiKey{
	{'A', KeyUp},
	{'B', KeyDown},
	{'C', KeyRight},
	{'D', KeyLeft},
	{'H', KeyHome},
	{'F', KeyEnd},
	{'P', KeyF1},
	{'Q', KeyF2},
	{'R', KeyF3},
	{'S', KeyF4},
}

// tildeKey is a numeric parameter of a tilde-terminated CSI sequence
type tildeKey struct {
	param string
	key   Key
}

// tilde-terminated CSI keys: ESC [ <param> ~ and ESC [ <param> ; <mod> ~
var csiTildeKeys = []tildeKey{
	{"1", KeyHome},
	{"2", KeyInsert},
	{"3", KeyDelete},
	{"4", KeyEnd},
	{"5", KeyPageUp},
	{"6", KeyPageDown},
	{"7", KeyHome},
	{"8", KeyEnd},
	{"11", KeyF1},
	{"12", KeyF2},
	{"13", KeyF3},
	{"14", KeyF4},
	{"15", KeyF5},
	{"17", KeyF6},
	{"18", KeyF7},
	{"19", KeyF8},
	{"20", KeyF9},
	{"21", KeyF10},
	{"23", KeyF11},
	{"24", KeyF12},
}

// SS3 sequences (ESC O ...)
var ss3Keys = []csiKey{
	{'A', KeyUp},
	{'B', KeyDown},
	{'C', KeyRight},
	{'D', KeyLeft},
	{'H', KeyHome},
	{'F', KeyEnd},
	{'P', KeyF1},
	{'Q', KeyF2},
	{'R', KeyF3},
	{'S', KeyF4},
	{'M', KeyEnter}, // Keypad Enter
}

// Keypad in application mode sends SS3-prefixed printables
var ss3KeypadRunes = map[byte]rune{
	'j': '*', 'k': '+', 'l': ',', 'm': '-', 'n': '.', 'o': '/',
	'p': '0', 'q': '1', 'r': '2', 's': '3', 't': '4',
	'u': '5', 'v': '6', 'w': '7', 'x': '8', 'y': '9',
	'X': '=',
}

// xtermMod decodes the xterm modifier parameter (value minus one is a
// bitmask: 1=Shift, 2=Alt, 4=Ctrl)
func xtermMod(param int) Modifier {
	bits := param - 1
	m := ModNone
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// DefaultTable returns the builtin xterm-compatible table: printable
// ASCII, C0 control bytes, DEL, CSI and SS3 special keys with all xterm
// modifier combinations, and generated meta (ESC-prefixed) variants of
// every base entry.
func DefaultTable() SequenceTable {
	t := make(SequenceTable, 0, 1024)

	// Printable ASCII
	for b := byte(0x20); b < 0x7f; b++ {
		t = append(t, Entry{Seq: string([]byte{b}), Key: KeyRune, Rune: rune(b)})
	}

	// Control characters, including the lone ESC itself
	for b := byte(0x00); b < 0x20; b++ {
		if k := controlKey(b); k != KeyNone {
			t = append(t, Entry{Seq: string([]byte{b}), Key: k})
		}
	}
	t = append(t, Entry{Seq: "\x7f", Key: KeyBackspace})

	// CSI specials, unmodified
	for _, ck := range csiLetterKeys {
		t = append(t, Entry{Seq: "\x1b[" + string(ck.final), Key: ck.key})
	}
	t = append(t, Entry{Seq: "\x1b[Z", Key: KeyBacktab, Mod: ModShift})
	for _, tk := range csiTildeKeys {
		t = append(t, Entry{Seq: "\x1b[" + tk.param + "~", Key: tk.key})
	}

	// CSI specials with xterm modifier parameters (2..8)
	for mod := 2; mod <= 8; mod++ {
		m := xtermMod(mod)
		ms := string('0' + byte(mod))
		for _, ck := range csiLetterKeys {
			t = append(t, Entry{Seq: "\x1b[1;" + ms + string(ck.final), Key: ck.key, Mod: m})
		}
		for _, tk := range csiTildeKeys {
			if tk.param == "1" || tk.param == "4" || tk.param == "7" || tk.param == "8" {
				continue // modified Home/End arrive letter-terminated
			}
			t = append(t, Entry{Seq: "\x1b[" + tk.param + ";" + ms + "~", Key: tk.key, Mod: m})
		}
	}

	// Function keys, vt style
	for i, final := range []byte{'A', 'B', 'C', 'D', 'E'} {
		t = append(t, Entry{Seq: "\x1b[[" + string(final), Key: KeyF1 + Key(i)})
	}

	// SS3 specials and application-mode keypad
	for _, sk := range ss3Keys {
		t = append(t, Entry{Seq: "\x1bO" + string(sk.final), Key: sk.key})
	}
	for b, r := range ss3KeypadRunes {
		t = append(t, Entry{Seq: "\x1bO" + string(b), Key: KeyRune, Rune: r})
	}

	return withMetaEntries(t)
}

// withMetaEntries appends an ESC-prefixed Alt variant for every entry.
// This is how terminals encode meta combos: ESC+'a' for Alt+a, ESC ESC for
// Alt+Escape, and a doubled ESC in front of a full sequence for Alt+Up.
func withMetaEntries(t SequenceTable) SequenceTable {
	base := len(t)
	out := make(SequenceTable, base, base*2)
	copy(out, t)
	for _, e := range t[:base] {
		out = append(out, Entry{Seq: "\x1b" + e.Seq, Key: e.Key, Rune: e.Rune, Mod: e.Mod | ModAlt})
	}
	return out
}
