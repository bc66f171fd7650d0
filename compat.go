package termkey

import "github.com/gdamore/tcell/v2"

// keyToTcell maps termkey keys to their tcell equivalents
var keyToTcell = map[Key]tcell.Key{
	KeyEscape:    tcell.KeyEscape,
	KeyEnter:     tcell.KeyEnter,
	KeyTab:       tcell.KeyTab,
	KeyBacktab:   tcell.KeyBacktab,
	KeyBackspace: tcell.KeyBackspace2,
	KeyDelete:    tcell.KeyDelete,
	KeyUp:        tcell.KeyUp,
	KeyDown:      tcell.KeyDown,
	KeyLeft:      tcell.KeyLeft,
	KeyRight:     tcell.KeyRight,
	KeyHome:      tcell.KeyHome,
	KeyEnd:       tcell.KeyEnd,
	KeyPageUp:    tcell.KeyPgUp,
	KeyPageDown:  tcell.KeyPgDn,
	KeyInsert:    tcell.KeyInsert,

	KeyCtrlSpace:        tcell.KeyCtrlSpace,
	KeyCtrlBackslash:    tcell.KeyCtrlBackslash,
	KeyCtrlBracketLeft:  tcell.KeyCtrlLeftSq,
	KeyCtrlBracketRight: tcell.KeyCtrlRightSq,
	KeyCtrlCaret:        tcell.KeyCtrlCarat,
	KeyCtrlUnderscore:   tcell.KeyCtrlUnderscore,
}

// ToTcell converts a key event to the (key, rune, modifiers) triple a
// tcell EventKey carries. EventResize and the lifecycle markers have no
// tcell key form and convert to tcell.KeyNUL.
func ToTcell(ev Event) (tcell.Key, rune, tcell.ModMask) {
	var mods tcell.ModMask
	if ev.Modifiers&ModShift != 0 {
		mods |= tcell.ModShift
	}
	if ev.Modifiers&ModAlt != 0 {
		mods |= tcell.ModAlt
	}
	if ev.Modifiers&ModCtrl != 0 {
		mods |= tcell.ModCtrl
	}

	if ev.Type != EventKey {
		return tcell.KeyNUL, 0, mods
	}
	if ev.Key == KeyRune {
		return tcell.KeyRune, ev.Rune, mods
	}
	if ev.Key >= KeyF1 && ev.Key <= KeyF12 {
		return tcell.KeyF1 + tcell.Key(ev.Key-KeyF1), 0, mods
	}
	if ev.Key >= KeyCtrlA && ev.Key <= KeyCtrlZ {
		return tcell.KeyCtrlA + tcell.Key(ev.Key-KeyCtrlA), 0, mods | tcell.ModCtrl
	}
	if k, ok := keyToTcell[ev.Key]; ok {
		return k, 0, mods
	}
	return tcell.KeyNUL, 0, mods
}

// NewTcellEvent wraps a key event as a *tcell.EventKey for handing to
// tcell-based consumers.
func NewTcellEvent(ev Event) *tcell.EventKey {
	k, r, m := ToTcell(ev)
	return tcell.NewEventKey(k, r, m)
}
