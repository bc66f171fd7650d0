package termkey

// ClassStatus tags the outcome of classifying a byte buffer
type ClassStatus uint8

const (
	// ClassAmbiguous means the buffer could still grow into a match;
	// more bytes (or a silence timeout) are needed to decide
	ClassAmbiguous ClassStatus = iota
	// ClassMatched means a key event was recognized
	ClassMatched
	// ClassInvalid means the buffer provably cannot extend into any
	// known sequence
	ClassInvalid
)

// Classification is the result of one classify call. Remaining holds the
// bytes after the matched sequence and aliases the input buffer.
type Classification struct {
	Status    ClassStatus
	Event     Event
	Remaining []byte
}

// Recognizer classifies byte sequences against a compiled table.
// Immutable after construction, safe for concurrent reads.
type Recognizer struct {
	prefixes map[string]struct{}
	exact    map[string]Entry
}

// NewRecognizer compiles a table into its prefix set (every strict
// non-empty prefix of every sequence) and exact-match map. Later table
// entries override earlier ones with the same sequence.
func NewRecognizer(table SequenceTable) *Recognizer {
	r := &Recognizer{
		prefixes: make(map[string]struct{}, len(table)*2),
		exact:    make(map[string]Entry, len(table)),
	}
	for _, e := range table {
		if e.Seq == "" {
			continue
		}
		r.exact[e.Seq] = e
		for i := 1; i < len(e.Seq); i++ {
			r.prefixes[e.Seq[:i]] = struct{}{}
		}
	}
	return r
}

func entryEvent(e Entry) Event {
	return Event{Type: EventKey, Key: e.Key, Rune: e.Rune, Modifiers: e.Mod}
}

// Classify maps a byte buffer to a key event, a need-more-bytes verdict,
// or an invalid verdict.
//
// Multi-byte UTF-8 leads bypass the table entirely. Everything else is
// matched against the table: the prefix check runs before the exact
// check, so a sequence that is both a full entry and a prefix of a longer
// one (a lone ESC, for instance) stays ambiguous until more bytes arrive
// or the watchdog forces a resolution.
func (r *Recognizer) Classify(buf []byte) Classification {
	if len(buf) == 0 {
		return Classification{Status: ClassAmbiguous}
	}

	if buf[0] >= utf8LeadMin {
		want := utf8ExpectLen(buf[0])
		if len(buf) < want {
			return Classification{Status: ClassAmbiguous}
		}
		rn, size, ok := decodeRune(buf[:want])
		if !ok {
			return Classification{Status: ClassInvalid}
		}
		return Classification{
			Status:    ClassMatched,
			Event:     Event{Type: EventKey, Key: KeyRune, Rune: rn},
			Remaining: buf[size:],
		}
	}

	if _, ok := r.prefixes[string(buf)]; ok {
		return Classification{Status: ClassAmbiguous}
	}
	if e, ok := r.exact[string(buf)]; ok {
		return Classification{Status: ClassMatched, Event: entryEvent(e)}
	}

	// The buffer extends some table entry with trailing bytes, or matches
	// nothing at all. Longest prefix wins.
	for l := len(buf) - 1; l >= 1; l-- {
		if e, ok := r.exact[string(buf[:l])]; ok {
			return Classification{Status: ClassMatched, Event: entryEvent(e), Remaining: buf[l:]}
		}
	}
	return Classification{Status: ClassInvalid}
}

// Resolve forces a match out of a buffer the watchdog has given up
// waiting on, ignoring prefix ambiguity: the whole buffer first, then
// progressively shorter prefixes. ok=false means nothing matched.
func (r *Recognizer) Resolve(buf []byte) (ev Event, rest []byte, ok bool) {
	if len(buf) == 0 {
		return Event{}, nil, false
	}
	if e, hit := r.exact[string(buf)]; hit {
		return entryEvent(e), nil, true
	}
	for l := len(buf) - 1; l >= 1; l-- {
		if e, hit := r.exact[string(buf[:l])]; hit {
			return entryEvent(e), buf[l:], true
		}
	}
	return Event{}, nil, false
}
