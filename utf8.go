package termkey

// utf8LeadMin is the smallest byte that can begin a well-formed multi-byte
// UTF-8 sequence; 0x80-0xC1 are continuations or overlong leads.
const utf8LeadMin = 0xC2

// utf8ExpectLen returns the total encoded length implied by a lead byte.
// Total over all byte values so a corrupt lead cannot panic the caller;
// values below 0x80 never reach the multi-byte path in practice.
func utf8ExpectLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

// decodeRune strictly decodes one UTF-8 sequence from the front of data.
// Returns ok=false on malformed continuations, overlong encodings, or
// code points beyond the Unicode range.
func decodeRune(data []byte) (rune, int, bool) {
	if len(data) == 0 {
		return 0, 0, false
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1, true
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0, 0, false
	}

	if len(data) < size {
		return 0, 0, false
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0, 0, false
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < min || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, 0, false
	}

	return r, size, true
}
