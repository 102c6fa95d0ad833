package dname

// Anchor writes the anchored form of src (a trailing '.' appended unless
// already present) into dst and returns the logical length of that form.
// The returned length may exceed len(dst); callers that need to know
// whether the output was truncated compare the return value against
// len(dst) themselves, the same contract dns_d_anchor uses.
//
// An empty src anchors to an empty result (0), matching the reference
// behavior that "" is not itself a valid name to anchor.
func Anchor(dst []byte, src string) int {
	if len(src) == 0 {
		return 0
	}

	n := copy(dst, src)
	_ = n

	length := len(src)
	if src[len(src)-1] != '.' {
		if length < len(dst) {
			dst[length] = '.'
		}
		length++
	}

	return length
}

// AnchorString is the ergonomic wrapper around Anchor for callers that
// just want the anchored string back, unbounded.
func AnchorString(src string) string {
	if len(src) == 0 {
		return ""
	}
	if src[len(src)-1] == '.' {
		return src
	}
	return src + "."
}

// Cleave writes the parent domain of src (src with its leftmost label and
// separator removed) into dst and returns its logical length, or 0 if src
// has no parent (the root or the empty name). A single leading '.' is
// skipped before looking for the next separator, which is what lets
// cleaving the root "." itself terminate at empty rather than erroring.
func Cleave(dst []byte, src string) int {
	if len(src) == 0 {
		return 0
	}

	// Skip one leading '.' (root anchor) before searching for the next dot.
	search := src[1:]
	rel := indexByte(search, '.')
	if rel < 0 {
		return 0
	}
	dotPos := rel + 1 // index of the dot within src

	rest := src[dotPos:]

	// Unless what remains is just the root ".", drop the label's own
	// trailing dot too.
	if len(rest) > 1 {
		rest = rest[1:]
	}

	length := len(rest)
	copy(dst, rest)

	return length
}

// CleaveString is the ergonomic wrapper around Cleave.
func CleaveString(src string) string {
	var buf [MaxPresentationLength + 2]byte
	n := Cleave(buf[:], src)
	if n == 0 {
		return ""
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(buf[:n])
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
