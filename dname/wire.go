package dname

import "strings"

// Skip walks wire-format labels in msg starting at offset and returns the
// offset immediately following the terminating zero label, or immediately
// following a two-octet pointer (pointers are treated as terminal — their
// target is never followed). Malformed input (an overrun, or a reserved
// label-type byte) yields len(msg), matching the reference's "return
// P->end on trouble" contract so callers can treat the result as "no
// further data" without a separate error return.
func Skip(offset int, msg []byte) int {
	src := offset

	for src < len(msg) {
		tag := msg[src] & 0xc0

		switch tag {
		case 0x00: // ordinary label
			length := int(msg[src] & 0x3f)
			src++

			if length == 0 {
				return src
			}
			if len(msg)-src < length {
				return len(msg)
			}
			src += length

		case pointerTag: // compression pointer — terminal
			if len(msg)-src < 2 {
				return len(msg)
			}
			return src + 2

		default: // 0x40, 0x80 — reserved
			return len(msg)
		}
	}

	return len(msg)
}

// Expand decompresses the name at offset in msg to presentation form,
// following compression pointers up to MaxPointerHops hops. The root name
// expands to ".". Every non-root label is followed by a '.', so the
// result is always anchored. Reserved label-type bits (01, 10) and any
// pointer chain longer than MaxPointerHops are reported as
// ErrReservedLabelType / ErrPointerLoop respectively, and a name longer
// than MaxWireLength octets on the wire as ErrNameTooLong, with an empty
// string returned.
func Expand(offset int, msg []byte) (string, error) {
	var b strings.Builder

	src := offset
	hops := 0
	wireLen := 1 // the terminating root label

	for src < len(msg) {
		tag := msg[src] & 0xc0

		switch tag {
		case 0x00:
			length := int(msg[src] & 0x3f)

			if length == 0 {
				if b.Len() == 0 {
					b.WriteByte('.')
				}
				return b.String(), nil
			}

			src++
			if len(msg)-src < length {
				return "", ErrMalformed
			}
			wireLen += 1 + length
			if wireLen > MaxWireLength {
				return "", ErrNameTooLong
			}

			b.Write(msg[src : src+length])
			b.WriteByte('.')

			src += length

		case pointerTag:
			hops++
			if hops > MaxPointerHops {
				return "", ErrPointerLoop
			}
			if len(msg)-src < 2 {
				return "", ErrMalformed
			}

			target := (int(msg[src]&0x3f) << 8) | int(msg[src+1])
			src = target

		default:
			return "", ErrReservedLabelType
		}
	}

	return "", ErrMalformed
}

// Compress emits the wire-format encoding of name into out (normally the
// free tail of a message buffer) and returns the number of bytes written,
// or an error if out is too small.
//
// msg is the portion of the message already written (offsets 0..len(msg))
// and dict holds up to 16 offsets into msg at which earlier names begin.
// Compress writes name's labels into out, then looks for the longest
// run of trailing labels that also appears, case-insensitively and
// terminating at a root label on both sides, as the tail of some name
// reachable from dict. When found, it truncates the output at that point
// and appends a two-octet pointer to the match instead of writing the
// shared labels again. With no match the name is written out in full,
// terminated by a zero label.
func Compress(out []byte, name string, msg []byte, dict []uint16) (int, error) {
	n, err := writeLabels(out, name)
	if err != nil {
		return 0, err
	}

	target, cut, found := bestMatch(out[:n], msg, dict)
	if !found {
		return n, nil
	}

	if cut+2 > len(out) {
		return 0, ErrBufferExhausted
	}
	out[cut] = byte(pointerTag | (target >> 8))
	out[cut+1] = byte(target)
	return cut + 2, nil
}

// writeLabels writes name's labels verbatim (no compression), terminated
// by a zero label, and returns the number of bytes written.
func writeLabels(out []byte, name string) (int, error) {
	pos := 0
	labelStart := 0

	flush := func(labelEnd int) error {
		length := labelEnd - labelStart
		if length == 0 {
			return nil
		}
		if length > MaxLabelLength {
			return ErrMalformed
		}
		if pos+1+length > len(out) {
			return ErrBufferExhausted
		}
		out[pos] = byte(length)
		copy(out[pos+1:], name[labelStart:labelEnd])
		pos += 1 + length
		return nil
	}

	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			if err := flush(i); err != nil {
				return 0, err
			}
			labelStart = i + 1
		}
	}
	if labelStart < len(name) {
		if err := flush(len(name)); err != nil {
			return 0, err
		}
	}

	if pos >= len(out) {
		return 0, ErrBufferExhausted
	}
	out[pos] = 0
	pos++

	return pos, nil
}

// expandLabel reads one label from data at pos, following compression
// pointers (bounded by MaxPointerHops) when data represents a message
// that may itself contain compressed names. It returns ok=false for both
// a root label and any malformed input — like the reference codec, the
// compression matcher that calls this doesn't need to tell them apart:
// either way, there is no further label to compare.
func expandLabel(data []byte, pos int) (label []byte, next int, ok bool) {
	hops := 0

	for {
		if pos < 0 || pos >= len(data) {
			return nil, 0, false
		}

		switch data[pos] & 0xc0 {
		case 0x00:
			length := int(data[pos] & 0x3f)
			pos++

			if len(data)-pos < length {
				return nil, 0, false
			}
			if length == 0 {
				return nil, pos, false
			}
			return data[pos : pos+length], pos + length, true

		case pointerTag:
			hops++
			if hops > MaxPointerHops {
				return nil, 0, false
			}
			if len(data)-pos < 2 {
				return nil, 0, false
			}
			pos = (int(data[pos]&0x3f) << 8) | int(data[pos+1])

		default:
			return nil, 0, false
		}
	}
}

// bestMatch finds the longest run of trailing labels of newName (itself
// pointer-free — it was just written by writeLabels) that also appears as
// the tail of some name reachable from dict, label by label and
// case-insensitively, ending at a root label on both sides. It returns
// the absolute message offset the match starts at, the offset within
// newName where the shared suffix begins (everything before that offset
// must still be written verbatim), and whether any match was found.
//
// It mirrors dns_d_comp's nested-loop search exactly: try every starting
// label of newName from longest remaining suffix to shortest, and for
// each, every starting label of every dictionary name, taking the first
// simultaneous-root match found.
func bestMatch(newName []byte, msg []byte, dict []uint16) (target uint16, cut int, found bool) {
	aPos := 0

	for {
		aLabel, aNext, aOK := expandLabel(newName, aPos)
		if !aOK {
			break
		}

		for _, d := range dict {
			bPos := int(d)

			for {
				bLabel, bNext, bOK := expandLabel(msg, bPos)
				if !bOK {
					break
				}

				al, bl := aLabel, bLabel
				ay, by := aNext, bNext

				for len(al) != 0 && len(bl) != 0 && equalFold(al, bl) {
					var aok, bok bool
					al, ay, aok = expandLabel(newName, ay)
					bl, by, bok = expandLabel(msg, by)
					if !aok {
						al = nil
					}
					if !bok {
						bl = nil
					}
				}

				if len(al) == 0 && len(bl) == 0 && bPos <= pointerMask {
					return uint16(bPos), aPos, true
				}

				bPos = bNext
			}
		}

		aPos = aNext
	}

	return 0, 0, false
}

func equalFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
