package rrtype

import (
	"strings"

	"github.com/dnsscience/dnscore/wireformat"
)

const maxChunk = 255

// maxPrintChunk is the re-grouping width Print uses, distinct from the
// wire chunk size above: the wire format caps each length-prefixed
// chunk at 255 octets (a single length octet), but presentation output
// regroups the raw payload into 256-octet quoted segments.
const maxPrintChunk = 256

// TXT is a free-text record: one logical byte string, fragmented on the
// wire into 255-octet-or-shorter chunks, each prefixed by its own length
// octet.
type TXT struct{ Text []byte }

func (v TXT) WriteRData(p *wireformat.Packet) error {
	rest := v.Text
	if len(rest) == 0 {
		return p.AppendBytes([]byte{0})
	}
	for len(rest) > 0 {
		n := len(rest)
		if n > maxChunk {
			n = maxChunk
		}
		if err := p.AppendBytes([]byte{byte(n)}); err != nil {
			return err
		}
		if err := p.AppendBytes(rest[:n]); err != nil {
			return err
		}
		rest = rest[n:]
	}
	return nil
}

// String renders TXT the way the reference codec's print does: the raw
// byte string re-split into 256-octet segments (independent of the
// wire's 255-octet chunk boundaries), each rendered as a quoted string
// with non-printable bytes and quote/backslash characters escaped as
// \NNN decimal, separated by spaces.
func (v TXT) String() string {
	if len(v.Text) == 0 {
		return `""`
	}

	var sb strings.Builder
	rest := v.Text
	first := true
	for len(rest) > 0 {
		n := len(rest)
		if n > maxPrintChunk {
			n = maxPrintChunk
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteByte('"')
		escapeInto(&sb, rest[:n])
		sb.WriteByte('"')
		rest = rest[n:]
	}
	return sb.String()
}

func escapeInto(sb *strings.Builder, b []byte) {
	for _, c := range b {
		switch {
		case c == '"' || c == '\\' || c < 0x20 || c >= 0x7f:
			sb.WriteString(decimalEscape(c))
		default:
			sb.WriteByte(c)
		}
	}
}

func decimalEscape(c byte) string {
	const digits = "0123456789"
	return string([]byte{
		'\\',
		digits[c/100],
		digits[(c/10)%10],
		digits[c%10],
	})
}

func parseTXT(msg []byte, off, n int) (Value, error) {
	end := off + n
	var out []byte
	pos := off
	for pos < end {
		chunkLen := int(msg[pos])
		pos++
		if pos+chunkLen > end {
			return nil, ErrRDataTooShort
		}
		out = append(out, msg[pos:pos+chunkLen]...)
		pos += chunkLen
	}
	return TXT{Text: out}, nil
}

// Opaque carries the raw rdata of a record type this registry doesn't
// know how to decode. It round-trips byte-for-byte.
type Opaque struct {
	Type uint16
	Raw  []byte
}

func (v Opaque) WriteRData(p *wireformat.Packet) error { return p.AppendBytes(v.Raw) }

func (v Opaque) String() string {
	var sb strings.Builder
	sb.WriteString(`\# "`)
	escapeInto(&sb, v.Raw)
	sb.WriteByte('"')
	return sb.String()
}

func parseOpaque(rtype uint16, msg []byte, off, n int) (Value, error) {
	return Opaque{Type: rtype, Raw: append([]byte(nil), msg[off:off+n]...)}, nil
}
