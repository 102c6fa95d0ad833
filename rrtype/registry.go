package rrtype

import (
	"fmt"

	"github.com/dnsscience/dnscore/wireformat"
)

type parseFunc func(msg []byte, off, n int) (Value, error)

// registry is the closed table of (parse) functions keyed by RRTYPE. push
// and print are methods on the Value each parse function returns, so the
// table only needs to remember how to get from wire bytes to a Value;
// everything after that is ordinary Go dispatch.
var registry = map[uint16]parseFunc{
	TypeA:     parseA,
	TypeAAAA:  parseAAAA,
	TypeMX:    parseMX,
	TypeNS:    parseNS,
	TypeCNAME: parseCNAME,
	TypeTXT:   parseTXT,
}

// Parse decodes a record's rdata into a typed Value. Types outside the
// closed table fall back to Opaque rather than failing — an unknown
// RRTYPE is not malformed input, just unrecognized.
func Parse(rtype uint16, msg []byte, rdataOffset, rdataLength int) (Value, error) {
	if rdataOffset+rdataLength > len(msg) || rdataOffset < 0 || rdataLength < 0 {
		return nil, ErrRDataTooShort
	}
	if fn, ok := registry[rtype]; ok {
		return fn(msg, rdataOffset, rdataLength)
	}
	return parseOpaque(rtype, msg, rdataOffset, rdataLength)
}

// Codec adapts this registry to wireformat.RDataCodec, letting
// wireformat.Packet.Print and wireformat.Copy/Renormalize decode and
// re-encode rdata without importing this package directly.
type Codec struct{}

func (Codec) Describe(rtype uint16, msg []byte, off, n int) (string, error) {
	v, err := Parse(rtype, msg, off, n)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func (Codec) Recode(rtype uint16, msg []byte, off, n int) wireformat.RDataWriter {
	v, err := Parse(rtype, msg, off, n)
	if err != nil {
		return failedWriter{err}
	}
	return v
}

func (Codec) TypeName(rtype uint16) string { return TypeToString(rtype) }

func (Codec) ClassName(class uint16) string { return ClassToString(class) }

// failedWriter defers a Parse error to WriteRData time, since
// wireformat.RDataCodec.Recode has no error return of its own —
// PushRecord surfaces whatever WriteRData returns and rolls the packet
// back exactly as it would for any other append failure.
type failedWriter struct{ err error }

func (f failedWriter) WriteRData(*wireformat.Packet) error { return f.err }

// TypeToString renders a numeric RRTYPE using its mnemonic when known,
// falling back to its decimal value.
func TypeToString(t uint16) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("%d", t)
}

// TypeByName resolves a mnemonic (case-insensitive) to its numeric
// RRTYPE, or ok=false if unrecognized.
func TypeByName(name string) (uint16, bool) {
	t, ok := namesToType[upper(name)]
	return t, ok
}

// ClassToString renders a numeric class using its mnemonic when known.
func ClassToString(c uint16) string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("%d", c)
}

// ClassByName resolves a class mnemonic (case-insensitive) to its
// numeric value.
func ClassByName(name string) (uint16, bool) {
	c, ok := namesToClass[upper(name)]
	return c, ok
}

// SectionName renders a wireformat.Section using the conventional
// uppercase mnemonic the resolver-configuration and print surfaces use.
func SectionName(s wireformat.Section) string {
	switch s {
	case wireformat.Question:
		return "QUESTION"
	case wireformat.Answer:
		return "ANSWER"
	case wireformat.Authority:
		return "AUTHORITY"
	case wireformat.Additional:
		return "ADDITIONAL"
	default:
		return "UNKNOWN"
	}
}

var typeNames = map[uint16]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeCNAME: "CNAME",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
	TypeAAAA:  "AAAA",
}

var namesToType = reverseUint16(typeNames)

var classNames = map[uint16]string{
	ClassIN: "IN",
}

var namesToClass = reverseUint16(classNames)

func reverseUint16(m map[uint16]string) map[string]uint16 {
	out := make(map[string]uint16, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
