// Package rrtype is the record type registry: a closed table mapping each
// supported RRTYPE to a (parse, push, print) triple, with an opaque
// fallback for anything not in the table. It also holds the bidirectional
// type/class/section name tables the wire format and config loader both
// need.
package rrtype

import "errors"

var (
	// ErrRDataTooShort is returned when a record's rdata is shorter than
	// its type requires.
	ErrRDataTooShort = errors.New("rrtype: rdata too short")

	// ErrRDataTooLong is returned when a record's rdata carries trailing
	// bytes its type doesn't account for (e.g. an A record with rdlength
	// > 4).
	ErrRDataTooLong = errors.New("rrtype: rdata too long")
)

// Numeric RRTYPE and CLASS constants for the types this registry supports
// natively. Unlisted types still round-trip via the opaque fallback.
const (
	TypeA     uint16 = 1
	TypeNS    uint16 = 2
	TypeCNAME uint16 = 5
	TypeMX    uint16 = 15
	TypeTXT   uint16 = 16
	TypeAAAA  uint16 = 28

	TypeAll uint16 = 0 // wildcard, mirrors wireformat.TypeAll

	ClassIN  uint16 = 1
	ClassAny uint16 = 0 // wildcard, mirrors wireformat.ClassAny
)
