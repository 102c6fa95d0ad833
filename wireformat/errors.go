// Package wireformat implements the DNS message buffer: a fixed-capacity
// byte buffer holding a 12-octet header and four sections (question,
// answer, authority, additional), with append-only construction, in-place
// parsing, restartable record iteration, and pretty-printing. Name
// compression and decompression is delegated to the dname package; rdata
// encoding and decoding is delegated to whatever satisfies the RDataWriter
// interface here (the rrtype package's record-type registry).
package wireformat

import "errors"

const (
	// HeaderSize is the fixed length of the DNS message header.
	HeaderSize = 12

	// maxDictEntries bounds the compression dictionary: a small cache of
	// prior name offsets, not an exhaustive index. Once full, further
	// names are simply not recorded — matching dns_p_dictadd's
	// first-empty-slot-or-nothing policy.
	maxDictEntries = 16
)

var (
	// ErrBufferExhausted is returned when an append would exceed the
	// packet's capacity.
	ErrBufferExhausted = errors.New("wireformat: buffer exhausted")

	// ErrMalformed is returned when parsing encounters a length or
	// offset that violates message bounds.
	ErrMalformed = errors.New("wireformat: malformed message")

	// ErrCapacityTooSmall is returned by New when the supplied buffer
	// can't even hold a header.
	ErrCapacityTooSmall = errors.New("wireformat: capacity smaller than header")

	// ErrSectionFull is returned when a section's 16-bit count would
	// overflow on push.
	ErrSectionFull = errors.New("wireformat: section record count exhausted")
)
