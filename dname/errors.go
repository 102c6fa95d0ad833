// Package dname implements the domain-name algebra: presentation-form
// anchoring and cleaving, and the wire-format label/pointer codec used to
// compress and decompress names inside a DNS message.
//
// Every operation here is length-bounded: callers supply the buffer they
// own, and no function ever writes past it. Wire-format decoding additionally
// bounds the number of compression-pointer hops it will follow, so malformed
// or hostile input can't cause unbounded work.
package dname

import "errors"

var (
	// ErrBufferExhausted is returned when a caller-supplied output buffer
	// is too small to hold a compressed name.
	ErrBufferExhausted = errors.New("dname: output buffer exhausted")

	// ErrMalformed is returned when wire-format input violates the label
	// or pointer encoding (truncated label, overrun, bad length).
	ErrMalformed = errors.New("dname: malformed wire-format name")

	// ErrReservedLabelType is returned when a label's top two bits are
	// the reserved patterns 01 or 10.
	ErrReservedLabelType = errors.New("dname: reserved label type")

	// ErrPointerLoop is returned when a compression-pointer chain exceeds
	// MaxPointerHops, whether from an actual cycle or simply excessive
	// indirection.
	ErrPointerLoop = errors.New("dname: compression pointer chain too long")

	// ErrNameTooLong is returned by Expand when a decompressed name would
	// exceed MaxWireLength octets on the wire. Anchor reports over-long
	// results through its returned length instead.
	ErrNameTooLong = errors.New("dname: name too long")
)

const (
	// MaxLabelLength is the largest a single label may be, in octets (RFC 1035).
	MaxLabelLength = 63

	// MaxWireLength is the largest a name may be on the wire, including
	// length-prefix octets and the terminating root label.
	MaxWireLength = 255

	// MaxPresentationLength is the largest a name may be in text form,
	// not counting the NUL terminator a C caller would also budget for.
	MaxPresentationLength = 253

	// MaxPointerHops bounds the number of compression-pointer
	// indirections Expand/Skip will follow before giving up. Matches
	// DNS_D_MAXPTRS in the reference implementation.
	MaxPointerHops = 127

	// pointerTag is the two-bit pattern (11) marking a label length byte
	// as the start of a compression pointer.
	pointerTag = 0xc0

	// pointerMask extracts the 14-bit target offset from a two-octet pointer.
	pointerMask = 0x3fff
)
