package wireformat

import "encoding/binary"

// Section identifies one of the four record sections of a DNS message.
type Section int

const (
	Question Section = iota
	Answer
	Authority
	Additional
)

// countOffset returns the byte offset of a section's 16-bit count field in
// the header.
func countOffset(s Section) int {
	switch s {
	case Question:
		return 4
	case Answer:
		return 6
	case Authority:
		return 8
	case Additional:
		return 10
	default:
		panic("wireformat: invalid section")
	}
}

// Packet is a fixed-capacity message buffer: a 12-octet header followed by
// an append-only sequence of records across the four sections, in section
// order. It owns the backing array for its entire lifetime — no
// reallocation occurs, matching the reference codec's fixed-arena design.
type Packet struct {
	buf  []byte
	end  int
	dict [maxDictEntries]uint16
	ndic int
}

// New allocates a Packet with the given capacity, including the 12-octet
// header.
func New(capacity int) (*Packet, error) {
	if capacity < HeaderSize {
		return nil, ErrCapacityTooSmall
	}
	return NewFromBuffer(make([]byte, capacity)), nil
}

// NewFromBuffer wraps buf as a Packet's backing storage. buf's capacity
// becomes the packet's capacity; its header is zeroed and any trailing
// content is discarded.
func NewFromBuffer(buf []byte) *Packet {
	p := &Packet{buf: buf}
	p.Init()
	return p
}

// Init resets the packet to an empty header with no records, reusing the
// existing backing array. It never fails: capacity was already validated
// when the packet was constructed.
func (p *Packet) Init() {
	for i := range p.buf[:HeaderSize] {
		p.buf[i] = 0
	}
	p.end = HeaderSize
	p.ndic = 0
}

// Bytes returns the wire-format bytes written so far (header through the
// last appended record). The returned slice aliases the packet's backing
// array and is invalidated by the next Push.
func (p *Packet) Bytes() []byte { return p.buf[:p.end] }

// Cap returns the packet's total capacity.
func (p *Packet) Cap() int { return len(p.buf) }

// End returns the current length of the message, including the header.
func (p *Packet) End() int { return p.end }

// ID returns the message's transaction ID.
func (p *Packet) ID() uint16 { return binary.BigEndian.Uint16(p.buf[0:2]) }

// SetID sets the message's transaction ID.
func (p *Packet) SetID(id uint16) { binary.BigEndian.PutUint16(p.buf[0:2], id) }

// Flags returns the raw 16-bit flags word (QR, Opcode, AA, TC, RD, RA, Z,
// Rcode packed exactly as on the wire).
func (p *Packet) Flags() uint16 { return binary.BigEndian.Uint16(p.buf[2:4]) }

// SetFlags sets the raw 16-bit flags word.
func (p *Packet) SetFlags(flags uint16) { binary.BigEndian.PutUint16(p.buf[2:4], flags) }

const (
	flagQR     = 1 << 15
	flagAA     = 1 << 10
	flagTC     = 1 << 9
	flagRD     = 1 << 8
	flagRA     = 1 << 7
	opcodeMask = 0x7800
	opcodeSh   = 11
	rcodeMask  = 0x000f
)

func (p *Packet) flagBit(bit uint16) bool { return p.Flags()&bit != 0 }
func (p *Packet) setFlagBit(bit uint16, v bool) {
	if v {
		p.SetFlags(p.Flags() | bit)
	} else {
		p.SetFlags(p.Flags() &^ bit)
	}
}

func (p *Packet) QR() bool         { return p.flagBit(flagQR) }
func (p *Packet) SetQR(v bool)     { p.setFlagBit(flagQR, v) }
func (p *Packet) AA() bool         { return p.flagBit(flagAA) }
func (p *Packet) SetAA(v bool)     { p.setFlagBit(flagAA, v) }
func (p *Packet) TC() bool         { return p.flagBit(flagTC) }
func (p *Packet) SetTC(v bool)     { p.setFlagBit(flagTC, v) }
func (p *Packet) RD() bool         { return p.flagBit(flagRD) }
func (p *Packet) SetRD(v bool)     { p.setFlagBit(flagRD, v) }
func (p *Packet) RA() bool         { return p.flagBit(flagRA) }
func (p *Packet) SetRA(v bool)     { p.setFlagBit(flagRA, v) }

func (p *Packet) Opcode() uint8 { return uint8((p.Flags() & opcodeMask) >> opcodeSh) }
func (p *Packet) SetOpcode(op uint8) {
	p.SetFlags((p.Flags() &^ opcodeMask) | (uint16(op)<<opcodeSh)&opcodeMask)
}

func (p *Packet) Rcode() uint8 { return uint8(p.Flags() & rcodeMask) }
func (p *Packet) SetRcode(rc uint8) {
	p.SetFlags((p.Flags() &^ rcodeMask) | uint16(rc)&rcodeMask)
}

// Count returns the number of records in section s.
func (p *Packet) Count(s Section) int {
	return int(binary.BigEndian.Uint16(p.buf[countOffset(s):]))
}

func (p *Packet) incCount(s Section) error {
	off := countOffset(s)
	n := binary.BigEndian.Uint16(p.buf[off:])
	if n == 0xffff {
		return ErrSectionFull
	}
	binary.BigEndian.PutUint16(p.buf[off:], n+1)
	return nil
}

// Remaining returns the number of free bytes left in the packet.
func (p *Packet) Remaining() int { return len(p.buf) - p.end }

// addDict records offset as the start of a name just written, if the
// dictionary still has a free slot. Once full, later names simply aren't
// recorded as compression targets — they can still be compressed against
// whatever made it in first.
func (p *Packet) addDict(offset int) {
	if p.ndic >= len(p.dict) {
		return
	}
	p.dict[p.ndic] = uint16(offset)
	p.ndic++
}

func (p *Packet) dictSlice() []uint16 { return p.dict[:p.ndic] }
