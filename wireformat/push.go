package wireformat

import (
	"encoding/binary"

	"github.com/dnsscience/dnscore/dname"
)

// RDataWriter encodes one record's type-specific data directly into a
// Packet. Implementations live in the record-type registry (package
// rrtype); wireformat only needs the interface so PushRecord stays
// agnostic of any particular RRTYPE. PushRecord back-fills RDLENGTH
// itself once WriteRData returns, so implementations only need to append
// their own bytes.
type RDataWriter interface {
	WriteRData(p *Packet) error
}

// AppendName compresses and appends name to the packet, recording its
// start offset in the compression dictionary for later names to reference.
// It returns the offset the name was written at.
func (p *Packet) AppendName(name string) (start int, err error) {
	start = p.end
	n, err := dname.Compress(p.buf[p.end:], name, p.buf[:p.end], p.dictSlice())
	if err != nil {
		return 0, err
	}
	p.end += n
	p.addDict(start)
	return start, nil
}

// AppendUint16 appends a big-endian uint16.
func (p *Packet) AppendUint16(v uint16) error {
	if p.Remaining() < 2 {
		return ErrBufferExhausted
	}
	binary.BigEndian.PutUint16(p.buf[p.end:], v)
	p.end += 2
	return nil
}

// AppendUint32 appends a big-endian uint32.
func (p *Packet) AppendUint32(v uint32) error {
	if p.Remaining() < 4 {
		return ErrBufferExhausted
	}
	binary.BigEndian.PutUint32(p.buf[p.end:], v)
	p.end += 4
	return nil
}

// AppendBytes appends b verbatim.
func (p *Packet) AppendBytes(b []byte) error {
	if p.Remaining() < len(b) {
		return ErrBufferExhausted
	}
	copy(p.buf[p.end:], b)
	p.end += len(b)
	return nil
}

// WriteUint16At overwrites the big-endian uint16 at a previously-returned
// offset, for back-filling an RDLENGTH once the rdata that follows it has
// actually been written (its length can't be known up front when it
// contains a compressed name).
func (p *Packet) WriteUint16At(offset int, v uint16) {
	binary.BigEndian.PutUint16(p.buf[offset:], v)
}

// PushQuestion appends a question-section record: owner name, type, class.
// Questions carry no TTL or rdata, and are distinguished on parse by the
// section they are counted in, not by where their name starts. It returns
// the record as it now stands in the packet.
func (p *Packet) PushQuestion(name string, rtype, class uint16) (Record, error) {
	mark := p.end
	fail := func(err error) (Record, error) {
		p.end = mark
		return Record{}, err
	}

	nameOff, err := p.AppendName(name)
	if err != nil {
		return fail(err)
	}
	if err := p.AppendUint16(rtype); err != nil {
		return fail(err)
	}
	if err := p.AppendUint16(class); err != nil {
		return fail(err)
	}
	if err := p.incCount(Question); err != nil {
		return fail(err)
	}

	return Record{Section: Question, NameOffset: nameOff, Type: rtype, Class: class, IsQuestion: true}, nil
}

// PushRecord appends a resource record to section s: owner name, type,
// class, TTL (top bit masked to zero, matching the reference codec), then
// RDLENGTH and rdata as written by body. The whole append is all-or-
// nothing: any error rolls the packet back to its state before the call,
// including the record's count. It returns the record as it now stands in
// the packet.
func (p *Packet) PushRecord(s Section, name string, rtype, class uint16, ttl uint32, body RDataWriter) (Record, error) {
	if s == Question {
		return p.PushQuestion(name, rtype, class)
	}

	mark := p.end
	fail := func(err error) (Record, error) {
		p.end = mark
		return Record{}, err
	}

	nameOff, err := p.AppendName(name)
	if err != nil {
		return fail(err)
	}
	if err := p.AppendUint16(rtype); err != nil {
		return fail(err)
	}
	if err := p.AppendUint16(class); err != nil {
		return fail(err)
	}
	maskedTTL := ttl & 0x7fffffff
	if err := p.AppendUint32(maskedTTL); err != nil {
		return fail(err)
	}

	rdlenOff := p.end
	if err := p.AppendUint16(0); err != nil {
		return fail(err)
	}
	rdataStart := p.end

	if err := body.WriteRData(p); err != nil {
		return fail(err)
	}
	rdataLen := p.end - rdataStart

	p.WriteUint16At(rdlenOff, uint16(rdataLen))

	if err := p.incCount(s); err != nil {
		return fail(err)
	}

	return Record{
		Section:     s,
		NameOffset:  nameOff,
		Type:        rtype,
		Class:       class,
		TTL:         maskedTTL,
		RDataOffset: rdataStart,
		RDataLength: rdataLen,
	}, nil
}
