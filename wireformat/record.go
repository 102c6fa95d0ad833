package wireformat

import (
	"encoding/binary"

	"github.com/dnsscience/dnscore/dname"
)

// Record describes one parsed record's position within a message. It
// carries only offsets and lengths — no copied bytes. Parsing expands the
// owner name once to validate it and discards the text; Name expands it
// again when a caller asks for it.
type Record struct {
	Section    Section
	NameOffset int
	Type       uint16
	Class      uint16
	TTL        uint32
	IsQuestion bool

	RDataOffset int
	RDataLength int
}

// Name decompresses a record's owner name to presentation form.
func (p *Packet) Name(r Record) (string, error) {
	return dname.Expand(r.NameOffset, p.Bytes())
}

// RData returns the raw rdata bytes for a record. The slice aliases the
// packet's backing array.
func (p *Packet) RData(r Record) []byte {
	return p.buf[r.RDataOffset : r.RDataOffset+r.RDataLength]
}

// parseAt parses one record starting at offset within section s and
// returns it along with the offset immediately following it. isQuestion
// selects the question-record grammar (no TTL/RDLENGTH/rdata).
func (p *Packet) parseAt(offset int, s Section, isQuestion bool) (Record, int, error) {
	msg := p.buf[:p.end]

	// Skip alone can't distinguish "name ends right at len(msg)" from
	// "truncated" — both return len(msg). Expand re-walks the same bytes
	// and surfaces the real error, if any.
	if _, err := dname.Expand(offset, msg); err != nil {
		return Record{}, 0, err
	}
	nameEnd := dname.Skip(offset, msg)

	rec := Record{Section: s, NameOffset: offset, IsQuestion: isQuestion}

	pos := nameEnd
	if len(msg)-pos < 4 {
		return Record{}, 0, ErrMalformed
	}
	rec.Type = binary.BigEndian.Uint16(msg[pos:])
	rec.Class = binary.BigEndian.Uint16(msg[pos+2:])
	pos += 4

	if isQuestion {
		return rec, pos, nil
	}

	if len(msg)-pos < 6 {
		return Record{}, 0, ErrMalformed
	}
	rec.TTL = binary.BigEndian.Uint32(msg[pos:])
	pos += 4
	rdlen := int(binary.BigEndian.Uint16(msg[pos:]))
	pos += 2

	if len(msg)-pos < rdlen {
		return Record{}, 0, ErrMalformed
	}
	rec.RDataOffset = pos
	rec.RDataLength = rdlen
	pos += rdlen

	return rec, pos, nil
}
