package wireformat

import (
	"fmt"
	"io"
)

// RDataCodec bridges wireformat to the record-type registry (package
// rrtype) without either package importing the other: wireformat knows
// how to walk a message's records, but only the registry knows how to
// turn a given RRTYPE's rdata bytes into readable text or re-encode them
// into a fresh packet.
type RDataCodec interface {
	// Describe renders the rdata of a record of the given type as
	// presentation text, e.g. "10 mail.example.com." for an MX record.
	Describe(rtype uint16, msg []byte, rdataOffset, rdataLength int) (string, error)

	// Recode parses the rdata of a record of the given type out of src
	// and re-encodes it into dst, which is in the middle of having a
	// record pushed (name/type/class/ttl already written). It's exactly
	// PushRecord's body argument for the copy path.
	Recode(rtype uint16, msg []byte, rdataOffset, rdataLength int) RDataWriter

	// TypeName and ClassName render a numeric RRTYPE/class as their
	// mnemonic text (falling back to the decimal value when
	// unrecognized), for Print's presentation-format output.
	TypeName(rtype uint16) string
	ClassName(class uint16) string
}

// Print writes a human-readable rendition of every record the filter
// matches to w, one line per record. Questions are prefixed with ';' —
// the conventional marker that they carry no answer data — matching the
// presentation style of dig and the reference resolver's debug dumps.
func (p *Packet) Print(w io.Writer, filter Filter, codec RDataCodec) error {
	it := p.Iterate(filter)
	for {
		rec, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := p.printRecord(w, rec, codec); err != nil {
			return err
		}
	}
}

func (p *Packet) printRecord(w io.Writer, rec Record, codec RDataCodec) error {
	name, err := p.Name(rec)
	if err != nil {
		return err
	}

	if rec.IsQuestion {
		_, err := fmt.Fprintf(w, "; %s\t%s\t%s\n", name, codec.ClassName(rec.Class), codec.TypeName(rec.Type))
		return err
	}

	desc, err := codec.Describe(rec.Type, p.buf[:p.end], rec.RDataOffset, rec.RDataLength)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", name, rec.TTL, codec.ClassName(rec.Class), codec.TypeName(rec.Type), desc)
	return err
}
