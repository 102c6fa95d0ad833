package rrtype

import (
	"fmt"
	"net/netip"

	"github.com/dnsscience/dnscore/dname"
	"github.com/dnsscience/dnscore/wireformat"
)

// Value is a decoded record's rdata: it knows how to write itself back
// onto the wire and how to render itself as presentation text.
type Value interface {
	wireformat.RDataWriter
	String() string
}

// A is a 4-octet IPv4 address record.
type A struct{ Addr netip.Addr }

func (v A) WriteRData(p *wireformat.Packet) error {
	b := v.Addr.As4()
	return p.AppendBytes(b[:])
}
func (v A) String() string { return v.Addr.String() }

func parseA(msg []byte, off, n int) (Value, error) {
	if n != 4 {
		return nil, wrongLength(n, 4)
	}
	addr := netip.AddrFrom4([4]byte(msg[off : off+4]))
	return A{Addr: addr}, nil
}

// AAAA is a 16-octet IPv6 address record.
type AAAA struct{ Addr netip.Addr }

func (v AAAA) WriteRData(p *wireformat.Packet) error {
	b := v.Addr.As16()
	return p.AppendBytes(b[:])
}
func (v AAAA) String() string { return v.Addr.String() }

func parseAAAA(msg []byte, off, n int) (Value, error) {
	if n != 16 {
		return nil, wrongLength(n, 16)
	}
	addr := netip.AddrFrom16([16]byte(msg[off : off+16]))
	return AAAA{Addr: addr}, nil
}

// MX is a mail-exchanger record: a preference and an exchanger host name.
type MX struct {
	Preference uint16
	Exchanger  string
}

func (v MX) WriteRData(p *wireformat.Packet) error {
	if err := p.AppendUint16(v.Preference); err != nil {
		return err
	}
	_, err := p.AppendName(v.Exchanger)
	return err
}
func (v MX) String() string { return fmt.Sprintf("%d %s", v.Preference, v.Exchanger) }

func parseMX(msg []byte, off, n int) (Value, error) {
	if n < 3 {
		return nil, ErrRDataTooShort
	}
	pref := uint16(msg[off])<<8 | uint16(msg[off+1])
	name, err := dname.Expand(off+2, msg)
	if err != nil {
		return nil, err
	}
	return MX{Preference: pref, Exchanger: name}, nil
}

// NS is an authoritative-nameserver record: a single host name.
type NS struct{ Host string }

func (v NS) WriteRData(p *wireformat.Packet) error {
	_, err := p.AppendName(v.Host)
	return err
}
func (v NS) String() string { return v.Host }

func parseNS(msg []byte, off, n int) (Value, error) {
	name, err := dname.Expand(off, msg)
	if err != nil {
		return nil, err
	}
	return NS{Host: name}, nil
}

// CNAME is a canonical-name alias record: a single target name. Identical
// wire shape to NS; kept as a distinct type so callers can type-switch.
type CNAME struct{ Target string }

func (v CNAME) WriteRData(p *wireformat.Packet) error {
	_, err := p.AppendName(v.Target)
	return err
}
func (v CNAME) String() string { return v.Target }

func parseCNAME(msg []byte, off, n int) (Value, error) {
	name, err := dname.Expand(off, msg)
	if err != nil {
		return nil, err
	}
	return CNAME{Target: name}, nil
}

func wrongLength(got, want int) error {
	if got < want {
		return ErrRDataTooShort
	}
	return ErrRDataTooLong
}
