package rrtype

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnsscience/dnscore/wireformat"
)

func TestARecordRoundTrip(t *testing.T) {
	p, err := wireformat.New(512)
	require.NoError(t, err)

	addr := netip.MustParseAddr("93.184.216.34")
	rec, err := p.PushRecord(wireformat.Answer, "example.com.", TypeA, ClassIN, 3600, A{Addr: addr})
	require.NoError(t, err)

	v, err := Parse(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	require.NoError(t, err)
	a, ok := v.(A)
	require.True(t, ok)
	assert.Equal(t, addr, a.Addr)
	assert.Equal(t, "93.184.216.34", a.String())
}

func TestAAAARecordRoundTrip(t *testing.T) {
	p, err := wireformat.New(512)
	require.NoError(t, err)

	addr := netip.MustParseAddr("2001:db8::1")
	rec, err := p.PushRecord(wireformat.Answer, "example.com.", TypeAAAA, ClassIN, 60, AAAA{Addr: addr})
	require.NoError(t, err)

	v, err := Parse(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	require.NoError(t, err)
	assert.Equal(t, addr, v.(AAAA).Addr)
}

func TestMXRoundTripCompressesExchanger(t *testing.T) {
	p, err := wireformat.New(512)
	require.NoError(t, err)

	_, err = p.PushQuestion("example.com.", TypeMX, ClassIN)
	require.NoError(t, err)
	rec, err := p.PushRecord(wireformat.Answer, "example.com.", TypeMX, ClassIN, 60,
		MX{Preference: 10, Exchanger: "mail.example.com."})
	require.NoError(t, err)

	v, err := Parse(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	require.NoError(t, err)
	mx := v.(MX)
	assert.Equal(t, uint16(10), mx.Preference)
	assert.Equal(t, "mail.example.com.", mx.Exchanger)
	assert.Equal(t, "10 mail.example.com.", mx.String())
}

func TestNSAndCNAME(t *testing.T) {
	p, err := wireformat.New(512)
	require.NoError(t, err)

	recNS, err := p.PushRecord(wireformat.Authority, "example.com.", TypeNS, ClassIN, 60, NS{Host: "ns1.example.com."})
	require.NoError(t, err)
	v, err := Parse(recNS.Type, p.Bytes(), recNS.RDataOffset, recNS.RDataLength)
	require.NoError(t, err)
	assert.Equal(t, "ns1.example.com.", v.(NS).Host)

	recCNAME, err := p.PushRecord(wireformat.Answer, "www.example.com.", TypeCNAME, ClassIN, 60, CNAME{Target: "example.com."})
	require.NoError(t, err)
	v2, err := Parse(recCNAME.Type, p.Bytes(), recCNAME.RDataOffset, recCNAME.RDataLength)
	require.NoError(t, err)
	assert.Equal(t, "example.com.", v2.(CNAME).Target)
}

func TestTXTChunking300Bytes(t *testing.T) {
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = byte('a' + i%26)
	}

	p, err := wireformat.New(1024)
	require.NoError(t, err)

	rec, err := p.PushRecord(wireformat.Answer, "example.com.", TypeTXT, ClassIN, 60, TXT{Text: payload})
	require.NoError(t, err)

	// 300 = 255 + 45, each chunk carries its own length octet.
	assert.Equal(t, 300+2, rec.RDataLength)

	v, err := Parse(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	require.NoError(t, err)
	assert.Equal(t, payload, v.(TXT).Text)
}

func TestTXTPrintEscaping(t *testing.T) {
	v := TXT{Text: []byte("a\"b\\c\x01")}
	assert.Equal(t, `"a\034b\092c\001"`, v.String())
}

func TestTXTPrintRegroupsAt256NotAtWireChunkBoundary(t *testing.T) {
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = 'a' + byte(i%26)
	}
	v := TXT{Text: payload}

	out := v.String()
	assert.Equal(t, `"`+string(payload[:256])+`" "`+string(payload[256:])+`"`, out)
}

func TestOpaqueFallbackForUnknownType(t *testing.T) {
	const typeUnknown uint16 = 9999

	p, err := wireformat.New(512)
	require.NoError(t, err)

	rec, err := p.PushRecord(wireformat.Answer, "example.com.", typeUnknown, ClassIN, 60, Opaque{Raw: []byte{1, 2, 3}})
	require.NoError(t, err)

	v, err := Parse(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	require.NoError(t, err)
	op, ok := v.(Opaque)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, op.Raw)
}

func TestTypeAndClassNameTables(t *testing.T) {
	assert.Equal(t, "MX", TypeToString(TypeMX))
	assert.Equal(t, "9999", TypeToString(9999))

	tp, ok := TypeByName("aaaa")
	require.True(t, ok)
	assert.Equal(t, TypeAAAA, tp)

	assert.Equal(t, "IN", ClassToString(ClassIN))
	c, ok := ClassByName("in")
	require.True(t, ok)
	assert.Equal(t, ClassIN, c)
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "QUESTION", SectionName(wireformat.Question))
	assert.Equal(t, "ADDITIONAL", SectionName(wireformat.Additional))
}

func TestCodecDescribeAndRecode(t *testing.T) {
	p, err := wireformat.New(512)
	require.NoError(t, err)
	rec, err := p.PushRecord(wireformat.Answer, "example.com.", TypeA, ClassIN, 60,
		A{Addr: netip.MustParseAddr("10.0.0.1")})
	require.NoError(t, err)

	var codec Codec
	desc, err := codec.Describe(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", desc)

	dst, err := wireformat.New(512)
	require.NoError(t, err)
	writer := codec.Recode(rec.Type, p.Bytes(), rec.RDataOffset, rec.RDataLength)
	dstRec, err := dst.PushRecord(wireformat.Answer, "example.com.", rec.Type, rec.Class, rec.TTL, writer)
	require.NoError(t, err)
	assert.Equal(t, 4, dstRec.RDataLength)
}
