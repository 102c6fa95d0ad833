package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dnsscience/dnscore/wireformat"
)

func TestGetBufferSizing(t *testing.T) {
	cases := []struct {
		size        int
		expectedCap int
	}{
		{100, SmallBufferSize},
		{512, SmallBufferSize},
		{1024, MediumBufferSize},
		{4096, MediumBufferSize},
		{8192, LargeBufferSize},
		{65535, LargeBufferSize},
	}

	for _, tc := range cases {
		buf := GetBuffer(tc.size)
		assert.Equal(t, tc.expectedCap, cap(buf))
		PutBuffer(buf)
	}
}

func TestPutBufferIgnoresOddSizes(t *testing.T) {
	weird := make([]byte, 1234)
	assert.NotPanics(t, func() { PutBuffer(weird) })
}

func TestGetAndPutPacket(t *testing.T) {
	p := GetPacket(512)
	assert.Equal(t, 512, p.Cap())

	_, err := p.PushQuestion("example.com.", 1, 1)
	assert.NoError(t, err)

	PutPacket(p)

	p2 := GetPacket(100)
	assert.Equal(t, SmallBufferSize, p2.Cap())
	assert.Equal(t, 0, p2.Count(wireformat.Question))
}

func TestGetPacketMediumAndLarge(t *testing.T) {
	assert.Equal(t, MediumBufferSize, GetPacket(1024).Cap())
	assert.Equal(t, LargeBufferSize, GetPacket(20000).Cap())
}
