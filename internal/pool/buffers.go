// Package pool provides sync.Pool-backed buffer reuse for wireformat
// packets, sized to the standard DNS message envelopes: plain UDP
// queries, EDNS0 responses, and TCP/large messages.
package pool

import (
	"sync"

	"github.com/dnsscience/dnscore/wireformat"
)

const (
	// SmallBufferSize fits a plain UDP DNS query or response (no EDNS0).
	SmallBufferSize = 512
	// MediumBufferSize fits an EDNS0 response.
	MediumBufferSize = 4096
	// LargeBufferSize is the maximum DNS message size (TCP-framed).
	LargeBufferSize = 65535
)

var (
	smallBufferPool  = newBufferPool(SmallBufferSize)
	mediumBufferPool = newBufferPool(MediumBufferSize)
	largeBufferPool  = newBufferPool(LargeBufferSize)
)

func newBufferPool(size int) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			buf := make([]byte, size)
			return &buf
		},
	}
}

// GetBuffer returns a zero-length-free byte buffer at least size bytes,
// rounded up to one of the three standard envelope sizes.
func GetBuffer(size int) []byte {
	pool, bufSize := poolFor(size)
	bufPtr := pool.Get().(*[]byte)
	return (*bufPtr)[:bufSize]
}

// PutBuffer returns a buffer obtained from GetBuffer (or GetPacket) to
// its pool. Buffers of a size this package didn't hand out are silently
// dropped rather than pooled.
func PutBuffer(buf []byte) {
	buf = buf[:cap(buf)]
	switch cap(buf) {
	case SmallBufferSize:
		smallBufferPool.Put(&buf)
	case MediumBufferSize:
		mediumBufferPool.Put(&buf)
	case LargeBufferSize:
		largeBufferPool.Put(&buf)
	}
}

func poolFor(size int) (*sync.Pool, int) {
	switch {
	case size <= SmallBufferSize:
		return smallBufferPool, SmallBufferSize
	case size <= MediumBufferSize:
		return mediumBufferPool, MediumBufferSize
	default:
		return largeBufferPool, LargeBufferSize
	}
}

// GetPacket returns a wireformat.Packet backed by a pooled buffer sized
// for expectedSize bytes, already Init'd (12-byte header, empty
// sections). Callers done with the packet should return it via
// PutPacket to recycle its backing array.
func GetPacket(expectedSize int) *wireformat.Packet {
	buf := GetBuffer(expectedSize)
	return wireformat.NewFromBuffer(buf)
}

// PutPacket recycles p's backing buffer. p must not be used afterward.
func PutPacket(p *wireformat.Packet) {
	if p == nil {
		return
	}
	PutBuffer(p.Bytes()[:cap(p.Bytes())])
}
