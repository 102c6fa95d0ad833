package dname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com."},
		{"example.com.", "example.com."},
		{".", "."},
		{"", ""},
	}
	for _, tc := range cases {
		var buf [64]byte
		n := Anchor(buf[:], tc.in)
		assert.Equal(t, tc.want, string(buf[:n]))
	}
}

func TestAnchorTruncation(t *testing.T) {
	var buf [5]byte
	n := Anchor(buf[:], "example.com")
	assert.Equal(t, len("example.com.") , n)
	assert.Greater(t, n, len(buf))
}

func TestCleave(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"x.a.", "a."},
		{"a.", "."},
		{".", ""},
		{"", ""},
		{"www.example.com.", "example.com."},
	}
	for _, tc := range cases {
		got := CleaveString(tc.in)
		assert.Equal(t, tc.want, got, "cleave(%q)", tc.in)
	}
}

func TestCleaveTerminates(t *testing.T) {
	name := "a.b.c.example.com."
	labels := CountLabels(name) + 1
	n := name
	steps := 0
	for n != "" && steps <= labels+1 {
		n = CleaveString(n)
		steps++
	}
	require.LessOrEqual(t, steps, labels+1)
	assert.Equal(t, "", n)
}

func TestSkipAndExpandRoundTrip(t *testing.T) {
	msg := make([]byte, 64)
	n, err := Compress(msg[12:], "example.com.", msg[:12], nil)
	require.NoError(t, err)
	end := 12 + n

	got, err := Expand(12, msg[:end])
	require.NoError(t, err)
	assert.Equal(t, "example.com.", got)

	next := Skip(12, msg[:end])
	assert.Equal(t, end, next)
}

func TestExpandRoot(t *testing.T) {
	msg := []byte{0x00}
	got, err := Expand(0, msg)
	require.NoError(t, err)
	assert.Equal(t, ".", got)
}

func TestExpandReservedLabelType(t *testing.T) {
	msg := []byte{0x40, 0x00}
	_, err := Expand(0, msg)
	assert.ErrorIs(t, err, ErrReservedLabelType)
}

func TestExpandPointerLoop(t *testing.T) {
	msg := make([]byte, 22)
	// Pointer at offset 20 pointing to itself.
	msg[20] = 0xc0
	msg[21] = 20
	_, err := Expand(20, msg)
	assert.ErrorIs(t, err, ErrPointerLoop)
}

func TestCompressSharesSuffix(t *testing.T) {
	buf := make([]byte, 512)
	end := 12

	n1, err := Compress(buf[end:], "example.com.", buf[:end], nil)
	require.NoError(t, err)
	dict := []uint16{uint16(end)}
	end += n1

	n2, err := Compress(buf[end:], "ns.example.com.", buf[:end], dict)
	require.NoError(t, err)

	// "example.com." should be replaced by a 2-byte pointer: "ns" label (3
	// bytes: len+2 chars) + 2-byte pointer = 5 bytes, much less than the
	// 16 bytes an uncompressed "ns.example.com." would take.
	assert.Equal(t, 5, n2)

	full, err := Expand(end, buf[:end+n2])
	require.NoError(t, err)
	assert.Equal(t, "ns.example.com.", full)
}

func TestCompressExactDuplicateIsPointerOnly(t *testing.T) {
	buf := make([]byte, 512)
	end := 12

	n1, err := Compress(buf[end:], "example.com.", buf[:end], nil)
	require.NoError(t, err)
	dict := []uint16{uint16(end)}
	end += n1

	n2, err := Compress(buf[end:], "example.com.", buf[:end], dict)
	require.NoError(t, err)
	assert.Equal(t, 2, n2)
}

func TestCompressCaseInsensitive(t *testing.T) {
	buf := make([]byte, 512)
	end := 12

	n1, err := Compress(buf[end:], "Example.COM.", buf[:end], nil)
	require.NoError(t, err)
	dict := []uint16{uint16(end)}
	end += n1

	n2, err := Compress(buf[end:], "ns.example.com.", buf[:end], dict)
	require.NoError(t, err)
	assert.Equal(t, 5, n2)
}

func TestEqualName(t *testing.T) {
	assert.True(t, EqualName("Example.COM.", "example.com"))
	assert.False(t, EqualName("example.com.", "example.org."))
}

func TestCountDots(t *testing.T) {
	assert.Equal(t, 2, CountDots("x.y.z"))
	assert.Equal(t, 2, CountDots("x.a."))
}
