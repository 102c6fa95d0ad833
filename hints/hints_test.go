package hints

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnsscience/dnscore/resolvconf"
)

func addrPort(s string) netip.AddrPort {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		panic(err)
	}
	return ap
}

func TestInsertAndCount(t *testing.T) {
	d := Open()
	d.Insert(".", addrPort("1.1.1.1:53"), 1)
	d.Insert(".", addrPort("2.2.2.2:53"), 2)
	assert.Equal(t, 2, d.Count("."))
}

func TestInsertRingReplacementDoesNotGrowPastCapacity(t *testing.T) {
	d := Open()
	for i := 0; i < MaxSlots+5; i++ {
		d.Insert(".", addrPort("10.0.0.1:53"), i+1)
	}
	assert.Equal(t, MaxSlots, d.Count("."))
}

func TestIteratorYieldsEachSlotInAscendingPriority(t *testing.T) {
	d := Open()
	a1, a2, a3 := addrPort("1.1.1.1:53"), addrPort("2.2.2.2:53"), addrPort("3.3.3.3:53")
	d.Insert(".", a1, 1)
	d.Insert(".", a2, 2)
	d.Insert(".", a3, 3)

	it := d.Iterate(".")
	var got []netip.AddrPort
	for i := 0; i < d.Count("."); i++ {
		addr, ok := it.Next()
		require.True(t, ok)
		got = append(got, addr)
	}
	assert.Equal(t, []netip.AddrPort{a1, a2, a3}, got)

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestUpdateNegativeDisablesSlotImmediately(t *testing.T) {
	d := Open()
	a1, a2 := addrPort("1.1.1.1:53"), addrPort("2.2.2.2:53")
	d.Insert(".", a1, 1)
	d.Insert(".", a2, 2)

	d.Update(".", a1, -1)

	it := d.Iterate(".")
	for i := 0; i < 10; i++ {
		addr, ok := it.Next()
		if !ok {
			break
		}
		assert.NotEqual(t, a1, addr)
	}
}

func TestUpdateRecoversAfterDeadlinePasses(t *testing.T) {
	d := Open()
	a1, a2 := addrPort("1.1.1.1:53"), addrPort("2.2.2.2:53")
	d.Insert(".", a1, 1)
	d.Insert(".", a2, 2)

	d.Update(".", a1, -1)

	// First slot returned after the failure should be a2 (priority 2),
	// since a1 is disabled.
	it := d.Iterate(".")
	addr, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, a2, addr)

	AdvanceClockForTest(60 * time.Second)
	// Recovery only happens as a side effect of a subsequent Update call.
	d.Update(".", a2, 0)

	it2 := d.Iterate(".")
	var seen []netip.AddrPort
	for i := 0; i < 10; i++ {
		a, ok := it2.Next()
		if !ok {
			break
		}
		seen = append(seen, a)
	}
	assert.Contains(t, seen, a1)
}

func TestInsertFromResconf(t *testing.T) {
	cfg := resolvconf.DefaultConfig()
	cfg.AddNameserver(netip.MustParseAddr("9.9.9.9"), 0)
	cfg.AddNameserver(netip.MustParseAddr("8.8.8.8"), 0)

	d := Open()
	d.InsertFromResconf(cfg)
	assert.Equal(t, 2, d.Count("."))
}

func TestReferenceCounting(t *testing.T) {
	d := Open()
	d.Acquire()
	assert.False(t, d.Release())
	assert.True(t, d.Release())
}
