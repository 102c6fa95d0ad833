package hints

import "net/netip"

// Iterator walks a Zone's slots in ascending effective-priority order,
// breaking ties within a priority band by a randomized ring starting
// offset. All state is ordinary fields, so an Iterator can be copied and
// resumed later exactly where it left off.
type Iterator struct {
	zone    *Zone
	current int32 // sentinel 0 before the first real (>=1) priority is found
	p       int
	end     int
}

// Iterate returns a fresh, randomly-seeded Iterator over zone's slots. If
// the zone doesn't exist, the returned iterator yields nothing.
func (d *Database) Iterate(zoneName string) *Iterator {
	z := d.zone(zoneName)
	if z == nil {
		return &Iterator{}
	}
	return newIterator(z)
}

func newIterator(z *Zone) *Iterator {
	count := int(z.count.Load())
	start := 0
	if count > 0 {
		start = randIntn(count)
	}
	if d := defaultMetrics; d != nil {
		d.iteratorReseeds.Inc()
	}
	return &Iterator{zone: z, current: 0, p: start, end: start + count}
}

// Next yields the next slot address in priority order, or ok=false once
// every non-disabled slot has been produced.
func (it *Iterator) Next() (addr netip.AddrPort, ok bool) {
	if it.zone == nil {
		return netip.AddrPort{}, false
	}

	for {
		count := int(it.zone.count.Load())
		if count == 0 {
			return netip.AddrPort{}, false
		}

		for it.p < it.end {
			idx := it.p % count
			it.p++

			s := &it.zone.slots[idx]
			eff := s.effective.Load()
			if eff == 0 {
				continue // disabled, never returned
			}
			if eff == it.current {
				return s.addr, true
			}
		}

		next, found := it.nextTarget(count)
		if !found {
			return netip.AddrPort{}, false
		}

		it.current = next
		if d := defaultMetrics; d != nil {
			d.iteratorReseeds.Inc()
		}
		it.p = randIntn(count)
		it.end = it.p + count
	}
}

// nextTarget finds the minimum effective priority strictly greater than
// it.current across all of the zone's occupied slots, excluding disabled
// (0) slots.
func (it *Iterator) nextTarget(count int) (int32, bool) {
	var best int32
	found := false

	for i := 0; i < count; i++ {
		eff := it.zone.slots[i].effective.Load()
		if eff == 0 || eff <= it.current {
			continue
		}
		if !found || eff < best {
			best = eff
			found = true
		}
	}
	return best, found
}
