// Package hints implements the hints database: a reference-counted,
// process-wide-sharable mapping from zone name to a bounded set of
// nameserver addresses, each carrying an effective/saved priority, a
// consecutive-loss counter, and a re-enable deadline. Server selection
// asks for addresses in priority order perturbed by a random offset;
// query results feed back as positive or negative "nice" updates.
package hints

import (
	"math/rand"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dnsscience/dnscore/dname"
	"github.com/dnsscience/dnscore/resolvconf"
)

// MaxSlots bounds a zone's nameserver ring. Insertion past this many
// addresses replaces slot count%MaxSlots rather than growing the zone.
const MaxSlots = 16

// slot is one nameserver address within a zone's ring. Fields are
// independently atomic; the design accepts torn reads across fields in
// exchange for lock-free updates, since priority decisions are advisory.
type slot struct {
	addr      netip.AddrPort
	saved     atomic.Int32
	effective atomic.Int32
	loss      atomic.Int32
	deadline  atomic.Int64 // monotonic seconds; 0 = no pending re-enable
}

// Zone is one node of the hints database: a name and its slot ring. Zones
// are never removed once inserted, and a zone is fully built before it is
// linked. After that point Insert still rewrites a slot (its plain addr
// field as well as its atomic fields) and bumps count, and Update changes
// the slots' atomic fields; a walk of a zone is not synchronized with an
// Insert into that same zone.
type Zone struct {
	Name  string
	count atomic.Int32
	slots [MaxSlots]slot
	next  atomic.Pointer[Zone]
}

// Database is the reference-counted, append-only-by-zone hints store.
type Database struct {
	refs atomic.Int32

	mu   sync.Mutex // guards zone-list growth (appending a new Zone), not slot updates
	head atomic.Pointer[Zone]

	metrics *metricsSet
}

// Open creates a new, empty Database with an initial reference count of
// 1.
func Open() *Database {
	d := &Database{metrics: defaultMetrics}
	d.refs.Store(1)
	return d
}

// Acquire increments the reference count and returns the Database for
// chaining.
func (d *Database) Acquire() *Database {
	d.refs.Add(1)
	return d
}

// Release decrements the reference count and reports whether this was
// the last reference.
func (d *Database) Release() bool {
	return d.refs.Add(-1) == 0
}

// zone finds the existing Zone named name (anchored, case-insensitive
// comparison), or nil if none exists yet. Safe to call concurrently with
// Insert on other zones and with any iteration.
func (d *Database) zone(name string) *Zone {
	name = dname.AnchorString(name)
	for z := d.head.Load(); z != nil; z = z.next.Load() {
		if dname.EqualName(z.Name, name) {
			return z
		}
	}
	return nil
}

// ensureZone finds or creates the zone named name. The new zone is fully
// built — its Name set and its slot array zeroed — before it is linked
// in, so no concurrent iterator ever observes a partially-initialized
// zone.
func (d *Database) ensureZone(name string) *Zone {
	name = dname.AnchorString(name)
	if z := d.zone(name); z != nil {
		return z
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Re-check under the lock: another goroutine may have created it
	// while we waited.
	if z := d.zone(name); z != nil {
		return z
	}

	z := &Zone{Name: name}
	z.next.Store(d.head.Load())
	d.head.Store(z)

	if d.metrics != nil {
		d.metrics.zones.Inc()
	}
	return z
}

// Insert places addr in zone's slot ring with the given priority. If the
// zone already has MaxSlots addresses, this overwrites slot
// count%MaxSlots without incrementing count — matching the reference
// implementation's documented behavior (spec.md design notes §9). Since
// count stays at MaxSlots, every insert into a full zone overwrites slot
// 0; the zone never grows past MaxSlots slots.
func (d *Database) Insert(zoneName string, addr netip.AddrPort, priority int) {
	if priority < 1 {
		priority = 1
	}

	z := d.ensureZone(zoneName)
	count := z.count.Load()
	idx := int(count) % MaxSlots

	s := &z.slots[idx]
	s.addr = addr
	s.saved.Store(int32(priority))
	s.effective.Store(int32(priority))
	s.loss.Store(0)
	s.deadline.Store(0)

	if count < MaxSlots {
		z.count.Add(1)
	}

	if d.metrics != nil {
		d.metrics.slotTransitions.Inc()
	}
}

// InsertFromResconf installs each of cfg's nameservers as a root-zone (".")
// slot, assigning priorities 1, 2, 3, … in configuration order.
func (d *Database) InsertFromResconf(cfg *resolvconf.Config) {
	for i, ns := range cfg.Nameservers {
		d.Insert(".", ns, i+1)
	}
}

const maxDeadlineSeconds = 60

// Update applies a positive or negative "nice" reading for addr within
// zone: negative marks a loss (disabling the slot until a scaled
// deadline passes), positive restores it to its saved priority. Slots
// whose deadline has already passed are also opportunistically restored,
// regardless of which address this call names — the reference
// implementation folds deadline-expiry recovery into every update call
// rather than running it on a separate timer.
func (d *Database) Update(zoneName string, addr netip.AddrPort, nice int) {
	z := d.zone(zoneName)
	if z == nil {
		return
	}

	now := Now()
	count := int(z.count.Load())

	for i := 0; i < count; i++ {
		s := &z.slots[i]
		matches := s.addr == addr

		switch {
		case matches && nice < 0:
			loss := s.loss.Add(1)
			s.effective.Store(0)
			delay := int64(3 * loss)
			if delay > maxDeadlineSeconds {
				delay = maxDeadlineSeconds
			}
			s.deadline.Store(now + delay)

		case matches && nice > 0:
			s.effective.Store(s.saved.Load())
			s.deadline.Store(0)
			s.loss.Store(0)

		default:
			if deadline := s.deadline.Load(); deadline != 0 && now >= deadline {
				s.effective.Store(s.saved.Load())
				s.deadline.Store(0)
				s.loss.Store(0)
			}
		}
	}
}

// Count returns the number of slots currently occupied in zone (0 if the
// zone doesn't exist).
func (d *Database) Count(zoneName string) int {
	z := d.zone(zoneName)
	if z == nil {
		return 0
	}
	return int(z.count.Load())
}

// rngSource is package-level; the reference implementation uses the
// host's random integer source for the same reseed step, and this
// iterator's reseed is a tie-breaker, not a security boundary, so
// math/rand is the right tool rather than crypto/rand.
var rngSource = rand.New(rand.NewSource(time.Now().UnixNano()))
var rngMu sync.Mutex

func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	return rngSource.Intn(n)
}
