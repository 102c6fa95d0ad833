package resolvconf

import "github.com/dnsscience/dnscore/dname"

type searchPhase int

const (
	phaseEntry searchPhase = iota
	phaseSearchList
	phaseBareFallback
	phaseDone
)

// SearchIterator produces the search-path candidates for a query name in
// order, without allocating beyond the candidate strings themselves. Its
// entire state — phase, search-list index, and the qname's dot count —
// fits in a few machine words, so an iterator can be copied and resumed
// freely, the same restartability spec.md's externalized-state design
// calls for.
type SearchIterator struct {
	cfg   *Config
	qname string
	dots  int
	phase searchPhase
	index int
}

// NewSearch begins a search-path expansion for qname.
func (c *Config) NewSearch(qname string) *SearchIterator {
	return &SearchIterator{cfg: c, qname: qname, dots: dname.CountDots(qname), phase: phaseEntry}
}

// Next returns the next candidate name, or ok=false once every candidate
// for this qname has been produced.
func (it *SearchIterator) Next() (candidate string, ok bool) {
	for {
		switch it.phase {
		case phaseEntry:
			it.phase = phaseSearchList
			if it.dots >= it.cfg.Options.Ndots {
				return dname.AnchorString(it.qname), true
			}

		case phaseSearchList:
			if it.index >= len(it.cfg.Search) {
				it.phase = phaseBareFallback
				continue
			}
			suffix := it.cfg.Search[it.index]
			it.index++
			if suffix == "" {
				continue
			}
			return dname.AnchorString(it.qname) + suffix, true

		case phaseBareFallback:
			it.phase = phaseDone
			if it.dots < it.cfg.Options.Ndots {
				return dname.AnchorString(it.qname), true
			}

		case phaseDone:
			return "", false
		}
	}
}
