package wireformat

// SectionMask selects a subset of sections to scan. Sections are tried in
// wire order: question, answer, authority, additional.
type SectionMask uint8

const (
	MaskQuestion SectionMask = 1 << iota
	MaskAnswer
	MaskAuthority
	MaskAdditional

	MaskAll = MaskQuestion | MaskAnswer | MaskAuthority | MaskAdditional
)

func (m SectionMask) has(s Section) bool {
	switch s {
	case Question:
		return m&MaskQuestion != 0
	case Answer:
		return m&MaskAnswer != 0
	case Authority:
		return m&MaskAuthority != 0
	case Additional:
		return m&MaskAdditional != 0
	default:
		return false
	}
}

// TypeAll and ClassAny are wildcards for Filter.Type and Filter.Class: any
// record matches them regardless of its actual type or class.
const (
	TypeAll  uint16 = 0
	ClassAny uint16 = 0
)

// Filter selects which records an Iterator yields. A zero-value Name means
// no owner-name constraint; TypeAll and ClassAny mean no constraint on
// type or class respectively.
type Filter struct {
	Sections SectionMask
	Type     uint16
	Class    uint16
	Name     string
}

// Iterator walks a Packet's records matching a Filter. All of its state is
// ordinary struct fields, so an iterator can be copied, stored, and
// resumed later exactly where it left off — there is no hidden position
// tracked by the Packet itself.
type Iterator struct {
	pkt     *Packet
	filter  Filter
	section Section
	index   int
	offset  int
	done    bool
}

var sectionOrder = [...]Section{Question, Answer, Authority, Additional}

// Iterate returns a restartable iterator over records in p matching
// filter.
func (p *Packet) Iterate(filter Filter) *Iterator {
	return &Iterator{pkt: p, filter: filter, section: Question, offset: HeaderSize}
}

// Next returns the next matching record, or ok=false once every selected
// section has been exhausted. A non-nil error indicates the message itself
// is malformed at the iterator's current position; the iterator should not
// be advanced further after an error.
func (it *Iterator) Next() (rec Record, ok bool, err error) {
	if it.done {
		return Record{}, false, nil
	}

	for secIdx := sectionIndex(it.section); secIdx < len(sectionOrder); secIdx++ {
		s := sectionOrder[secIdx]

		// Every record in every section must still be walked in wire
		// order to keep it.offset correct, even when filter.Sections
		// excludes a section entirely — only whether it's returned
		// depends on the filter.
		count := it.pkt.Count(s)
		for it.index < count {
			rec, next, perr := it.pkt.parseAt(it.offset, s, s == Question)
			if perr != nil {
				it.done = true
				return Record{}, false, perr
			}
			it.offset = next
			it.index++

			if it.filter.Sections.has(s) && it.matches(rec) {
				it.section = s
				return rec, true, nil
			}
		}

		it.index = 0
		it.section = nextSection(s)
	}

	it.done = true
	return Record{}, false, nil
}

func (it *Iterator) matches(rec Record) bool {
	if it.filter.Type != TypeAll && rec.Type != it.filter.Type {
		return false
	}
	if it.filter.Class != ClassAny && rec.Class != it.filter.Class {
		return false
	}
	if it.filter.Name != "" {
		name, err := it.pkt.Name(rec)
		if err != nil || !equalNameFold(name, it.filter.Name) {
			return false
		}
	}
	return true
}

func sectionIndex(s Section) int {
	for i, v := range sectionOrder {
		if v == s {
			return i
		}
	}
	return len(sectionOrder)
}

func nextSection(s Section) Section {
	idx := sectionIndex(s)
	if idx+1 >= len(sectionOrder) {
		return Additional + 1 // sentinel past the last real section
	}
	return sectionOrder[idx+1]
}

func equalNameFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
