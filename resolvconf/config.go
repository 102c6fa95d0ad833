// Package resolvconf models the resolver configuration record: nameserver
// list, search list, lookup order, and options, loaded from the standard
// resolver-configuration grammar and reference-counted for sharing across
// concurrent resolvers. The body is immutable after load; concurrent
// readers need no synchronization.
package resolvconf

import (
	"net/netip"
	"sync/atomic"
)

const (
	// MaxNameservers bounds the nameserver list. The grammar silently
	// drops directives past this many.
	MaxNameservers = 3

	// MaxSearch bounds the search list.
	MaxSearch = 6

	// DefaultNdots is the ndots value a freshly defaulted Config starts
	// with, before any "options ndots:N" directive.
	DefaultNdots = 1

	defaultPort uint16 = 53
)

// Lookup is one entry of the lookup order: where to resolve a name from.
type Lookup byte

const (
	LookupFile Lookup = 'f'
	LookupBind Lookup = 'b'
)

// Options holds the resolver's behavioral flags.
type Options struct {
	Ndots     int
	EDNS0     bool
	Recursive bool
}

// Config is a loaded resolver configuration. It is reference-counted:
// Acquire and Release manage shared ownership the way the hints database
// does, so a Config can outlive the loader that built it and be handed to
// multiple concurrent resolvers.
type Config struct {
	refs atomic.Int32

	Nameservers []netip.AddrPort
	Search      []string
	Lookup      []Lookup
	Options     Options

	Interface netip.AddrPort
}

// DefaultConfig returns a Config with the reference defaults: lookup order
// file-then-bind, ndots 1, no nameservers or search entries.
func DefaultConfig() *Config {
	c := &Config{
		Lookup:  []Lookup{LookupFile, LookupBind},
		Options: Options{Ndots: DefaultNdots},
	}
	c.refs.Store(1)
	return c
}

// Acquire increments the reference count and returns the Config for
// chaining.
func (c *Config) Acquire() *Config {
	c.refs.Add(1)
	return c
}

// Release decrements the reference count and reports whether this was the
// last reference (the caller holding it should treat the Config as freed
// once Release returns true).
func (c *Config) Release() bool {
	return c.refs.Add(-1) == 0
}

// AddNameserver appends a nameserver address if the list isn't already at
// MaxNameservers; port defaults to 53 when addr carries none. Surplus
// directives are silently dropped, matching the reference loader.
func (c *Config) AddNameserver(addr netip.Addr, port uint16) {
	if len(c.Nameservers) >= MaxNameservers {
		return
	}
	if port == 0 {
		port = defaultPort
	}
	c.Nameservers = append(c.Nameservers, netip.AddrPortFrom(addr, port))
}

// SetInterface sets the local bind address and port directly, independent
// of the "interface" directive — the reference implementation exposes
// dns_resconf_setiface as a standalone entry point, not only as a side
// effect of loading a file.
func (c *Config) SetInterface(addr netip.Addr, port uint16) error {
	if port == 0 {
		port = defaultPort
	}
	c.Interface = netip.AddrPortFrom(addr, port)
	return nil
}
