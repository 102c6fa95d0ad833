package resolvconf

import (
	"bufio"
	"io"
	"net/netip"
	"strconv"
	"strings"

	"github.com/dnsscience/dnscore/dname"
)

const maxWords = 6

// Load reads resolver-configuration text from r and returns a freshly
// acquired Config built from DefaultConfig plus whatever directives r
// contains. host, if non-empty, seeds the implicit single-entry search
// list (host's domain, anchored then cleaved once) that a bare "domain"/
// "search" directive later overrides.
func Load(r io.Reader, host string) (*Config, error) {
	c := DefaultConfig()

	if host != "" {
		if parent := dname.CleaveString(dname.AnchorString(host)); parent != "" {
			c.Search = []string{parent}
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := loadLine(c, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadLine(c *Config, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' || line[0] == ';' {
		return nil
	}

	words := tokenize(line)
	if len(words) == 0 {
		return nil
	}

	switch strings.ToLower(words[0]) {
	case "nameserver":
		applyNameserver(c, words[1:])
	case "domain", "search":
		applySearch(c, words[1:])
	case "lookup":
		applyLookup(c, words[1:])
	case "options":
		applyOptions(c, words[1:])
	case "interface":
		applyInterface(c, words[1:])
	}
	return nil
}

// tokenize splits a directive line into at most maxWords words on
// whitespace or comma, matching the reference loader's word limit.
func tokenize(line string) []string {
	words := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return words
}

func applyNameserver(c *Config, args []string) {
	if len(args) == 0 {
		return
	}
	addr, ok := parseHostAddr(args[0])
	if !ok {
		return
	}
	c.AddNameserver(addr, defaultPort)
}

func applySearch(c *Config, args []string) {
	c.Search = c.Search[:0]
	for _, name := range args {
		if len(c.Search) >= MaxSearch {
			break
		}
		c.Search = append(c.Search, dname.AnchorString(name))
	}
}

func applyLookup(c *Config, args []string) {
	order := make([]Lookup, 0, len(args))
	for _, tok := range args {
		switch strings.ToLower(tok) {
		case "file":
			order = append(order, LookupFile)
		case "bind":
			order = append(order, LookupBind)
		}
	}
	if len(order) > 0 {
		c.Lookup = order
	}
}

func applyOptions(c *Config, args []string) {
	for _, opt := range args {
		switch {
		case opt == "edns0":
			c.Options.EDNS0 = true
		case opt == "recursive":
			c.Options.Recursive = true
		case strings.HasPrefix(opt, "ndots:"):
			if n, err := strconv.Atoi(opt[len("ndots:"):]); err == nil {
				c.Options.Ndots = n
			}
		}
	}
}

func applyInterface(c *Config, args []string) {
	if len(args) == 0 {
		return
	}
	addr, ok := parseHostAddr(args[0])
	if !ok {
		return
	}
	port := defaultPort
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			port = uint16(n)
		}
	}
	_ = c.SetInterface(addr, port)
}

// parseHostAddr parses a bare IPv4 or IPv6 literal; netip.ParseAddr
// determines the family.
func parseHostAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}
