package cookie

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

// Valid reports whether the cookie would survive a strict RFC 6265 parser
// byte for byte. Parse and String do not require validity: like the servers
// and user agents they interoperate with, they pass through names and
// values the grammar forbids. Valid is for callers that would rather reject
// such a cookie than send it.
//
// The name must be a nonempty token (RFC 6265 Section 4.1.1); the value
// must consist of cookie-octets, in at most one pair of double quotes; the
// path must be free of ";" and control characters; the domain must be free
// of ";", control characters and whitespace. Consider Encoded for values
// that cannot pass: percent-encoded values are always valid.
func (c Cookie) Valid() error {
	name := c.Name()
	if name == "" {
		return ErrEmptyName
	}
	for _, r := range name {
		if !httpguts.IsTokenRune(r) {
			return fmt.Errorf("bad cookie name %q: not a token", name)
		}
	}
	value := trimQuotes(c.Value())
	for i := 0; i < len(value); i++ {
		if !isCookieOctet[value[i]] {
			return fmt.Errorf("bad cookie value %q: byte %q not allowed",
				c.Value(), value[i])
		}
	}
	path := c.Path()
	for i := 0; i < len(path); i++ {
		if path[i] == ';' || path[i] < 0x20 || path[i] == 0x7F {
			return fmt.Errorf("bad cookie path %q: byte %q not allowed",
				path, path[i])
		}
	}
	domain := c.Domain()
	for i := 0; i < len(domain); i++ {
		if domain[i] == ';' || domain[i] <= 0x20 || domain[i] == 0x7F {
			return fmt.Errorf("bad cookie domain %q: byte %q not allowed",
				domain, domain[i])
		}
	}
	return nil
}
