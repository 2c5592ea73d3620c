package cookie

import "strings"

// A Prefix is one of the cookie name prefixes of RFC 6265bis Section
// 4.1.3, which instruct user agents to reject the cookie unless it was
// set with certain attributes.
type Prefix int

const (
	// HostPrefix is the "__Host-" prefix. A conforming cookie is
	// Secure, has path "/", and has no domain, which pins it to the
	// exact host that set it.
	HostPrefix Prefix = iota

	// SecurePrefix is the "__Secure-" prefix. A conforming cookie is
	// Secure.
	SecurePrefix
)

// String returns the literal prefix: "__Host-" or "__Secure-".
func (p Prefix) String() string {
	if p == HostPrefix {
		return "__Host-"
	}
	return "__Secure-"
}

// Conform adjusts c's attributes so that a user agent will accept a
// cookie named with the prefix p. A PrefixedJar applies it to every
// cookie added through it, so there is rarely a reason to call it
// directly.
func (p Prefix) Conform(c *Cookie) {
	c.SetSecure(true)
	if p == HostPrefix {
		c.SetPath("/")
		c.SetDomain("")
	}
}

// A PrefixedJar is a child of a Jar that prepends a Prefix to the name
// of every cookie added through it, strips the prefix from cookies
// retrieved through it, and makes added cookies conform to the prefix's
// requirements.
type PrefixedJar struct {
	parent *Jar
	prefix Prefix
}

// Prefixed returns a child jar whose cookies all carry the name
// prefix p.
func (j *Jar) Prefixed(p Prefix) *PrefixedJar {
	return &PrefixedJar{parent: j, prefix: p}
}

// Get returns the cookie stored in the parent jar under the prefixed
// form of name, with the prefix clipped off, or nil if there is none.
func (pj *PrefixedJar) Get(name string) *Cookie {
	c := pj.parent.Get(pj.prefix.String() + name)
	if c == nil {
		return nil
	}
	if p := pj.prefix.String(); strings.HasPrefix(c.Name(), p) {
		c.name = c.name.clipPrefix(len(p))
	}
	return c
}

// Add prefixes c's name, makes c conform, and adds the result to the
// parent jar.
func (pj *PrefixedJar) Add(c Cookie) {
	pj.parent.Add(pj.apply(c))
}

// AddOriginal prefixes c's name, makes c conform, and adds the result
// to the parent jar as an original cookie, leaving the parent's delta
// untouched.
func (pj *PrefixedJar) AddOriginal(c Cookie) {
	pj.parent.AddOriginal(pj.apply(c))
}

// Remove removes the prefixed form of c from the parent jar. See
// Jar.Remove.
func (pj *PrefixedJar) Remove(c Cookie) {
	pj.parent.Remove(pj.apply(c))
}

func (pj *PrefixedJar) apply(c Cookie) Cookie {
	c.SetName(pj.prefix.String() + c.Name())
	pj.prefix.Conform(&c)
	return c
}
