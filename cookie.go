package cookie

import (
	"strings"
	"time"
)

// A Cookie is an HTTP cookie: a name/value pair plus the attributes of a
// Set-Cookie header (RFC 6265 Section 4.1), including the draft SameSite,
// Partitioned and prefix extensions.
//
// A cookie returned by Parse keeps a reference to the string it was parsed
// from, and its name, value, path and domain are byte ranges into that
// string rather than copies. This makes parsing cheap, but pins the source
// string in memory for as long as the cookie lives; IntoOwned detaches a
// cookie that must outlive a large buffer.
//
// The Secure, HttpOnly and Partitioned flags are tri-state: never set,
// explicitly false, and explicitly true are all distinct, and String renders
// them differently (see String). Accessors return an ok result reporting
// whether the attribute is set at all.
//
// Use New or Build to construct a Cookie. Accessors take a value receiver,
// so copies of a Cookie are independent; setters need a pointer.
type Cookie struct {
	source string
	name   cstr
	value  cstr

	expires     *Expiration
	maxAge      *time.Duration
	domain      *cstr
	path        *cstr
	secure      *bool
	httpOnly    *bool
	partitioned *bool
	sameSite    SameSite
}

// New returns a cookie with the given name and value and no attributes.
func New(name, value string) Cookie {
	return Cookie{name: concrete(name), value: concrete(value)}
}

// Name returns the cookie's name.
func (c Cookie) Name() string {
	return c.name.resolve(c.source)
}

// Value returns the cookie's value.
func (c Cookie) Value() string {
	return c.value.resolve(c.source)
}

// NameValue returns the cookie's name and value in one call.
func (c Cookie) NameValue() (name, value string) {
	return c.Name(), c.Value()
}

// ValueTrimmed returns the cookie's value with one pair of surrounding
// double quotes removed. RFC 6265 Section 4.1.1 lets servers send a value in
// double quotes, and many do, but the quotes are not part of the value.
func (c Cookie) ValueTrimmed() string {
	return trimQuotes(c.Value())
}

// NameRaw returns the cookie's name as a verbatim slice of the string the
// cookie was parsed from. ok is false if the cookie was built rather than
// parsed, the name has since been replaced, or percent-decoding changed it.
func (c Cookie) NameRaw() (name string, ok bool) {
	return c.name.raw(c.source)
}

// ValueRaw is like NameRaw, for the value.
func (c Cookie) ValueRaw() (value string, ok bool) {
	return c.value.raw(c.source)
}

// Expires returns the cookie's Expires state. ok is false when the
// attribute has never been set.
func (c Cookie) Expires() (e Expiration, ok bool) {
	if c.expires == nil {
		return Expiration{}, false
	}
	return *c.expires, true
}

// ExpiresTime returns the explicit expiration time, if the cookie has one.
// ok is false both for session expiration and for no Expires at all.
func (c Cookie) ExpiresTime() (t time.Time, ok bool) {
	if c.expires == nil {
		return time.Time{}, false
	}
	return c.expires.DateTime()
}

// MaxAge returns the cookie's Max-Age. ok is false when the attribute has
// never been set.
func (c Cookie) MaxAge() (d time.Duration, ok bool) {
	if c.maxAge == nil {
		return 0, false
	}
	return *c.maxAge, true
}

// Domain returns the cookie's Domain attribute, or "" when unset. The
// leading dot that RFC 6265 Section 5.2.3 ignores is never included.
func (c Cookie) Domain() string {
	if c.domain == nil {
		return ""
	}
	return c.domain.resolve(c.source)
}

// DomainRaw is like NameRaw, for the domain.
func (c Cookie) DomainRaw() (domain string, ok bool) {
	if c.domain == nil {
		return "", false
	}
	return c.domain.raw(c.source)
}

// Path returns the cookie's Path attribute, or "" when unset.
func (c Cookie) Path() string {
	if c.path == nil {
		return ""
	}
	return c.path.resolve(c.source)
}

// PathRaw is like NameRaw, for the path.
func (c Cookie) PathRaw() (path string, ok bool) {
	if c.path == nil {
		return "", false
	}
	return c.path.raw(c.source)
}

// Secure returns the cookie's Secure flag. ok is false when the flag has
// never been set, which String treats differently from an explicit false
// when SameSite is None.
func (c Cookie) Secure() (secure, ok bool) {
	if c.secure == nil {
		return false, false
	}
	return *c.secure, true
}

// HTTPOnly returns the cookie's HttpOnly flag. ok is false when the flag
// has never been set.
func (c Cookie) HTTPOnly() (httpOnly, ok bool) {
	if c.httpOnly == nil {
		return false, false
	}
	return *c.httpOnly, true
}

// Partitioned returns the cookie's Partitioned flag (the CHIPS draft,
// draft-cutler-httpbis-partitioned-cookies). ok is false when the flag has
// never been set.
func (c Cookie) Partitioned() (partitioned, ok bool) {
	if c.partitioned == nil {
		return false, false
	}
	return *c.partitioned, true
}

// SameSite returns the cookie's SameSite attribute, SameSiteUnset when
// absent.
func (c Cookie) SameSite() SameSite {
	return c.sameSite
}

// SetName replaces the cookie's name.
func (c *Cookie) SetName(name string) {
	c.name = concrete(name)
}

// SetValue replaces the cookie's value.
func (c *Cookie) SetValue(value string) {
	c.value = concrete(value)
}

// SetExpires sets the cookie's Expires state.
func (c *Cookie) SetExpires(e Expiration) {
	c.expires = &e
}

// SetExpiresTime sets an explicit expiration time.
func (c *Cookie) SetExpiresTime(t time.Time) {
	c.SetExpires(ExpiresAt(t))
}

// UnsetExpires removes the Expires attribute entirely.
func (c *Cookie) UnsetExpires() {
	c.expires = nil
}

// SetMaxAge sets the cookie's Max-Age. A negative duration is stored as
// zero: RFC 6265 Section 5.2.2 gives every nonpositive Max-Age the same
// meaning, expire immediately.
func (c *Cookie) SetMaxAge(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.maxAge = &d
}

// UnsetMaxAge removes the Max-Age attribute.
func (c *Cookie) UnsetMaxAge() {
	c.maxAge = nil
}

// SetDomain sets the Domain attribute. A leading dot is stripped, as in
// parsing; the empty string (or a bare dot) unsets the attribute.
func (c *Cookie) SetDomain(domain string) {
	domain = strings.TrimPrefix(domain, ".")
	if domain == "" {
		c.domain = nil
		return
	}
	d := concrete(domain)
	c.domain = &d
}

// SetPath sets the Path attribute; the empty string unsets it.
func (c *Cookie) SetPath(path string) {
	if path == "" {
		c.path = nil
		return
	}
	p := concrete(path)
	c.path = &p
}

// SetSecure sets the Secure flag explicitly. See String for how an explicit
// false differs from a flag never set.
func (c *Cookie) SetSecure(secure bool) {
	c.secure = &secure
}

// UnsetSecure returns the Secure flag to its never-set state.
func (c *Cookie) UnsetSecure() {
	c.secure = nil
}

// SetHTTPOnly sets the HttpOnly flag explicitly.
func (c *Cookie) SetHTTPOnly(httpOnly bool) {
	c.httpOnly = &httpOnly
}

// UnsetHTTPOnly returns the HttpOnly flag to its never-set state.
func (c *Cookie) UnsetHTTPOnly() {
	c.httpOnly = nil
}

// SetPartitioned sets the Partitioned flag explicitly. Partitioned cookies
// always render with Secure; see String.
func (c *Cookie) SetPartitioned(partitioned bool) {
	c.partitioned = &partitioned
}

// UnsetPartitioned returns the Partitioned flag to its never-set state.
func (c *Cookie) UnsetPartitioned() {
	c.partitioned = nil
}

// SetSameSite sets the SameSite attribute; SameSiteUnset removes it.
func (c *Cookie) SetSameSite(ss SameSite) {
	c.sameSite = ss
}

// twentyYears approximates "never expires" for MakePermanent. User agents
// cap cookie lifetimes well below this (400 days in the current rfc6265bis
// draft), so the exact figure only has to be comfortably in the future.
const twentyYears = 20 * 365 * 24 * time.Hour

// MakePermanent gives the cookie the longest practical lifetime: Max-Age
// and Expires both 20 years from now.
func (c *Cookie) MakePermanent() {
	c.SetMaxAge(twentyYears)
	c.SetExpiresTime(time.Now().Add(twentyYears))
}

// MakeRemoval turns the cookie into an instruction for the user agent to
// delete it: the value is cleared, Max-Age becomes zero, and Expires moves
// a year into the past. Jar.Remove produces such cookies; the cookie's Path
// and Domain are left alone because the user agent only deletes a cookie
// whose name, path and domain all match (RFC 6265 Section 5.3).
func (c *Cookie) MakeRemoval() {
	c.SetValue("")
	c.SetMaxAge(0)
	c.SetExpiresTime(time.Now().AddDate(-1, 0, 0))
}

// IntoOwned returns a copy of the cookie whose fields are all
// self-contained, releasing the reference to the string the cookie was
// parsed from.
func (c Cookie) IntoOwned() Cookie {
	c.name = c.name.owned(c.source)
	c.value = c.value.owned(c.source)
	if c.domain != nil {
		d := c.domain.owned(c.source)
		c.domain = &d
	}
	if c.path != nil {
		p := c.path.owned(c.source)
		c.path = &p
	}
	c.source = ""
	return c
}

// Equal reports whether c and o are the same cookie: equal name, value,
// Secure, HttpOnly, Partitioned, Max-Age and Expires, with Path and Domain
// compared case-insensitively. Whether a field is stored as a range into
// the source string or as its own string never matters.
func (c Cookie) Equal(o Cookie) bool {
	if c.Name() != o.Name() || c.Value() != o.Value() {
		return false
	}
	if !optBoolEqual(c.secure, o.secure) ||
		!optBoolEqual(c.httpOnly, o.httpOnly) ||
		!optBoolEqual(c.partitioned, o.partitioned) {
		return false
	}
	cma, cok := c.MaxAge()
	oma, ook := o.MaxAge()
	if cok != ook || cma != oma {
		return false
	}
	cex, cok := c.Expires()
	oex, ook := o.Expires()
	if cok != ook || (cok && !cex.Equal(oex)) {
		return false
	}
	return strings.EqualFold(c.Path(), o.Path()) &&
		strings.EqualFold(c.Domain(), o.Domain())
}
