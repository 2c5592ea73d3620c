package cookie

import "time"

// A Builder assembles a Cookie. Build starts it, each intermediate method
// returns an updated copy, and the Cookie method finishes it:
//
//	c := cookie.Build("session", token).
//		Path("/").
//		Secure(true).
//		HTTPOnly(true).
//		Cookie()
//
// Because a Builder is a value, a partial chain can be kept and extended in
// more than one direction without the chains affecting each other.
type Builder struct {
	c Cookie
}

// Build starts building a cookie with the given name and value.
func Build(name, value string) Builder {
	return Builder{c: New(name, value)}
}

// BuildFrom starts building on top of an existing cookie.
func BuildFrom(c Cookie) Builder {
	return Builder{c: c}
}

// Expires sets the cookie's Expires state.
func (b Builder) Expires(e Expiration) Builder {
	b.c.SetExpires(e)
	return b
}

// ExpiresTime sets an explicit expiration time.
func (b Builder) ExpiresTime(t time.Time) Builder {
	b.c.SetExpiresTime(t)
	return b
}

// MaxAge sets the cookie's Max-Age, clamped as in Cookie.SetMaxAge.
func (b Builder) MaxAge(d time.Duration) Builder {
	b.c.SetMaxAge(d)
	return b
}

// Domain sets the Domain attribute, normalized as in Cookie.SetDomain.
func (b Builder) Domain(domain string) Builder {
	b.c.SetDomain(domain)
	return b
}

// Path sets the Path attribute.
func (b Builder) Path(path string) Builder {
	b.c.SetPath(path)
	return b
}

// Secure sets the Secure flag explicitly.
func (b Builder) Secure(secure bool) Builder {
	b.c.SetSecure(secure)
	return b
}

// HTTPOnly sets the HttpOnly flag explicitly.
func (b Builder) HTTPOnly(httpOnly bool) Builder {
	b.c.SetHTTPOnly(httpOnly)
	return b
}

// Partitioned sets the Partitioned flag explicitly.
func (b Builder) Partitioned(partitioned bool) Builder {
	b.c.SetPartitioned(partitioned)
	return b
}

// SameSite sets the SameSite attribute.
func (b Builder) SameSite(ss SameSite) Builder {
	b.c.SetSameSite(ss)
	return b
}

// Permanent gives the cookie a 20-year lifetime, as in
// Cookie.MakePermanent.
func (b Builder) Permanent() Builder {
	b.c.MakePermanent()
	return b
}

// Removal turns the cookie into a removal instruction, as in
// Cookie.MakeRemoval.
func (b Builder) Removal() Builder {
	b.c.MakeRemoval()
	return b
}

// Cookie returns the built cookie.
func (b Builder) Cookie() Cookie {
	return b.c
}
