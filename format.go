package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// String renders the cookie as a Set-Cookie header value (RFC 6265 Section
// 4.1): the name=value pair, then the attributes that are set, in a fixed
// order. The name and value are written verbatim, whether or not they fit
// the grammar; Encoded escapes them instead.
//
// Secure is rendered not only when set explicitly, but also whenever the
// cookie is Partitioned, and when SameSite is None with Secure never set:
// user agents discard such cookies without Secure. Explicitly setting
// Secure to false keeps a SameSite=None cookie insecure, but not a
// Partitioned one.
func (c Cookie) String() string {
	b := &strings.Builder{}
	c.write(b, false)
	return b.String()
}

// Encoded is like String, with the name and value percent-encoded so that
// they survive any cookie parser: whitespace, ";", "=", "%" and the other
// bytes that RFC 6265 Section 4.1.1 keeps out of a cookie-octet are
// escaped. ParseEncoded reverses it.
func (c Cookie) Encoded() string {
	b := &strings.Builder{}
	c.write(b, true)
	return b.String()
}

// Stripped renders only the name=value pair, as sent in a Cookie request
// header (RFC 6265 Section 5.4).
func (c Cookie) Stripped() string {
	return c.Name() + "=" + c.Value()
}

// StrippedEncoded renders the name=value pair with both parts
// percent-encoded, as in Encoded.
func (c Cookie) StrippedEncoded() string {
	b := &strings.Builder{}
	percentEncode(b, c.Name())
	b.WriteByte('=')
	percentEncode(b, c.Value())
	return b.String()
}

func (c Cookie) write(b *strings.Builder, encode bool) {
	if encode {
		percentEncode(b, c.Name())
		b.WriteByte('=')
		percentEncode(b, c.Value())
	} else {
		b.WriteString(c.Name())
		b.WriteByte('=')
		b.WriteString(c.Value())
	}
	if httpOnly, _ := c.HTTPOnly(); httpOnly {
		b.WriteString("; HttpOnly")
	}
	if ss := c.SameSite(); ss != SameSiteUnset {
		b.WriteString("; SameSite=")
		b.WriteString(ss.String())
	}
	partitioned, _ := c.Partitioned()
	if partitioned {
		b.WriteString("; Partitioned")
	}
	secure, secureSet := c.Secure()
	switch {
	case secure, partitioned:
		b.WriteString("; Secure")
	case !secureSet && c.SameSite() == SameSiteNone:
		b.WriteString("; Secure")
	}
	if path := c.Path(); path != "" {
		b.WriteString("; Path=")
		b.WriteString(path)
	}
	if domain := c.Domain(); domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(domain)
	}
	if maxAge, ok := c.MaxAge(); ok {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.FormatInt(int64(maxAge/time.Second), 10))
	}
	if t, ok := c.ExpiresTime(); ok {
		b.WriteString("; Expires=")
		b.WriteString(t.UTC().Format(http.TimeFormat))
	}
}
