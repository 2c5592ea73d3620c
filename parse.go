package cookie

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Parse errors. Only the name/value pair can fail to parse; attributes are
// salvaged or dropped without error.
var (
	// ErrMissingPair means the cookie string has no name=value pair.
	ErrMissingPair = errors.New("missing name/value pair")

	// ErrEmptyName means the cookie's name is empty.
	ErrEmptyName = errors.New("empty cookie name")

	// ErrInvalidUTF8 means percent-decoding the cookie's name or value
	// produced invalid UTF-8.
	ErrInvalidUTF8 = errors.New("name or value decodes to invalid UTF-8")
)

// Parse parses s as one cookie string: the name=value pair of a Cookie
// header, or a full Set-Cookie value with ;-separated attributes
// (RFC 6265 Section 5.2). The name and value are taken verbatim; see
// ParseEncoded for percent-decoding. The returned cookie references s
// instead of copying out of it; see Cookie.IntoOwned.
//
// The name and value are split on the first "=", so a value may itself
// contain "=". Whitespace around the name and value is trimmed. Parse fails
// only on a missing pair or an empty name.
//
// Attributes never fail. Unknown attributes are dropped, as are known
// attributes with unusable values: an Expires date in none of the accepted
// formats, a Max-Age that is not a whole number, an empty Domain. Max-Age
// values beyond what a time.Duration can hold are clamped, and nonpositive
// ones are stored as zero (RFC 6265 Section 5.2.2). A SameSite value other
// than "Strict" or "Lax" is dropped, "None" included.
func Parse(s string) (Cookie, error) {
	return parse(s, false)
}

// ParseEncoded is like Parse but percent-decodes the name and value. The
// decoding is lenient, as in percentDecode: malformed escapes pass through
// verbatim. The decoded name and value must be valid UTF-8.
func ParseEncoded(s string) (Cookie, error) {
	return parse(s, true)
}

func parse(s string, decode bool) (Cookie, error) {
	pairEnd := len(s)
	if i := strings.IndexByte(s, ';'); i >= 0 {
		pairEnd = i
	}
	eq := strings.IndexByte(s[:pairEnd], '=')
	if eq < 0 {
		return Cookie{}, ErrMissingPair
	}
	nameFrom, nameTo := trimSpan(s, 0, eq)
	if nameFrom == nameTo {
		return Cookie{}, ErrEmptyName
	}
	valueFrom, valueTo := trimSpan(s, eq+1, pairEnd)

	c := Cookie{source: s}
	c.name = indexed(nameFrom, nameTo)
	c.value = indexed(valueFrom, valueTo)
	if decode {
		name := percentDecode(s[nameFrom:nameTo])
		value := percentDecode(s[valueFrom:valueTo])
		if !utf8.ValidString(name) || !utf8.ValidString(value) {
			return Cookie{}, ErrInvalidUTF8
		}
		// A decode that changes nothing keeps pointing into s.
		if name != s[nameFrom:nameTo] {
			c.name = concrete(name)
		}
		if value != s[valueFrom:valueTo] {
			c.value = concrete(value)
		}
	}

	for pos := pairEnd + 1; pos < len(s); {
		end := len(s)
		if i := strings.IndexByte(s[pos:], ';'); i >= 0 {
			end = pos + i
		}
		kFrom, kTo := pos, end
		vFrom, vTo := end, end
		if i := strings.IndexByte(s[pos:end], '='); i >= 0 {
			kTo = pos + i
			vFrom = pos + i + 1
		}
		pos = end + 1

		kFrom, kTo = trimSpan(s, kFrom, kTo)
		vFrom, vTo = trimSpan(s, vFrom, vTo)
		key := s[kFrom:kTo]
		val := s[vFrom:vTo]

		switch {
		case strings.EqualFold(key, "Secure"):
			c.SetSecure(true)
		case strings.EqualFold(key, "HttpOnly"):
			c.SetHTTPOnly(true)
		case strings.EqualFold(key, "Partitioned"):
			c.SetPartitioned(true)
		case strings.EqualFold(key, "Max-Age"):
			if d, ok := parseMaxAge(val); ok {
				c.maxAge = &d
			}
		case strings.EqualFold(key, "Domain"):
			if vFrom < vTo && s[vFrom] == '.' {
				vFrom++
			}
			if vFrom < vTo {
				d := indexed(vFrom, vTo)
				c.domain = &d
			}
		case strings.EqualFold(key, "Path"):
			if vFrom < vTo {
				p := indexed(vFrom, vTo)
				c.path = &p
			}
		case strings.EqualFold(key, "SameSite"):
			// Anything else, including "none", is dropped.
			if strings.EqualFold(val, "Strict") {
				c.sameSite = SameSiteStrict
			} else if strings.EqualFold(val, "Lax") {
				c.sameSite = SameSiteLax
			}
		case strings.EqualFold(key, "Expires"):
			if t, ok := parseCookieDate(val); ok {
				c.SetExpiresTime(t)
			}
		}
	}
	return c, nil
}

// parseMaxAge reads a Max-Age attribute value: a whole number of seconds.
// ok is false only when the value is not a number at all; out-of-range
// numbers clamp, because strconv.ParseInt returns the int64 limit alongside
// ErrRange and the limits clamp like any other extreme value below.
func parseMaxAge(v string) (time.Duration, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	const maxSeconds = int64((1<<63 - 1) / time.Second)
	switch {
	case n <= 0:
		return 0, true
	case n > maxSeconds:
		n = maxSeconds
	}
	return time.Duration(n) * time.Second, true
}

// parseCookieDate parses an Expires attribute value. RFC 6265 Section
// 5.1.1 specifies an elaborate lenient algorithm, but in practice the
// HTTP-date formats of RFC 7231 Section 7.1.1.1, plus a four-digit-year
// variant of the obsolete RFC 850 form, cover what servers send.
func parseCookieDate(v string) (time.Time, bool) {
	if t, err := http.ParseTime(v); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("Mon, 02-Jan-2006 15:04:05 GMT", v); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
