package cookie

// A cstr holds one textual field of a Cookie: either a concrete string, or
// an indexed [from:to] byte range into the string the cookie was parsed
// from. Parsing produces ranges, so a freshly parsed cookie copies nothing
// out of its input; setters and Cookie.IntoOwned produce concrete strings.
type cstr struct {
	v        string
	from, to int
	indexed  bool
}

func concrete(s string) cstr {
	return cstr{v: s}
}

func indexed(from, to int) cstr {
	return cstr{from: from, to: to, indexed: true}
}

// resolve returns the string this cstr stands for. An indexed cstr without
// its source string cannot arise through this package's API, so resolve
// treats that state as a broken invariant and panics.
func (s cstr) resolve(src string) string {
	if !s.indexed {
		return s.v
	}
	if src == "" {
		panic("cookie: indexed string resolved without its source")
	}
	return src[s.from:s.to]
}

// raw returns the verbatim slice of the source string, which exists only
// while the cstr is still indexed into one.
func (s cstr) raw(src string) (string, bool) {
	if !s.indexed || src == "" {
		return "", false
	}
	return src[s.from:s.to], true
}

// owned resolves s into a concrete cstr that no longer needs src.
func (s cstr) owned(src string) cstr {
	if !s.indexed {
		return s
	}
	return cstr{v: s.resolve(src)}
}

// clipPrefix drops the first n bytes: an indexed range just moves its start,
// so clipping a parsed name stays copy-free.
func (s cstr) clipPrefix(n int) cstr {
	if s.indexed {
		return cstr{from: s.from + n, to: s.to, indexed: true}
	}
	return cstr{v: s.v[n:]}
}
