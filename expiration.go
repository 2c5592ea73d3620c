package cookie

import "time"

// An Expiration is the state of a cookie's Expires attribute: either an
// explicit point in time, or "session", meaning the attribute is omitted so
// that the cookie lives only until the user agent's session ends.
//
// The distinction matters for cookies that also carry Max-Age: a session
// Expiration deliberately leaves Expires out while Max-Age still bounds the
// cookie's life on agents that support it.
type Expiration struct {
	t time.Time
}

// ExpiresAt returns an Expiration at the given time. The zero time is taken
// to mean session.
func ExpiresAt(t time.Time) Expiration {
	return Expiration{t: t}
}

// SessionExpiration returns the session Expiration.
func SessionExpiration() Expiration {
	return Expiration{}
}

// IsSession reports whether e is the session Expiration.
func (e Expiration) IsSession() bool {
	return e.t.IsZero()
}

// IsDateTime reports whether e is an explicit point in time.
func (e Expiration) IsDateTime() bool {
	return !e.t.IsZero()
}

// DateTime returns the explicit expiration time, if e has one.
func (e Expiration) DateTime() (time.Time, bool) {
	if e.t.IsZero() {
		return time.Time{}, false
	}
	return e.t, true
}

// Equal reports whether two Expirations are the same state, comparing
// explicit times with time.Time.Equal.
func (e Expiration) Equal(o Expiration) bool {
	if e.IsSession() || o.IsSession() {
		return e.IsSession() == o.IsSession()
	}
	return e.t.Equal(o.t)
}
