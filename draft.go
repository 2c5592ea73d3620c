package cookie

// SameSite is the value of a cookie's SameSite attribute, which limits the
// cross-site requests on which the user agent sends the cookie
// (draft-ietf-httpbis-rfc6265bis Section 5.2, "Same-Site Cookies").
//
// SameSite is a draft extension: its meaning and definition are subject
// to change.
type SameSite int

const (
	// SameSiteUnset omits the SameSite attribute. User agents then apply
	// their own default, typically Lax.
	SameSiteUnset SameSite = iota

	// SameSiteStrict withholds the cookie from all cross-site requests.
	SameSiteStrict

	// SameSiteLax withholds the cookie from cross-site subrequests but
	// sends it on top-level navigations.
	SameSiteLax

	// SameSiteNone sends the cookie on all requests. User agents reject
	// SameSite=None cookies that are not Secure, so Cookie.String renders
	// Secure for them unless Secure was explicitly set to false.
	SameSiteNone
)

// String returns the attribute value as written on the wire: "Strict",
// "Lax" or "None". For SameSiteUnset it returns "".
func (ss SameSite) String() string {
	switch ss {
	case SameSiteStrict:
		return "Strict"
	case SameSiteLax:
		return "Lax"
	case SameSiteNone:
		return "None"
	}
	return ""
}
