package cookie

// A deltaCookie is one jar entry: a cookie plus whether the entry records a
// removal. Jar maps are keyed by cookie name, so each name has at most one
// entry per map, and a removal shadows whatever the name meant before.
type deltaCookie struct {
	Cookie
	removed bool
}
