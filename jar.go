package cookie

import (
	"slices"
	"strings"
	"sync"
)

// A Jar is a collection of cookies that tracks its own changes. Cookies the
// user agent presented go in through AddOriginal and form the jar's
// original state; Add and Remove record changes against that state; and
// Delta returns the exact cookies whose Set-Cookie values communicate those
// changes back to the user agent, nothing more.
//
// A Jar is safe for concurrent use. Each method is atomic on its own;
// compound sequences, such as a Get followed by an Add of the same name,
// need their own serialization if another goroutine may write in between.
type Jar struct {
	mu        sync.RWMutex
	originals map[string]deltaCookie
	delta     map[string]deltaCookie
}

// NewJar returns an empty jar.
func NewJar() *Jar {
	return &Jar{
		originals: make(map[string]deltaCookie),
		delta:     make(map[string]deltaCookie),
	}
}

// AddOriginal adds a cookie to the jar's original state: what the user
// agent already holds. Original cookies never appear in Delta. Seed a jar
// with AddOriginal before recording changes; adding an original after a
// Remove of the same name leaves the delta talking about a cookie the jar
// no longer exposes.
func (j *Jar) AddOriginal(c Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.originals[c.Name()] = deltaCookie{Cookie: c}
}

// Add adds a cookie to the jar. The change is included in Delta, replacing
// any pending change to the same name.
func (j *Jar) Add(c Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.delta[c.Name()] = deltaCookie{Cookie: c}
}

// Remove removes c's name from the jar.
//
// If the name is part of the original state, the user agent must be told to
// drop its copy, so Delta gains a removal cookie: c turned into a removal
// instruction with Cookie.MakeRemoval. For the user agent to honor it, c
// must carry the same Path and Domain as the cookie that set it (RFC 6265
// Section 5.3 matches cookies by name, domain and path).
//
// If the name is not original, a pending Add of it is simply forgotten, and
// Delta mentions neither.
func (j *Jar) Remove(c Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	name := c.Name()
	if _, ok := j.originals[name]; ok {
		c.MakeRemoval()
		j.delta[name] = deltaCookie{Cookie: c, removed: true}
		return
	}
	delete(j.delta, name)
}

// ForceRemove removes the named cookie from the jar entirely, original
// state included, without recording a removal for the user agent.
// Afterwards the jar behaves as if it had never seen the name.
func (j *Jar) ForceRemove(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.originals, name)
	delete(j.delta, name)
}

// ResetDelta forgets all changes recorded with Add and Remove, leaving only
// the original state.
func (j *Jar) ResetDelta() {
	j.mu.Lock()
	defer j.mu.Unlock()
	clear(j.delta)
}

// Get returns a copy of the jar's live cookie with the given name, or nil
// if there is none (or it has been removed).
func (j *Jar) Get(name string) *Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if dc, ok := j.delta[name]; ok {
		if dc.removed {
			return nil
		}
		c := dc.Cookie
		return &c
	}
	if dc, ok := j.originals[name]; ok {
		c := dc.Cookie
		return &c
	}
	return nil
}

// Cookies returns copies of the jar's live cookies: the original state with
// all recorded changes applied, sorted by name.
func (j *Jar) Cookies() []Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	cs := make([]Cookie, 0, len(j.originals)+len(j.delta))
	for name, dc := range j.originals {
		if _, changed := j.delta[name]; changed {
			continue
		}
		cs = append(cs, dc.Cookie)
	}
	for _, dc := range j.delta {
		if !dc.removed {
			cs = append(cs, dc.Cookie)
		}
	}
	sortByName(cs)
	return cs
}

// Delta returns the cookies that carry the jar's recorded changes to the
// user agent, sorted by name: each added cookie as it is, and a removal
// cookie (see Remove) for each removed one. Serialize each with
// Cookie.String as its own Set-Cookie header.
func (j *Jar) Delta() []Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	cs := make([]Cookie, 0, len(j.delta))
	for _, dc := range j.delta {
		cs = append(cs, dc.Cookie)
	}
	sortByName(cs)
	return cs
}

func sortByName(cs []Cookie) {
	slices.SortFunc(cs, func(a, b Cookie) int {
		return strings.Compare(a.Name(), b.Name())
	})
}
