package cookie

import (
	"fmt"
	"testing"
	"time"
)

func ExampleBuild() {
	c := Build("session", "78f2b3").
		Domain("example.com").
		Path("/").
		MaxAge(time.Hour).
		Secure(true).
		HTTPOnly(true).
		Cookie()
	fmt.Println(c)
	// Output: session=78f2b3; HttpOnly; Secure; Path=/; Domain=example.com; Max-Age=3600
}

func TestBuilder(t *testing.T) {
	expires := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	c := Build("session", "78f2b3").
		Path("/app").
		Domain("example.com").
		MaxAge(time.Hour).
		ExpiresTime(expires).
		Secure(true).
		HTTPOnly(true).
		Partitioned(true).
		SameSite(SameSiteStrict).
		Cookie()

	if c.Name() != "session" || c.Value() != "78f2b3" {
		t.Errorf("got %q=%q", c.Name(), c.Value())
	}
	if c.Path() != "/app" {
		t.Errorf("Path: got %q", c.Path())
	}
	if c.Domain() != "example.com" {
		t.Errorf("Domain: got %q", c.Domain())
	}
	if d, ok := c.MaxAge(); !ok || d != time.Hour {
		t.Errorf("MaxAge: got %v, %v", d, ok)
	}
	if got, ok := c.ExpiresTime(); !ok || !got.Equal(expires) {
		t.Errorf("ExpiresTime: got %v, %v", got, ok)
	}
	if secure, ok := c.Secure(); !ok || !secure {
		t.Errorf("Secure: got %v, %v", secure, ok)
	}
	if httpOnly, ok := c.HTTPOnly(); !ok || !httpOnly {
		t.Errorf("HTTPOnly: got %v, %v", httpOnly, ok)
	}
	if partitioned, ok := c.Partitioned(); !ok || !partitioned {
		t.Errorf("Partitioned: got %v, %v", partitioned, ok)
	}
	if c.SameSite() != SameSiteStrict {
		t.Errorf("SameSite: got %v", c.SameSite())
	}
}

func TestBuilderIndependence(t *testing.T) {
	// A Builder is a value: extending a chain in two directions must not
	// let the branches see each other's attributes.
	base := Build("name", "value").Path("/app")
	a := base.Secure(true).Cookie()
	b := base.HTTPOnly(true).Cookie()

	if _, ok := a.HTTPOnly(); ok {
		t.Errorf("branch a picked up HttpOnly from branch b")
	}
	if _, ok := b.Secure(); ok {
		t.Errorf("branch b picked up Secure from branch a")
	}
	if a.Path() != "/app" || b.Path() != "/app" {
		t.Errorf("branches lost the shared Path: %q, %q", a.Path(), b.Path())
	}
}

func TestBuilderPermanent(t *testing.T) {
	c := Build("name", "value").Permanent().Cookie()
	if d, ok := c.MaxAge(); !ok || d != twentyYears {
		t.Errorf("MaxAge: got %v, %v", d, ok)
	}
	if when, ok := c.ExpiresTime(); !ok || !when.After(time.Now()) {
		t.Errorf("ExpiresTime: got %v, %v", when, ok)
	}
}

func TestBuilderRemoval(t *testing.T) {
	c := Build("name", "whatever").Path("/app").Removal().Cookie()
	if c.Value() != "" {
		t.Errorf("value: got %q", c.Value())
	}
	if d, ok := c.MaxAge(); !ok || d != 0 {
		t.Errorf("MaxAge: got %v, %v", d, ok)
	}
	if when, ok := c.ExpiresTime(); !ok || !when.Before(time.Now()) {
		t.Errorf("ExpiresTime: got %v, %v", when, ok)
	}
	if c.Path() != "/app" {
		t.Errorf("Path: got %q", c.Path())
	}
}

func TestBuildFrom(t *testing.T) {
	orig := mustParse(t, "session=78f2b3; Path=/app")
	c := BuildFrom(orig).Secure(true).Cookie()
	if c.Name() != "session" || c.Value() != "78f2b3" || c.Path() != "/app" {
		t.Errorf("BuildFrom lost fields: %v", c)
	}
	if secure, ok := c.Secure(); !ok || !secure {
		t.Errorf("Secure: got %v, %v", secure, ok)
	}
	if _, ok := orig.Secure(); ok {
		t.Errorf("BuildFrom mutated its argument: %v", orig)
	}
}
