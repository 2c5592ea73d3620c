package cookie

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func checkParse(t *testing.T, input string, expected, actual Cookie, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("parsing: %q\nerror: %v", input, err)
		return
	}
	if !sameCookie(expected, actual) {
		t.Errorf("parsing: %q\nexpected: %v\nactual:   %v",
			input, expected, actual)
	}
}

// sameCookie is Equal plus the SameSite attribute, which Equal does not
// compare.
func sameCookie(a, b Cookie) bool {
	return a.Equal(b) && a.SameSite() == b.SameSite()
}

func mustParse(t *testing.T, s string) Cookie {
	t.Helper()
	c, err := Parse(s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return c
}

func checkRoundTrip(
	t *testing.T,
	generateFunc func(Cookie) string,
	parseFunc func(string) (Cookie, error),
	nameExample, valueExample string,
) {
	// Property-based test: Rendering and then parsing a valid cookie
	// should give the same cookie (modulo canonicalization).
	// nameExample and valueExample are examples for likeString.
	t.Helper()
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			input := randCookie(r,
				likeString(r, nameExample), likeString(r, valueExample))
			s := generateFunc(input)
			t.Logf("generated: %q", s)
			output, err := parseFunc(s)
			if err != nil {
				t.Fatalf("parsing %q: %v", s, err)
			}
			if !sameCookie(input, output) {
				t.Errorf("round-trip failure:\ninput:  %v\noutput: %v",
					input, output)
			}
		})
	}
}

// randCookie returns a cookie with the given name and value and a random
// assortment of attributes. A rendered SameSite=None does not survive
// reparsing (see Parse), and Partitioned implies Secure in the rendered
// form, so the generator avoids the combinations that cannot round-trip.
func randCookie(r *rand.Rand, name, value string) Cookie {
	c := New(name, value)
	if r.Intn(2) == 0 {
		c.SetPath("/" + randString(r, alnum+"-._~/"))
	}
	if r.Intn(2) == 0 {
		c.SetDomain(randString(r, loalpha) + ".example")
	}
	if r.Intn(2) == 0 {
		c.SetMaxAge(time.Duration(r.Intn(86400)) * time.Second)
	}
	if r.Intn(2) == 0 {
		c.SetExpiresTime(randTime(r))
	}
	if r.Intn(2) == 0 {
		c.SetHTTPOnly(true)
	}
	switch r.Intn(4) {
	case 0:
		c.SetSameSite(SameSiteStrict)
	case 1:
		c.SetSameSite(SameSiteLax)
	}
	switch {
	case r.Intn(4) == 0:
		c.SetPartitioned(true)
		c.SetSecure(true)
	case r.Intn(2) == 0:
		c.SetSecure(true)
	}
	return c
}

// likeString returns a random string like ex, where ex is one of a few
// fixed example descriptions, or several joined with " | " to choose
// between at random.
func likeString(r *rand.Rand, ex string) string {
	if exs := strings.Split(ex, " | "); len(exs) > 1 {
		return likeString(r, exs[r.Intn(len(exs))])
	}
	switch ex {
	case "empty":
		return ""
	case "token":
		return randString(r, tchar)
	case "cookie-octets":
		return randString(r, cookieOctets)
	case "UTF-8":
		return randUTF8(r)
	default:
		panic(fmt.Sprintf("cannot generate string like %q", ex))
	}
}

const (
	loalpha = "abcdefghijklmnopqrstuvwxyz"
	hialpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alpha   = loalpha + hialpha
	digit   = "0123456789"
	alnum   = alpha + digit
	tchar   = "!#$%&'*+-.^_`|~" + alnum
	// cookie-octet from RFC 6265 Section 4.1.1.
	cookieOctets = "!#$%&'()*+-./:<=>?@[]^_`{|}~" + alnum
)

func randString(r *rand.Rand, alphabet string) string {
	b := make([]byte, 1+r.Intn(10))
	for i := 0; i < len(b); i++ {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func randUTF8(r *rand.Rand) string {
	runes := make([]rune, 1+r.Intn(10))
	for i := range runes {
		runes[i] = rune(r.Intn(0xFFFF))
	}
	return string(runes)
}

func randTime(r *rand.Rand) time.Time {
	return time.Date(2000+r.Intn(30), time.Month(1+r.Intn(12)), 1+r.Intn(28),
		r.Intn(24), r.Intn(60), r.Intn(60), 0, time.UTC)
}
