package cookie

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func ExampleJar_Signed() {
	key := DeriveKey([]byte("0123456789abcdef0123456789abcdef"))

	jar := NewJar()
	jar.Signed(key).Add(New("session", "78f2b3"))
	fmt.Println("verified:", jar.Signed(key).Get("session").Value())

	forged := NewJar()
	forged.AddOriginal(New("session", "78f2b3"))
	if forged.Signed(key).Get("session") == nil {
		fmt.Println("unsigned value rejected")
	}
	// Output: verified: 78f2b3
	// unsigned value rejected
}

func TestSignedJarRoundTrip(t *testing.T) {
	j := NewJar()
	signed := j.Signed(DeriveKey(bytes.Repeat([]byte{1}, 32)))
	signed.Add(New("session", "78f2b3"))

	// The parent holds the tagged form: 44 base64 characters of
	// HMAC-SHA256 tag, then the plaintext.
	stored := j.Get("session")
	if stored == nil {
		t.Fatal("parent jar has no cookie")
	}
	if len(stored.Value()) != base64TagLen+len("78f2b3") ||
		!strings.HasSuffix(stored.Value(), "78f2b3") {
		t.Errorf("stored value: %q", stored.Value())
	}

	c := signed.Get("session")
	if c == nil || c.Value() != "78f2b3" {
		t.Errorf("Get: got %v", c)
	}
	if c := signed.Get("missing"); c != nil {
		t.Errorf("Get(missing): got %v", c)
	}
}

func TestSignedJarTamper(t *testing.T) {
	j := NewJar()
	signed := j.Signed(DeriveKey(bytes.Repeat([]byte{1}, 32)))
	signed.Add(New("session", "78f2b3"))

	// Appending to the plaintext breaks verification.
	tampered := *j.Get("session")
	tampered.SetValue(tampered.Value() + "x")
	j.Add(tampered)
	if c := signed.Get("session"); c != nil {
		t.Errorf("tampered value verified: %v", c)
	}
	// The parent keeps the tampered cookie as is.
	if c := j.Get("session"); c == nil ||
		!strings.HasSuffix(c.Value(), "x") {
		t.Errorf("parent value: %v", c)
	}

	// So does flipping a bit of the tag.
	signed.Add(New("session", "78f2b3"))
	b := []byte(j.Get("session").Value())
	b[0] ^= 1
	j.Add(New("session", string(b)))
	if c := signed.Get("session"); c != nil {
		t.Errorf("corrupted tag verified: %v", c)
	}
}

func TestSignedJarMalformedValues(t *testing.T) {
	j := NewJar()
	signed := j.Signed(DeriveKey(bytes.Repeat([]byte{1}, 32)))
	for _, value := range []string{
		"",
		"short",
		strings.Repeat("A", base64TagLen-1),
		strings.Repeat("A", base64TagLen),
		strings.Repeat("*", base64TagLen) + "plaintext",
	} {
		j.Add(New("n", value))
		if c := signed.Get("n"); c != nil {
			t.Errorf("value %q verified: %v", value, c)
		}
	}
}

func TestSignedJarRotation(t *testing.T) {
	oldKey := DeriveKey(bytes.Repeat([]byte{1}, 32))
	newKey := DeriveKey(bytes.Repeat([]byte{2}, 32))

	j := NewJar()
	j.Signed(oldKey).Add(New("session", "78f2b3"))

	// After rotating to [new, old], old cookies still verify.
	rotated := j.Signed(newKey, oldKey)
	if c := rotated.Get("session"); c == nil || c.Value() != "78f2b3" {
		t.Errorf("Get with rotated keys: got %v", c)
	}
	// Without the old key they do not.
	if c := j.Signed(newKey).Get("session"); c != nil {
		t.Errorf("verified under an unrelated key: %v", c)
	}
	// New cookies are signed with the primary key only.
	rotated.Add(New("fresh", "value"))
	if c := j.Signed(newKey).Get("fresh"); c == nil || c.Value() != "value" {
		t.Errorf("fresh cookie not signed with the primary key: %v", c)
	}
}

func TestSignedJarAddOriginal(t *testing.T) {
	j := NewJar()
	signed := j.Signed(DeriveKey(bytes.Repeat([]byte{1}, 32)))
	signed.AddOriginal(New("session", "78f2b3"))

	if delta := j.Delta(); len(delta) != 0 {
		t.Errorf("delta after AddOriginal: %v", delta)
	}
	if c := signed.Get("session"); c == nil || c.Value() != "78f2b3" {
		t.Errorf("Get: got %v", c)
	}
}

func TestSignedJarRemove(t *testing.T) {
	j := NewJar()
	signed := j.Signed(DeriveKey(bytes.Repeat([]byte{1}, 32)))
	signed.AddOriginal(New("session", "78f2b3"))
	signed.Remove(New("session", ""))

	if c := signed.Get("session"); c != nil {
		t.Errorf("Get after Remove: got %v", c)
	}
	delta := j.Delta()
	if len(delta) != 1 || delta[0].Name() != "session" ||
		delta[0].Value() != "" {
		t.Errorf("delta after Remove: %v", delta)
	}
}
