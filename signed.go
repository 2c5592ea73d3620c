package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// base64TagLen is the length of the base64 prefix carrying an
// HMAC-SHA256 tag on a signed cookie value.
var base64TagLen = base64.StdEncoding.EncodedLen(sha256.Size)

// A SignedJar is a child of a Jar that signs the values of cookies
// added to it and verifies the values of cookies retrieved from it.
// Signing provides integrity and authenticity, not confidentiality:
// clients can read a signed value but cannot alter it or forge one.
//
// The stored form of a value is the base64 of its HMAC-SHA256 tag
// followed by the value itself.
type SignedJar struct {
	parent *Jar
	keys   []*Key
}

// Signed returns a child jar that signs and verifies cookies with the
// given keys. New signatures are made with keys[0]; all keys are tried
// in order during verification, so listing an old key after the current
// one keeps previously issued cookies valid across a rotation.
// Signed panics if called with no keys.
func (j *Jar) Signed(keys ...*Key) *SignedJar {
	if len(keys) == 0 {
		panic("cookie: Signed requires at least one key")
	}
	return &SignedJar{parent: j, keys: keys}
}

// Get returns the cookie named name from the parent jar, with its value
// verified and the tag stripped, or nil if there is no such cookie or
// its value does not verify under any key.
func (sj *SignedJar) Get(name string) *Cookie {
	c := sj.parent.Get(name)
	if c == nil {
		return nil
	}
	value, ok := sj.verify(c.Value())
	if !ok {
		return nil
	}
	c.SetValue(value)
	return c
}

// Add signs c's value and adds the result to the parent jar.
func (sj *SignedJar) Add(c Cookie) {
	c.SetValue(sj.sign(c.Value()))
	sj.parent.Add(c)
}

// AddOriginal signs c's value and adds the result to the parent jar as
// an original cookie, leaving the parent's delta untouched.
func (sj *SignedJar) AddOriginal(c Cookie) {
	c.SetValue(sj.sign(c.Value()))
	sj.parent.AddOriginal(c)
}

// Remove removes c from the parent jar. See Jar.Remove.
func (sj *SignedJar) Remove(c Cookie) {
	sj.parent.Remove(c)
}

func (sj *SignedJar) sign(value string) string {
	mac := hmac.New(sha256.New, sj.keys[0].signing())
	mac.Write([]byte(value))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)) + value
}

func (sj *SignedJar) verify(value string) (string, bool) {
	if len(value) < base64TagLen {
		return "", false
	}
	tag, err := base64.StdEncoding.DecodeString(value[:base64TagLen])
	if err != nil {
		return "", false
	}
	rest := value[base64TagLen:]
	for _, key := range sj.keys {
		mac := hmac.New(sha256.New, key.signing())
		mac.Write([]byte(rest))
		if hmac.Equal(tag, mac.Sum(nil)) {
			return rest, true
		}
	}
	return "", false
}
