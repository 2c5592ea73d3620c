package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"unicode/utf8"
)

// nonceLen is the standard GCM nonce size.
const nonceLen = 12

// base64NonceLen is the length of the base64 prefix carrying the nonce
// on an encrypted cookie value.
var base64NonceLen = base64.StdEncoding.EncodedLen(nonceLen)

// A PrivateJar is a child of a Jar that encrypts the values of cookies
// added to it and decrypts the values of cookies retrieved from it,
// providing confidentiality on top of integrity and authenticity.
// Values are sealed with AES-256-GCM under a fresh random nonce.
//
// The stored form of a value is the base64 of the nonce followed by the
// base64 of the sealed value.
type PrivateJar struct {
	parent *Jar
	keys   []*Key
}

// Private returns a child jar that encrypts and decrypts cookies with
// the given keys. New values are sealed with keys[0]; all keys are
// tried in order during decryption, so listing an old key after the
// current one keeps previously issued cookies valid across a rotation.
// Private panics if called with no keys.
func (j *Jar) Private(keys ...*Key) *PrivateJar {
	if len(keys) == 0 {
		panic("cookie: Private requires at least one key")
	}
	return &PrivateJar{parent: j, keys: keys}
}

// Get returns the cookie named name from the parent jar, with its value
// decrypted, or nil if there is no such cookie or its value does not
// decrypt under any key.
func (pj *PrivateJar) Get(name string) *Cookie {
	c := pj.parent.Get(name)
	if c == nil {
		return nil
	}
	value, ok := pj.unseal(c.Value())
	if !ok {
		return nil
	}
	c.SetValue(value)
	return c
}

// Add seals c's value and adds the result to the parent jar.
func (pj *PrivateJar) Add(c Cookie) {
	c.SetValue(pj.seal(c.Value()))
	pj.parent.Add(c)
}

// AddOriginal seals c's value and adds the result to the parent jar as
// an original cookie, leaving the parent's delta untouched.
func (pj *PrivateJar) AddOriginal(c Cookie) {
	c.SetValue(pj.seal(c.Value()))
	pj.parent.AddOriginal(c)
}

// Remove removes c from the parent jar. See Jar.Remove.
func (pj *PrivateJar) Remove(c Cookie) {
	pj.parent.Remove(c)
}

func (pj *PrivateJar) seal(value string) string {
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		panic("cookie: reading random nonce: " + err.Error())
	}
	sealed := pj.keys[0].aead().Seal(nil, nonce, []byte(value), nil)
	return base64.StdEncoding.EncodeToString(nonce) +
		base64.StdEncoding.EncodeToString(sealed)
}

func (pj *PrivateJar) unseal(value string) (string, bool) {
	if len(value) <= base64NonceLen {
		return "", false
	}
	nonce, err := base64.StdEncoding.DecodeString(value[:base64NonceLen])
	if err != nil || len(nonce) != nonceLen {
		return "", false
	}
	sealed, err := base64.StdEncoding.DecodeString(value[base64NonceLen:])
	if err != nil {
		return "", false
	}
	for _, key := range pj.keys {
		plain, err := key.aead().Open(nil, nonce, sealed, nil)
		if err != nil {
			continue
		}
		// A sealed value is always a well-formed string; reject
		// anything else even though it authenticated.
		if !utf8.Valid(plain) {
			return "", false
		}
		return string(plain), true
	}
	return "", false
}

// aead builds the AES-256-GCM sealer for k's encryption half. Neither
// constructor can fail on a 32-byte AES key.
func (k *Key) aead() cipher.AEAD {
	block, err := aes.NewCipher(k.encryption())
	if err != nil {
		panic("cookie: " + err.Error())
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic("cookie: " + err.Error())
	}
	return aead
}
