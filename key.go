package cookie

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeyLen is the length of a full Key in bytes: a signing key and an
	// encryption key back to back.
	KeyLen = signingKeyLen + encryptionKeyLen

	// signingKeyLen is the HMAC-SHA256 key size used by SignedJar, one
	// SHA-256 block.
	signingKeyLen = 64

	// encryptionKeyLen is the AES-256 key size used by PrivateJar.
	encryptionKeyLen = 32

	// minMasterLen is the least master-secret material DeriveKey accepts.
	minMasterLen = 32
)

// keysInfo binds derived keys to their purpose: the same master secret
// expanded elsewhere with different info yields unrelated keys.
const keysInfo = "COOKIE;SIGNED:HMAC-SHA256;PRIVATE:AEAD-AES-256-GCM"

// A Key is the cryptographic key material behind SignedJar and PrivateJar:
// KeyLen bytes, of which the first signingKeyLen sign and the rest encrypt.
// A Key is immutable once constructed and safe for concurrent use.
//
// Obtain a Key from GenerateKey for a fresh random key, DeriveKey to expand
// a configured master secret, or KeyFrom for raw key material of full
// length. Key material must be cryptographically random; a Key made from a
// password or other low-entropy secret protects nothing.
type Key struct {
	material [KeyLen]byte
}

// GenerateKey returns a new Key from the operating system's random source,
// panicking if that source fails.
func GenerateKey() *Key {
	k := &Key{}
	if _, err := rand.Read(k.material[:]); err != nil {
		panic("cookie: reading random key material: " + err.Error())
	}
	return k
}

// KeyFrom returns a Key using the first KeyLen bytes of b, and panics when
// b is shorter than that: expanding less material into a full key is
// DeriveKey's job.
func KeyFrom(b []byte) *Key {
	if len(b) < KeyLen {
		panic("cookie: key material shorter than KeyLen bytes")
	}
	k := &Key{}
	copy(k.material[:], b[:KeyLen])
	return k
}

// DeriveKey expands a master secret of at least 32 bytes into a full Key
// with HKDF over SHA-256 (RFC 5869). The same master secret always derives
// the same Key, so a secret held in configuration keeps its cookies
// readable across restarts. DeriveKey panics on a shorter master secret.
func DeriveKey(master []byte) *Key {
	if len(master) < minMasterLen {
		panic("cookie: master key material shorter than 32 bytes")
	}
	k := &Key{}
	r := hkdf.New(sha256.New, master, nil, []byte(keysInfo))
	if _, err := io.ReadFull(r, k.material[:]); err != nil {
		panic("cookie: deriving key: " + err.Error())
	}
	return k
}

// Signing returns a copy of the signing half of the key.
func (k *Key) Signing() []byte {
	b := make([]byte, signingKeyLen)
	copy(b, k.signing())
	return b
}

// Encryption returns a copy of the encryption half of the key.
func (k *Key) Encryption() []byte {
	b := make([]byte, encryptionKeyLen)
	copy(b, k.encryption())
	return b
}

func (k *Key) signing() []byte {
	return k.material[:signingKeyLen]
}

func (k *Key) encryption() []byte {
	return k.material[signingKeyLen:]
}
