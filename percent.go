package cookie

import (
	"fmt"
	"strings"
)

// percentDecode decodes %XX escapes in s. Unlike url.PathUnescape, it never
// fails: a "%" not followed by two hex digits is taken literally, which is
// how user agents treat the stray percent signs that servers send.
func percentDecode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			if hi, ok := unhex(s[i+1]); ok {
				if lo, ok := unhex(s[i+2]); ok {
					b.WriteByte(hi<<4 | lo)
					i += 3
					continue
				}
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func percentEncode(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		b.WriteString(pctEncoding[s[i]])
	}
}

// url.PathEscape doesn't escape "=", and url.QueryEscape escapes " " into
// "+", either of which would corrupt a cookie, so we have to roll our own
// percent-encoding.
var pctEncoding [256]string

func init() {
	// Precompute percent-encoding. The escaped set is everything outside
	// printable US-ASCII, plus the bytes that delimit or confuse cookie
	// parsing: whitespace, ";", ",", "=", quotes, "%" itself, and the
	// troublemakers of the URL userinfo encode set.
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		plain := b > ' ' && b < 0x7F &&
			!strings.ContainsRune(`",;=\%#<>?{}/:@[]^|`+"`", rune(b))
		if plain {
			pctEncoding[b] = string([]byte{b})
		} else {
			pctEncoding[b] = fmt.Sprintf("%%%02X", b)
		}
	}
}
