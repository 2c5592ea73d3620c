package cookie

var (
	isCookieOctet [256]bool
)

func init() {
	// cookie-octet (RFC 6265 Section 4.1.1): any printable US-ASCII byte
	// except DQUOTE, comma, semicolon and backslash.
	for b := 0x21; b <= 0x7E; b++ {
		isCookieOctet[b] = b != '"' && b != ',' && b != ';' && b != '\\'
	}
}

// trimSpan shrinks the range [from:to] in s past any leading and trailing
// whitespace, keeping the range valid within s so that the caller can store
// it instead of a copied substring.
func trimSpan(s string, from, to int) (int, int) {
	for from < to && isWS(s[from]) {
		from++
	}
	for to > from && isWS(s[to-1]) {
		to--
	}
	return from, to
}

func isWS(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// trimQuotes undoes one layer of the quoting that RFC 6265 Section 4.1.1
// allows around a cookie value. Only a double quote as both the first and
// the last byte counts; a lone quote on either end is part of the value.
func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func optBoolEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
