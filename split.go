package cookie

import (
	"iter"
	"strings"
)

// SplitParse parses s as the value of a Cookie request header: name=value
// pairs separated by ";" (RFC 6265 Section 5.4). It returns an iterator
// over the parse result of each pair, in order. Pairs that are empty or
// only whitespace are skipped entirely; a malformed pair yields its error
// and iteration carries on with the next pair.
//
//	for c, err := range cookie.SplitParse(header) {
//		if err != nil {
//			continue
//		}
//		// use c
//	}
func SplitParse(s string) iter.Seq2[Cookie, error] {
	return splitParse(s, false)
}

// SplitParseEncoded is like SplitParse but percent-decodes names and
// values, as in ParseEncoded.
func SplitParseEncoded(s string) iter.Seq2[Cookie, error] {
	return splitParse(s, true)
}

func splitParse(s string, decode bool) iter.Seq2[Cookie, error] {
	return func(yield func(Cookie, error) bool) {
		for _, seg := range strings.Split(s, ";") {
			if strings.TrimSpace(seg) == "" {
				continue
			}
			if !yield(parse(seg, decode)) {
				return
			}
		}
	}
}
