package grammar

import (
	"bytes"

	"github.com/dubizzle/furl/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed escapes are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 || bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// QueryUnescape works like [Unescape] but also converts each '+' into a space.
func QueryUnescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}
	return Unescape(T(bytes.ReplaceAll([]byte(s), []byte{'+'}, []byte{' '})))
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// If shouldEscape is nil, every char except unreserved ones is escaped.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return escape(s, shouldEscape, false)
}

// QueryEscape works like [Escape] but renders spaces as '+'.
func QueryEscape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return escape(s, shouldEscape, true)
}

func escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool, spaceToPlus bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ' && spaceToPlus:
			b.WriteByte('+')
		case shouldEscape(c):
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		default:
			b.WriteByte(c)
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
