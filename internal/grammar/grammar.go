// Package grammar implements RFC 3986 validators of URL components and percent-encoding.
package grammar

import (
	"github.com/ghettovoice/abnf"

	"github.com/dubizzle/furl/internal/constraints"
	"github.com/dubizzle/furl/internal/grammar/rfc3986"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Safe characters of the URL components, in addition to the unreserved ones.
const (
	PathSegmentSafe = ":@-._~!$&'()*+,;="
	QueryKeySafe    = "/?:@-._~!$'()*,"
	QueryValueSafe  = "/?:@-._~!$'()*,="
)

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks on RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

type charset [256]bool

func newCharset(chars string) *charset {
	var cs charset
	for i := 0; i < len(chars); i++ {
		cs[chars[i]] = true
	}
	return &cs
}

func (cs *charset) has(c byte) bool { return cs[c] }

// ShouldEscape returns an escape callback for [Escape] and [QueryEscape]
// that keeps unreserved characters and the characters from safe.
func ShouldEscape(safe string) func(c byte) bool {
	cs := newCharset(safe)
	return func(c byte) bool { return !IsCharUnreserved(c) && !cs.has(c) }
}

// IsScheme reports whether s is a valid URL scheme:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	return matches(rfc3986.Rules().Scheme, s)
}

// IsPathSegment reports whether s is a properly encoded path segment:
//
//	segment = *( unreserved / pct-encoded / sub-delims / ":" / "@" )
func IsPathSegment[T constraints.Byteseq](s T) bool {
	return matches(rfc3986.Rules().Segment, s)
}

// IsQueryKey reports whether s is a properly encoded query key.
// It is a query without the "=" character.
func IsQueryKey[T constraints.Byteseq](s T) bool {
	return matches(rfc3986.Rules().QueryKey, s)
}

// IsQueryValue reports whether s is a properly encoded query value.
func IsQueryValue[T constraints.Byteseq](s T) bool {
	return matches(rfc3986.Rules().Query, s)
}

func matches[T constraints.Byteseq](rule abnf.Rule, s T) bool {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
