// Package rfc3986 provides ABNF operators and rules of the URI generic syntax components
// that furl validates: scheme, path segment and query.
package rfc3986

//go:generate go tool abnf generate ./abnf.yml
