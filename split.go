package furl

//go:generate go tool mockgen -destination=mock_test.go -package=furl_test . Splitter,Joiner

import (
	"braces.dev/errtrace"

	"github.com/dubizzle/furl/internal/urlsplit"
)

// Parts holds raw, still encoded, parts of a URL: scheme, netloc, path, query and fragment.
type Parts = urlsplit.Parts

// Splitter splits a raw URL into [Parts].
type Splitter interface {
	Split(raw string) (Parts, error)
}

// SplitterFunc is a function adapter for [Splitter].
type SplitterFunc func(raw string) (Parts, error)

func (fn SplitterFunc) Split(raw string) (Parts, error) { return errtrace.Wrap2(fn(raw)) }

// Joiner resolves a reference against a base URL.
type Joiner interface {
	Join(base, ref string) (string, error)
}

// JoinerFunc is a function adapter for [Joiner].
type JoinerFunc func(base, ref string) (string, error)

func (fn JoinerFunc) Join(base, ref string) (string, error) { return errtrace.Wrap2(fn(base, ref)) }

// DefaultSplitter returns the default splitter.
//
// It splits query and fragment for any scheme and
// returns [ErrMalformedInput] on unbalanced IPv6 literal brackets.
func DefaultSplitter() Splitter { return SplitterFunc(urlsplit.Split) }

// DefaultJoiner returns the default joiner.
//
// It resolves references as described in RFC 3986 Section 5.2, treating every scheme as hierarchical.
// An empty reference returns the base unchanged.
func DefaultJoiner() Joiner { return JoinerFunc(urlsplit.Resolve) }
