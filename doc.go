/*
Package furl parses, mutates and renders URLs.

A [URL] is split into scheme, username, password, host, port, [Path], [Query] and [Fragment].
Path segments and query parameters are kept decoded and are percent-encoded on rendering,
so any mutation produces a properly encoded URL string.

	u := furl.MustParse("http://example.com/a/?x=1#frag")
	u.Path().Add(furl.PathString("b c"))
	u.Query().Set(furl.Params{furl.KV("x", "2"), furl.KV("y", "a b")})
	fmt.Println(u) // http://example.com/a/b%20c?x=2&y=a+b#frag

# Paths

A path is a list of segments, the empty segment marks a directory boundary.
Segments are joined with exactly one slash on the boundary, see [JoinSegments] and [RemoveSegments].
A path of a URL with a non-empty netloc is always absolute.

# Queries

A query is an ordered multimap. [Query.Add] appends parameters,
[Query.Set] replaces parameters with the same keys in place.

# Fragments

A fragment is a path and a query optionally separated by "?".
Loading a fragment string uses a heuristic: the part after the first "?" is a query only when it contains "=".

# Errors

Fatal errors ([ErrMalformedInput], [ErrInvalidPort], [ErrReadOnly]) abort the call and leave the URL unchanged.
Advisory errors ([ErrImproperEncoding], [ErrParamOverlap]) are never returned,
they are logged and passed to [Options.OnWarning].
*/
package furl
