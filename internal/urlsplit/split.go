// Package urlsplit splits URL strings into their five generic parts, joins them back
// and resolves references against a base URL.
//
// Splitting never depends on the scheme: query and fragment are separated for any scheme,
// so "mailto:x?subject=y" and "git+ssh://host/repo?ref=main" are handled the same way as http URLs.
package urlsplit

//go:generate go tool errtrace -w .

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/dubizzle/furl/internal/errorutil"
	"github.com/dubizzle/furl/internal/grammar"
	"github.com/dubizzle/furl/internal/types"
)

// Parts holds raw, still encoded, parts of a URL.
type Parts struct {
	Scheme   string `json:"scheme,omitempty"`
	Netloc   string `json:"netloc,omitempty"`
	Path     string `json:"path,omitempty"`
	Query    string `json:"query,omitempty"`
	Fragment string `json:"fragment,omitempty"`
}

// Split splits raw URL into the parts.
//
// When raw contains "://", everything before the first colon is taken as the scheme verbatim
// unless it spans over a path, query or fragment delimiter.
// Otherwise the prefix before the first colon becomes a lowercased scheme only if it matches
// the RFC 3986 scheme rule and the rest is not a port number, so "localhost:8080" is a path.
// Unbalanced brackets in the authority return [errorutil.ErrMalformedInput].
func Split(raw string) (Parts, error) {
	var (
		parts  Parts
		rest   = raw
		verbat = strings.Contains(raw, "://")
	)

	if i := strings.IndexByte(rest, ':'); i > 0 {
		switch {
		case verbat && !strings.ContainsAny(rest[:i], "/?#"):
			parts.Scheme, rest = rest[:i], rest[i+1:]
		case grammar.IsScheme(rest[:i]) && !isPort(rest[i+1:]):
			parts.Scheme, rest = strings.ToLower(rest[:i]), rest[i+1:]
		}
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		i := types.NetlocEnd(rest)
		parts.Netloc, rest = rest[:i], rest[i:]
		if !types.ValidBrackets(parts.Netloc) {
			return Parts{}, errtrace.Wrap(errorutil.NewWrapperError(errorutil.ErrMalformedInput, "invalid IPv6 URL %q", raw))
		}
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest, parts.Fragment = rest[:i], rest[i+1:]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, parts.Query = rest[:i], rest[i+1:]
	}
	parts.Path = rest
	return parts, nil
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

var netlocSchemes = []string{
	"ftp", "http", "gopher", "nntp", "telnet", "imap", "wais", "file", "mms", "https", "shttp",
	"snews", "prospero", "rtsp", "rtspu", "rsync", "svn", "svn+ssh", "sftp", "nfs", "git", "git+ssh",
}

// UsesNetloc reports whether URLs of the scheme are rendered with "//" even when the authority is empty.
func UsesNetloc(scheme string) bool {
	return slices.Contains(netlocSchemes, scheme)
}

// Unsplit joins the parts back into a URL string.
// "//" is added when the netloc is non-empty or the scheme uses a netloc,
// a path that follows an authority gets the leading slash.
func Unsplit(parts Parts) string {
	sb := new(strings.Builder)
	if parts.Scheme != "" {
		sb.WriteString(parts.Scheme)
		sb.WriteByte(':')
	}
	path := parts.Path
	if parts.Netloc != "" || UsesNetloc(parts.Scheme) && !strings.HasPrefix(path, "//") {
		if path != "" && path[0] != '/' {
			path = "/" + path
		}
		sb.WriteString("//")
		sb.WriteString(parts.Netloc)
	}
	sb.WriteString(path)
	if parts.Query != "" {
		sb.WriteByte('?')
		sb.WriteString(parts.Query)
	}
	if parts.Fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(parts.Fragment)
	}
	return sb.String()
}
