package urlsplit

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/dubizzle/furl/internal/grammar"
)

// Resolve resolves reference ref against base URL as described in RFC 3986 Section 5.2.
// Any base scheme is treated as hierarchical. An empty ref returns base unchanged.
func Resolve(base, ref string) (string, error) {
	if ref == "" {
		return base, nil
	}

	b, err := Split(base)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	r, err := Split(ref)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var t Parts
	if r.Scheme != "" {
		t = r
		t.Path = removeDotSegments(r.Path)
		return Unsplit(t), nil
	}

	switch {
	case hasAuthority(ref):
		t.Netloc = r.Netloc
		t.Path = removeDotSegments(r.Path)
		t.Query = r.Query
	case r.Path == "":
		t.Netloc = b.Netloc
		t.Path = b.Path
		if hasQuery(ref) {
			t.Query = r.Query
		} else {
			t.Query = b.Query
		}
	default:
		t.Netloc = b.Netloc
		if strings.HasPrefix(r.Path, "/") {
			t.Path = removeDotSegments(r.Path)
		} else {
			t.Path = removeDotSegments(merge(b, hasAuthority(base), r.Path))
		}
		t.Query = r.Query
	}
	t.Scheme = b.Scheme
	t.Fragment = r.Fragment
	return Unsplit(t), nil
}

func hasAuthority(s string) bool {
	if i := strings.IndexByte(s, ':'); i > 0 && grammar.IsScheme(s[:i]) {
		s = s[i+1:]
	}
	return strings.HasPrefix(s, "//")
}

func hasQuery(s string) bool {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.Contains(s, "?")
}

func merge(base Parts, baseAuth bool, path string) string {
	if baseAuth && base.Path == "" {
		return "/" + path
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + path
	}
	return path
}

// removeDotSegments interprets and removes "." and ".." complete path segments.
// See RFC 3986 Section 5.2.4.
func removeDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	var out []string
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "." || in == "..":
			in = ""
		default:
			i := strings.IndexByte(in[1:], '/')
			if i < 0 {
				out = append(out, in)
				in = ""
			} else {
				out = append(out, in[:i+1])
				in = in[i+1:]
			}
		}
	}
	return strings.Join(out, "")
}
