package furl

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"

	"github.com/dubizzle/furl/internal/ioutil"
	"github.com/dubizzle/furl/internal/util"
)

// Fragment is a URL fragment made of a path and a query, optionally separated with "?".
// Fragment is not safe for concurrent use.
type Fragment struct {
	path      *Path
	query     *Query
	separator bool
	opts      *Options
}

// NewFragment creates a new [Fragment] and loads encoded fragment s into it.
// Options are optional, default options are used if nil (see [Options]).
func NewFragment(s string, opts *Options) *Fragment {
	f := newFragment(opts)
	return f.Load(s)
}

func newFragment(opts *Options) *Fragment {
	return &Fragment{
		path:      newPath(nil, opts),
		query:     newQuery(opts),
		separator: true,
		opts:      opts,
	}
}

// Path returns the fragment path.
func (f *Fragment) Path() *Path { return f.path }

// Query returns the fragment query.
func (f *Fragment) Query() *Query { return f.query }

// Separator reports whether "?" is rendered between non-empty path and query.
func (f *Fragment) Separator() bool { return f.separator }

// SetSeparator sets whether "?" is rendered between non-empty path and query.
// Fragments like "!a=1" are built with the separator turned off.
func (f *Fragment) SetSeparator(sep bool) *Fragment {
	f.separator = sep
	return f
}

// IsEmpty reports whether both path and query are empty.
func (f *Fragment) IsEmpty() bool {
	return f == nil || f.path.IsEmpty() && f.query.IsEmpty()
}

// Load replaces the fragment with encoded fragment s.
//
// A string without "?" is a query when it contains "=", otherwise it is a path.
// A string with "?" is split on the first "?" when the rest contains "=",
// otherwise the whole string is a path.
//
//	"woofs=dogs"      -> query woofs=dogs
//	"supinthisthread" -> path supinthisthread
//	"a/b?c=d"         -> path a/b, query c=d
//	"a?b?"            -> path "a?b?"
func (f *Fragment) Load(s string) *Fragment {
	f.path.Load(nil)
	f.query.Load(nil)

	before, after, found := strings.Cut(s, "?")
	switch {
	case !found && strings.Contains(s, "="):
		f.query.Load(QueryString(s))
	case !found:
		f.path.Load(PathString(s))
	case strings.Contains(after, "="):
		f.path.Load(PathString(before))
		f.query.Load(QueryString(after))
	default:
		f.path.Load(PathString(s))
	}
	return f
}

// FragmentAdd holds components added by [Fragment.Add].
// Nil fields are skipped.
type FragmentAdd struct {
	Path PathValue
	Args QueryValue
}

// Add appends path and query parameters to the fragment.
func (f *Fragment) Add(add FragmentAdd) *Fragment {
	if add.Path != nil {
		f.path.Add(add.Path)
	}
	if add.Args != nil {
		f.query.Add(add.Args)
	}
	return f
}

// FragmentSet holds components adopted by [Fragment.Set].
// Nil fields are skipped.
type FragmentSet struct {
	Path      PathValue
	Args      QueryValue
	Separator *bool
}

// Set replaces the fragment path, query and separator.
func (f *Fragment) Set(set FragmentSet) *Fragment {
	if set.Path != nil {
		f.path.Load(set.Path)
	}
	if set.Args != nil {
		f.query.Load(set.Args)
	}
	if set.Separator != nil {
		f.separator = *set.Separator
	}
	return f
}

// FragmentRemove describes components removed by [Fragment.Remove].
type FragmentRemove struct {
	// All clears the fragment.
	All bool
	// Path is removed from the end of the fragment path.
	Path PathValue
	// Args are keys removed from the fragment query.
	Args []string
}

// Remove removes components from the fragment.
func (f *Fragment) Remove(rm FragmentRemove) *Fragment {
	if rm.All {
		f.Load("")
	}
	if rm.Path != nil {
		f.path.Remove(rm.Path)
	}
	if len(rm.Args) > 0 {
		f.query.Remove(rm.Args...)
	}
	return f
}

// RenderTo writes the encoded fragment to w.
// Escaped "?" of the path is rendered literally unless it would be taken as the separator.
func (f *Fragment) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if f == nil {
		return 0, nil
	}

	path, query := f.path.Render(opts), f.query.Render(opts)
	if path != "" && (query == "" || !f.separator) {
		path = strings.ReplaceAll(path, "%3F", "?")
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(path)
	if path != "" && query != "" && f.separator {
		cw.WriteString("?")
	}
	cw.WriteString(query)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded fragment.
func (f *Fragment) Render(opts *RenderOptions) string {
	if f == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	f.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the encoded fragment.
func (f *Fragment) String() string {
	if f == nil {
		return ""
	}
	return f.Render(nil)
}

// Format implements [fmt.Formatter] for custom formatting of the fragment.
func (f *Fragment) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			f.RenderTo(s, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(s, f.String())
		return
	case 'q':
		fmt.Fprint(s, strconv.Quote(f.String()))
		return
	default:
		type hideMethods Fragment
		type Fragment hideMethods
		fmt.Fprintf(s, fmt.FormatString(s, verb), (*Fragment)(f))
		return
	}
}

// Clone returns a deep copy of the fragment.
func (f *Fragment) Clone() *Fragment {
	if f == nil {
		return nil
	}
	return &Fragment{
		path:      f.path.Clone(),
		query:     f.query.Clone(),
		separator: f.separator,
		opts:      f.opts,
	}
}

// Equal reports whether the fragment equals val.
// Val can be [Fragment], *[Fragment], a string or a [fmt.Stringer], the latter two are compared with the encoded fragment.
func (f *Fragment) Equal(val any) bool {
	var other *Fragment
	switch v := val.(type) {
	case Fragment:
		other = &v
	case *Fragment:
		other = v
	case string:
		return f.String() == v
	case fmt.Stringer:
		return f.String() == v.String()
	default:
		return false
	}

	if f == other {
		return true
	} else if f == nil || other == nil {
		return false
	}
	return f.separator == other.separator &&
		f.path.Equal(other.path) &&
		f.query.Equal(other.query)
}

// Hash returns the hash of the encoded fragment.
func (f *Fragment) Hash() uint64 { return xxhash.Sum64String(f.String()) }

// MarshalText implements [encoding.TextMarshaler].
func (f *Fragment) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Fragment) UnmarshalText(data []byte) error {
	if f.path == nil {
		*f = *newFragment(f.opts)
	}
	f.Load(string(data))
	return nil
}

// LogValue implements [slog.LogValuer].
func (f *Fragment) LogValue() slog.Value {
	if f == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("path", f.path.String()),
		slog.String("query", f.query.String()),
		slog.Bool("separator", f.separator),
	)
}
