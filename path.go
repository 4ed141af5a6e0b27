package furl

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"

	"github.com/dubizzle/furl/internal/grammar"
	"github.com/dubizzle/furl/internal/util"
)

// PathValue is an input accepted by [Path] methods.
// It is one of [PathString], [Segments] or [WholePath].
type PathValue interface {
	pathValue()
}

// PathString is a percent-encoded path string, e.g. "/a/b%20c/".
// Each slash-delimited token is decoded independently.
type PathString string

// Segments is a list of already decoded path segments.
// The empty segment marks a directory boundary: Segments{"a", ""} is "a/".
type Segments []string

// WholePath removes the whole path when passed to [Path.Remove].
// Other methods treat it as an empty path.
type WholePath struct{}

func (PathString) pathValue() {}
func (Segments) pathValue()   {}
func (WholePath) pathValue()  {}

// Path is a URL or fragment path made of decoded segments.
//
// Path of a URL with a non-empty netloc is always absolute, see [Path.IsAbsolute].
// Path is not safe for concurrent use.
type Path struct {
	segments []string
	absolute bool
	// forceAbs reports whether the owner has a netloc.
	forceAbs func() bool
	opts     *Options
}

// NewPath creates a new [Path] and loads v into it.
// Options are optional, default options are used if nil (see [Options]).
func NewPath(v PathValue, opts *Options) *Path {
	p := newPath(nil, opts)
	return p.Load(v)
}

func newPath(forceAbs func() bool, opts *Options) *Path {
	return &Path{
		segments: []string{},
		forceAbs: forceAbs,
		opts:     opts,
	}
}

func (p *Path) forced() bool {
	return p.forceAbs != nil && len(p.segments) > 0 && p.forceAbs()
}

// Segments returns a copy of the path segments.
func (p *Path) Segments() []string {
	if p == nil {
		return []string{}
	}
	return util.CloneStrings(p.segments)
}

// IsAbsolute reports whether the path starts with a slash.
func (p *Path) IsAbsolute() bool {
	if p == nil {
		return false
	}
	return p.forced() || p.absolute
}

// SetAbsolute changes the absolute flag.
// It returns [ErrReadOnly] when the path belongs to a URL with a non-empty netloc.
func (p *Path) SetAbsolute(abs bool) error {
	if p.forced() {
		return errtrace.Wrap(NewReadOnlyError("path of a URL with a netloc is always absolute"))
	}
	p.absolute = abs
	return nil
}

// IsDir reports whether the path is empty or ends with a slash.
func (p *Path) IsDir() bool {
	if p == nil {
		return true
	}
	return len(p.segments) == 0 || p.segments[len(p.segments)-1] == ""
}

// IsFile reports whether the last path segment is not empty.
func (p *Path) IsFile() bool { return !p.IsDir() }

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool { return p == nil || len(p.segments) == 0 }

// Load replaces the path with v.
func (p *Path) Load(v PathValue) *Path {
	var segs []string
	switch v := v.(type) {
	case PathString:
		if v != "" {
			segs = p.split(string(v))
		}
	case Segments:
		segs = slices.Clone(v)
	}
	p.load(segs)
	return p
}

func (p *Path) load(segs []string) {
	// forced is evaluated against the current segments, so a path that
	// has just got its first segments is not forced yet.
	if p.forced() {
		p.absolute = len(segs) > 0
	} else {
		p.absolute = len(segs) > 0 && segs[0] == ""
	}
	if p.absolute && len(segs) > 1 && segs[0] == "" {
		segs = segs[1:]
	}
	p.segments = util.CloneStrings(segs)
}

// Set is an alias for [Path.Load].
func (p *Path) Set(v PathValue) *Path { return p.Load(v) }

// Add appends v to the path, keeping exactly one slash on the boundary.
func (p *Path) Add(v PathValue) *Path {
	var newSegs []string
	switch v := v.(type) {
	case PathString:
		newSegs = p.split(string(v))
	case Segments:
		newSegs = slices.Clone(v)
	}

	base := p.segments
	switch {
	case p.IsAbsolute() && len(base) == 0:
		base = []string{"", ""}
	case p.IsAbsolute():
		base = append([]string{""}, base...)
	case isSlash(base) && len(newSegs) > 0 && newSegs[0] != "":
		newSegs = append([]string{""}, newSegs...)
	}
	p.load(JoinSegments(base, newSegs))
	return p
}

// Remove removes v from the end of the path.
// [WholePath] clears the path, a non-matching suffix leaves the path as is.
func (p *Path) Remove(v PathValue) *Path {
	var rm []string
	switch v := v.(type) {
	case WholePath:
		p.load(nil)
		return p
	case PathString:
		rm = p.split(string(v))
	case Segments:
		rm = slices.Clone(v)
	default:
		return p
	}

	base := p.segments
	if p.IsAbsolute() {
		base = append([]string{""}, base...)
	}
	p.load(RemoveSegments(base, rm))
	return p
}

// split splits encoded path string s into decoded segments.
func (p *Path) split(s string) []string {
	segs := strings.Split(s, "/")
	if p.opts.strict() {
		for _, seg := range segs {
			if !grammar.IsPathSegment(seg) {
				p.opts.warn(newAdvisoryError(ErrImproperEncoding,
					"improperly encoded path string received: %q; proceeding, but did you mean %q?",
					s, joinSegments(segs),
				))
				break
			}
		}
	}
	for i := range segs {
		segs[i] = grammar.Unescape(segs[i])
	}
	return segs
}

var shouldEscapePathChar = grammar.ShouldEscape(grammar.PathSegmentSafe)

// joinSegments escapes segments and joins them with slash.
// Segments are joined as is when any of them contains a percent sign, so encoded input is not encoded twice.
func joinSegments(segs []string) string {
	raw := strings.Join(segs, "/")
	if !strings.Contains(raw, "%") {
		escaped := make([]string, len(segs))
		for i, seg := range segs {
			escaped[i] = grammar.Escape(seg, shouldEscapePathChar)
		}
		return strings.Join(escaped, "/")
	}
	return raw
}

func isSlash(segs []string) bool { return len(segs) == 1 && segs[0] == "" }

// JoinSegments joins lists of path segments, keeping exactly one slash on every boundary.
// Empty lists and the single slash list [""] are skipped.
//
//	JoinSegments([]string{"a", ""}, []string{"b"}) == []string{"a", "b"}
//	JoinSegments([]string{"a"}, []string{"", "b"}) == []string{"a", "b"}
//	JoinSegments([]string{"a", ""}, []string{"", "b"}) == []string{"a", "", "b"}
func JoinSegments(lists ...[]string) []string {
	res := []string{}
	for _, segs := range lists {
		switch {
		case len(segs) == 0 || isSlash(segs):
			continue
		case len(res) == 0:
			res = append(res, segs...)
			continue
		}

		last := res[len(res)-1]
		if last == "" && (segs[0] != "" || len(segs) > 1) {
			res = res[:len(res)-1]
		} else if last != "" && segs[0] == "" && len(segs) > 1 {
			segs = segs[1:]
		}
		res = append(res, segs...)
	}
	return res
}

// RemoveSegments removes segments rm from the end of segs.
// The single slash list [""] means [""; ""] for both arguments.
// If rm is not a suffix of segs, a copy of segs is returned.
//
//	RemoveSegments([]string{"", "a", "b", "c"}, []string{"b", "c"}) == []string{"", "a", ""}
//	RemoveSegments([]string{"", "a", "b", "c"}, []string{"", "b", "c"}) == []string{"", "a"}
func RemoveSegments(segs, rm []string) []string {
	if isSlash(segs) {
		segs = []string{"", ""}
	}
	if isSlash(rm) {
		rm = []string{"", ""}
	}

	switch {
	case slices.Equal(rm, segs):
		return []string{}
	case len(rm) > len(segs):
		return util.CloneStrings(segs)
	}

	cmpRm := rm
	if len(rm) > 1 && rm[0] == "" {
		cmpRm = rm[1:]
	}
	if len(cmpRm) == 0 || !slices.Equal(cmpRm, segs[len(segs)-len(cmpRm):]) {
		return util.CloneStrings(segs)
	}

	res := util.CloneStrings(segs[:len(segs)-len(cmpRm)])
	if rm[0] != "" && len(res) > 0 {
		res = append(res, "")
	}
	return res
}

// RenderTo writes the encoded path to w.
func (p *Path) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if p == nil {
		return 0, nil
	}

	segs := p.segments
	if p.IsAbsolute() {
		if len(segs) == 0 {
			segs = []string{"", ""}
		} else {
			segs = append([]string{""}, segs...)
		}
	}
	return errtrace.Wrap2(io.WriteString(w, joinSegments(segs)))
}

// Render returns the encoded path.
func (p *Path) Render(opts *RenderOptions) string {
	if p == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the encoded path.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return p.Render(nil)
}

// Format implements [fmt.Formatter] for custom formatting of the path.
func (p *Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			p.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		type hideMethods Path
		type Path hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Path)(p))
		return
	}
}

// Clone returns a deep copy of the path.
// The clone is detached from the owner URL, its absolute flag is copied as is.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{
		segments: util.CloneStrings(p.segments),
		absolute: p.IsAbsolute(),
		opts:     p.opts,
	}
}

// Equal reports whether the path equals val.
// Val can be [Path], *[Path], a string or a [fmt.Stringer], the latter two are compared with the encoded path.
func (p *Path) Equal(val any) bool {
	var other *Path
	switch v := val.(type) {
	case Path:
		other = &v
	case *Path:
		other = v
	case string:
		return p.String() == v
	case fmt.Stringer:
		return p.String() == v.String()
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.IsAbsolute() == other.IsAbsolute() && slices.Equal(p.segments, other.segments)
}

// Hash returns the hash of the encoded path.
func (p *Path) Hash() uint64 { return xxhash.Sum64String(p.String()) }

// MarshalText implements [encoding.TextMarshaler].
func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Path) UnmarshalText(data []byte) error {
	p.Load(PathString(data))
	return nil
}

// LogValue implements [slog.LogValuer].
func (p *Path) LogValue() slog.Value {
	if p == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Any("segments", p.segments),
		slog.Bool("absolute", p.IsAbsolute()),
	)
}
