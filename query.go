package furl

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"

	"github.com/dubizzle/furl/internal/grammar"
	"github.com/dubizzle/furl/internal/ioutil"
	"github.com/dubizzle/furl/internal/util"
)

// QueryValue is an input accepted by [Query] methods.
// It is one of [QueryString], [Params] or [Values].
type QueryValue interface {
	queryValue()
}

// QueryString is an encoded query string, pairs are delimited by "&" or ";".
// Keys and values are decoded with "+" treated as a space.
type QueryString string

// Params is an ordered list of decoded query parameters.
type Params []Param

// Values maps decoded keys to their values.
// Keys are consumed in sorted order, a key with no values produces a single parameter without value.
type Values map[string][]string

func (QueryString) queryValue() {}
func (Params) queryValue()      {}
func (Values) queryValue()      {}

// Param is a single query parameter.
// Parameter without value renders as bare "key", parameter with the empty value renders as "key=".
type Param struct {
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	NoValue bool   `json:"no_value,omitempty"`
}

// KV returns a parameter with the key and value.
func KV(key, val string) Param { return Param{Key: key, Value: val} }

// Key returns a parameter without value.
func Key(key string) Param { return Param{Key: key, NoValue: true} }

// Query is an ordered multimap of decoded query parameters.
// Keys may repeat, insertion order is preserved and used on rendering.
// Query is not safe for concurrent use.
type Query struct {
	params []Param
	opts   *Options
}

// NewQuery creates a new [Query] and loads v into it.
// Options are optional, default options are used if nil (see [Options]).
func NewQuery(v QueryValue, opts *Options) *Query {
	q := newQuery(opts)
	return q.Load(v)
}

func newQuery(opts *Options) *Query {
	return &Query{
		params: []Param{},
		opts:   opts,
	}
}

// Load replaces all parameters with v.
func (q *Query) Load(v QueryValue) *Query {
	q.params = q.items(v)
	return q
}

// Add appends all parameters of v, existing parameters are kept.
func (q *Query) Add(v QueryValue) *Query {
	q.params = append(q.params, q.items(v)...)
	return q
}

// Set adopts all parameters of v replacing parameters with the same keys.
//
// Every parameter of v takes the place of the next not yet replaced parameter with the same key,
// or is appended when no such parameter remains. Remaining old parameters of the keys of v are removed.
//
//	q := NewQuery(Params{Key("1"), Key("2")}, nil)
//	q.Set(Params{KV("1", "1"), KV("2", "2"), KV("1", "11")}) // 1=1&2=2&1=11
func (q *Query) Set(v QueryValue) *Query {
	items := q.items(v)
	if len(items) == 0 {
		return q
	}

	keys := make(map[string]bool, len(items))
	replaced := make([]bool, len(q.params))
	var tail []Param
	for _, p := range items {
		keys[p.Key] = true
		i := -1
		for j, old := range q.params {
			if !replaced[j] && old.Key == p.Key {
				i = j
				break
			}
		}
		if i < 0 {
			tail = append(tail, p)
			continue
		}
		q.params[i] = p
		replaced[i] = true
	}

	params := make([]Param, 0, len(q.params)+len(tail))
	for i, p := range q.params {
		if replaced[i] || !keys[p.Key] {
			params = append(params, p)
		}
	}
	q.params = append(params, tail...)
	return q
}

// Remove removes all parameters with the given keys, missing keys are ignored.
func (q *Query) Remove(keys ...string) *Query {
	if len(keys) == 0 {
		return q
	}
	q.params = slices.DeleteFunc(q.params, func(p Param) bool { return slices.Contains(keys, p.Key) })
	return q
}

// Clear removes all parameters.
func (q *Query) Clear() *Query {
	q.params = []Param{}
	return q
}

// Params returns a copy of the parameters.
func (q *Query) Params() []Param {
	if q == nil || len(q.params) == 0 {
		return []Param{}
	}
	return slices.Clone(q.params)
}

// All returns an iterator over keys and values of the parameters.
func (q *Query) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if q == nil {
			return
		}
		for _, p := range q.params {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Get returns all values of the key.
func (q *Query) Get(key string) []string {
	var vals []string
	for k, v := range q.All() {
		if k == key {
			vals = append(vals, v)
		}
	}
	return vals
}

// First returns the first value of the key.
func (q *Query) First(key string) (string, bool) {
	for k, v := range q.All() {
		if k == key {
			return v, true
		}
	}
	return "", false
}

// Has reports whether the query has a parameter with the key.
func (q *Query) Has(key string) bool {
	_, ok := q.First(key)
	return ok
}

// Len returns the number of parameters.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// IsEmpty reports whether the query has no parameters.
func (q *Query) IsEmpty() bool { return q.Len() == 0 }

func (q *Query) items(v QueryValue) []Param {
	switch v := v.(type) {
	case QueryString:
		return q.parse(string(v))
	case Params:
		return slices.Clone(v)
	case Values:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		params := make([]Param, 0, len(v))
		for _, k := range keys {
			if len(v[k]) == 0 {
				params = append(params, Key(k))
				continue
			}
			for _, val := range v[k] {
				params = append(params, KV(k, val))
			}
		}
		return params
	default:
		return []Param{}
	}
}

func splitPairs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '&' || r == ';' })
}

// parse parses encoded query string s.
func (q *Query) parse(s string) []Param {
	params := []Param{}
	if s == "" {
		return params
	}

	pairs := splitPairs(s)
	if q.opts.strict() {
		for _, pair := range pairs {
			k, v, _ := strings.Cut(pair, "=")
			if !grammar.IsQueryKey(k) || !grammar.IsQueryValue(v) {
				q.opts.warn(newAdvisoryError(ErrImproperEncoding,
					"improperly encoded query string received: %q; proceeding, but did you mean %q?",
					s, encodeParams(rawParams(pairs), "&"),
				))
				break
			}
		}
	}

	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		p := Param{Key: grammar.QueryUnescape(k)}
		if ok {
			p.Value = grammar.QueryUnescape(v)
		} else {
			p.NoValue = true
		}
		params = append(params, p)
	}
	return params
}

func rawParams(pairs []string) []Param {
	params := make([]Param, 0, len(pairs))
	for _, pair := range pairs {
		k, v, _ := strings.Cut(pair, "=")
		params = append(params, KV(k, v))
	}
	return params
}

var (
	shouldEscapeQueryKeyChar   = grammar.ShouldEscape(grammar.QueryKeySafe)
	shouldEscapeQueryValueChar = grammar.ShouldEscape(grammar.QueryValueSafe)
)

func encodeParams(params []Param, delim string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderParams(sb, params, delim) //nolint:errcheck
	return sb.String()
}

func renderParams(w io.Writer, params []Param, delim string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, p := range params {
		if i > 0 {
			cw.WriteString(delim)
		}
		cw.WriteString(grammar.QueryEscape(p.Key, shouldEscapeQueryKeyChar))
		if !p.NoValue {
			cw.WriteString("=").WriteString(grammar.QueryEscape(p.Value, shouldEscapeQueryValueChar))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Encode returns the encoded query with pairs delimited by delim.
// Empty delim means "&".
func (q *Query) Encode(delim string) string {
	if q == nil {
		return ""
	}
	if delim == "" {
		delim = "&"
	}
	return encodeParams(q.params, delim)
}

// RenderTo writes the encoded query to w.
func (q *Query) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if q == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderParams(w, q.params, "&"))
}

// Render returns the encoded query.
func (q *Query) Render(opts *RenderOptions) string {
	if q == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	q.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the encoded query.
func (q *Query) String() string {
	if q == nil {
		return ""
	}
	return q.Render(nil)
}

// Format implements [fmt.Formatter] for custom formatting of the query.
func (q *Query) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			q.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, q.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(q.String()))
		return
	default:
		type hideMethods Query
		type Query hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Query)(q))
		return
	}
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	if q == nil {
		return nil
	}
	return &Query{
		params: slices.Clone(q.params),
		opts:   q.opts,
	}
}

// Equal reports whether the query equals val.
// Val can be [Query], *[Query], a string or a [fmt.Stringer], the latter two are compared with the encoded query.
func (q *Query) Equal(val any) bool {
	var other *Query
	switch v := val.(type) {
	case Query:
		other = &v
	case *Query:
		other = v
	case string:
		return q.String() == v
	case fmt.Stringer:
		return q.String() == v.String()
	default:
		return false
	}

	if q == other {
		return true
	} else if q == nil || other == nil {
		return false
	}
	return slices.Equal(q.params, other.params)
}

// Hash returns the hash of the encoded query.
func (q *Query) Hash() uint64 { return xxhash.Sum64String(q.String()) }

// MarshalText implements [encoding.TextMarshaler].
func (q *Query) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (q *Query) UnmarshalText(data []byte) error {
	q.Load(QueryString(data))
	return nil
}

// LogValue implements [slog.LogValuer].
func (q *Query) LogValue() slog.Value {
	if q == nil {
		return slog.Value{}
	}
	return slog.StringValue(q.String())
}
