package furl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dubizzle/furl"
)

func TestJoinSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		lists [][]string
		want  []string
	}{
		{"no lists", nil, []string{}},
		{"empty first", [][]string{{}, {"a", "b"}}, []string{"a", "b"}},
		{"empty last", [][]string{{"a", "b"}, {}}, []string{"a", "b"}},
		{"plain", [][]string{{"a"}, {"b"}}, []string{"a", "b"}},
		{"trailing slash", [][]string{{"a", ""}, {"b"}}, []string{"a", "b"}},
		{"leading slash", [][]string{{"a"}, {"", "b"}}, []string{"a", "b"}},
		{"both slashes", [][]string{{"a", ""}, {"", "b"}}, []string{"a", "", "b"}},
		{"many", [][]string{{"a", "b"}, {"c", "d"}}, []string{"a", "b", "c", "d"}},
		{"slash skipped", [][]string{{"a"}, {""}, {"b"}}, []string{"a", "b"}},
		{"trailing dir", [][]string{{"a"}, {"b", ""}}, []string{"a", "b", ""}},
		{"three lists", [][]string{{"", "a", ""}, {"b", ""}, {"c"}}, []string{"", "a", "b", "c"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := furl.JoinSegments(c.lists...)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("furl.JoinSegments(%q) = %q, want %q\ndiff (-got +want):\n%v", c.lists, got, c.want, diff)
			}
		})
	}
}

func TestRemoveSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		segs, rm []string
		want     []string
	}{
		{"relative suffix", []string{"", "a", "b", "c"}, []string{"b", "c"}, []string{"", "a", ""}},
		{"absolute suffix", []string{"", "a", "b", "c"}, []string{"", "b", "c"}, []string{"", "a"}},
		{"not a suffix", []string{"", "a", "b", "c"}, []string{"a", "b"}, []string{"", "a", "b", "c"}},
		{"equal", []string{"a", "b"}, []string{"a", "b"}, []string{}},
		{"longer", []string{"a"}, []string{"a", "b"}, []string{"a"}},
		{"slash both", []string{""}, []string{""}, []string{}},
		{"slash from dir", []string{"a", "b", ""}, []string{""}, []string{"a", "b"}},
		{"dir suffix", []string{"a", "b", ""}, []string{"b", ""}, []string{"a", ""}},
		{"nothing left", []string{"b"}, []string{"b"}, []string{}},
		{"empty remove", []string{"a"}, []string{}, []string{"a"}},
		{"empty both", []string{}, []string{}, []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := furl.RemoveSegments(c.segs, c.rm)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("furl.RemoveSegments(%q, %q) = %q, want %q\ndiff (-got +want):\n%v", c.segs, c.rm, got, c.want, diff)
			}
		})
	}
}

func TestRemoveSegments_NoSideEffects(t *testing.T) {
	t.Parallel()

	segs, rm := []string{""}, []string{""}
	furl.RemoveSegments(segs, rm)
	if diff := cmp.Diff(segs, []string{""}); diff != "" {
		t.Errorf("segs changed to %q\ndiff (-got +want):\n%v", segs, diff)
	}
	if diff := cmp.Diff(rm, []string{""}); diff != "" {
		t.Errorf("rm changed to %q\ndiff (-got +want):\n%v", rm, diff)
	}
}

func TestPath_Load(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      furl.PathValue
		wantSeg []string
		wantAbs bool
		wantStr string
	}{
		{"nil", nil, []string{}, false, ""},
		{"empty", furl.PathString(""), []string{}, false, ""},
		{"slash", furl.PathString("/"), []string{""}, true, "/"},
		{"relative", furl.PathString("a/b"), []string{"a", "b"}, false, "a/b"},
		{"absolute dir", furl.PathString("/a/b/"), []string{"a", "b", ""}, true, "/a/b/"},
		{"decoded", furl.PathString("a%20b/c%2Fd"), []string{"a b", "c/d"}, false, "a%20b/c%2Fd"},
		{"escaped on render", furl.PathString("a b/ü"), []string{"a b", "ü"}, false, "a%20b/%C3%BC"},
		{"percent kept raw", furl.PathString("100%25"), []string{"100%"}, false, "100%"},
		{"double slash", furl.PathString("//a"), []string{"", "a"}, true, "//a"},
		{"safe chars", furl.PathString("/a:b@c;d=e,f"), []string{"a:b@c;d=e,f"}, true, "/a:b@c;d=e,f"},
		{"segments", furl.Segments{"a b", "c"}, []string{"a b", "c"}, false, "a%20b/c"},
		{"absolute segments", furl.Segments{"", "a"}, []string{"a"}, true, "/a"},
		{"whole path", furl.WholePath{}, []string{}, false, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			p := furl.NewPath(furl.PathString("x/y"), nil).Load(c.in)
			if diff := cmp.Diff(p.Segments(), c.wantSeg); diff != "" {
				t.Errorf("path.Segments() = %q, want %q\ndiff (-got +want):\n%v", p.Segments(), c.wantSeg, diff)
			}
			if got := p.IsAbsolute(); got != c.wantAbs {
				t.Errorf("path.IsAbsolute() = %v, want %v", got, c.wantAbs)
			}
			if got := p.String(); got != c.wantStr {
				t.Errorf("path.String() = %q, want %q", got, c.wantStr)
			}
		})
	}
}

func TestPath_Add(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path furl.PathValue
		add  furl.PathValue
		want string
	}{
		{"plain", furl.PathString("a"), furl.PathString("b"), "a/b"},
		{"dir", furl.PathString("a/"), furl.PathString("b"), "a/b"},
		{"absolute add", furl.PathString("a"), furl.PathString("/b"), "a/b"},
		{"both slashes", furl.PathString("a/"), furl.PathString("/b"), "a//b"},
		{"absolute kept", furl.PathString("/a"), furl.PathString("b"), "/a/b"},
		{"to empty", furl.PathString(""), furl.PathString("a"), "a"},
		{"to slash", furl.PathString("/"), furl.PathString("a"), "/a"},
		{"empty add", furl.PathString("a"), furl.PathString(""), "a"},
		{"dir add", furl.PathString("/a"), furl.PathString("b/"), "/a/b/"},
		{"segments", furl.Segments{"a", "b"}, furl.Segments{"c d"}, "a/b/c%20d"},
		{"encoded", furl.PathString("/a"), furl.PathString("b%2Fc"), "/a/b%2Fc"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			p := furl.NewPath(c.path, nil)
			if got := p.Add(c.add).String(); got != c.want {
				t.Errorf("furl.NewPath(%v).Add(%v) = %q, want %q", c.path, c.add, got, c.want)
			}
		})
	}
}

func TestPath_Remove(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path furl.PathValue
		rm   furl.PathValue
		want string
	}{
		{"relative suffix", furl.PathString("/a/b/c"), furl.PathString("b/c"), "/a/"},
		{"absolute suffix", furl.PathString("/a/b/c"), furl.PathString("/b/c"), "/a"},
		{"no match", furl.PathString("/a/b/c"), furl.PathString("x"), "/a/b/c"},
		{"whole path", furl.PathString("a/b"), furl.WholePath{}, ""},
		{"slash", furl.PathString("/"), furl.PathString("/"), ""},
		{"equal", furl.PathString("a/b"), furl.PathString("a/b"), ""},
		{"segments", furl.PathString("a/b"), furl.Segments{"b"}, "a/"},
		{"encoded", furl.PathString("/a/b%20c"), furl.PathString("b%20c"), "/a/"},
		{"nil", furl.PathString("/a"), nil, "/a"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			p := furl.NewPath(c.path, nil)
			if got := p.Remove(c.rm).String(); got != c.want {
				t.Errorf("furl.NewPath(%v).Remove(%v) = %q, want %q", c.path, c.rm, got, c.want)
			}
		})
	}
}

func TestPath_IsDir(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path     string
		wantDir  bool
		wantFile bool
	}{
		{"", true, false},
		{"/", true, false},
		{"a/", true, false},
		{"/a/b", false, true},
		{"a", false, true},
	}

	for _, c := range cases {
		p := furl.NewPath(furl.PathString(c.path), nil)
		if got := p.IsDir(); got != c.wantDir {
			t.Errorf("furl.NewPath(%q).IsDir() = %v, want %v", c.path, got, c.wantDir)
		}
		if got := p.IsFile(); got != c.wantFile {
			t.Errorf("furl.NewPath(%q).IsFile() = %v, want %v", c.path, got, c.wantFile)
		}
	}
}

func TestPath_SetAbsolute(t *testing.T) {
	t.Parallel()

	p := furl.NewPath(furl.PathString("a/b"), nil)
	if err := p.SetAbsolute(true); err != nil {
		t.Fatalf("path.SetAbsolute(true) error = %v, want nil", err)
	}
	if got, want := p.String(), "/a/b"; got != want {
		t.Errorf("path.String() = %q, want %q", got, want)
	}
	if err := p.SetAbsolute(false); err != nil {
		t.Fatalf("path.SetAbsolute(false) error = %v, want nil", err)
	}
	if got, want := p.String(), "a/b"; got != want {
		t.Errorf("path.String() = %q, want %q", got, want)
	}

	empty := furl.NewPath(nil, nil)
	if err := empty.SetAbsolute(true); err != nil {
		t.Fatalf("path.SetAbsolute(true) error = %v, want nil", err)
	}
	if got, want := empty.String(), "/"; got != want {
		t.Errorf("path.String() = %q, want %q", got, want)
	}
}

func TestPath_SetAbsolute_ReadOnly(t *testing.T) {
	t.Parallel()

	u := furl.MustParse("http://example.com/a")
	err := u.Path().SetAbsolute(false)
	if diff := cmp.Diff(err, error(furl.ErrReadOnly), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("path.SetAbsolute(false) error = %v, want %v\ndiff (-got +want):\n%v", err, furl.ErrReadOnly, diff)
	}
	if got, want := u.String(), "http://example.com/a"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}

	// path without segments is not forced
	u = furl.MustParse("http://example.com")
	if err := u.Path().SetAbsolute(false); err != nil {
		t.Errorf("path.SetAbsolute(false) error = %v, want nil", err)
	}
}

func TestPath_Equal(t *testing.T) {
	t.Parallel()

	p := furl.NewPath(furl.PathString("/a/b"), nil)
	cases := []struct {
		val  any
		want bool
	}{
		{furl.NewPath(furl.Segments{"", "a", "b"}, nil), true},
		{*furl.NewPath(furl.PathString("/a/b"), nil), true},
		{furl.NewPath(furl.PathString("a/b"), nil), false},
		{"/a/b", true},
		{"/a/c", false},
		{42, false},
		{(*furl.Path)(nil), false},
	}

	for _, c := range cases {
		if got := p.Equal(c.val); got != c.want {
			t.Errorf("path.Equal(%v) = %v, want %v", c.val, got, c.want)
		}
	}
}

func TestPath_Clone(t *testing.T) {
	t.Parallel()

	p := furl.NewPath(furl.PathString("/a/b"), nil)
	c := p.Clone()
	c.Add(furl.PathString("c"))
	if got, want := p.String(), "/a/b"; got != want {
		t.Errorf("path.String() = %q, want %q", got, want)
	}
	if got, want := c.String(), "/a/b/c"; got != want {
		t.Errorf("clone.String() = %q, want %q", got, want)
	}
	if p.Hash() == c.Hash() {
		t.Errorf("path.Hash() = clone.Hash() = %d, want different", p.Hash())
	}
}

func TestPath_Text(t *testing.T) {
	t.Parallel()

	var p furl.Path
	if err := p.UnmarshalText([]byte("/a%20b/")); err != nil {
		t.Fatalf("path.UnmarshalText() error = %v, want nil", err)
	}
	if diff := cmp.Diff(p.Segments(), []string{"a b", ""}); diff != "" {
		t.Errorf("path.Segments() = %q\ndiff (-got +want):\n%v", p.Segments(), diff)
	}
	b, err := p.MarshalText()
	if err != nil {
		t.Fatalf("path.MarshalText() error = %v, want nil", err)
	}
	if got, want := string(b), "/a%20b/"; got != want {
		t.Errorf("path.MarshalText() = %q, want %q", got, want)
	}
}
