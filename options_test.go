package furl_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dubizzle/furl"
)

func TestOptions_Strict(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantMsgs []string
	}{
		{"clean", "http://host/a%20b?x+y=1", nil},
		{"path", "http://host/a b", []string{`did you mean "/a%20b"`}},
		{"query", "http://host/?x y=1", []string{`did you mean "x+y=1"`}},
		{"host", "http://bad host/", []string{`improper host received: "bad host"`}},
		{"path and query", "http://host/a b?x y=1", []string{`"/a%20b"`, `"x+y=1"`}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var (
				buf  bytes.Buffer
				errs []error
			)
			opts := &furl.Options{
				Strict:    true,
				Logger:    slog.New(slog.NewTextHandler(&buf, nil)),
				OnWarning: func(err error) { errs = append(errs, err) },
			}
			if _, err := furl.New(c.in, opts); err != nil {
				t.Fatalf("furl.New(%q) error = %v, want nil", c.in, err)
			}

			if len(errs) != len(c.wantMsgs) {
				t.Fatalf("furl.New(%q) warnings = %v, want %d", c.in, errs, len(c.wantMsgs))
			}
			for i, err := range errs {
				if !errors.Is(err, furl.ErrImproperEncoding) || !furl.IsAdvisory(err) {
					t.Errorf("warning = %v, want advisory %v", err, furl.ErrImproperEncoding)
				}
				if !strings.Contains(err.Error(), c.wantMsgs[i]) {
					t.Errorf("warning = %q, want to contain %q", err.Error(), c.wantMsgs[i])
				}
			}
			if got := strings.Count(buf.String(), "furl advisory"); got != len(c.wantMsgs) {
				t.Errorf("logged advisories = %d, want %d\nlog:\n%s", got, len(c.wantMsgs), buf.String())
			}
		})
	}
}

func TestOptions_NotStrict(t *testing.T) {
	t.Parallel()

	var errs []error
	opts := &furl.Options{OnWarning: func(err error) { errs = append(errs, err) }}
	u, err := furl.New("http://bad host/a b?x y=1", opts)
	if err != nil {
		t.Fatalf("furl.New() error = %v, want nil", err)
	}
	if len(errs) > 0 {
		t.Errorf("furl.New() warnings = %v, want none", errs)
	}
	if got, want := u.String(), "http://bad host/a%20b?x+y=1"; got != want {
		t.Errorf("url.String() = %q, want %q", got, want)
	}
}

func TestOptions_Ports(t *testing.T) {
	t.Parallel()

	ports := furl.DefaultPorts()
	ports["myapp"] = 9000
	opts := &furl.Options{Ports: ports}

	u, err := furl.New("myapp://host:9000/", opts)
	if err != nil {
		t.Fatalf("furl.New() error = %v, want nil", err)
	}
	if got, want := u.String(), "myapp://host/"; got != want {
		t.Errorf("url.String() = %q, want %q", got, want)
	}
	if got, ok := u.Port(); got != 9000 || !ok {
		t.Errorf("url.Port() = (%d, %v), want (9000, true)", got, ok)
	}
	if _, ok := furl.DefaultPorts().DefaultPort("myapp"); ok {
		t.Errorf("furl.DefaultPorts() is modified, want a copy")
	}
	if got, ok := ports.DefaultPort("HTTPS"); got != 443 || !ok {
		t.Errorf("ports.DefaultPort(%q) = (%d, %v), want (443, true)", "HTTPS", got, ok)
	}
}

func TestParsePort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    uint16
		wantErr error
	}{
		{"1", 1, nil},
		{"80", 80, nil},
		{"65535", 65535, nil},
		{"0080", 80, nil},
		{"0", 0, furl.ErrInvalidPort},
		{"65536", 0, furl.ErrInvalidPort},
		{"99999999999", 0, furl.ErrInvalidPort},
		{"", 0, furl.ErrInvalidPort},
		{"-1", 0, furl.ErrInvalidPort},
		{"８０", 0, furl.ErrInvalidPort},
	}

	for _, c := range cases {
		got, err := furl.ParsePort(c.in)
		if got != c.want || !errors.Is(err, c.wantErr) {
			t.Errorf("furl.ParsePort(%q) = (%d, %v), want (%d, %v)", c.in, got, err, c.want, c.wantErr)
		}
	}
}

func TestOptions_Splitter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	spl := NewMockSplitter(ctrl)
	spl.EXPECT().Split("raw").Return(furl.Parts{Scheme: "HTTP", Netloc: "Host", Path: "/p", Query: "a=1"}, nil)
	spl.EXPECT().Split("bad").Return(furl.Parts{}, furl.NewMalformedInputError("bad input"))

	u, err := furl.New("raw", &furl.Options{Splitter: spl})
	if err != nil {
		t.Fatalf("furl.New() error = %v, want nil", err)
	}
	if got, want := u.String(), "http://host/p?a=1"; got != want {
		t.Errorf("url.String() = %q, want %q", got, want)
	}

	if err := u.Load("bad"); !errors.Is(err, furl.ErrMalformedInput) {
		t.Errorf("url.Load() error = %v, want %v", err, furl.ErrMalformedInput)
	}
	if got, want := u.String(), "http://host/p?a=1"; got != want {
		t.Errorf("url.String() = %q, want %q", got, want)
	}
}

func TestOptions_Joiner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	jn := NewMockJoiner(ctrl)
	errJoin := errors.New("join failed")
	gomock.InOrder(
		jn.EXPECT().Join("http://host/a", "b").Return("http://host/b", nil),
		jn.EXPECT().Join("http://host/b", "c").Return("", errJoin),
	)

	u, err := furl.New("http://host/a", &furl.Options{Joiner: jn})
	if err != nil {
		t.Fatalf("furl.New() error = %v, want nil", err)
	}
	if err := u.Join("b"); err != nil {
		t.Fatalf("url.Join() error = %v, want nil", err)
	}
	if got, want := u.String(), "http://host/b"; got != want {
		t.Errorf("url.String() = %q, want %q", got, want)
	}
	if err := u.Join("c"); !errors.Is(err, errJoin) {
		t.Errorf("url.Join() error = %v, want %v", err, errJoin)
	}
	if got, want := u.String(), "http://host/b"; got != want {
		t.Errorf("url.String() = %q, want %q", got, want)
	}
}
