package errorutil_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dubizzle/furl/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

type advisoryErr string

func (e advisoryErr) Error() string { return string(e) }

func (advisoryErr) Advisory() bool { return true }

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "sentinel"},
		{"error arg", []any{cause}, "sentinel: cause"},
		{"already wrapped", []any{errorutil.NewWrapperError(errSentinel, "x")}, "sentinel: x"},
		{"string arg", []any{"bad %d"}, "sentinel: bad %d"},
		{"format args", []any{"bad %d", 42}, "sentinel: bad 42"},
		{"unknown arg", []any{42}, "sentinel"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if diff := cmp.Diff(err, error(errSentinel), cmpopts.EquateErrors()); diff != "" {
				t.Errorf("errorutil.NewWrapperError(errSentinel, %v) = %v, want wrapped %v\ndiff (-got +want):\n%v", c.args, err, errSentinel, diff)
			}
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
		})
	}
}

func TestIsAdvisory(t *testing.T) {
	t.Parallel()

	if errorutil.IsAdvisory(errSentinel) {
		t.Errorf("errorutil.IsAdvisory(%v) = true, want false", errSentinel)
	}
	wrapped := errorutil.NewWrapperError(errSentinel, advisoryErr("careful"))
	if !errorutil.IsAdvisory(wrapped) {
		t.Errorf("errorutil.IsAdvisory(%v) = false, want true", wrapped)
	}
}
