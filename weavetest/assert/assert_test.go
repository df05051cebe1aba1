package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/pswap/errors"
)

type recorder struct {
	failed bool
}

func (r *recorder) Helper()                       {}
func (r *recorder) Fatal(...interface{})          { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"both nil":         {},
		"typed nil":        {want: (*errors.Error)(nil), got: nil},
		"wrapped match":    {want: errors.ErrState, got: errors.Wrap(errors.ErrState, "filled")},
		"different kind":   {want: errors.ErrState, got: errors.ErrExpired, wantFail: true},
		"unexpected error": {want: nil, got: fmt.Errorf("boom"), wantFail: true},
		"missing error":    {want: errors.ErrState, got: nil, wantFail: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var r recorder
			IsErr(&r, tc.want, tc.got)
			if r.failed != tc.wantFail {
				t.Fatalf("want failure %v, got %v", tc.wantFail, r.failed)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var r recorder
	var err *errors.Error
	Nil(&r, err)
	if r.failed {
		t.Fatal("typed nil must pass")
	}
	Nil(&r, 1)
	if !r.failed {
		t.Fatal("non pointer value must fail")
	}
}
