package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "csvsource.read",
		Kind: KindInvalidInput,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidInput {
		t.Fatalf("expected kind %s", KindInvalidInput)
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
	}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match op error")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected IsKind to reject plain errors")
	}
}

func TestOpErrorMessageIncludesLocation(t *testing.T) {
	cases := []struct {
		name string
		err  *OpError
		want []string
	}{
		{
			name: "path and line",
			err:  &OpError{Op: "convert.row", Kind: KindInvalidInput, Path: "codes.csv", Line: 4, Err: ErrInvalidInput},
			want: []string{"convert.row", "path=codes.csv line=4", "invalid input"},
		},
		{
			name: "path only",
			err:  &OpError{Op: "config.load", Kind: KindNotFound, Path: "heman.yaml"},
			want: []string{"(path=heman.yaml)"},
		},
		{
			name: "line only",
			err:  &OpError{Op: "convert.row", Kind: KindInvalidInput, Line: 2},
			want: []string{"(line=2)"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			msg := c.err.Error()
			for _, w := range c.want {
				if !strings.Contains(msg, w) {
					t.Errorf("expected %q in %q", w, msg)
				}
			}
		})
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
