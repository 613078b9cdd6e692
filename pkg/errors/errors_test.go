package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := &Error{
		Op:   "accordion.LoadOptions",
		Kind: KindConfig,
		Err:  fmt.Errorf("bad duration"),
	}
	want := "accordion.LoadOptions [config]: bad duration"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	err := &Error{
		Op:   "dom.Parse",
		Kind: KindParse,
		Err:  fmt.Errorf("open accordion.yaml: %w", os.ErrNotExist),
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is should see through Error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParse, "parse"},
		{KindDocument, "document"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
