package cmd

import (
	stderrors "errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-drift/accordion/pkg/errors"
)

func TestParseFileMissing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.html"))
	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		t.Fatalf("want *errors.Error, got %T", err)
	}
	if structured.Kind != errors.KindParse {
		t.Errorf("kind = %v, want parse", structured.Kind)
	}
}

func TestParseFileUnreadableDocument(t *testing.T) {
	// A directory opens fine but fails on read, so the failure surfaces
	// from the document parser rather than the file system.
	_, err := parseFile(t.TempDir())
	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		t.Fatalf("want *errors.Error, got %T", err)
	}
	if structured.Kind != errors.KindDocument {
		t.Errorf("kind = %v, want document", structured.Kind)
	}
}

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , ,b ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := splitIDs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitIDs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
