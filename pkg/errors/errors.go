// Package errors provides structured error handling for the accordion
// module. The widget core degrades silently rather than erroring; these
// errors cover the surfaces that do fail, configuration loading and
// document parsing.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a configuration loading or parsing error.
	KindConfig
	// KindParse indicates a document parsing failure.
	KindParse
	// KindDocument indicates an invalid or unusable document tree.
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the accordion module.
type Error struct {
	// Op is the operation that failed (e.g., "accordion.LoadOptions").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
