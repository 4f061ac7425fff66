package lvd

import (
	"errors"
	"fmt"
	"io"
)

var (
	// Indicates a file that does not begin with the expected prelude word.
	ErrPrelude = errors.New("unexpected file prelude")
	// Indicates a missing or malformed LVD1 signature record.
	ErrSignature = errors.New("invalid signature")
)

// EOFError indicates that the input ended before a declared field could be
// read in full.
type EOFError struct {
	// Path locates the node whose field was being read.
	Path string
}

func (err *EOFError) Error() string {
	return err.Path + ": unexpected end of input"
}

func (err *EOFError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// FieldError indicates a document node missing a field its layout requires,
// detected while encoding.
type FieldError struct {
	// Path locates the missing field.
	Path string
}

func (err *FieldError) Error() string {
	return err.Path + ": missing field"
}

// KindError indicates a document value whose kind does not match the layout
// it is being encoded under.
type KindError struct {
	// Path locates the mismatched value.
	Path string

	// Want and Got name the expected and actual value kinds, or node types
	// for nested node values.
	Want string
	Got  string
}

func (err *KindError) Error() string {
	return fmt.Sprintf("%s: cannot encode %s as %s", err.Path, err.Got, err.Want)
}
