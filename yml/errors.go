package yml

import "fmt"

// SyntaxError wraps an error reported by the YAML layer while parsing the
// input text. It is reported as-is, not reinterpreted.
type SyntaxError struct {
	Cause error
}

func (err *SyntaxError) Error() string {
	if err.Cause == nil {
		return "parsing YAML"
	}
	return "parsing YAML: " + err.Cause.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Cause
}

// TagError indicates a node whose YAML tag does not have the expected
// "!type.version" form.
type TagError struct {
	// Path locates the offending node.
	Path string

	// Tag is the tag as written.
	Tag string
}

func (err *TagError) Error() string {
	return fmt.Sprintf("%s: malformed node tag %q", err.Path, err.Tag)
}

// MissingFieldError indicates textual input lacking a field that the
// resolved layout requires.
type MissingFieldError struct {
	// Path locates the node missing the field.
	Path string

	// Field is the name of the missing field.
	Field string
}

func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", err.Path, err.Field)
}

// TypeMismatchError indicates textual input with an incompatible value for
// the resolved layout.
type TypeMismatchError struct {
	// Path locates the mismatched value.
	Path string

	// Want and Got describe the expected and actual value forms.
	Want string
	Got  string
}

func (err *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot read %s as %s", err.Path, err.Got, err.Want)
}
