package errors

import (
	"strings"
	"testing"
)

func TestErrors(t *testing.T) {
	var errs Errors
	if errs.Return() != nil {
		t.Error("empty list should return nil")
	}
	errs = errs.Append(nil, New("first"), nil)
	if len(errs) != 1 {
		t.Fatalf("length = %d, want 1", len(errs))
	}
	if errs.Error() != "first" {
		t.Errorf("single error message = %q", errs.Error())
	}
	errs = errs.Append(New("second"))
	msg := errs.Error()
	if !strings.HasPrefix(msg, "multiple errors:") ||
		!strings.Contains(msg, "\tfirst") ||
		!strings.Contains(msg, "\tsecond") {
		t.Errorf("multiple error message = %q", msg)
	}
	if errs.Return() == nil {
		t.Error("non-empty list returned nil")
	}
}

func TestUnion(t *testing.T) {
	if Union(nil, nil) != nil {
		t.Error("union of nils should be nil")
	}
	a := New("a")
	b := New("b")
	err := Union(a, Errors{b, nil}, nil)
	errs, ok := err.(Errors)
	if !ok {
		t.Fatalf("union returned %T, want Errors", err)
	}
	if len(errs) != 2 || errs[0] != a || errs[1] != b {
		t.Errorf("union = %v", errs)
	}
}
