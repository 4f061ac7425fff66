package lvdfile

import (
	"math"
	"strconv"
)

// Kind identifies the variant of a Value.
type Kind byte

// String returns a string representation of the kind. If the kind is not
// valid, then the returned value will be "Invalid".
func (k Kind) String() string {
	s, ok := kindStrings[k]
	if !ok {
		return "Invalid"
	}
	return s
}

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindBool
	KindString
	KindNode
	KindContainer
)

var kindStrings = map[Kind]string{
	KindInt8:      "int8",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindUint8:     "uint8",
	KindUint16:    "uint16",
	KindUint32:    "uint32",
	KindUint64:    "uint64",
	KindFloat32:   "float32",
	KindBool:      "bool",
	KindString:    "string",
	KindNode:      "node",
	KindContainer: "container",
}

// Value holds a value of a particular Kind.
type Value interface {
	// Kind returns an identifier indicating the variant of the value.
	Kind() Kind

	// Copy returns a deep copy of the value.
	Copy() Value

	// Equal reports whether the value is structurally equal to another
	// value. Values of different kinds are never equal.
	Equal(v Value) bool
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}

////////////////////////////////////////////////////////////////

type Int8 int8

func (Int8) Kind() Kind { return KindInt8 }
func (v Int8) Copy() Value {
	return v
}
func (v Int8) Equal(w Value) bool {
	o, ok := w.(Int8)
	return ok && v == o
}
func (v Int8) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type Int16 int16

func (Int16) Kind() Kind { return KindInt16 }
func (v Int16) Copy() Value {
	return v
}
func (v Int16) Equal(w Value) bool {
	o, ok := w.(Int16)
	return ok && v == o
}
func (v Int16) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type Int32 int32

func (Int32) Kind() Kind { return KindInt32 }
func (v Int32) Copy() Value {
	return v
}
func (v Int32) Equal(w Value) bool {
	o, ok := w.(Int32)
	return ok && v == o
}
func (v Int32) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type Int64 int64

func (Int64) Kind() Kind { return KindInt64 }
func (v Int64) Copy() Value {
	return v
}
func (v Int64) Equal(w Value) bool {
	o, ok := w.(Int64)
	return ok && v == o
}
func (v Int64) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type Uint8 uint8

func (Uint8) Kind() Kind { return KindUint8 }
func (v Uint8) Copy() Value {
	return v
}
func (v Uint8) Equal(w Value) bool {
	o, ok := w.(Uint8)
	return ok && v == o
}
func (v Uint8) String() string {
	return itoa(uint64(v))
}

type Uint16 uint16

func (Uint16) Kind() Kind { return KindUint16 }
func (v Uint16) Copy() Value {
	return v
}
func (v Uint16) Equal(w Value) bool {
	o, ok := w.(Uint16)
	return ok && v == o
}
func (v Uint16) String() string {
	return itoa(uint64(v))
}

type Uint32 uint32

func (Uint32) Kind() Kind { return KindUint32 }
func (v Uint32) Copy() Value {
	return v
}
func (v Uint32) Equal(w Value) bool {
	o, ok := w.(Uint32)
	return ok && v == o
}
func (v Uint32) String() string {
	return itoa(uint64(v))
}

type Uint64 uint64

func (Uint64) Kind() Kind { return KindUint64 }
func (v Uint64) Copy() Value {
	return v
}
func (v Uint64) Equal(w Value) bool {
	o, ok := w.(Uint64)
	return ok && v == o
}
func (v Uint64) String() string {
	return itoa(uint64(v))
}

type Float32 float32

func (Float32) Kind() Kind { return KindFloat32 }
func (v Float32) Copy() Value {
	return v
}

// Equal compares bit patterns rather than numeric values, so that NaN
// payloads survive a round trip and compare equal to themselves.
func (v Float32) Equal(w Value) bool {
	o, ok := w.(Float32)
	return ok && math.Float32bits(float32(v)) == math.Float32bits(float32(o))
}
func (v Float32) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (v Bool) Copy() Value {
	return v
}
func (v Bool) Equal(w Value) bool {
	o, ok := w.(Bool)
	return ok && v == o
}
func (v Bool) String() string {
	return strconv.FormatBool(bool(v))
}

type String string

func (String) Kind() Kind { return KindString }
func (v String) Copy() Value {
	return v
}
func (v String) Equal(w Value) bool {
	o, ok := w.(String)
	return ok && v == o
}
func (v String) String() string {
	return string(v)
}

////////////////////////////////////////////////////////////////

// Container is an ordered sequence of homogeneous elements. On the wire the
// sequence is prefixed with a 4-byte element count; the count is not stored
// separately once loaded.
type Container struct {
	// Elem is the kind of every element in the container.
	Elem Kind

	// Type is the node type of the elements when Elem is KindNode, and
	// empty otherwise. Element nodes still carry their own individual
	// version tags.
	Type string

	// Values holds the elements. Order is semantically significant; it is
	// positional data such as vertex winding.
	Values []Value
}

// Kind implements Value.
func (c *Container) Kind() Kind { return KindContainer }

// Len returns the number of elements in the container.
func (c *Container) Len() int { return len(c.Values) }

// Append adds elements to the end of the container.
func (c *Container) Append(v ...Value) {
	c.Values = append(c.Values, v...)
}

// Copy implements Value by deep-copying the container.
func (c *Container) Copy() Value {
	clone := &Container{
		Elem:   c.Elem,
		Type:   c.Type,
		Values: make([]Value, len(c.Values)),
	}
	for i, v := range c.Values {
		clone.Values[i] = v.Copy()
	}
	return clone
}

// Equal implements Value. Containers are equal if their element kinds match
// and their elements are pairwise equal in order.
func (c *Container) Equal(v Value) bool {
	other, ok := v.(*Container)
	if !ok {
		return false
	}
	if c.Elem != other.Elem || c.Type != other.Type {
		return false
	}
	if len(c.Values) != len(other.Values) {
		return false
	}
	for i, e := range c.Values {
		if !e.Equal(other.Values[i]) {
			return false
		}
	}
	return true
}
