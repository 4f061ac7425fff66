package lvdfile

import (
	"math"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindInvalid:   "Invalid",
		KindInt32:     "int32",
		KindUint64:    "uint64",
		KindFloat32:   "float32",
		KindBool:      "bool",
		KindString:    "string",
		KindNode:      "node",
		KindContainer: "container",
		Kind(200):     "Invalid",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestScalarEqual(t *testing.T) {
	if !Int32(7).Equal(Int32(7)) {
		t.Error("equal Int32 values compare unequal")
	}
	if Int32(7).Equal(Int32(8)) {
		t.Error("different Int32 values compare equal")
	}
	// Same numeric value, different kind.
	if Int32(7).Equal(Uint32(7)) {
		t.Error("Int32 compares equal to Uint32")
	}
	if !String("a").Equal(String("a")) || String("a").Equal(String("b")) {
		t.Error("String equality broken")
	}
	if !Bool(true).Equal(Bool(true)) || Bool(true).Equal(Bool(false)) {
		t.Error("Bool equality broken")
	}
}

// Float32 equality is bitwise: NaN equals itself and negative zero does not
// equal positive zero.
func TestFloat32Equal(t *testing.T) {
	nan := Float32(math.NaN())
	if !nan.Equal(nan.Copy()) {
		t.Error("NaN does not equal its own copy")
	}
	negZero := Float32(math.Copysign(0, -1))
	if negZero.Equal(Float32(0)) {
		t.Error("negative zero equals positive zero")
	}
	if !Float32(1.5).Equal(Float32(1.5)) {
		t.Error("equal floats compare unequal")
	}
}

func TestNodeGetSet(t *testing.T) {
	n := &Node{Type: "vector2", Version: 1}
	if n.Get("x") != nil {
		t.Error("Get on empty node returned a value")
	}
	n.Set("x", Float32(1))
	n.Set("y", Float32(2))
	if v := n.Get("x"); !Float32(1).Equal(v) {
		t.Errorf("Get(x) = %v", v)
	}
	n.Set("x", Float32(3))
	if v := n.Get("x"); !Float32(3).Equal(v) {
		t.Errorf("Get(x) after Set = %v", v)
	}
	if len(n.Fields) != 2 {
		t.Errorf("field count = %d, want 2", len(n.Fields))
	}
	// Set keeps field order.
	if n.Fields[0].Name != "x" || n.Fields[1].Name != "y" {
		t.Error("Set reordered fields")
	}
}

func TestNodeEqual(t *testing.T) {
	a := &Node{Type: "vector2", Version: 1, Fields: []Field{
		{Name: "x", Value: Float32(1)},
		{Name: "y", Value: Float32(2)},
	}}
	b := a.Copy().(*Node)
	if !a.Equal(b) {
		t.Error("copy compares unequal")
	}

	b.Version = 2
	if a.Equal(b) {
		t.Error("nodes with different versions compare equal")
	}
	b.Version = 1

	// Field order is significant.
	b.Fields[0], b.Fields[1] = b.Fields[1], b.Fields[0]
	if a.Equal(b) {
		t.Error("nodes with reordered fields compare equal")
	}
}

func TestNodeCopyIsDeep(t *testing.T) {
	inner := &Node{Type: "vector2", Version: 1, Fields: []Field{
		{Name: "x", Value: Float32(1)},
		{Name: "y", Value: Float32(2)},
	}}
	n := &Node{Type: "point", Version: 1, Fields: []Field{
		{Name: "pos", Value: inner},
	}}
	clone := n.Copy().(*Node)
	clone.Get("pos").(*Node).Set("x", Float32(9))
	if !Float32(1).Equal(inner.Get("x")) {
		t.Error("mutating the copy changed the original")
	}
}

func TestContainerEqual(t *testing.T) {
	a := &Container{Elem: KindFloat32, Values: []Value{Float32(1), Float32(2)}}
	b := a.Copy().(*Container)
	if !a.Equal(b) {
		t.Error("copy compares unequal")
	}

	b.Values[0], b.Values[1] = b.Values[1], b.Values[0]
	if a.Equal(b) {
		t.Error("reordered containers compare equal")
	}

	c := &Container{Elem: KindNode, Type: "vector2"}
	d := &Container{Elem: KindNode, Type: "vector3"}
	if c.Equal(d) {
		t.Error("containers of different element types compare equal")
	}
}

func TestDocumentEqual(t *testing.T) {
	a := &Document{Root: &Node{Type: "lvd", Version: 1}}
	b := a.Copy()
	if !a.Equal(b) {
		t.Error("copy compares unequal")
	}
	if a.Equal(nil) {
		t.Error("document equals nil")
	}
	var nilDoc *Document
	if !nilDoc.Equal(nil) {
		t.Error("nil document does not equal nil")
	}
}

func TestPathString(t *testing.T) {
	cases := []struct {
		path Path
		want string
	}{
		{nil, "root"},
		{Path{"collisions"}, "root.collisions"},
		{Path{"collisions", "[2]", "base", "meta_info", "name"}, "root.collisions[2].base.meta_info.name"},
		{Path{"vertices", "[0]", "x"}, "root.vertices[0].x"},
	}
	for _, c := range cases {
		if got := c.path.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", []string(c.path), got, c.want)
		}
	}
}
