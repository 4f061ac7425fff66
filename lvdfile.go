// The lvdfile package handles the decoding, encoding, and manipulation of
// LVD level geometry data structures.
//
// LVD is the binary format used by the Smash series of fighting games to
// describe a stage's collision meshes, spawn points, camera and blast-zone
// boundaries, and related metadata. A parsed file is represented by a
// Document, which holds a tree of Nodes. Every Node carries the schema
// version it was encoded as; the field layout of a node type differs per
// version, and the version travels with the node so that re-encoding
// reproduces the original layout exactly.
//
// Documents are decoded from and encoded to the binary format by the "lvd"
// sub-package, and projected to and from an editable YAML form by the "yml"
// sub-package. The set of known node types and their per-version layouts
// lives in the "schema" sub-package.
package lvdfile

// Document is the root of a parsed LVD file. The document exclusively owns
// its tree; nodes are never shared between documents.
type Document struct {
	// Root is the file envelope. Its version selects which named sections
	// are present and the order they appear on the wire.
	Root *Node
}

// Equal reports whether two documents are structurally equal, as defined by
// Node.Equal on their roots. A nil document is only equal to another nil
// document.
func (doc *Document) Equal(other *Document) bool {
	if doc == nil || other == nil {
		return doc == other
	}
	if doc.Root == nil || other.Root == nil {
		return doc.Root == other.Root
	}
	return doc.Root.Equal(other.Root)
}

// Copy returns a deep copy of the document.
func (doc *Document) Copy() *Document {
	if doc == nil {
		return nil
	}
	clone := &Document{}
	if doc.Root != nil {
		clone.Root = doc.Root.Copy().(*Node)
	}
	return clone
}

// Field is a single named value within a Node. Fields are kept as an ordered
// list rather than a map because field order is wire order.
type Field struct {
	Name  string
	Value Value
}

// Node is one version-tagged structural unit of the document tree.
type Node struct {
	// Type identifies the structural kind of the node, e.g. "collision" or
	// "vector2". The schema package maps (Type, Version) to a field layout.
	Type string

	// Version is the schema version this node was read as, or should be
	// written as. It is per-node: two sibling nodes of the same type may
	// carry different versions.
	Version uint8

	// Fields holds the node's field values in layout order.
	Fields []Field
}

// Kind implements Value.
func (n *Node) Kind() Kind { return KindNode }

// Get returns the value of the named field, or nil if the field is not
// present.
func (n *Node) Get(name string) Value {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// Set replaces the value of the named field, or appends a new field if no
// field of that name exists.
func (n *Node) Set(name string, value Value) {
	for i, f := range n.Fields {
		if f.Name == name {
			n.Fields[i].Value = value
			return
		}
	}
	n.Fields = append(n.Fields, Field{Name: name, Value: value})
}

// Copy implements Value by deep-copying the node.
func (n *Node) Copy() Value {
	clone := &Node{
		Type:    n.Type,
		Version: n.Version,
		Fields:  make([]Field, len(n.Fields)),
	}
	for i, f := range n.Fields {
		clone.Fields[i] = Field{Name: f.Name, Value: f.Value.Copy()}
	}
	return clone
}

// Equal implements Value. Two nodes are equal if their types, versions, and
// fields match recursively, including field order.
func (n *Node) Equal(v Value) bool {
	other, ok := v.(*Node)
	if !ok {
		return false
	}
	if n.Type != other.Type || n.Version != other.Version {
		return false
	}
	if len(n.Fields) != len(other.Fields) {
		return false
	}
	for i, f := range n.Fields {
		g := other.Fields[i]
		if f.Name != g.Name || !f.Value.Equal(g.Value) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer by returning the node's type and version.
func (n *Node) String() string {
	return n.Type + "." + itoa(uint64(n.Version))
}
