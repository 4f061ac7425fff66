// The schema package holds the registry of known LVD node types. For each
// node type it maps a schema version number to the field layout that version
// is encoded with.
//
// The registry is populated once from a built-in table hand-curated from the
// known format revisions, and is read-only thereafter; there is no dynamic
// schema loading. Versions of a type are not required to be contiguous or
// additive — a later version may drop or reorder fields — so each version's
// layout is stored in full rather than as a diff.
package schema

import (
	"sort"

	"github.com/ultimate-research/lvdfile"
)

// Field describes one field of a layout.
type Field struct {
	// Name is the field's name, unique within its layout.
	Name string

	// Kind is the value variant of the field.
	Kind lvdfile.Kind

	// Elem is the element kind when Kind is KindContainer.
	Elem lvdfile.Kind

	// Type is the child node type when Kind is KindNode, or the element
	// node type when the field is a container of nodes.
	Type string
}

// Layout is the ordered field list a (type, version) pair is encoded with.
// Order is wire order.
type Layout []Field

// Field returns the layout's field of the given name, and whether it exists.
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Lookup returns the field layout for the given node type and version. It
// returns false if the type is unknown or the type has no layout for the
// version.
func Lookup(typ string, version uint8) (Layout, bool) {
	versions, ok := registry[typ]
	if !ok {
		return nil, false
	}
	layout, ok := versions[version]
	return layout, ok
}

// Known reports whether the node type has any registered version.
func Known(typ string) bool {
	_, ok := registry[typ]
	return ok
}

// Versions returns the registered versions of a node type in ascending
// order. The result is nil for an unknown type.
func Versions(typ string) []uint8 {
	versions, ok := registry[typ]
	if !ok {
		return nil
	}
	list := make([]uint8, 0, len(versions))
	for v := range versions {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// EnvelopeType is the node type of the file envelope, the root of every
// document.
const EnvelopeType = "lvd"
