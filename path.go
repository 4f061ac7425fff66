package lvdfile

import "strings"

// Path locates a node or field within a document as the sequence of field
// names and container indices leading to it from the root. It is carried by
// codec errors so that a failure inside a deep tree points at the exact
// offending node.
type Path []string

// String renders the path in dotted form, e.g.
// "root.collisions[2].base.meta_info.name". Container indices attach to the
// preceding field without a separator.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("root")
	for _, seg := range p {
		if len(seg) == 0 || seg[0] != '[' {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// VersionError indicates a node version tag, read from binary or textual
// input, that the registry has no layout for.
type VersionError struct {
	// Path locates the offending node.
	Path string

	// Type is the node type the version was read for.
	Type string

	// Version is the unsupported version number.
	Version uint8
}

func (err *VersionError) Error() string {
	return err.Path + ": unsupported version " + itoa(uint64(err.Version)) + " for node type " + err.Type
}
