// The yml package projects lvdfile documents to and from an editable YAML
// form.
//
// The projection is a generic tagged tree: every document node becomes a
// YAML mapping tagged "!type.version", every container becomes a YAML
// sequence, and scalars map to their natural YAML equivalents. The version
// is part of the tag so that it survives textual editing: changing a node's
// tag to another supported version and reloading causes the codec to
// re-interpret that node under the new layout. No value migration is
// performed — the editor is responsible for adjusting the fields to the new
// layout's expectations.
//
// Floats are rendered with the shortest decimal form that reconstructs the
// exact original 32-bit pattern on re-read.
package yml

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ultimate-research/lvdfile"
	"github.com/ultimate-research/lvdfile/errors"
	"github.com/ultimate-research/lvdfile/schema"
)

// Marshal renders doc as YAML text.
func Marshal(doc *lvdfile.Document) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, errors.New("nil document")
	}
	return yaml.Marshal(Project(doc))
}

// Unmarshal parses YAML text and restores the document it describes.
func Unmarshal(data []byte) (*lvdfile.Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, &SyntaxError{Cause: err}
	}
	return Restore(&n)
}

////////////////////////////////////////////////////////////////

// Project converts doc into the generic tagged-document form consumed by
// the YAML layer. Projection cannot fail: every document value has a
// textual equivalent.
func Project(doc *lvdfile.Document) *yaml.Node {
	return projectNode(doc.Root)
}

func projectNode(n *lvdfile.Node) *yaml.Node {
	yn := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     nodeTag(n.Type, n.Version),
		Content: make([]*yaml.Node, 0, len(n.Fields)*2),
	}
	for _, f := range n.Fields {
		yn.Content = append(yn.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			projectValue(f.Value),
		)
	}
	return yn
}

func projectValue(v lvdfile.Value) *yaml.Node {
	switch v := v.(type) {
	case *lvdfile.Node:
		return projectNode(v)
	case *lvdfile.Container:
		yn := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     containerTag(v),
			Content: make([]*yaml.Node, 0, len(v.Values)),
		}
		for _, e := range v.Values {
			yn.Content = append(yn.Content, projectValue(e))
		}
		return yn
	case lvdfile.Float32:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(float32(v))}
	case lvdfile.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(v))}
	case lvdfile.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	case lvdfile.Int8:
		return intScalar(strconv.FormatInt(int64(v), 10))
	case lvdfile.Int16:
		return intScalar(strconv.FormatInt(int64(v), 10))
	case lvdfile.Int32:
		return intScalar(strconv.FormatInt(int64(v), 10))
	case lvdfile.Int64:
		return intScalar(strconv.FormatInt(int64(v), 10))
	case lvdfile.Uint8:
		return intScalar(strconv.FormatUint(uint64(v), 10))
	case lvdfile.Uint16:
		return intScalar(strconv.FormatUint(uint64(v), 10))
	case lvdfile.Uint32:
		return intScalar(strconv.FormatUint(uint64(v), 10))
	case lvdfile.Uint64:
		return intScalar(strconv.FormatUint(uint64(v), 10))
	}
	// Unreachable for documents produced by the binary codec.
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""}
}

func intScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}
}

// nodeTag encodes a node's type and version as a YAML tag, e.g.
// "!collision.4".
func nodeTag(typ string, version uint8) string {
	return "!" + typ + "." + strconv.FormatUint(uint64(version), 10)
}

// containerTag names a container's element context, e.g. "!list.vector2"
// or "!list.float32". Element nodes still carry their own version tags, so
// the container tag is context for the reader rather than decoded state.
func containerTag(c *lvdfile.Container) string {
	if c.Elem == lvdfile.KindNode {
		return "!list." + c.Type
	}
	return "!list." + c.Elem.String()
}

// formatFloat renders a float32 with the fewest digits that parse back to
// the same bit pattern. Whole values keep a trailing ".0" so they still
// read as floats; non-finite values use the YAML core-schema spellings.
func formatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

////////////////////////////////////////////////////////////////

// Restore converts a tagged document back into an lvdfile.Document,
// validating every node's version against the registry and every field
// against the layout that version resolves to. This is the only place a
// human-edited version number takes effect.
func Restore(n *yaml.Node) (*lvdfile.Document, error) {
	if n == nil {
		return nil, errors.New("nil node")
	}
	r := &restorer{}
	root, err := r.node(deref(n), "")
	if err != nil {
		return nil, err
	}
	return &lvdfile.Document{Root: root}, nil
}

type restorer struct {
	path lvdfile.Path
}

// deref resolves alias nodes and unwraps the document wrapper the YAML
// parser puts around the top-level value.
func deref(n *yaml.Node) *yaml.Node {
	for {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
}

// node restores a tagged mapping. If want is non-empty, the tag's type must
// match it; the version always comes from the tag.
func (r *restorer) node(n *yaml.Node, want string) (*lvdfile.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &TypeMismatchError{Path: r.path.String(), Want: wantName(want), Got: kindName(n)}
	}
	typ, version, ok := parseTag(n.Tag)
	if !ok {
		return nil, &TagError{Path: r.path.String(), Tag: n.Tag}
	}
	if want != "" && typ != want {
		return nil, &TypeMismatchError{Path: r.path.String(), Want: want, Got: typ}
	}
	layout, ok := schema.Lookup(typ, version)
	if !ok {
		return nil, &lvdfile.VersionError{Path: r.path.String(), Type: typ, Version: version}
	}

	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := deref(n.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, &TypeMismatchError{Path: r.path.String(), Want: "field name", Got: kindName(key)}
		}
		fields[key.Value] = n.Content[i+1]
	}

	out := &lvdfile.Node{Type: typ, Version: version, Fields: make([]lvdfile.Field, 0, len(layout))}
	for _, f := range layout {
		fn, ok := fields[f.Name]
		if !ok {
			return nil, &MissingFieldError{Path: r.path.String(), Field: f.Name}
		}
		r.path = append(r.path, f.Name)
		v, err := r.value(f, deref(fn))
		r.path = r.path[:len(r.path)-1]
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, lvdfile.Field{Name: f.Name, Value: v})
	}
	return out, nil
}

func (r *restorer) value(f schema.Field, n *yaml.Node) (lvdfile.Value, error) {
	switch f.Kind {
	case lvdfile.KindNode:
		return r.node(n, f.Type)
	case lvdfile.KindContainer:
		return r.container(f, n)
	}
	return r.scalar(f.Kind, n)
}

func (r *restorer) container(f schema.Field, n *yaml.Node) (lvdfile.Value, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, &TypeMismatchError{Path: r.path.String(), Want: "sequence", Got: kindName(n)}
	}
	c := &lvdfile.Container{Elem: f.Elem, Type: f.Type}
	elem := schema.Field{Name: f.Name, Kind: f.Elem, Type: f.Type}
	for i, en := range n.Content {
		r.path = append(r.path, "["+strconv.Itoa(i)+"]")
		v, err := r.value(elem, deref(en))
		r.path = r.path[:len(r.path)-1]
		if err != nil {
			return nil, err
		}
		c.Append(v)
	}
	return c, nil
}

func (r *restorer) scalar(kind lvdfile.Kind, n *yaml.Node) (lvdfile.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, &TypeMismatchError{Path: r.path.String(), Want: kind.String(), Got: kindName(n)}
	}
	mismatch := func() error {
		return &TypeMismatchError{Path: r.path.String(), Want: kind.String(), Got: strconv.Quote(n.Value)}
	}
	switch kind {
	case lvdfile.KindInt8:
		v, err := strconv.ParseInt(n.Value, 10, 8)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Int8(v), nil
	case lvdfile.KindInt16:
		v, err := strconv.ParseInt(n.Value, 10, 16)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Int16(v), nil
	case lvdfile.KindInt32:
		v, err := strconv.ParseInt(n.Value, 10, 32)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Int32(v), nil
	case lvdfile.KindInt64:
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Int64(v), nil
	case lvdfile.KindUint8:
		v, err := strconv.ParseUint(n.Value, 10, 8)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Uint8(v), nil
	case lvdfile.KindUint16:
		v, err := strconv.ParseUint(n.Value, 10, 16)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Uint16(v), nil
	case lvdfile.KindUint32:
		v, err := strconv.ParseUint(n.Value, 10, 32)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Uint32(v), nil
	case lvdfile.KindUint64:
		v, err := strconv.ParseUint(n.Value, 10, 64)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Uint64(v), nil
	case lvdfile.KindFloat32:
		v, ok := parseFloat(n.Value)
		if !ok {
			return nil, mismatch()
		}
		return lvdfile.Float32(v), nil
	case lvdfile.KindBool:
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, mismatch()
		}
		return lvdfile.Bool(v), nil
	case lvdfile.KindString:
		return lvdfile.String(n.Value), nil
	}
	return nil, mismatch()
}

func parseFloat(s string) (float32, bool) {
	switch s {
	case ".nan", ".NaN", ".NAN":
		return float32(math.NaN()), true
	case ".inf", ".Inf", ".INF", "+.inf":
		return float32(math.Inf(1)), true
	case "-.inf", "-.Inf", "-.INF":
		return float32(math.Inf(-1)), true
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

// parseTag splits a "!type.version" tag.
func parseTag(tag string) (typ string, version uint8, ok bool) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") {
		return "", 0, false
	}
	body := tag[1:]
	dot := strings.LastIndexByte(body, '.')
	if dot <= 0 || dot == len(body)-1 {
		return "", 0, false
	}
	v, err := strconv.ParseUint(body[dot+1:], 10, 8)
	if err != nil {
		return "", 0, false
	}
	return body[:dot], uint8(v), true
}

func wantName(want string) string {
	if want == "" {
		return "node"
	}
	return want
}

// kindName describes a YAML node for error messages.
func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + strconv.Quote(n.Value)
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown node"
}
