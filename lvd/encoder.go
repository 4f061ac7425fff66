package lvd

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/anaminus/parse"

	"github.com/ultimate-research/lvdfile"
	"github.com/ultimate-research/lvdfile/errors"
	"github.com/ultimate-research/lvdfile/schema"
)

// Encoder encodes an lvdfile.Document into a stream of bytes.
type Encoder struct {
	// Order is the byte order of every multi-byte primitive in the stream.
	// If nil, big-endian is used.
	Order binary.ByteOrder
}

// Encode writes doc to w. Every node is written at the version stored on
// it, never a substituted one, so re-encoding an unedited decoded document
// reproduces the original bytes. The whole output is built in memory before
// being written out. Encode fails only for a malformed document: a node
// version absent from the registry, a field missing from its layout, or a
// value of the wrong kind.
func (e Encoder) Encode(w io.Writer, doc *lvdfile.Document) error {
	if w == nil {
		return errors.New("nil writer")
	}
	if doc == nil || doc.Root == nil {
		return errors.New("nil document")
	}
	order := e.Order
	if order == nil {
		order = binary.BigEndian
	}

	var buf bytes.Buffer
	fw := &writer{w: parse.NewBinaryWriter(&buf), order: order}
	fw.u32(filePrelude)
	fw.envelope(doc.Root)
	if fw.err != nil {
		return fw.err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

////////////////////////////////////////////////////////////////

// writer mirrors reader: primitives through a parse.BinaryWriter with an
// explicit byte order, and a latched first error with the current node path.
type writer struct {
	w     *parse.BinaryWriter
	order binary.ByteOrder
	path  lvdfile.Path
	err   error
	buf   [8]byte
}

func (fw *writer) fail() bool {
	if fw.err == nil {
		if err := fw.w.Err(); err != nil {
			fw.err = err
		}
	}
	return true
}

func (fw *writer) bytes(buf []byte) (failed bool) {
	if fw.err != nil {
		return true
	}
	if fw.w.Bytes(buf) {
		return fw.fail()
	}
	return false
}

func (fw *writer) u8(v uint8) (failed bool) {
	fw.buf[0] = v
	return fw.bytes(fw.buf[:1])
}

func (fw *writer) u16(v uint16) (failed bool) {
	fw.order.PutUint16(fw.buf[:2], v)
	return fw.bytes(fw.buf[:2])
}

func (fw *writer) u32(v uint32) (failed bool) {
	fw.order.PutUint32(fw.buf[:4], v)
	return fw.bytes(fw.buf[:4])
}

func (fw *writer) u64(v uint64) (failed bool) {
	fw.order.PutUint64(fw.buf[:8], v)
	return fw.bytes(fw.buf[:8])
}

func (fw *writer) str(v string) (failed bool) {
	if fw.u32(uint32(len(v))) {
		return true
	}
	return fw.bytes([]byte(v))
}

////////////////////////////////////////////////////////////////

func (fw *writer) envelope(n *lvdfile.Node) {
	if n.Type != schema.EnvelopeType {
		fw.err = &KindError{Path: fw.path.String(), Want: schema.EnvelopeType, Got: n.Type}
		return
	}
	layout, ok := schema.Lookup(n.Type, n.Version)
	if !ok {
		fw.err = &lvdfile.VersionError{Path: fw.path.String(), Type: n.Type, Version: n.Version}
		return
	}
	fw.u8(n.Version)
	fw.u8(signatureVersion)
	fw.bytes([]byte(signatureMagic))
	fw.fields(n, layout)
}

// node writes the node's stored version tag followed by its fields in the
// order declared by the layout that version resolves to.
func (fw *writer) node(n *lvdfile.Node) {
	layout, ok := schema.Lookup(n.Type, n.Version)
	if !ok {
		fw.err = &lvdfile.VersionError{Path: fw.path.String(), Type: n.Type, Version: n.Version}
		return
	}
	fw.u8(n.Version)
	fw.fields(n, layout)
}

func (fw *writer) fields(n *lvdfile.Node, layout schema.Layout) {
	for _, f := range layout {
		fw.path = append(fw.path, f.Name)
		v := n.Get(f.Name)
		if v == nil {
			fw.err = &FieldError{Path: fw.path.String()}
		} else {
			fw.value(f, v)
		}
		fw.path = fw.path[:len(fw.path)-1]
		if fw.err != nil {
			return
		}
	}
}

func (fw *writer) value(f schema.Field, v lvdfile.Value) {
	switch f.Kind {
	case lvdfile.KindInt8:
		if x, ok := v.(lvdfile.Int8); ok {
			fw.u8(uint8(x))
			return
		}
	case lvdfile.KindInt16:
		if x, ok := v.(lvdfile.Int16); ok {
			fw.u16(uint16(x))
			return
		}
	case lvdfile.KindInt32:
		if x, ok := v.(lvdfile.Int32); ok {
			fw.u32(uint32(x))
			return
		}
	case lvdfile.KindInt64:
		if x, ok := v.(lvdfile.Int64); ok {
			fw.u64(uint64(x))
			return
		}
	case lvdfile.KindUint8:
		if x, ok := v.(lvdfile.Uint8); ok {
			fw.u8(uint8(x))
			return
		}
	case lvdfile.KindUint16:
		if x, ok := v.(lvdfile.Uint16); ok {
			fw.u16(uint16(x))
			return
		}
	case lvdfile.KindUint32:
		if x, ok := v.(lvdfile.Uint32); ok {
			fw.u32(uint32(x))
			return
		}
	case lvdfile.KindUint64:
		if x, ok := v.(lvdfile.Uint64); ok {
			fw.u64(uint64(x))
			return
		}
	case lvdfile.KindFloat32:
		if x, ok := v.(lvdfile.Float32); ok {
			fw.u32(math.Float32bits(float32(x)))
			return
		}
	case lvdfile.KindBool:
		if x, ok := v.(lvdfile.Bool); ok {
			var b uint8
			if x {
				b = 1
			}
			fw.u8(b)
			return
		}
	case lvdfile.KindString:
		if x, ok := v.(lvdfile.String); ok {
			fw.str(string(x))
			return
		}
	case lvdfile.KindNode:
		n, ok := v.(*lvdfile.Node)
		if !ok {
			break
		}
		if n.Type != f.Type {
			fw.err = &KindError{Path: fw.path.String(), Want: f.Type, Got: n.Type}
			return
		}
		fw.node(n)
		return
	case lvdfile.KindContainer:
		c, ok := v.(*lvdfile.Container)
		if !ok {
			break
		}
		if c.Elem != f.Elem {
			fw.err = &KindError{Path: fw.path.String(), Want: f.Elem.String(), Got: c.Elem.String()}
			return
		}
		fw.container(f, c)
		return
	}
	fw.err = &KindError{Path: fw.path.String(), Want: kindName(f), Got: v.Kind().String()}
}

func (fw *writer) container(f schema.Field, c *lvdfile.Container) {
	if fw.u32(uint32(c.Len())) {
		return
	}
	elem := schema.Field{Name: f.Name, Kind: f.Elem, Type: f.Type}
	for i, v := range c.Values {
		fw.path = append(fw.path, "["+strconv.Itoa(i)+"]")
		fw.value(elem, v)
		fw.path = fw.path[:len(fw.path)-1]
		if fw.err != nil {
			return
		}
	}
}

// kindName names what a layout field expects, for error messages.
func kindName(f schema.Field) string {
	if f.Kind == lvdfile.KindNode {
		return f.Type
	}
	return f.Kind.String()
}
