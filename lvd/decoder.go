package lvd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/anaminus/parse"

	"github.com/ultimate-research/lvdfile"
	"github.com/ultimate-research/lvdfile/errors"
	"github.com/ultimate-research/lvdfile/schema"
)

// Decoder decodes a stream of bytes into an lvdfile.Document.
type Decoder struct {
	// Order is the byte order of every multi-byte primitive in the stream.
	// If nil, big-endian is used.
	Order binary.ByteOrder
}

// Decode reads data from r and decodes it into a document. The whole input
// is read into memory before decoding begins. Decoding is single-pass; a
// structural failure aborts the whole decode with the offending node's path
// in the error. Conditions that do not affect the decoded document, such as
// trailing bytes after the envelope, are returned as warnings.
func (d Decoder) Decode(r io.Reader) (doc *lvdfile.Document, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}
	order := d.Order
	if order == nil {
		order = binary.BigEndian
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	br := bytes.NewReader(data)
	fr := &reader{r: parse.NewBinaryReader(br), order: order}

	var prelude uint32
	if fr.u32(&prelude) {
		return nil, nil, fr.err
	}
	if prelude != filePrelude {
		return nil, nil, ErrPrelude
	}

	root := fr.envelope()
	if fr.err != nil {
		return nil, nil, fr.err
	}

	var warns errors.Errors
	if n := br.Len(); n > 0 {
		warns = warns.Append(fmt.Errorf("%d trailing bytes after envelope", n))
	}
	return &lvdfile.Document{Root: root}, warns.Return(), nil
}

////////////////////////////////////////////////////////////////

// reader decodes primitives through a parse.BinaryReader with an explicit
// byte order, keeping the node path of the value currently being read. The
// first failure is latched in err; all later reads are no-ops that report
// failure.
type reader struct {
	r     *parse.BinaryReader
	order binary.ByteOrder
	path  lvdfile.Path
	err   error
	buf   [8]byte
}

// fail records the reader's underlying error, mapping end-of-input to an
// EOFError carrying the current path. Always returns true.
func (fr *reader) fail() bool {
	if fr.err == nil {
		err := fr.r.Err()
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			fr.err = &EOFError{Path: fr.path.String()}
		} else {
			fr.err = err
		}
	}
	return true
}

func (fr *reader) bytes(n int) (buf []byte, failed bool) {
	if fr.err != nil {
		return nil, true
	}
	buf = fr.buf[:n]
	if fr.r.Bytes(buf) {
		return nil, fr.fail()
	}
	return buf, false
}

func (fr *reader) u8(v *uint8) (failed bool) {
	buf, failed := fr.bytes(1)
	if failed {
		return true
	}
	*v = buf[0]
	return false
}

func (fr *reader) u16(v *uint16) (failed bool) {
	buf, failed := fr.bytes(2)
	if failed {
		return true
	}
	*v = fr.order.Uint16(buf)
	return false
}

func (fr *reader) u32(v *uint32) (failed bool) {
	buf, failed := fr.bytes(4)
	if failed {
		return true
	}
	*v = fr.order.Uint32(buf)
	return false
}

func (fr *reader) u64(v *uint64) (failed bool) {
	buf, failed := fr.bytes(8)
	if failed {
		return true
	}
	*v = fr.order.Uint64(buf)
	return false
}

// str reads a 4-byte length followed by that many bytes of UTF-8. The
// content bytes are not byte-order sensitive.
func (fr *reader) str(v *string) (failed bool) {
	var length uint32
	if fr.u32(&length) {
		return true
	}
	if length == 0 {
		*v = ""
		return false
	}
	s := make([]byte, length)
	if fr.r.Bytes(s) {
		return fr.fail()
	}
	*v = string(s)
	return false
}

////////////////////////////////////////////////////////////////

// envelope decodes the root record: version tag, signature, then the
// section fields of the envelope layout for that version.
func (fr *reader) envelope() *lvdfile.Node {
	var version uint8
	if fr.u8(&version) {
		return nil
	}
	layout, ok := schema.Lookup(schema.EnvelopeType, version)
	if !ok {
		fr.err = &lvdfile.VersionError{Path: fr.path.String(), Type: schema.EnvelopeType, Version: version}
		return nil
	}

	var sigVersion uint8
	if fr.u8(&sigVersion) {
		return nil
	}
	var magic [4]byte
	if fr.r.Bytes(magic[:]) {
		fr.fail()
		return nil
	}
	if sigVersion != signatureVersion || string(magic[:]) != signatureMagic {
		fr.err = ErrSignature
		return nil
	}

	n := &lvdfile.Node{Type: schema.EnvelopeType, Version: version}
	fr.fields(n, layout)
	return n
}

// node decodes a version tag and dispatches into the layout registered for
// the tag under the given node type.
func (fr *reader) node(typ string) *lvdfile.Node {
	var version uint8
	if fr.u8(&version) {
		return nil
	}
	layout, ok := schema.Lookup(typ, version)
	if !ok {
		fr.err = &lvdfile.VersionError{Path: fr.path.String(), Type: typ, Version: version}
		return nil
	}
	n := &lvdfile.Node{Type: typ, Version: version}
	fr.fields(n, layout)
	return n
}

func (fr *reader) fields(n *lvdfile.Node, layout schema.Layout) {
	n.Fields = make([]lvdfile.Field, 0, len(layout))
	for _, f := range layout {
		fr.path = append(fr.path, f.Name)
		v := fr.value(f)
		fr.path = fr.path[:len(fr.path)-1]
		if fr.err != nil {
			return
		}
		n.Fields = append(n.Fields, lvdfile.Field{Name: f.Name, Value: v})
	}
}

func (fr *reader) value(f schema.Field) lvdfile.Value {
	switch f.Kind {
	case lvdfile.KindInt8:
		var v uint8
		if fr.u8(&v) {
			return nil
		}
		return lvdfile.Int8(v)
	case lvdfile.KindInt16:
		var v uint16
		if fr.u16(&v) {
			return nil
		}
		return lvdfile.Int16(v)
	case lvdfile.KindInt32:
		var v uint32
		if fr.u32(&v) {
			return nil
		}
		return lvdfile.Int32(v)
	case lvdfile.KindInt64:
		var v uint64
		if fr.u64(&v) {
			return nil
		}
		return lvdfile.Int64(v)
	case lvdfile.KindUint8:
		var v uint8
		if fr.u8(&v) {
			return nil
		}
		return lvdfile.Uint8(v)
	case lvdfile.KindUint16:
		var v uint16
		if fr.u16(&v) {
			return nil
		}
		return lvdfile.Uint16(v)
	case lvdfile.KindUint32:
		var v uint32
		if fr.u32(&v) {
			return nil
		}
		return lvdfile.Uint32(v)
	case lvdfile.KindUint64:
		var v uint64
		if fr.u64(&v) {
			return nil
		}
		return lvdfile.Uint64(v)
	case lvdfile.KindFloat32:
		var v uint32
		if fr.u32(&v) {
			return nil
		}
		return lvdfile.Float32(math.Float32frombits(v))
	case lvdfile.KindBool:
		var v uint8
		if fr.u8(&v) {
			return nil
		}
		return lvdfile.Bool(v != 0)
	case lvdfile.KindString:
		var v string
		if fr.str(&v) {
			return nil
		}
		return lvdfile.String(v)
	case lvdfile.KindNode:
		return fr.node(f.Type)
	case lvdfile.KindContainer:
		return fr.container(f)
	}
	fr.err = fmt.Errorf("%s: invalid field kind %s", fr.path, f.Kind)
	return nil
}

func (fr *reader) container(f schema.Field) *lvdfile.Container {
	var count uint32
	if fr.u32(&count) {
		return nil
	}
	c := &lvdfile.Container{Elem: f.Elem, Type: f.Type}
	elem := schema.Field{Name: f.Name, Kind: f.Elem, Type: f.Type}
	for i := uint32(0); i < count; i++ {
		fr.path = append(fr.path, "["+strconv.FormatUint(uint64(i), 10)+"]")
		v := fr.value(elem)
		fr.path = fr.path[:len(fr.path)-1]
		if fr.err != nil {
			return nil
		}
		c.Append(v)
	}
	return c
}
