// The lvd package decodes and encodes the binary LVD format.
//
// The format is a flat stream of version-tagged records: each node is
// written as a one-byte version tag followed by the fields of the layout
// that version declares, resolved through the schema registry. Containers
// are count-prefixed, strings are length-prefixed UTF-8, and all multi-byte
// primitives use the byte order selected on the Decoder or Encoder. There is
// no offset table and no padding; the stream is read strictly sequentially,
// so its layout is the sole source of truth for structure.
package lvd

// filePrelude is the constant 32-bit word every LVD file begins with.
const filePrelude uint32 = 1

// The signature record following the envelope's version tag.
const (
	signatureVersion uint8 = 1
	signatureMagic         = "LVD1"
)
