package blob

import (
	"slices"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/internal/hash"
	"github.com/ctse-tools/nodebin/section"
)

// Blob is an assembled node blob. It is immutable.
type Blob struct {
	data    []byte
	header  section.Header
	names   []string
	profile string
	layout  format.Layout
	engine  endian.EndianEngine
}

// Bytes returns the serialized blob. The slice must not be modified.
func (b *Blob) Bytes() []byte {
	return b.data
}

// Len returns the blob size in bytes.
func (b *Blob) Len() int {
	return len(b.data)
}

// Header returns the blob header.
func (b *Blob) Header() section.Header {
	return b.header
}

// Names returns a copy of the string section in order.
func (b *Blob) Names() []string {
	return slices.Clone(b.names)
}

// Profile returns the name of the profile the blob was built with.
func (b *Blob) Profile() string {
	return b.profile
}

// Layout returns the record layout of the blob.
func (b *Blob) Layout() format.Layout {
	return b.layout
}

// Fingerprint returns the xxHash64 of the serialized blob.
// Two builds of identical input have the same fingerprint.
func (b *Blob) Fingerprint() uint64 {
	return hash.Fingerprint(b.data)
}

// Decoder returns a decoder reading this blob back.
func (b *Blob) Decoder() (*Decoder, error) {
	return NewDecoder(b.data, b.layout, b.engine)
}
