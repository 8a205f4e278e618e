package encoding

import (
	"fmt"
	"slices"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/internal/pool"
	"github.com/ctse-tools/nodebin/section"
)

// StringTable is the deduplicated, sorted string pool of a blob.
//
// Names are unique by exact byte equality and sorted by byte value, never by
// locale, so the same input always yields the same section. Records reference
// a name by its position in that order.
//
// Encoding format, per name in sorted order:
//   - 2 bytes: length as uint16, in the blob byte order
//   - N bytes: UTF-8 name bytes
type StringTable struct {
	names []string
	index map[string]uint16
	size  int
}

// NewStringTable builds a table from names in any order, duplicates included.
//
// Returns:
//   - *StringTable: the sorted, deduplicated table
//   - error: ErrStringTooLong if a name exceeds 65535 bytes, ErrTooManyStrings if
//     more than 65536 distinct names are given
func NewStringTable(names []string) (*StringTable, error) {
	unique := make(map[string]struct{}, len(names))
	sorted := make([]string, 0, len(names))

	for _, name := range names {
		if _, seen := unique[name]; seen {
			continue
		}

		if len(name) > section.MaxStringLength {
			return nil, fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, len(name))
		}

		unique[name] = struct{}{}
		sorted = append(sorted, name)
	}

	if len(sorted) > section.MaxStringCount {
		return nil, fmt.Errorf("%w: %d distinct names", errs.ErrTooManyStrings, len(sorted))
	}

	// Go string comparison is byte-wise, which is the order the format requires.
	slices.Sort(sorted)

	t := &StringTable{
		names: sorted,
		index: make(map[string]uint16, len(sorted)),
	}

	for i, name := range sorted {
		t.index[name] = uint16(i) //nolint: gosec
		t.size += section.StringPrefixSize + len(name)
	}

	return t, nil
}

// Len returns the number of unique names.
func (t *StringTable) Len() int {
	return len(t.names)
}

// Size returns the byte length of the serialized section.
func (t *StringTable) Size() int {
	return t.size
}

// Names returns a copy of the names in section order.
func (t *StringTable) Names() []string {
	return slices.Clone(t.names)
}

// Index returns the position of name in the section.
func (t *StringTable) Index(name string) (uint16, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// Name returns the name at position idx.
func (t *StringTable) Name(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.names) {
		return "", false
	}

	return t.names[idx], true
}

// WriteTo appends the serialized section to bb.
// The buffer is grown once for the whole section.
func (t *StringTable) WriteTo(bb *pool.ByteBuffer, engine endian.EndianEngine) {
	bb.Grow(t.size)

	for _, name := range t.names {
		bb.B = engine.AppendUint16(bb.B, uint16(len(name))) //nolint: gosec
		bb.MustWriteString(name)
	}
}

// Bytes returns the serialized section as a new slice.
func (t *StringTable) Bytes(engine endian.EndianEngine) []byte {
	bb := pool.NewByteBuffer(t.size)
	t.WriteTo(bb, engine)

	return bb.Bytes()
}

// DecodeStringSection decodes count length-prefixed strings from data.
//
// The section must be consumed exactly: trailing bytes or a truncated entry
// return ErrInvalidStringSection.
func DecodeStringSection(data []byte, count int, engine endian.EndianEngine) ([]string, error) {
	names := make([]string, count)
	offset := 0

	for i := range count {
		if len(data) < offset+section.StringPrefixSize {
			return nil, fmt.Errorf("%w: cannot read length of string %d at offset %d (have %d bytes)",
				errs.ErrInvalidStringSection, i, offset, len(data))
		}

		n := int(engine.Uint16(data[offset:]))
		offset += section.StringPrefixSize

		if len(data) < offset+n {
			return nil, fmt.Errorf("%w: string %d needs %d bytes at offset %d (have %d bytes)",
				errs.ErrInvalidStringSection, i, n, offset, len(data))
		}

		names[i] = string(data[offset : offset+n])
		offset += n
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidStringSection, len(data)-offset)
	}

	return names, nil
}
