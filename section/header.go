package section

import (
	"fmt"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
)

// Header represents the fixed-size header of a node blob.
// It is 16 bytes: four uint32 fields in the blob's byte order.
//
// The header carries no magic number or version; the reader must know the
// profile (byte order and record layout) that produced the blob.
type Header struct {
	// EntryCount is the number of records in the record section.
	EntryCount uint32 // 4 bytes, offset 0-3
	// StringCount is the number of unique strings in the string section.
	StringCount uint32 // 4 bytes, offset 4-7
	// StringSectionSize is the byte length of the string section, length prefixes included.
	StringSectionSize uint32 // 4 bytes, offset 8-11
	// TotalSize is the byte length of the whole blob, header included.
	TotalSize uint32 // 4 bytes, offset 12-15
}

// NewHeader builds a header for the given section sizes.
// TotalSize is derived, so the header is always consistent with its sections.
func NewHeader(entryCount, stringCount, stringSectionSize, recordSectionSize int) (*Header, error) {
	if entryCount < 0 || uint64(entryCount) > MaxEntryCount {
		return nil, fmt.Errorf("%w: %d entries", errs.ErrTooManyEntries, entryCount)
	}

	if stringCount < 0 || stringCount > MaxStringCount {
		return nil, fmt.Errorf("%w: %d strings", errs.ErrTooManyStrings, stringCount)
	}

	total := uint64(HeaderSize) + uint64(stringSectionSize) + uint64(recordSectionSize) //nolint: gosec
	if stringSectionSize < 0 || recordSectionSize < 0 || total > MaxEntryCount {
		return nil, fmt.Errorf("%w: blob size %d does not fit the header", errs.ErrCorruptBlob, total)
	}

	return &Header{
		EntryCount:        uint32(entryCount),        //nolint: gosec
		StringCount:       uint32(stringCount),       //nolint: gosec
		StringSectionSize: uint32(stringSectionSize), //nolint: gosec
		TotalSize:         uint32(total),
	}, nil
}

// Parse parses the header from a byte slice using the given engine.
// It returns an error if the data is not exactly 16 bytes.
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.EntryCount = engine.Uint32(data[0:4])
	h.StringCount = engine.Uint32(data[4:8])
	h.StringSectionSize = engine.Uint32(data[8:12])
	h.TotalSize = engine.Uint32(data[12:16])

	return nil
}

// Bytes serializes the header into a new 16-byte slice.
func (h Header) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b, engine)

	return b
}

// WriteToSlice writes the header into the first 16 bytes of data.
// Used to backfill the space reserved at the start of a blob buffer.
func (h Header) WriteToSlice(data []byte, engine endian.EndianEngine) {
	_ = data[HeaderSize-1] // bounds check hint

	engine.PutUint32(data[0:4], h.EntryCount)
	engine.PutUint32(data[4:8], h.StringCount)
	engine.PutUint32(data[8:12], h.StringSectionSize)
	engine.PutUint32(data[12:16], h.TotalSize)
}

// RecordSectionOffset returns the byte offset where the record section starts.
func (h Header) RecordSectionOffset() int {
	return HeaderSize + int(h.StringSectionSize)
}

// Validate checks the header against the blob length and the record size of its layout.
func (h Header) Validate(blobLen int, recordSize int) error {
	if int(h.TotalSize) != blobLen {
		return fmt.Errorf("%w: header total size %d, blob is %d bytes", errs.ErrCorruptBlob, h.TotalSize, blobLen)
	}

	want := uint64(HeaderSize) + uint64(h.StringSectionSize) + uint64(h.EntryCount)*uint64(recordSize) //nolint: gosec
	if want != uint64(h.TotalSize) {
		return fmt.Errorf("%w: sections add up to %d bytes, header says %d", errs.ErrCorruptBlob, want, h.TotalSize)
	}

	return nil
}
