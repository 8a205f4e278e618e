package blob

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ctse-tools/nodebin/encoding"
	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/section"
)

// Decoder reads a node blob back into its header, strings and records.
//
// The blob format has no magic number or layout tag, so the caller supplies the
// layout and byte order of the profile that produced it. NewDecoder validates
// the section sizes against the header the way the game reader does, and checks
// every record's name index.
//
// A Decoder does not copy data; the caller must not modify it while decoding.
type Decoder struct {
	data       []byte
	layout     format.Layout
	engine     endian.EndianEngine
	recordSize int
	header     section.Header
	names      []string
}

// NewDecoder parses and validates a blob.
//
// Returns:
//   - *Decoder: decoder ready for record access
//   - error: errs.ErrCorruptBlob if the sizes do not add up, errs.ErrInvalidStringSection
//     for a malformed string section, errs.ErrNameIndexOutOfRange if a record
//     points past the string section, errs.ErrUnsupportedLayout for an unknown layout
func NewDecoder(data []byte, layout format.Layout, engine endian.EndianEngine) (*Decoder, error) {
	recordSize, err := section.RecordSize(layout)
	if err != nil {
		return nil, err
	}

	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrCorruptBlob, len(data))
	}

	d := &Decoder{
		data:       data,
		layout:     layout,
		engine:     engine,
		recordSize: recordSize,
	}

	if err := d.header.Parse(data[:section.HeaderSize], engine); err != nil {
		return nil, err
	}

	if err := d.header.Validate(len(data), recordSize); err != nil {
		return nil, err
	}

	if d.header.StringCount > section.MaxStringCount {
		return nil, fmt.Errorf("%w: %d strings", errs.ErrCorruptBlob, d.header.StringCount)
	}

	strs := data[section.StringSectionOff:d.header.RecordSectionOffset()]
	if d.names, err = encoding.DecodeStringSection(strs, int(d.header.StringCount), engine); err != nil {
		return nil, err
	}

	for i := range d.EntryCount() {
		if idx := d.nameIndex(i); int(idx) >= len(d.names) {
			return nil, fmt.Errorf("%w: record %d references string %d of %d",
				errs.ErrNameIndexOutOfRange, i, idx, len(d.names))
		}
	}

	return d, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Layout returns the record layout the decoder reads.
func (d *Decoder) Layout() format.Layout {
	return d.layout
}

// EntryCount returns the number of records.
func (d *Decoder) EntryCount() int {
	return int(d.header.EntryCount)
}

// Strings returns a copy of the string section in order.
func (d *Decoder) Strings() []string {
	return slices.Clone(d.names)
}

// Name returns the name referenced by record i.
func (d *Decoder) Name(i int) (string, error) {
	if i < 0 || i >= d.EntryCount() {
		return "", fmt.Errorf("%w: record %d of %d", errs.ErrNameIndexOutOfRange, i, d.EntryCount())
	}

	return d.names[d.nameIndex(i)], nil
}

// LevelRecords decodes all records of a level blob.
func (d *Decoder) LevelRecords() ([]section.LevelRecord, error) {
	if d.layout != format.LayoutLevel {
		return nil, fmt.Errorf("%w: blob is %s, not level", errs.ErrUnsupportedLayout, d.layout)
	}

	records := make([]section.LevelRecord, d.EntryCount())
	for i := range records {
		if err := records[i].Parse(d.record(i), d.engine); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// StageRecords decodes all records of a stage blob.
func (d *Decoder) StageRecords() ([]section.StageRecord, error) {
	if d.layout != format.LayoutStage {
		return nil, fmt.Errorf("%w: blob is %s, not stage", errs.ErrUnsupportedLayout, d.layout)
	}

	records := make([]section.StageRecord, d.EntryCount())
	for i := range records {
		if err := records[i].Parse(d.record(i), d.engine); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// All returns an iterator over the records, in blob order, as the layout's
// record type behind the section.Record interface.
func (d *Decoder) All() iter.Seq2[int, section.Record] {
	return func(yield func(int, section.Record) bool) {
		for i := range d.EntryCount() {
			var rec section.Record
			if d.layout == format.LayoutLevel {
				rec = &section.LevelRecord{}
			} else {
				rec = &section.StageRecord{}
			}

			// the size is fixed by construction, Parse cannot fail here
			_ = rec.Parse(d.record(i), d.engine)

			if !yield(i, rec) {
				return
			}
		}
	}
}

func (d *Decoder) record(i int) []byte {
	start := d.header.RecordSectionOffset() + i*d.recordSize
	return d.data[start : start+d.recordSize]
}

// nameIndex reads the name index, which leads every layout.
func (d *Decoder) nameIndex(i int) uint16 {
	return d.engine.Uint16(d.record(i))
}
