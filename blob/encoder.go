package blob

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ctse-tools/nodebin/encoding"
	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/enum"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/internal/options"
	"github.com/ctse-tools/nodebin/internal/pool"
	"github.com/ctse-tools/nodebin/profile"
	"github.com/ctse-tools/nodebin/section"
)

// Encoder compiles rows into a node blob for one profile.
//
// Encoding is all or nothing: the first invalid row aborts the batch and no
// partial blob is returned. An Encoder holds no per-batch state, so it may be
// reused and shared between goroutines.
type Encoder struct {
	profile    *profile.Profile
	engine     endian.EndianEngine
	recordSize int
	logger     *zap.Logger
}

// NewEncoder creates an encoder for a validated profile.
//
// Parameters:
//   - p: profile returned by profile.Load or profile.Parse
//   - opts: optional configuration (WithLogger, WithByteOrder)
//
// Returns:
//   - *Encoder: the encoder
//   - error: errs.ErrInvalidProfile if p is nil or not validated, or an option error
func NewEncoder(p *profile.Profile, opts ...EncoderOption) (*Encoder, error) {
	if p == nil || p.StageTypes() == nil {
		return nil, fmt.Errorf("%w: profile is nil or not validated", errs.ErrInvalidProfile)
	}

	recordSize, err := p.RecordSize()
	if err != nil {
		return nil, err
	}

	cfg := &EncoderConfig{
		logger: zap.NewNop(),
		engine: p.Engine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		profile:    p,
		engine:     cfg.engine,
		recordSize: recordSize,
		logger:     cfg.logger.With(zap.String("profile", p.Name)),
	}, nil
}

// Profile returns the profile of the encoder.
func (e *Encoder) Profile() *profile.Profile {
	return e.profile
}

// Encode compiles rows, in order, into a blob.
//
// The blob is a 16-byte header, the sorted string section and one fixed-width
// record per row, in input order. The same rows always produce the same bytes.
func (e *Encoder) Encode(rows []Row) (*Blob, error) {
	names := make([]string, len(rows))
	for i, row := range rows {
		name, err := row.Value(e.profile.Columns.Name)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		names[i] = name
	}

	table, err := encoding.NewStringTable(names)
	if err != nil {
		return nil, err
	}

	header, err := section.NewHeader(len(rows), table.Len(), table.Size(), len(rows)*e.recordSize)
	if err != nil {
		return nil, err
	}

	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.Grow(int(header.TotalSize))
	headerOffset := bb.Reserve(section.HeaderSize)
	table.WriteTo(bb, e.engine)

	warned := make(map[string]struct{})
	for i, row := range rows {
		idx, _ := table.Index(names[i])
		rd := &rowDecoder{row: row, num: i + 1}

		var rec section.Record
		switch e.profile.Layout {
		case format.LayoutLevel:
			rec = e.levelRecord(rd, idx)
		case format.LayoutStage:
			rec = e.stageRecord(rd, idx)
		default:
			return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedLayout, e.profile.Layout)
		}

		if rd.err != nil {
			return nil, rd.err
		}

		e.warnMissing(rd, warned)
		bb.B = rec.AppendTo(bb.B, e.engine)
	}

	header.WriteToSlice(bb.Slice(headerOffset, headerOffset+section.HeaderSize), e.engine)

	if bb.Len() != int(header.TotalSize) {
		return nil, fmt.Errorf("%w: assembled %d bytes, header says %d", errs.ErrCorruptBlob, bb.Len(), header.TotalSize)
	}

	return &Blob{
		data:    slices.Clone(bb.Bytes()),
		header:  *header,
		names:   table.Names(),
		profile: e.profile.Name,
		layout:  e.profile.Layout,
		engine:  e.engine,
	}, nil
}

func (e *Encoder) levelRecord(rd *rowDecoder, nameIdx uint16) *section.LevelRecord {
	cols := &e.profile.Columns

	rec := &section.LevelRecord{
		NameIndex:     nameIdx,
		CourseID:      rd.signed16(cols.CourseID),
		StageType:     e.profile.StageTypes().Resolve(rd.str(cols.StageType)),
		Version:       section.MaskByte(rd.integer(cols.GameVersion)),
		ChallengeTime: rd.unsigned16(cols.ChallengeTime),
	}

	icon := rd.label(e.profile.NodeIcons(), cols.NodeIcon)
	nodeType := rd.label(e.profile.NodeTypes(), cols.NodeType)
	rec.NodeInfo = section.PackNibbles(icon, nodeType)
	rec.Flags = rd.flags(&e.profile.Flags)

	return rec
}

func (e *Encoder) stageRecord(rd *rowDecoder, nameIdx uint16) *section.StageRecord {
	cols := &e.profile.Columns

	rec := &section.StageRecord{
		NameIndex:     nameIdx,
		CourseID:      rd.signed16(cols.CourseID),
		PageID:        rd.signed16(cols.PageID),
		StageType:     e.profile.StageTypes().Resolve(rd.str(cols.StageType)),
		ChallengeTime: rd.unsigned16(cols.ChallengeTime),
	}

	icon := rd.label(e.profile.NodeIcons(), cols.NodeIcon)
	rec.NodeInfo = section.PackNibbles(icon, rd.integer(cols.NodeDepth))
	rec.ItemVersion = section.PackNibbles(rd.integer(cols.CollectItemNum), rd.integer(cols.GameVersion))
	rec.Flags = rd.flags(&e.profile.Flags)

	return rec
}

// warnMissing logs each missing boolean column once per batch.
func (e *Encoder) warnMissing(rd *rowDecoder, warned map[string]struct{}) {
	for _, column := range rd.missing {
		if _, ok := warned[column]; ok {
			continue
		}
		warned[column] = struct{}{}

		e.logger.Warn("boolean column missing, treated as false",
			zap.String("column", column),
			zap.Int("row", rd.num),
		)
	}
}

// rowDecoder reads typed fields from one row and keeps the first error.
// Once err is set every accessor returns a zero value.
type rowDecoder struct {
	row     Row
	num     int
	err     error
	missing []string
}

func (d *rowDecoder) fail(column string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("row %d, column %q: %w", d.num, column, err)
	}
}

func (d *rowDecoder) str(column string) string {
	if d.err != nil {
		return ""
	}

	v, err := d.row.Value(column)
	if err != nil {
		d.fail(column, err)
		return ""
	}

	return v
}

func (d *rowDecoder) integer(column string) int {
	raw := d.str(column)
	if d.err != nil {
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		d.fail(column, fmt.Errorf("%w: %q", errs.ErrInvalidNumber, raw))
		return 0
	}

	return v
}

func (d *rowDecoder) signed16(column string) int16 {
	v := d.integer(column)
	if v < math.MinInt16 || v > math.MaxInt16 {
		d.fail(column, fmt.Errorf("%w: %d does not fit int16", errs.ErrFieldOverflow, v))
		return 0
	}

	return int16(v)
}

func (d *rowDecoder) unsigned16(column string) uint16 {
	v := d.integer(column)
	if v < 0 || v > math.MaxUint16 {
		d.fail(column, fmt.Errorf("%w: %d does not fit uint16", errs.ErrFieldOverflow, v))
		return 0
	}

	return uint16(v)
}

func (d *rowDecoder) label(table *enum.Table, column string) int {
	raw := d.str(column)
	if d.err != nil {
		return 0
	}

	code, err := table.Lookup(raw)
	if err != nil {
		d.fail(column, err)
		return 0
	}

	return code
}

func (d *rowDecoder) flags(spec *section.FlagSpec) uint8 {
	flags, missing := spec.Pack(d.row.Lookup)
	d.missing = missing

	return flags
}
