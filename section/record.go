package section

import (
	"fmt"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
)

// Record is a fixed-width node record of either layout.
type Record interface {
	AppendTo(buf []byte, engine endian.EndianEngine) []byte
	Parse(data []byte, engine endian.EndianEngine) error
}

var (
	_ Record = (*LevelRecord)(nil)
	_ Record = (*StageRecord)(nil)
)

// RecordSize returns the fixed record width of a layout.
func RecordSize(layout format.Layout) (int, error) {
	switch layout {
	case format.LayoutLevel:
		return LevelRecordSize, nil
	case format.LayoutStage:
		return StageRecordSize, nil
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedLayout, layout)
	}
}
