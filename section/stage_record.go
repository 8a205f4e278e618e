package section

import (
	"fmt"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
)

// StageRecord is one node of the stage layout. It is a fixed size of 12 bytes.
//
//	Bytes | Field         | Type  | Description
//	------|---------------|-------|------------------------------------------
//	0-1   | NameIndex     | u16   | index into the sorted string section
//	2-3   | CourseID      | i16   | course id, or season id for season nodes
//	4-5   | PageID        | i16   | page within the season, negative for none
//	6     | StageType     | i8    | stage type code, -1 when unknown
//	7     | NodeInfo      | u8    | bits 4-7 icon, bits 0-3 tree depth
//	8     | ItemVersion   | u8    | bits 4-7 collect item count, bits 0-3 version
//	9     | Flags         | u8    | FlagSpec bits
//	10-11 | ChallengeTime | u16   | time trial target in seconds
//
// Depth 0 is reserved for the implicit root; readers attach each node to the
// closest preceding node of depth-1.
type StageRecord struct {
	NameIndex     uint16
	CourseID      int16
	PageID        int16
	StageType     int8
	NodeInfo      Nibbles
	ItemVersion   Nibbles
	Flags         uint8
	ChallengeTime uint16
}

// Icon returns the node icon code.
func (r *StageRecord) Icon() int {
	return r.NodeInfo.High()
}

// Depth returns the node depth in the stage tree.
func (r *StageRecord) Depth() int {
	return r.NodeInfo.Low()
}

// CollectItemNum returns the number of collect items in the stage.
func (r *StageRecord) CollectItemNum() int {
	return r.ItemVersion.High()
}

// Version returns the game version threshold.
func (r *StageRecord) Version() int {
	return r.ItemVersion.Low()
}

// AppendTo appends the record to buf and returns the extended slice.
func (r *StageRecord) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint16(buf, r.NameIndex)
	buf = engine.AppendUint16(buf, uint16(r.CourseID)) //nolint: gosec
	buf = engine.AppendUint16(buf, uint16(r.PageID))   //nolint: gosec
	buf = append(buf, byte(r.StageType), byte(r.NodeInfo), byte(r.ItemVersion), r.Flags) //nolint: gosec

	return engine.AppendUint16(buf, r.ChallengeTime)
}

// Parse parses the record from exactly StageRecordSize bytes.
func (r *StageRecord) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != StageRecordSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), StageRecordSize)
	}

	r.NameIndex = engine.Uint16(data[0:2])
	r.CourseID = int16(engine.Uint16(data[2:4])) //nolint: gosec
	r.PageID = int16(engine.Uint16(data[4:6]))   //nolint: gosec
	r.StageType = int8(data[6])                  //nolint: gosec
	r.NodeInfo = Nibbles(data[7])
	r.ItemVersion = Nibbles(data[8])
	r.Flags = data[9]
	r.ChallengeTime = engine.Uint16(data[10:12])

	return nil
}
