package section

import (
	"fmt"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
)

// LevelRecord is one node of the level layout. It is a fixed size of 10 bytes.
//
//	Bytes | Field         | Type  | Description
//	------|---------------|-------|------------------------------------------
//	0-1   | NameIndex     | u16   | index into the sorted string section
//	2-3   | CourseID      | i16   | course (or season) id
//	4     | StageType     | i8    | stage type code, -1 when unknown
//	5     | NodeInfo      | u8    | bits 4-7 icon, bits 0-3 node type
//	6     | Version       | u8    | game version threshold
//	7     | Flags         | u8    | FlagSpec bits
//	8-9   | ChallengeTime | u16   | time trial target in seconds
type LevelRecord struct {
	NameIndex     uint16
	CourseID      int16
	StageType     int8
	NodeInfo      Nibbles
	Version       uint8
	Flags         uint8
	ChallengeTime uint16
}

// Icon returns the node icon code.
func (r *LevelRecord) Icon() int {
	return r.NodeInfo.High()
}

// NodeType returns the node type code.
func (r *LevelRecord) NodeType() int {
	return r.NodeInfo.Low()
}

// AppendTo appends the record to buf and returns the extended slice.
func (r *LevelRecord) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint16(buf, r.NameIndex)
	buf = engine.AppendUint16(buf, uint16(r.CourseID)) //nolint: gosec
	buf = append(buf, byte(r.StageType), byte(r.NodeInfo), r.Version, r.Flags) //nolint: gosec

	return engine.AppendUint16(buf, r.ChallengeTime)
}

// Parse parses the record from exactly LevelRecordSize bytes.
func (r *LevelRecord) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != LevelRecordSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidRecordSize, len(data), LevelRecordSize)
	}

	r.NameIndex = engine.Uint16(data[0:2])
	r.CourseID = int16(engine.Uint16(data[2:4])) //nolint: gosec
	r.StageType = int8(data[4])                  //nolint: gosec
	r.NodeInfo = Nibbles(data[5])
	r.Version = data[6]
	r.Flags = data[7]
	r.ChallengeTime = engine.Uint16(data[8:10])

	return nil
}
