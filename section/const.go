package section

import "math"

// offset and section sizes in the blob file
const (
	HeaderSize       = 16             // fixed header size in bytes: four uint32 fields
	LevelRecordSize  = 10             // fixed record size for the level layout
	StageRecordSize  = 12             // fixed record size for the stage layout
	StringPrefixSize = 2              // uint16 length prefix in front of every string
	StringSectionOff = HeaderSize     // byte offset where the string section starts
	MaxStringLength  = math.MaxUint16 // longest name the length prefix can describe
	MaxStringCount   = 1 << 16        // name index is a uint16
	MaxEntryCount    = math.MaxUint32 // entry count is a uint32
	NibbleMask       = 0x0F           // 4-bit field mask
	ByteMask         = 0xFF           // 8-bit field mask
	nibbleShift      = 4              // high nibble position
)
