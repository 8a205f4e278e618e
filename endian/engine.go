// Package endian provides the byte order engines used to encode node blobs.
//
// The header, the string length prefixes and every multi-byte record field of a
// blob share one byte order, chosen by the profile. EndianEngine combines the
// ByteOrder and AppendByteOrder interfaces of encoding/binary so encoders can both
// patch fixed offsets (header backfill) and append (sections) through one value:
//
//	engine := endian.ForByteOrder(format.BigEndian)
//	buf = engine.AppendUint16(buf, uint16(len(name)))
//	engine.PutUint32(buf[0:4], entryCount)
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"github.com/ctse-tools/nodebin/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForByteOrder returns the engine for a profile byte order.
// Anything other than format.BigEndian maps to little-endian.
func ForByteOrder(order format.ByteOrder) EndianEngine {
	if order == format.BigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether the engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
