package section

// Nibbles holds two independent 4-bit values in one byte.
//
//	Bit:   7 6 5 4 | 3 2 1 0
//	Field:  High   |  Low
//
// The level layout stores node-info as High=icon, Low=node type.
// The stage layout stores node-info as High=icon, Low=node depth and
// item-version as High=collect item count, Low=game version.
type Nibbles uint8

// PackNibbles packs high into bits 4-7 and low into bits 0-3.
//
// Both values are masked with 0xF before packing: a value above 15 silently
// loses its upper bits (17 packs as 1). Consumers of the format rely on this
// exact truncation, so out-of-range values are not rejected.
func PackNibbles(high, low int) Nibbles {
	return Nibbles(((high & NibbleMask) << nibbleShift) | (low & NibbleMask)) //nolint: gosec
}

// High returns bits 4-7.
func (n Nibbles) High() int {
	return int(n >> nibbleShift)
}

// Low returns bits 0-3.
func (n Nibbles) Low() int {
	return int(n & NibbleMask)
}

// MaskByte truncates v to its low 8 bits, two's complement for negative values.
func MaskByte(v int) uint8 {
	return uint8(v & ByteMask) //nolint: gosec
}
