package format

import (
	"fmt"
	"strings"
)

type (
	ByteOrder       uint8
	Layout          uint8
	CompressionType uint8
)

const (
	LittleEndian ByteOrder = 0x1 // LittleEndian stores multi-byte fields least significant byte first.
	BigEndian    ByteOrder = 0x2 // BigEndian stores multi-byte fields most significant byte first.

	LayoutLevel Layout = 0x1 // LayoutLevel is the 10-byte level node record.
	LayoutStage Layout = 0x2 // LayoutStage is the 12-byte stage node record with page id and item/version nibbles.

	CompressionNone CompressionType = 0x1 // CompressionNone writes the blob as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "Unknown"
	}
}

// UnmarshalText accepts "little"/"le" and "big"/"be".
func (b *ByteOrder) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "little", "le":
		*b = LittleEndian
	case "big", "be":
		*b = BigEndian
	default:
		return fmt.Errorf("unknown byte order %q", text)
	}

	return nil
}

func (l Layout) String() string {
	switch l {
	case LayoutLevel:
		return "level"
	case LayoutStage:
		return "stage"
	default:
		return "Unknown"
	}
}

func (l *Layout) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "level":
		*l = LayoutLevel
	case "stage":
		*l = LayoutStage
	default:
		return fmt.Errorf("unknown record layout %q", text)
	}

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (c *CompressionType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "none":
		*c = CompressionNone
	case "zstd":
		*c = CompressionZstd
	case "s2":
		*c = CompressionS2
	case "lz4":
		*c = CompressionLZ4
	default:
		return fmt.Errorf("unknown compression %q", text)
	}

	return nil
}
