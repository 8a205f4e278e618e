// Package section defines the low-level binary structures of a node blob.
//
// A blob is three sections concatenated with no padding or alignment:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                                │
//	│  - EntryCount (4 bytes)                                 │
//	│  - StringCount (4 bytes)                                │
//	│  - StringSectionSize (4 bytes)                          │
//	│  - TotalSize (4 bytes)                                  │
//	├─────────────────────────────────────────────────────────┤
//	│ String Section (variable)                               │
//	│  - unique names, ascending byte order                   │
//	│  - each: uint16 length + UTF-8 bytes                    │
//	├─────────────────────────────────────────────────────────┤
//	│ Record Section (EntryCount × record size)               │
//	│  - one record per input row, input order                │
//	│  - LevelRecord (10 bytes) or StageRecord (12 bytes)     │
//	└─────────────────────────────────────────────────────────┘
//
// Every multi-byte field, the string length prefixes included, uses the byte
// order of the producing profile. Nothing in the blob records that byte order
// or the layout: both are part of the contract between producer and reader.
//
// # Packing
//
// Narrow fields are packed with Nibbles (two 4-bit values per byte) and
// MaskByte. Both truncate silently instead of rejecting out-of-range values.
// The flags byte is built by a FlagSpec, whose bit assignment is profile data.
package section
