// Package encoding builds and reads the string section of a node blob.
//
// Node names are interned into a StringTable: duplicates collapse into one
// entry, entries are sorted by byte value and every record stores the uint16
// position of its name. The serialized section is a plain concatenation of
// uint16 length prefixes and UTF-8 bytes with no count or terminator; the blob
// header carries the count and the section length.
//
// # Usage
//
//	table, err := encoding.NewStringTable(names)
//	if err != nil {
//	    return err
//	}
//	idx, _ := table.Index("Chapter1_1")
//	section := table.Bytes(endian.GetBigEndianEngine())
//
//	names, err := encoding.DecodeStringSection(section, table.Len(), engine)
//
// # Limits
//
// A name is at most 65535 bytes and a table holds at most 65536 names. Both are
// reported as errors rather than wrapped silently.
package encoding
