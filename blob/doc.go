// Package blob compiles node rows into the binary node blob and reads it back.
//
// # Encoding
//
// An Encoder is bound to a profile, which fixes the record layout, byte order,
// enum tables and flag bits:
//
//	p, err := profile.Load("level")
//	enc, err := blob.NewEncoder(p, blob.WithLogger(logger))
//	b, err := enc.Encode(rows)
//	os.WriteFile(p.Output, b.Bytes(), 0o644)
//
// Encode is all or nothing. A missing column, a non-numeric value, an unknown
// node type or icon, or a 16-bit field out of range fails the whole batch.
// Unknown stage types encode as -1, oversized nibble and byte fields are masked,
// and a missing boolean column reads as false and is logged once.
//
// # Decoding
//
//	dec, err := blob.NewDecoder(data, format.LayoutLevel, endian.GetBigEndianEngine())
//	records, err := dec.LevelRecords()
//	name, err := dec.Name(0)
package blob
