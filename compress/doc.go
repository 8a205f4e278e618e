// Package compress provides the optional whole-file codecs applied to a built blob.
//
// The game engine reads blobs uncompressed, so profiles default to
// format.CompressionNone. A profile may choose a codec when its output is
// shipped inside an archive or patch that is unpacked before load:
//
//	codec, err := compress.GetCodec(profile.Compression)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Compress(blob.Bytes())
//
// Supported algorithms:
//   - None: the blob is written as is
//   - Zstd: github.com/klauspost/compress/zstd, best ratio
//   - S2: github.com/klauspost/compress/s2, fast
//   - LZ4: github.com/pierrec/lz4/v4 block format, fastest decompression
//
// The compressed payload carries no marker of the codec used; the reader picks
// the codec from the same profile.
//
// All codecs are safe for concurrent use.
package compress
