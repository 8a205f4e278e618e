package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4SizePrefix is the little-endian uint32 original size written before the LZ4 block.
// Blobs are small and their size is exact, so no adaptive buffer guessing is needed.
const lz4SizePrefix = 4

// lz4MaxRatio bounds the declared size against the block length; LZ4 cannot expand
// data by more than 255x, so a larger declared size means corrupt input.
const lz4MaxRatio = 255

// LZ4Compressor compresses blobs as a size-prefixed LZ4 block.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns nil for empty input.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4SizePrefix+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst, uint32(len(data))) //nolint: gosec

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4SizePrefix:])
	if err != nil {
		return nil, err
	}

	return dst[:lz4SizePrefix+n], nil
}

// Decompress decompresses a size-prefixed LZ4 block.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if len(data) < lz4SizePrefix {
		return nil, fmt.Errorf("lz4 decompression failed: %d bytes is too short", len(data))
	}

	size := binary.LittleEndian.Uint32(data)
	if uint64(size) > uint64(len(data))*lz4MaxRatio {
		return nil, fmt.Errorf("lz4 decompression failed: declared size %d exceeds block capacity", size)
	}

	buf := make([]byte, size)

	n, err := lz4.UncompressBlock(data[lz4SizePrefix:], buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	if n != int(size) {
		return nil, fmt.Errorf("lz4 decompression failed: got %d bytes, want %d", n, size)
	}

	return buf, nil
}
