package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteOrder_UnmarshalText(t *testing.T) {
	tests := []struct {
		in   string
		want ByteOrder
	}{
		{"little", LittleEndian},
		{"LE", LittleEndian},
		{"big", BigEndian},
		{"be", BigEndian},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var b ByteOrder
			require.NoError(t, b.UnmarshalText([]byte(tt.in)))
			require.Equal(t, tt.want, b)
		})
	}

	var b ByteOrder
	require.Error(t, b.UnmarshalText([]byte("middle")))
}

func TestLayout_UnmarshalText(t *testing.T) {
	var l Layout
	require.NoError(t, l.UnmarshalText([]byte("stage")))
	require.Equal(t, LayoutStage, l)
	require.Equal(t, "stage", l.String())

	require.NoError(t, l.UnmarshalText([]byte("Level")))
	require.Equal(t, LayoutLevel, l)

	require.Error(t, l.UnmarshalText([]byte("world")))
}

func TestCompressionType_UnmarshalText(t *testing.T) {
	var c CompressionType
	require.NoError(t, c.UnmarshalText(nil))
	require.Equal(t, CompressionNone, c)

	for _, name := range []string{"zstd", "s2", "lz4"} {
		require.NoError(t, c.UnmarshalText([]byte(name)))
	}
	require.Equal(t, CompressionLZ4, c)
	require.Equal(t, "LZ4", c.String())

	require.Error(t, c.UnmarshalText([]byte("brotli")))
	require.Equal(t, "Unknown", CompressionType(0x9).String())
}
