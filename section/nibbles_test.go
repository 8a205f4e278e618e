package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackNibbles(t *testing.T) {
	tests := []struct {
		name      string
		high, low int
		want      Nibbles
	}{
		{"icon 2, node type 1", 2, 1, 0x21},
		{"both max", 15, 15, 0xFF},
		{"zero", 0, 0, 0x00},
		{"low truncated", 0, 17, 0x01},
		{"high truncated", 18, 3, 0x23},
		{"negative low keeps low bits", 0, -1, 0x0F},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PackNibbles(tt.high, tt.low)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.high&NibbleMask, got.High())
			require.Equal(t, tt.low&NibbleMask, got.Low())
		})
	}
}

func TestMaskByte(t *testing.T) {
	require.Equal(t, uint8(7), MaskByte(7))
	require.Equal(t, uint8(0xFF), MaskByte(255))
	require.Equal(t, uint8(0x00), MaskByte(256))
	require.Equal(t, uint8(0x2C), MaskByte(300))
	require.Equal(t, uint8(0xFF), MaskByte(-1))
}
