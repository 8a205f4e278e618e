package section

import (
	"testing"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
	"github.com/stretchr/testify/require"
)

func TestLevelRecord_AppendTo(t *testing.T) {
	r := &LevelRecord{
		NameIndex:     0x0102,
		CourseID:      -2,
		StageType:     -1,
		NodeInfo:      PackNibbles(2, 1),
		Version:       7,
		Flags:         0x21,
		ChallengeTime: 300,
	}

	got := r.AppendTo(nil, endian.GetBigEndianEngine())
	require.Equal(t, []byte{0x01, 0x02, 0xFF, 0xFE, 0xFF, 0x21, 0x07, 0x21, 0x01, 0x2C}, got)
	require.Equal(t, 2, r.Icon())
	require.Equal(t, 1, r.NodeType())

	parsed := &LevelRecord{}
	require.NoError(t, parsed.Parse(got, endian.GetBigEndianEngine()))
	require.Equal(t, r, parsed)
}

func TestStageRecord_AppendTo(t *testing.T) {
	r := &StageRecord{
		NameIndex:     3,
		CourseID:      42,
		PageID:        -1,
		StageType:     6,
		NodeInfo:      PackNibbles(3, 2),
		ItemVersion:   PackNibbles(3, 1),
		Flags:         0x09,
		ChallengeTime: 0x1234,
	}

	got := r.AppendTo(nil, endian.GetLittleEndianEngine())
	require.Equal(t, []byte{0x03, 0x00, 0x2A, 0x00, 0xFF, 0xFF, 0x06, 0x32, 0x31, 0x09, 0x34, 0x12}, got)
	require.Equal(t, 3, r.Icon())
	require.Equal(t, 2, r.Depth())
	require.Equal(t, 3, r.CollectItemNum())
	require.Equal(t, 1, r.Version())

	parsed := &StageRecord{}
	require.NoError(t, parsed.Parse(got, endian.GetLittleEndianEngine()))
	require.Equal(t, r, parsed)
}

func TestRecord_AppendToExtends(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"big-endian":    endian.GetBigEndianEngine(),
		"little-endian": endian.GetLittleEndianEngine(),
	}
	level := &LevelRecord{NameIndex: 9, CourseID: 1000, StageType: 3, NodeInfo: 0x42, Version: 1, Flags: 8, ChallengeTime: 65535}
	stage := &StageRecord{NameIndex: 65535, CourseID: -32768, PageID: 32767, StageType: 14, NodeInfo: 0x91, ItemVersion: 0x05, Flags: 63}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			prefix := []byte{0xAA}

			buf := level.AppendTo(prefix, engine)
			require.Len(t, buf, 1+LevelRecordSize)
			require.Equal(t, byte(0xAA), buf[0])

			parsedLevel := &LevelRecord{}
			require.NoError(t, parsedLevel.Parse(buf[1:], engine))
			require.Equal(t, level, parsedLevel)

			buf = stage.AppendTo(buf, engine)
			require.Len(t, buf, 1+LevelRecordSize+StageRecordSize)

			parsedStage := &StageRecord{}
			require.NoError(t, parsedStage.Parse(buf[1+LevelRecordSize:], engine))
			require.Equal(t, stage, parsedStage)
		})
	}
}

func TestRecord_ParseInvalidSize(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	require.ErrorIs(t, (&LevelRecord{}).Parse(make([]byte, StageRecordSize), engine), errs.ErrInvalidRecordSize)
	require.ErrorIs(t, (&StageRecord{}).Parse(make([]byte, LevelRecordSize), engine), errs.ErrInvalidRecordSize)
}

func TestRecordSize(t *testing.T) {
	size, err := RecordSize(format.LayoutLevel)
	require.NoError(t, err)
	require.Equal(t, LevelRecordSize, size)

	size, err = RecordSize(format.LayoutStage)
	require.NoError(t, err)
	require.Equal(t, StageRecordSize, size)

	_, err = RecordSize(format.Layout(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedLayout)
}
