package profile

import (
	"strings"
	"testing"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/enum"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/section"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	set, err := Builtin()
	require.NoError(t, err)
	require.Equal(t, []string{"level", "stage", "stage-be"}, set.Names())

	_, err = set.Get("world")
	require.ErrorIs(t, err, errs.ErrUnknownProfile)

	again, err := Builtin()
	require.NoError(t, err)
	require.Same(t, set, again)
}

func TestLoad_Level(t *testing.T) {
	p, err := Load("level")
	require.NoError(t, err)

	require.Equal(t, "level", p.Name)
	require.Equal(t, format.LayoutLevel, p.Layout)
	require.Equal(t, format.BigEndian, p.ByteOrder)
	require.Equal(t, format.CompressionNone, p.Compression)
	require.Equal(t, endian.GetBigEndianEngine(), p.Engine())
	require.Equal(t, ',', p.Comma())
	size, err := p.RecordSize()
	require.NoError(t, err)
	require.Equal(t, section.LevelRecordSize, size)
	require.Equal(t, "StageName", p.Columns.Name)
	require.Equal(t, "src/assets/bin/LevelNodeInfo.bin", p.Output)

	require.Equal(t, []string{"Season", "Chapter", "Stage", "HideStage"}, p.NodeTypes().Labels())
	require.Equal(t, 10, p.NodeIcons().Len())

	code, err := p.StageTypes().Lookup("Normal")
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, int8(13), p.StageTypes().Resolve("Labyrinth"))
	require.Equal(t, enum.Sentinel, p.StageTypes().Resolve("Season"))

	require.Equal(t, "true", p.Flags.TrueToken)
	require.False(t, p.Flags.FoldCase)
	require.Equal(t, section.FlagBit{Column: "HasPreviewImage", Mask: 32}, p.Flags.Bits[5])
}

func TestLoad_Stage(t *testing.T) {
	p, err := Load("stage")
	require.NoError(t, err)

	require.Equal(t, format.LayoutStage, p.Layout)
	require.Equal(t, format.LittleEndian, p.ByteOrder)
	require.Equal(t, ';', p.Comma())
	size, err := p.RecordSize()
	require.NoError(t, err)
	require.Equal(t, section.StageRecordSize, size)
	require.Nil(t, p.NodeTypes())
	require.Equal(t, "NodeDepth", p.Columns.NodeDepth)

	require.Equal(t, int8(0), p.StageTypes().Resolve("Season"))
	require.Equal(t, int8(6), p.StageTypes().Resolve("Normal"))
	require.Equal(t, int8(14), p.StageTypes().Resolve("Labyrinth"))

	require.Equal(t, "wahr", p.Flags.TrueToken)
	require.True(t, p.Flags.FoldCase)
	require.Equal(t, section.FlagBit{Column: "HasDlcCollectItem", Mask: 2}, p.Flags.Bits[1])
	require.Equal(t, section.FlagBit{Column: "IsVRStage", Mask: 16}, p.Flags.Bits[4])
}

func TestLoad_StageBigEndianSharesTables(t *testing.T) {
	le, err := Load("stage")
	require.NoError(t, err)
	be, err := Load("stage-be")
	require.NoError(t, err)

	require.Equal(t, format.BigEndian, be.ByteOrder)
	require.Equal(t, le.Columns, be.Columns)
	require.Equal(t, le.StageTypes().Labels(), be.StageTypes().Labels())
	require.Equal(t, "true", be.Flags.TrueToken)
	require.NotEqual(t, le.Flags.Bits, be.Flags.Bits)
}

const minimalStage = `
profiles:
  tiny:
    layout: stage
    byte_order: le
    input: in.csv
    output: out.bin
    columns:
      name: N
      course_id: C
      page_id: P
      stage_type: T
      node_depth: D
      node_icon: I
      collect_item_num: K
      game_version: V
      challenge_time: S
    tables:
      node_icons: [A, B]
      stage_types: [X, Y]
    flags:
      true_token: "1"
      bits:
        - {column: F, mask: 1}
`

func TestParse(t *testing.T) {
	t.Run("minimal stage profile", func(t *testing.T) {
		set, err := Parse([]byte(minimalStage))
		require.NoError(t, err)

		p, err := set.Get("tiny")
		require.NoError(t, err)
		require.Equal(t, format.CompressionNone, p.Compression, "compression defaults to none")
		require.Equal(t, ',', p.Comma())
	})

	invalid := map[string]string{
		"unknown key":          strings.Replace(minimalStage, "output: out.bin", "outptu: out.bin", 1),
		"missing byte order":   strings.Replace(minimalStage, "byte_order: le\n", "", 1),
		"bad byte order":       strings.Replace(minimalStage, "byte_order: le", "byte_order: middle", 1),
		"bad layout":           strings.Replace(minimalStage, "layout: stage", "layout: world", 1),
		"missing page column":  strings.Replace(minimalStage, "page_id: P\n", "", 1),
		"level without types":  strings.Replace(minimalStage, "layout: stage", "layout: level", 1),
		"duplicate label":      strings.Replace(minimalStage, "[X, Y]", "[X, X]", 1),
		"too many icons":       strings.Replace(minimalStage, "[A, B]", "[a,b,c,d,e,f,g,h,i,j,k,l,m,n,o,p,q]", 1),
		"multi-bit flag mask":  strings.Replace(minimalStage, "mask: 1", "mask: 3", 1),
		"wide delimiter":       strings.Replace(minimalStage, "output: out.bin", "output: out.bin\n    delimiter: \";;\"", 1),
		"unknown compression":  strings.Replace(minimalStage, "output: out.bin", "output: out.bin\n    compression: brotli", 1),
		"no profiles":          "profiles: {}\n",
		"empty profile":        "profiles:\n  empty:\n",
		"not yaml":             "profiles: [",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, errs.ErrInvalidProfile)
		})
	}
}
