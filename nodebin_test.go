package nodebin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/profile"
)

const levelCSV = `StageName,CourseId,StageType,NodeType,NodeIcon,GameVersion,ChallengeTime,HasDotKinopio,HasCollectItem,HasBadgeCondition,HasChallengeTime,HasDlcCollectItem,HasPreviewImage
Season1,1,Season,Season,Season,0,0,false,false,false,false,false,false
Chapter1_1,1,Normal,Chapter,Chapter,0,0,false,false,false,false,false,false
Stage1_1_1,101,Normal,Stage,Star,0,120,true,true,false,true,false,true
Stage1_1_2,102,Labyrinth,Stage,Crown,1,0,false,true,true,false,false,false
`

const stageCSV = "\ufeffStageName;CourseId;PageId;StageType;NodeDepth;NodeIcon;CollectItemNum;GameVersion;ChallengeTime;HasDotKinopio;HasDlcCollectItem;HasBadgeCondition;HasChallengeTime;IsVRStage;HasPreviewImage\n" +
	"Season1;1;-1;Season;1;Season;0;0;0;FALSCH;FALSCH;FALSCH;FALSCH;FALSCH;FALSCH\n" +
	"Stage1_1;101;0;Normal;2;Star;3;17;150;WAHR;FALSCH;FALSCH;WAHR;FALSCH;WAHR\n"

func loadProfile(t *testing.T, name string) *profile.Profile {
	t.Helper()

	p, err := profile.Load(name)
	require.NoError(t, err)

	return p
}

func writeInput(t *testing.T, dir string, p *profile.Profile, content string) {
	t.Helper()

	path := filepath.Join(dir, p.Input)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewEncoder(t *testing.T) {
	enc, err := NewEncoder("stage")
	require.NoError(t, err)
	require.Equal(t, "stage", enc.Profile().Name)

	_, err = NewEncoder("world")
	require.ErrorIs(t, err, errs.ErrUnknownProfile)
}

func TestCompile_Level(t *testing.T) {
	p := loadProfile(t, "level")

	b, err := Compile(p, strings.NewReader(levelCSV))
	require.NoError(t, err)
	require.Equal(t, uint32(4), b.Header().EntryCount)

	dec, err := NewDecoder(p, b.Bytes())
	require.NoError(t, err)

	records, err := dec.LevelRecords()
	require.NoError(t, err)
	require.Equal(t, int8(-1), records[0].StageType, "Season is not a level stage type")
	require.Equal(t, 3, records[2].Icon())
	require.Equal(t, 2, records[2].NodeType())
	require.Equal(t, uint8(0x2B), records[2].Flags)
	require.Equal(t, int8(13), records[3].StageType)

	name, err := dec.Name(3)
	require.NoError(t, err)
	require.Equal(t, "Stage1_1_2", name)
}

func TestCompile_Stage(t *testing.T) {
	p := loadProfile(t, "stage")

	b, err := Compile(p, strings.NewReader(stageCSV))
	require.NoError(t, err)

	dec, err := NewDecoder(p, b.Bytes())
	require.NoError(t, err)
	require.Equal(t, []string{"Season1", "Stage1_1"}, dec.Strings())

	records, err := dec.StageRecords()
	require.NoError(t, err)
	require.Equal(t, int16(-1), records[0].PageID)
	require.Equal(t, 1, records[0].Depth())
	require.Equal(t, 3, records[1].Icon())
	require.Equal(t, 3, records[1].CollectItemNum())
	require.Equal(t, 1, records[1].Version())
	require.Equal(t, uint8(0x29), records[1].Flags)
}

func TestCompile_Errors(t *testing.T) {
	p := loadProfile(t, "level")

	_, err := Compile(p, strings.NewReader("StageName,CourseId\nA,1,2\n"))
	require.ErrorIs(t, err, errs.ErrMalformedRow)

	_, err = Compile(p, strings.NewReader("StageName,CourseId\nA,1\n"))
	require.ErrorIs(t, err, errs.ErrMissingField)
	require.ErrorContains(t, err, p.Input)

	_, err = Compile(&profile.Profile{}, strings.NewReader(levelCSV))
	require.ErrorIs(t, err, errs.ErrInvalidProfile)
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	p := loadProfile(t, "level")
	writeInput(t, dir, p, levelCSV)

	b, err := Build(p, dir)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, p.Output))
	require.NoError(t, err)
	require.Equal(t, b.Bytes(), written)

	dec, err := Open(p, dir)
	require.NoError(t, err)
	require.Equal(t, b.Header(), dec.Header())

	again, err := Build(p, dir)
	require.NoError(t, err)
	require.Equal(t, b.Fingerprint(), again.Fingerprint())

	entries, err := os.ReadDir(filepath.Dir(filepath.Join(dir, p.Output)))
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), "."), "temp file %s left behind", e.Name())
	}
}

func TestBuild_FailureKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	p := loadProfile(t, "level")
	writeInput(t, dir, p, levelCSV)

	_, err := Build(p, dir)
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(dir, p.Output))
	require.NoError(t, err)

	writeInput(t, dir, p, strings.Replace(levelCSV, "Crown", "Moon", 1))
	_, err = Build(p, dir)
	require.ErrorIs(t, err, errs.ErrUnknownLabel)

	after, err := os.ReadFile(filepath.Join(dir, p.Output))
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestBuild_MissingInput(t *testing.T) {
	_, err := Build(loadProfile(t, "stage"), t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Compressed(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			dir := t.TempDir()
			p := *loadProfile(t, "stage")
			p.Compression = ct
			writeInput(t, dir, &p, stageCSV)

			b, err := Build(&p, dir)
			require.NoError(t, err)

			written, err := os.ReadFile(filepath.Join(dir, p.Output))
			require.NoError(t, err)
			require.NotEqual(t, b.Bytes(), written)

			dec, err := Open(&p, dir)
			require.NoError(t, err)
			require.Equal(t, b.Header(), dec.Header())
			require.Equal(t, b.Names(), dec.Strings())
		})
	}
}

func TestPayload_UnknownCompression(t *testing.T) {
	p := *loadProfile(t, "level")
	b, err := Compile(&p, strings.NewReader(levelCSV))
	require.NoError(t, err)

	p.Compression = format.CompressionType(0x7F)

	_, err = Payload(&p, b)
	require.ErrorContains(t, err, "invalid output compression")

	_, err = NewDecoder(&p, b.Bytes())
	require.ErrorContains(t, err, "invalid output compression")
}
