package circ_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bom/internal/adapters/circ"
	"go.trai.ch/bom/internal/adapters/fs"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const topCirc = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<project source="3.8.0" version="1.0">
  <lib desc="#Wiring" name="0"/>
  <lib desc="#Gates" name="1"/>
  <lib desc="file#lib/alu.circ" name="7"/>
  <circuit name="Top">
    <a name="circuit" val="Top"/>
    <comp lib="1" loc="(100,100)" name="NOT Gate">
      <a name="width" val="2"/>
    </comp>
    <wire from="(50,50)" to="(60,50)"/>
    <comp lib="0" loc="(20,20)" name="Pin">
      <a name="pull" val="down"/>
      <a name="label">multi
line</a>
    </comp>
    <comp loc="(200,200)" name="Sub"/>
    <comp lib="7" loc="(300,300)" name="Alu"/>
  </circuit>
  <circuit name="Sub">
    <comp lib="0" name="Transistor"/>
  </circuit>
</project>
`

const aluCirc = `<project>
  <lib desc="file#../shared/adder.circ" name="3"/>
  <lib desc="file#missing.circ" name="4"/>
  <circuit name="Alu">
    <comp name="Adder8"/>
  </circuit>
  <circuit name="Sub">
    <comp lib="0" name="Clock"/>
  </circuit>
</project>
`

const adderCirc = `<project>
  <lib desc="file#../lib/alu.circ" name="9"/>
  <lib desc="file#broken.circ" name="10"/>
  <circuit name="Adder8">
    <comp lib="3" name="Adder"/>
  </circuit>
</project>
`

func newLoader(t *testing.T, files fstest.MapFS) (*circ.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	return circ.NewLoader(fs.NewMapFSAdapter("/work", files), logger), logger
}

func TestLoader_Load(t *testing.T) {
	loader, logger := newLoader(t, fstest.MapFS{
		"design/top.circ":       {Data: []byte(topCirc)},
		"design/lib/alu.circ":   {Data: []byte(aluCirc)},
		"design/shared/adder.circ": {Data: []byte(adderCirc)},
		"design/shared/broken.circ": {Data: []byte("<project><circuit name=")},
	})

	var warnings []string
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		warnings = append(warnings, msg)
	}).Times(2)

	set, err := loader.Load(context.Background(), "/work/design/top.circ")
	require.NoError(t, err)

	docs := set.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, "/work/design/top.circ", docs[0].Path)
	assert.Equal(t, "/work/design/lib/alu.circ", docs[1].Path)
	assert.Equal(t, "/work/design/shared/adder.circ", docs[2].Path)

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "/work/design/shared/broken.circ")
	assert.Contains(t, warnings[0], domain.ErrLibraryParseFailed.Error())
	assert.Contains(t, warnings[1], "/work/design/lib/missing.circ")
	assert.Contains(t, warnings[1], domain.ErrLibraryNotFound.Error())

	// The first loaded definition of Sub wins.
	doc, def, ok := set.Resolve("Sub")
	require.True(t, ok)
	assert.Equal(t, "/work/design/top.circ", doc.Path)
	require.Len(t, def.Elements, 1)

	doc, _, ok = set.Resolve("Adder8")
	require.True(t, ok)
	assert.Equal(t, "/work/design/shared/adder.circ", doc.Path)
}

func TestLoader_ElementsKeepFileOrder(t *testing.T) {
	loader, logger := newLoader(t, fstest.MapFS{
		"top.circ": {Data: []byte(topCirc)},
	})
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	set, err := loader.Load(context.Background(), "/work/top.circ")
	require.NoError(t, err)

	_, def, ok := set.Resolve("Top")
	require.True(t, ok)
	require.Len(t, def.Elements, 5)

	not, ok := def.Elements[0].(*domain.Component)
	require.True(t, ok)
	assert.Equal(t, "1", not.Library)
	assert.Equal(t, "NOT Gate", not.Type.String())
	width, _ := not.Attributes.Lookup("width")
	assert.Equal(t, "2", width)

	wire, ok := def.Elements[1].(*domain.Wire)
	require.True(t, ok)
	assert.Equal(t, "(50,50)", wire.From)
	assert.Equal(t, "(60,50)", wire.To)

	pin, ok := def.Elements[2].(*domain.Component)
	require.True(t, ok)
	assert.True(t, pin.Attributes.Has("pull"))
	label, _ := pin.Attributes.Lookup("label")
	assert.Equal(t, "multi\nline", label)

	sub, ok := def.Elements[3].(*domain.Component)
	require.True(t, ok)
	assert.Empty(t, sub.Library)
	assert.Equal(t, domain.KindCustom, domain.Classify(sub))

	alu, ok := def.Elements[4].(*domain.Component)
	require.True(t, ok)
	assert.Equal(t, "custom:Alu", domain.KeyOf(alu).String())

	top := set.Documents()[0]
	require.Len(t, top.Links, 3)
	assert.Equal(t, domain.LibraryLink{ID: "7", Desc: "file#lib/alu.circ"}, top.Links[2])
}

func TestLoader_RelativePath(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"design/top.circ": {Data: []byte(`<project><circuit name="main"/></project>`)},
	})

	set, err := loader.Load(context.Background(), "design/top.circ")
	require.NoError(t, err)
	assert.Equal(t, "/work/design/top.circ", set.Documents()[0].Path)
	assert.Equal(t, []domain.CircuitRef{{Name: "main", Document: "/work/design/top.circ"}}, set.CircuitNames())
}

func TestLoader_LinkCycleAndSelfLink(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"a.circ": {Data: []byte(`<project><lib desc="file#b.circ" name="7"/><lib desc="file#a.circ" name="8"/><circuit name="A"/></project>`)},
		"b.circ": {Data: []byte(`<project><lib desc="file#./a.circ" name="7"/><circuit name="B"/></project>`)},
	})

	set, err := loader.Load(context.Background(), "/work/a.circ")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLoader_TopLevelFailures(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"bad.circ": {Data: []byte("this is not xml")},
	})

	_, err := loader.Load(context.Background(), "/work/missing.circ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDocumentReadFailed.Error())

	_, err = loader.Load(context.Background(), "/work/bad.circ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDocumentParseFailed.Error())
}

func TestLoader_Cancelled(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"top.circ": {Data: []byte(topCirc)},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, "/work/top.circ")
	require.ErrorIs(t, err, context.Canceled)
}
