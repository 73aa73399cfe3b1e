package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDefinedNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "Inputs",
		RefersTo: "Sheet1!$A$1:$B$2",
		Comment:  "model inputs",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "LocalTotal",
		RefersTo: "Sheet1!$C$1",
		Scope:    "Sheet1",
	}))

	path := filepath.Join(t.TempDir(), "names.xlsx")
	require.NoError(t, f.SaveAs(path))
	f2, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f2.Close()

	names := DefinedNames(f2)
	require.Len(t, names, 2)

	byName := map[string]int{}
	for i, dn := range names {
		byName[dn.Name] = i
	}

	global := names[byName["Inputs"]]
	assert.Nil(t, global.LocalSheetID)
	assert.Equal(t, "Sheet1!$A$1:$B$2", global.RefersTo)
	require.NotNil(t, global.Comment)
	assert.Equal(t, "model inputs", *global.Comment)

	local := names[byName["LocalTotal"]]
	require.NotNil(t, local.LocalSheetID)
	assert.Equal(t, 0, *local.LocalSheetID)
	assert.Nil(t, local.Comment)
}

func TestRefersToTextFallback(t *testing.T) {
	assert.Equal(t, "Sheet1!$A$1",
		refersToText(excelize.DefinedName{Name: "n", RefersTo: "Sheet1!$A$1"}))
	assert.Equal(t, "<no reference text, scope Sheet1>",
		refersToText(excelize.DefinedName{Name: "n", Scope: "Sheet1"}))
	assert.Equal(t, "<no reference text>",
		refersToText(excelize.DefinedName{Name: "n"}))
}

func TestDefinedNamesNone(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	names := DefinedNames(f)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}
