package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleHeader = []string{
	"CAMECA SX100 export",
	"Project : olivine survey",
	"Standard Composition :",
	"  Wakefield = Si : 25.94%, O : 44.43%",
	"Calibration File names :",
	`  Mg ,Si : Other\Wakefield diopside (Mg : 349.7 cps/nA, Si : 559.4 cps/nA)`,
	"Analysis Parameters :",
	"  Element  Xtal",
	"  Si       TAP",
	"  Mg       TAP",
	"Standard Names :",
	"  Mg ,Si On Wakefield diopside",
	"Column Conditions :",
	"  Cond 1 : 15keV 10nA",
	"DataSet/Point  1  2",
	"ignored : table content",
}

func TestParseLines(t *testing.T) {
	rec := ParseLines(sampleHeader)

	// raw sections are preserved verbatim
	v, ok := rec.Sections.Get("Project")
	require.True(t, ok)
	assert.Equal(t, "olivine survey", v)
	_, ok = rec.Sections.Get("ignored")
	assert.False(t, ok, "table content must not be parsed")

	require.NotNil(t, rec.Composition)
	assert.Equal(t, 25.94, rec.Composition.StandardToComposition["Wakefield"]["Si"].Num)

	require.NotNil(t, rec.Calibration)
	assert.Equal(t, `Other\Wakefield diopside`, rec.Calibration["Mg"].CalFile)

	require.NotNil(t, rec.AnalysisParams)
	require.Len(t, rec.AnalysisParams.Rows, 2)
	assert.Equal(t, "TAP", rec.AnalysisParams.Rows[0]["Xtal"])

	require.NotNil(t, rec.StandardNames)
	assert.Equal(t, "Wakefield diopside", rec.StandardNames.ElementToStandard["Mg"])

	require.NotNil(t, rec.ColumnConditions)
	assert.Equal(t, "15keV 10nA", rec.ColumnConditions.Conds["Cond 1"].Desc)
}

func TestParseLinesNoMatchingSections(t *testing.T) {
	rec := ParseLines([]string{"Project : x", "Operator : y"})

	assert.Nil(t, rec.Composition)
	assert.Nil(t, rec.Calibration)
	assert.Nil(t, rec.AnalysisParams)
	assert.Nil(t, rec.StandardNames)
	assert.Nil(t, rec.ColumnConditions)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(data), KeyComposition)
	assert.NotContains(t, string(data), KeyStandardNames)
}

func TestParseSectionsFirstMatchingKeyWins(t *testing.T) {
	rec := ParseLines([]string{
		"Standard composition one :",
		"  A = Si : 1%",
		"Standard composition two :",
		"  B = Si : 2%",
	})

	require.NotNil(t, rec.Composition)
	assert.Contains(t, rec.Composition.StandardToComposition, "A")
	assert.NotContains(t, rec.Composition.StandardToComposition, "B")
}

func TestParseSectionsPrefixCaseInsensitive(t *testing.T) {
	rec := ParseLines([]string{
		"STANDARD COMPOSITION (wt%) :",
		"  A = Si : 1%",
	})
	require.NotNil(t, rec.Composition)
}

func TestRecordMarshalJSON(t *testing.T) {
	rec := ParseLines(sampleHeader)
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"`+KeyComposition+`"`)
	assert.Contains(t, s, `"`+KeyCalibration+`"`)
	assert.Contains(t, s, `"`+KeyAnalysisParams+`"`)
	assert.Contains(t, s, `"`+KeyStandardNames+`"`)
	assert.Contains(t, s, `"`+KeyColumnConditions+`"`)

	// raw sections come first, in document order
	assert.Less(t, strings.Index(s, `"Project"`), strings.Index(s, `"`+KeyComposition+`"`))

	// numbers export as JSON numbers, not strings
	assert.Contains(t, s, `"Si":25.94`)
}

func TestRecordElementToStandardFallsBackToComposition(t *testing.T) {
	rec := ParseLines([]string{
		"Standard composition :",
		"  Wakefield = Si : 25.94%",
	})
	assert.Equal(t, map[string]string{"Si": "Wakefield"}, rec.ElementToStandard())

	bare := ParseLines([]string{"Project : x"})
	assert.Nil(t, bare.ElementToStandard())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "point1.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(sampleHeader, "\n")+"\n"), 0o644))

	rec, err := ParseFile(path)
	require.NoError(t, err)
	require.NotNil(t, rec.Composition)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
