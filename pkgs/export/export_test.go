package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whtowbin/empaparse/pkgs/aggregate"
	"github.com/whtowbin/empaparse/pkgs/parser"
)

func sampleResult(t *testing.T) *aggregate.Result {
	t.Helper()
	recA := parser.ParseLines([]string{
		"Standard composition :",
		"  Diopside = Si : 25.0%, Mg : 10.0%",
		"Standard Names :",
		"  Mg ,Si On Diopside",
		"Analysis Parameters :",
		"  Element  Xtal",
		"  Si       TAP",
	})
	recB := parser.ParseLines([]string{
		"Standard Names :",
		"  Fe On Magnetite",
	})
	return aggregate.Build(map[string]*parser.Record{
		"a.txt": recA,
		"b.txt": recB,
	}, nil)
}

func TestStandardByElement(t *testing.T) {
	table := StandardByElement(sampleResult(t))

	assert.Equal(t, []string{"file", "Fe", "Mg", "Si"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"a.txt", "", "Diopside", "Diopside"}, table.Rows[0])
	assert.Equal(t, []string{"b.txt", "Magnetite", "", ""}, table.Rows[1])
}

func TestXtalByElement(t *testing.T) {
	table := XtalByElement(sampleResult(t))

	assert.Equal(t, []string{"file", "Si"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"a.txt", "TAP"}, table.Rows[0])
	assert.Equal(t, []string{"b.txt", ""}, table.Rows[1])
}

func TestStandardCompositionsLongForm(t *testing.T) {
	table := StandardCompositions(sampleResult(t))

	assert.Equal(t, []string{"standard", "element", "value"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Diopside", "Mg", "10"}, table.Rows[0])
	assert.Equal(t, []string{"Diopside", "Si", "25"}, table.Rows[1])
}

func TestTablesForEmptyResult(t *testing.T) {
	res := aggregate.Build(map[string]*parser.Record{}, nil)

	table := StandardByElement(res)
	assert.Equal(t, []string{"file"}, table.Columns)
	assert.Empty(t, table.Rows)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))
	assert.Equal(t, "file\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, &Table{
		Columns: []string{"file", "Si"},
		Rows:    [][]string{{"a.txt", "Diopside"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "file,Si\na.txt,Diopside\n", buf.String())
}

func TestWriteCSVFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tables", "t.csv")
	require.NoError(t, WriteCSVFile(path, &Table{Columns: []string{"file"}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file\n", string(data))
}

func TestWriteRecordJSON(t *testing.T) {
	rec := parser.ParseLines([]string{
		"Project : x",
		"Standard composition :",
		"  A = Si : 1%",
	})
	var buf bytes.Buffer
	require.NoError(t, WriteRecordJSON(&buf, rec))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "x", decoded["Project"])
	assert.Contains(t, decoded, parser.KeyComposition)
}

func TestWriteSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaryJSON(&buf, sampleResult(t)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Contains(t, decoded, "a.txt")
	assert.Contains(t, decoded, "b.txt")

	// sorted by path: a.txt first
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"a.txt"`)), bytes.Index(buf.Bytes(), []byte(`"b.txt"`)))
}
