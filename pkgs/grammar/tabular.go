package grammar

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Row is one data row of a whitespace-aligned parameter table, keyed by
// the inferred column headers.
type Row map[string]string

// TabularResult is an ordered sequence of parameter rows plus the header
// order they were read under, so exports can stay positional.
type TabularResult struct {
	Columns []string
	Rows    []Row
}

// Columns are separated by a tab or a run of two or more whitespace
// characters; single spaces stay inside a cell ("Wakefield diopside").
var columnSepRe = regexp.MustCompile(`\s{2,}|\t`)

// ParseTabular parses an analysis-parameters block: the first non-blank
// line is the header, every later line a data row split the same way.
// Short rows are right-padded with empty cells; cells beyond the header
// width are dropped.
func ParseTabular(block string) TabularResult {
	var out TabularResult
	lines := nonBlankLines(block)
	if len(lines) == 0 {
		return out
	}
	header := columnSepRe.Split(lines[0], -1)
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	out.Columns = header
	for _, ln := range lines[1:] {
		cols := columnSepRe.Split(ln, -1)
		row := make(Row, len(header))
		for i, h := range header {
			cell := ""
			if i < len(cols) {
				cell = strings.TrimSpace(cols[i])
			}
			row[h] = cell
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// MarshalJSON renders the rows alone, matching the tool's historical
// list-of-objects shape; column order is a convenience for CSV export
// and not part of the JSON contract.
func (t TabularResult) MarshalJSON() ([]byte, error) {
	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}
	return json.Marshal(rows)
}
