package aggregate

import (
	"strings"

	"github.com/whtowbin/empaparse/pkgs/grammar"
)

// Column headers accepted as naming the element of a parameter row,
// compared case-insensitively by equality.
var elementHeaders = map[string]bool{
	"element": true,
	"el":      true,
	"analyte": true,
	"name":    true,
}

// xtalHeaderHints mark a column as carrying the diffracting crystal when
// any of them appears inside the lower-cased header.
var xtalHeaderHints = []string{"xtal", "cryst"}

// xtalAssignments derives element -> crystal from an analysis-parameters
// table. The element comes from an element-like column when one exists;
// otherwise the first non-empty cell of the row stands in, a documented
// guess for headers with unnamed leading columns.
func xtalAssignments(params *grammar.TabularResult) map[string]string {
	if params == nil {
		return nil
	}
	elementCol, xtalCol := "", ""
	for _, col := range params.Columns {
		lower := strings.ToLower(strings.TrimSpace(col))
		if elementCol == "" && elementHeaders[lower] {
			elementCol = col
		}
		if xtalCol == "" {
			for _, hint := range xtalHeaderHints {
				if strings.Contains(lower, hint) {
					xtalCol = col
					break
				}
			}
		}
	}
	if xtalCol == "" {
		return nil
	}

	out := map[string]string{}
	for _, row := range params.Rows {
		el := ""
		if elementCol != "" {
			el = strings.TrimSpace(row[elementCol])
		} else {
			for _, col := range params.Columns {
				if cell := strings.TrimSpace(row[col]); cell != "" {
					el = cell
					break
				}
			}
		}
		xtal := strings.TrimSpace(row[xtalCol])
		if el == "" || xtal == "" {
			continue
		}
		out[el] = xtal
	}
	return out
}
