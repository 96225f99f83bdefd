package export

import (
	"sort"

	"github.com/whtowbin/empaparse/pkgs/aggregate"
)

// StandardByElement pivots the per-file element->standard assignments
// into a wide table: one row per parsed file (sorted by path), one
// column per element in the sorted union across all files. Cells hold
// the assigned standard or stay empty.
func StandardByElement(res *aggregate.Result) *Table {
	return wideTable(res, res.ElementToStandard)
}

// XtalByElement is the analogous pivot for element->crystal.
func XtalByElement(res *aggregate.Result) *Table {
	return wideTable(res, res.ElementToXtal)
}

func wideTable(res *aggregate.Result, byFile map[string]map[string]string) *Table {
	elements := unionKeys(byFile)
	t := &Table{Columns: append([]string{"file"}, elements...)}
	for _, path := range res.SortedPaths() {
		row := make([]string, 0, len(elements)+1)
		row = append(row, path)
		for _, el := range elements {
			row = append(row, byFile[path][el])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// StandardCompositions renders the merged composition table in long
// form: standard, element, value; sorted by standard then element.
func StandardCompositions(res *aggregate.Result) *Table {
	t := &Table{Columns: []string{"standard", "element", "value"}}
	stds := make([]string, 0, len(res.StandardCompositions))
	for std := range res.StandardCompositions {
		stds = append(stds, std)
	}
	sort.Strings(stds)
	for _, std := range stds {
		comps := res.StandardCompositions[std]
		elems := make([]string, 0, len(comps))
		for el := range comps {
			elems = append(elems, el)
		}
		sort.Strings(elems)
		for _, el := range elems {
			t.Rows = append(t.Rows, []string{std, el, comps[el].String()})
		}
	}
	return t
}

// unionKeys returns the sorted union of the inner map keys.
func unionKeys(byFile map[string]map[string]string) []string {
	seen := map[string]bool{}
	for _, inner := range byFile {
		for k := range inner {
			seen[k] = true
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
