package parser

import (
	"strings"

	"github.com/whtowbin/empaparse/pkgs/grammar"
	"github.com/whtowbin/empaparse/pkgs/header"
)

// Recognized section-key prefixes, matched case-insensitively against
// keys in document order. The first matching key feeds the grammar; the
// component order below is fixed and load-bearing for records where one
// key could satisfy several prefixes.
const (
	PrefixComposition      = "standard composition"
	PrefixCalibration      = "calibration file"
	PrefixAnalysisParams   = "analysis param"
	PrefixStandardNames    = "standard name"
	PrefixColumnConditions = "column conditions"
)

// ParseFile reads and parses one header file.
func ParseFile(path string) (*Record, error) {
	lines, err := header.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines), nil
}

// ParseLines parses the header portion of lines into a Record. It is a
// pure function: same lines, same Record.
func ParseLines(lines []string) *Record {
	return ParseSections(header.Segment(header.HeaderLines(lines)))
}

// ParseSections applies each block grammar to the first section whose
// key starts with the grammar's prefix, in the fixed component order:
// composition, calibration, analysis parameters, standard names, column
// conditions.
func ParseSections(sections *header.SectionMap) *Record {
	rec := &Record{Sections: sections}
	if block, ok := findBlock(sections, PrefixComposition); ok {
		res := grammar.ParseComposition(block)
		rec.Composition = &res
	}
	if block, ok := findBlock(sections, PrefixCalibration); ok {
		rec.Calibration = grammar.ParseCalibration(block)
	}
	if block, ok := findBlock(sections, PrefixAnalysisParams); ok {
		res := grammar.ParseTabular(block)
		rec.AnalysisParams = &res
	}
	if block, ok := findBlock(sections, PrefixStandardNames); ok {
		res := grammar.ParseStandardNames(block)
		rec.StandardNames = &res
	}
	if block, ok := findBlock(sections, PrefixColumnConditions); ok {
		res := grammar.ParseColumnConditions(block)
		rec.ColumnConditions = &res
	}
	return rec
}

// findBlock returns the value of the first section key whose lower-cased
// form starts with prefix.
func findBlock(sections *header.SectionMap, prefix string) (string, bool) {
	for _, key := range sections.Keys() {
		if strings.HasPrefix(strings.ToLower(key), prefix) {
			val, _ := sections.Get(key)
			return val, true
		}
	}
	return "", false
}
