// Package header reads instrument output files and segments the
// human-readable header that precedes the numeric measurement table into
// an ordered mapping of section keys to scalar or block values.
package header

import (
	"strings"
)

// TableMarker starts the numeric measurement table that follows the
// header. Everything from the first line beginning with it is outside
// this package's world.
const TableMarker = "DataSet/Point"

// HeaderLines returns the header portion of lines: everything strictly
// before the first line that begins with TableMarker. When no marker
// exists the whole input is header.
func HeaderLines(lines []string) []string {
	for i, ln := range lines {
		if strings.HasPrefix(ln, TableMarker) {
			return lines[:i]
		}
	}
	return lines
}

// Segment groups raw header lines into an ordered SectionMap.
//
// A top-level `key: value` line becomes a scalar entry. A top-level
// `key:` line with nothing after the colon opens a block: every following
// line is swallowed verbatim (indented key:value lines included) until the
// next top-level key, a TableMarker line, or end of input. The collected
// lines are joined with "\n" and trimmed at the outer edges only, so the
// interior indentation a block grammar may care about survives. Lines
// before the first recognizable key are skipped.
func Segment(lines []string) *SectionMap {
	out := NewSectionMap()
	i := 0
	n := len(lines)
	for i < n {
		key, val, ok := splitKeyValue(lines[i])
		if !ok {
			i++
			continue
		}
		if val != "" {
			out.Set(key, val)
			i++
			continue
		}
		// Block opener: collect until the next top-level key or table start
		i++
		start := i
		for i < n && !isTopLevel(lines[i]) && !strings.HasPrefix(lines[i], TableMarker) {
			i++
		}
		block := strings.TrimSpace(strings.Join(lines[start:i], "\n"))
		out.Set(key, block)
		debugLog.Debug("segment block", "key", key, "lines", i-start)
	}
	return out
}

// splitKeyValue splits a line on its first colon into trimmed key and
// value candidates. ok is false when the line has no colon or nothing
// before it.
func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 1 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// isTopLevel reports whether line is an unindented key:value line. An
// indented key:value line belongs to whatever block is being collected.
func isTopLevel(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	_, _, ok := splitKeyValue(line)
	return ok
}
