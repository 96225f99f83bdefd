// Package grammar implements the block mini-parsers for the recognized
// header sections: standard compositions, calibration file assignments,
// standard-name mappings, column conditions, and whitespace-aligned
// parameter tables.
//
// Every parser takes one block string and returns a structured result.
// Malformed lines are skipped, never fatal: headers come out of
// instrument software in enough dialects that best-effort extraction
// beats strict validation.
package grammar

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a scalar that parsed as a number when it could and stayed a
// string when it could not. Percentages with units stripped usually end
// up numeric; free-text survives as-is.
type Value struct {
	Num   float64
	Raw   string
	IsNum bool
}

// ParseValue coerces raw into a numeric Value when strconv accepts it,
// keeping the trimmed raw string otherwise.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Num: f, Raw: raw, IsNum: true}
	}
	return Value{Raw: raw}
}

// NumValue returns a numeric Value.
func NumValue(f float64) Value {
	return Value{Num: f, IsNum: true}
}

// StrValue returns a string Value.
func StrValue(s string) Value {
	return Value{Raw: s}
}

// String renders the value the way it will be exported: the shortest
// round-trip float form when numeric, the raw text otherwise.
func (v Value) String() string {
	if v.IsNum {
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	}
	return v.Raw
}

// MarshalJSON emits a JSON number for numeric values and a JSON string
// otherwise.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNum {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Raw)
}

// Equal reports whether two values are the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.IsNum != o.IsNum {
		return false
	}
	if v.IsNum {
		return v.Num == o.Num
	}
	return v.Raw == o.Raw
}

// splitList splits s on commas, trims each piece, and drops empties.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// nonBlankLines splits a block into its non-blank lines, trimmed.
func nonBlankLines(block string) []string {
	var out []string
	for _, ln := range strings.Split(block, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
