package grammar

import (
	"strings"
)

// CalibrationEntry associates one element with the calibration file it
// was standardized against and, when the header carried one, the counts
// per nanoamp recorded at standardization time. CPS is nil when the
// parenthetical group had no entry for the element.
type CalibrationEntry struct {
	CalFile string `json:"cal_file"`
	CPS     *Value `json:"cps_info"`
}

// CalibrationResult maps element symbol to calibration entry.
// Last-write-wins when an element recurs on a later line.
type CalibrationResult map[string]CalibrationEntry

// ParseCalibration parses a calibration-file block of the form:
//
//	Mg ,Si : Other\Wakefield diopside (Mg : 349.7 cps/nA, Si : 559.4 cps/nA)
//
// The left of the first colon lists elements, the right holds the file
// path and an optional parenthesized cps group. Unit text is stripped
// from cps values before numeric coercion; unparsable values keep the
// raw string.
func ParseCalibration(block string) CalibrationResult {
	out := CalibrationResult{}
	for _, ln := range nonBlankLines(block) {
		left, right, found := strings.Cut(ln, ":")
		if !found {
			continue
		}
		right = strings.TrimSpace(right)
		path := right
		var cps map[string]Value
		if open := strings.Index(right, "("); open >= 0 {
			if end := strings.LastIndex(right, ")"); end > open {
				path = strings.TrimSpace(right[:open])
				cps = parseCPSGroup(right[open+1 : end])
			}
		}
		for _, el := range splitList(left) {
			entry := CalibrationEntry{CalFile: path}
			if v, ok := cps[el]; ok {
				entry.CPS = &v
			}
			out[el] = entry
		}
	}
	return out
}

// parseCPSGroup splits the parenthesis content on commas into
// "element : value unit" pairs. Everything but digits, sign, decimal
// point and exponent marker is removed from the value before parsing;
// when nothing numeric remains the raw value is kept.
func parseCPSGroup(inside string) map[string]Value {
	out := map[string]Value{}
	for _, part := range strings.Split(inside, ",") {
		el, val, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		el = strings.TrimSpace(el)
		val = strings.TrimSpace(val)
		if v := ParseValue(stripUnits(val)); v.IsNum {
			out[el] = v
		} else {
			out[el] = StrValue(val)
		}
	}
	return out
}

// stripUnits keeps only the characters that can form a float literal:
// digits, '.', '-', 'e', 'E'.
func stripUnits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('0' <= c && c <= '9') || c == '.' || c == '-' || c == 'e' || c == 'E' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
