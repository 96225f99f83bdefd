package grammar

import (
	"regexp"
	"strings"
)

// Condition is one instrument operating configuration and the elements
// measured under it.
type Condition struct {
	Desc     string   `json:"desc"`
	Elements []string `json:"elements"`
}

// ColumnConditionResult maps "Cond N" ids to conditions plus the
// element -> condition reverse view.
type ColumnConditionResult struct {
	Conds              map[string]*Condition `json:"conds"`
	ElementToCondition map[string]string     `json:"element_to_condition"`
}

var (
	// "Cond N : description" anchored at line start.
	condDescRe = regexp.MustCompile(`(?i)^Cond\s*(\d+)\s*:\s*(.*)$`)
	// Any "Cond N : elem, elem, ..." occurrence inside a line. The
	// element group is greedy across commas, exactly as wide as the
	// original tool read it.
	condElemsRe = regexp.MustCompile(`(?i)Cond\s*(\d+)\s*:\s*([^,]+(?:,\s*[^,]+)*)`)
)

// ParseColumnConditions parses a column-conditions block such as:
//
//	Cond 1 : 15keV 10nA
//	, Cond 2 : Al Ka, Ca Ka
//
// A line opening with "Cond N :" registers that condition's description
// (first registration keeps its description) and makes it current. Every
// "Cond N : list" occurrence in a line appends elements to that
// condition and consumes the line. A comma-leading line, or any line
// with no Cond reference while a current condition exists, continues the
// current condition's element list. The attribution heuristic is
// deliberately loose; headers interleave these forms freely.
func ParseColumnConditions(block string) ColumnConditionResult {
	out := ColumnConditionResult{
		Conds:              map[string]*Condition{},
		ElementToCondition: map[string]string{},
	}
	lastCond := ""
	for _, ln := range nonBlankLines(block) {
		if m := condDescRe.FindStringSubmatch(ln); m != nil {
			key := "Cond " + m[1]
			if _, exists := out.Conds[key]; !exists {
				desc := strings.TrimRight(strings.TrimSpace(m[2]), ",")
				out.Conds[key] = &Condition{Desc: desc, Elements: []string{}}
			}
			lastCond = key
			// fall through: the description may itself carry elements
		}
		if matches := condElemsRe.FindAllStringSubmatch(ln, -1); matches != nil {
			for _, m := range matches {
				key := "Cond " + m[1]
				cond := out.Conds[key]
				if cond == nil {
					cond = &Condition{Elements: []string{}}
					out.Conds[key] = cond
				}
				elems := splitList(m[2])
				cond.Elements = append(cond.Elements, elems...)
				for _, el := range elems {
					out.ElementToCondition[el] = key
				}
				lastCond = key
			}
			continue
		}
		if strings.HasPrefix(ln, ",") || !strings.HasPrefix(strings.ToLower(ln), "cond") {
			if lastCond == "" {
				continue
			}
			cond := out.Conds[lastCond]
			if cond == nil {
				cond = &Condition{Elements: []string{}}
				out.Conds[lastCond] = cond
			}
			elems := splitList(strings.TrimLeft(ln, ", "))
			cond.Elements = append(cond.Elements, elems...)
			for _, el := range elems {
				out.ElementToCondition[el] = lastCond
			}
		}
	}
	return out
}
