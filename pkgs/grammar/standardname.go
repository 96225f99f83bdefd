package grammar

import (
	"regexp"
	"strings"
)

// StandardNameResult records which elements were measured on which
// standard. Elements accumulate across lines naming the same standard;
// the reverse map is last-write-wins.
type StandardNameResult struct {
	StandardToElements map[string][]string `json:"standard_to_elements"`
	ElementToStandard  map[string]string   `json:"element_to_standard"`
}

// "<elements> On <standard>" with a case-insensitive separator.
var standardOnRe = regexp.MustCompile(`(?i)^(.*?)\s+On\s+(.*)$`)

// ParseStandardNames parses a standard-name block of the form:
//
//	Mg ,Si ,Ca On Wakefield diopside
//	Fe On RKFAYb7
//
// A non-matching non-empty line is taken as a bare standard name with no
// elements; it never clobbers a standard that already has elements.
func ParseStandardNames(block string) StandardNameResult {
	out := StandardNameResult{
		StandardToElements: map[string][]string{},
		ElementToStandard:  map[string]string{},
	}
	for _, ln := range nonBlankLines(block) {
		m := standardOnRe.FindStringSubmatch(ln)
		if m == nil {
			if _, exists := out.StandardToElements[ln]; !exists {
				out.StandardToElements[ln] = []string{}
			}
			continue
		}
		std := strings.TrimSpace(m[2])
		elems := splitList(m[1])
		out.StandardToElements[std] = append(out.StandardToElements[std], elems...)
		for _, el := range elems {
			out.ElementToStandard[el] = std
		}
	}
	return out
}
