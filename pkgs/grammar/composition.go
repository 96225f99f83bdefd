package grammar

import (
	"strings"
)

// CompositionResult maps each standard to its elemental composition and
// derives the element -> standard reverse view. When an element shows up
// in more than one standard inside the same block, the last one wins.
type CompositionResult struct {
	StandardToComposition map[string]map[string]Value `json:"standard_to_composition"`
	ElementToStandard     map[string]string           `json:"element_to_standard"`
}

// ParseComposition parses a standard-composition block of the form:
//
//	Wakefield = Si : 25.94%, O : 44.43%, ...
//
// Lines without an "=" are skipped. Component values lose a trailing "%"
// and are coerced numeric where possible.
func ParseComposition(block string) CompositionResult {
	out := CompositionResult{
		StandardToComposition: map[string]map[string]Value{},
		ElementToStandard:     map[string]string{},
	}
	for _, ln := range nonBlankLines(block) {
		name, rest, found := strings.Cut(ln, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		comps := map[string]Value{}
		for _, part := range splitComponents(rest) {
			el, val, found := strings.Cut(part, ":")
			if !found {
				continue
			}
			el = strings.TrimSpace(el)
			raw := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(val), "%"))
			comps[el] = ParseValue(raw)
			out.ElementToStandard[el] = name
		}
		out.StandardToComposition[name] = comps
	}
	return out
}

// splitComponents splits a composition list on commas that are followed
// (after optional spaces) by a letter, so a comma inside a numeric value
// never breaks a component apart.
func splitComponents(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j < len(s) && isLetter(s[j]) {
			if p := strings.TrimSpace(s[start:i]); p != "" {
				parts = append(parts, p)
			}
			start = j
			i = j - 1
		}
	}
	if p := strings.TrimSpace(s[start:]); p != "" {
		parts = append(parts, p)
	}
	return parts
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
