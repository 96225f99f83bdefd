package aggregate

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/whtowbin/empaparse/pkgs/grammar"
)

// mergeCompositions folds one file's standard compositions into the
// global table, later files winning per standard+element. A standard
// that shows up again with genuinely different values gets a debug note
// before the overwrite; identical re-definitions merge silently.
func mergeCompositions(global map[string]map[string]grammar.Value, file map[string]map[string]grammar.Value, path string, log *slog.Logger) {
	stds := make([]string, 0, len(file))
	for std := range file {
		stds = append(stds, std)
	}
	sort.Strings(stds)
	for _, std := range stds {
		comps := file[std]
		existing, seen := global[std]
		if !seen {
			existing = make(map[string]grammar.Value, len(comps))
			global[std] = existing
		} else if compositionID(existing) != compositionID(comps) {
			log.Debug("standard redefined", "standard", std, "path", path)
		}
		for el, v := range comps {
			existing[el] = v
		}
	}
}

// compositionID fingerprints a composition map over a canonical
// rendering so differing re-definitions can be told apart cheaply.
func compositionID(comps map[string]grammar.Value) uint64 {
	elems := make([]string, 0, len(comps))
	for el := range comps {
		elems = append(elems, el)
	}
	sort.Strings(elems)
	var b strings.Builder
	for _, el := range elems {
		b.WriteString(el)
		b.WriteByte('=')
		b.WriteString(comps[el].String())
		b.WriteByte(';')
	}
	return xxhash.Sum64String(b.String())
}
