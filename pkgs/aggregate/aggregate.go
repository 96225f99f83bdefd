// Package aggregate walks a directory tree of instrument header files,
// parses each one, and pivots the scattered per-file element mappings
// into element-indexed tables: standard assignment per element per file,
// crystal assignment per element per file, and one deduplicated
// standard-composition table merged across the whole run.
package aggregate

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/whtowbin/empaparse/internal/logging"
	"github.com/whtowbin/empaparse/pkgs/grammar"
	"github.com/whtowbin/empaparse/pkgs/parser"
)

// DefaultExtensions are the file extensions recognized during the walk,
// compared case-insensitively. A trailing ".gz" is peeled off first so
// gzipped exports match too.
var DefaultExtensions = []string{".txt", ".qtidat"}

// Options configures a directory run.
type Options struct {
	// Extensions overrides DefaultExtensions when non-empty.
	Extensions []string
	// Workers bounds the parse fan-out. Zero means one worker per CPU,
	// capped at the file count.
	Workers int
	// Debug turns on trace logging.
	Debug bool
}

// Result is the aggregate of one run. Everything is derived from Files;
// the pivot maps are precomputed so exports only have to lay out rows.
type Result struct {
	// Files maps path -> parsed record for every file that parsed.
	Files map[string]*parser.Record
	// Failed maps path -> error for files that could not be read or
	// parsed. Failures never abort the run.
	Failed map[string]error
	// ElementToStandard maps path -> element -> assigned standard.
	ElementToStandard map[string]map[string]string
	// ElementToXtal maps path -> element -> diffracting crystal.
	ElementToXtal map[string]map[string]string
	// StandardCompositions merges every file's composition block;
	// later files win per standard+element.
	StandardCompositions map[string]map[string]grammar.Value
}

// Run walks root, parses every matching file with a bounded worker pool,
// and folds the records into a Result. Only an unreadable root is an
// error; per-file failures land in Result.Failed.
func Run(root string, opts Options) (*Result, error) {
	log := logging.New(opts.Debug)

	paths, err := collectFiles(root, opts.Extensions)
	if err != nil {
		return nil, err
	}
	log.Debug("directory walk", "root", root, "files", len(paths))

	type outcome struct {
		rec *parser.Record
		err error
	}
	outcomes := make([]outcome, len(paths))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	// Fan-out: each worker writes only its own slots, so the results
	// need no lock; aggregation below starts after every parse is done.
	if workers > 0 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					rec, err := parser.ParseFile(paths[i])
					outcomes[i] = outcome{rec: rec, err: err}
				}
			}()
		}
		for i := range paths {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	records := make(map[string]*parser.Record, len(paths))
	failed := map[string]error{}
	for i, path := range paths {
		if outcomes[i].err != nil {
			log.Warn("skipping file", "path", path, "error", outcomes[i].err)
			failed[path] = outcomes[i].err
			continue
		}
		records[path] = outcomes[i].rec
	}

	res := Build(records, log)
	res.Failed = failed
	return res, nil
}

// Build folds parsed records into a Result. It is the pure aggregation
// half of Run, separated so callers with records from elsewhere (or
// tests) can pivot without touching the filesystem.
func Build(records map[string]*parser.Record, log *slog.Logger) *Result {
	if log == nil {
		log = logging.New(false)
	}
	res := &Result{
		Files:                records,
		Failed:               map[string]error{},
		ElementToStandard:    map[string]map[string]string{},
		ElementToXtal:        map[string]map[string]string{},
		StandardCompositions: map[string]map[string]grammar.Value{},
	}
	for _, path := range res.SortedPaths() {
		rec := records[path]
		if m := rec.ElementToStandard(); len(m) > 0 {
			res.ElementToStandard[path] = m
		}
		if m := xtalAssignments(rec.AnalysisParams); len(m) > 0 {
			res.ElementToXtal[path] = m
		}
		if rec.Composition != nil {
			mergeCompositions(res.StandardCompositions, rec.Composition.StandardToComposition, path, log)
		}
	}
	return res
}

// SortedPaths returns the successfully parsed paths in sorted order;
// every table and merge walks files in this order for determinism.
func (r *Result) SortedPaths() []string {
	paths := make([]string, 0, len(r.Files))
	for p := range r.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// collectFiles walks root and returns the sorted matching file paths.
func collectFiles(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	match := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		match[strings.ToLower(ext)] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		name = strings.TrimSuffix(name, ".gz")
		if match[filepath.Ext(name)] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}
