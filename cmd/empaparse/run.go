package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/whtowbin/empaparse/pkgs/aggregate"
	"github.com/whtowbin/empaparse/pkgs/config"
	"github.com/whtowbin/empaparse/pkgs/export"
	"github.com/whtowbin/empaparse/pkgs/header"
	"github.com/whtowbin/empaparse/pkgs/parser"
)

type runFlags struct {
	out        string
	dirMode    bool
	configPath string
	exts       []string
	jobs       int
	debug      bool
}

func run(input string, flags runFlags) error {
	if flags.debug {
		header.SetDebug(true)
	}

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if len(flags.exts) > 0 {
		cfg.Extensions = flags.exts
	}
	if flags.jobs > 0 {
		cfg.Workers = flags.jobs
	}
	if flags.out != "" && flags.dirMode {
		cfg.Output.Dir = flags.out
	}

	if flags.dirMode {
		return runDir(input, cfg, flags.debug)
	}
	return runSingle(input, flags.out)
}

// runSingle parses one header file and writes its record as JSON to
// stdout or the --out file. A read failure here is fatal.
func runSingle(path, out string) error {
	rec, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	if out == "" {
		return export.WriteRecordJSON(os.Stdout, rec)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := export.WriteRecordJSON(f, rec); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return f.Close()
}

// runDir walks root, aggregates every matching file, and writes the
// three pivot tables plus the combined summary. Per-file failures were
// already logged by the aggregator and do not fail the run.
func runDir(root string, cfg config.Config, debug bool) error {
	res, err := aggregate.Run(root, aggregate.Options{
		Extensions: cfg.Extensions,
		Workers:    cfg.Workers,
		Debug:      debug,
	})
	if err != nil {
		return err
	}

	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = root
	}

	tables := []struct {
		name  string
		table *export.Table
	}{
		{cfg.Output.StandardByElement, export.StandardByElement(res)},
		{cfg.Output.XtalByElement, export.XtalByElement(res)},
		{cfg.Output.StandardCompositions, export.StandardCompositions(res)},
	}
	for _, t := range tables {
		if err := export.WriteCSVFile(filepath.Join(outDir, t.name), t.table); err != nil {
			return err
		}
	}

	summaryPath := filepath.Join(outDir, cfg.Output.Summary)
	f, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", summaryPath, err)
	}
	defer f.Close()
	if err := export.WriteSummaryJSON(f, res); err != nil {
		return fmt.Errorf("write %s: %w", summaryPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "parsed %d file(s), %d failed, output in %s\n",
		len(res.Files), len(res.Failed), outDir)
	return nil
}
