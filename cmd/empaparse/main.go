// Command empaparse extracts structured metadata from electron
// microprobe header files.
//
// Single-file mode parses one header and prints the record as JSON;
// directory mode walks a tree, parses every matching file, and exports
// element-indexed pivot tables plus a combined summary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		out        string
		dirMode    bool
		configPath string
		exts       []string
		jobs       int
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "empaparse <input>",
		Short: "Extract structured metadata from microprobe header files",
		Long: `empaparse reads the human-readable header that precedes the numeric
measurement table in electron-microprobe output files and converts it to
machine-queryable form.

With a file argument the parsed record is written as JSON to stdout (or
--out). With --dir the argument is a directory root: every matching file
is parsed, and standard-by-element, xtal-by-element and
standard-composition tables are exported alongside a combined summary.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], runFlags{
				out:        out,
				dirMode:    dirMode,
				configPath: configPath,
				exts:       exts,
				jobs:       jobs,
				debug:      debug,
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (single-file mode) or directory (with --dir)")
	cmd.Flags().BoolVar(&dirMode, "dir", false, "Treat input as a directory root and export pivot tables")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run configuration")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Recognized file extensions in --dir mode (overrides config)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Parallel file parses in --dir mode (0 = one per CPU)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug tracing")

	return cmd
}
