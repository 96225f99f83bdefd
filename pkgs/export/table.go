// Package export lays out parsed records and aggregate results as CSV
// tables and JSON documents. It owns only the rendering; every value it
// writes was shaped by the parser and aggregate packages.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Table is a rendered rectangular result: a header row and data rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// WriteCSV writes the table with its header row. An empty table still
// produces a well-formed header-only file.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, creating parent directories.
func WriteCSVFile(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
