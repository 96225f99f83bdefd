package header

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ReadLines loads path into a slice of lines with line terminators
// stripped. Invalid UTF-8 byte sequences are dropped rather than reported:
// instrument exports routinely contain stray high bytes in free-text
// fields and losing them is preferable to losing the file.
//
// A path ending in ".gz" is decompressed transparently; microprobe dumps
// are often archived that way.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines breaks raw text into lines, tolerating CRLF endings and
// discarding invalid UTF-8. A trailing newline does not produce a final
// empty line.
func SplitLines(text string) []string {
	text = strings.ToValidUTF8(text, "")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
