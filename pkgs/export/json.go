package export

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/whtowbin/empaparse/pkgs/aggregate"
	"github.com/whtowbin/empaparse/pkgs/parser"
)

// WriteRecordJSON writes one file's record as indented JSON, raw
// sections first in document order, synthetic grammar keys after.
func WriteRecordJSON(w io.Writer, rec *parser.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteSummaryJSON writes the combined directory summary: a JSON object
// keyed by file path (sorted) with each file's full record as the value.
func WriteSummaryJSON(w io.Writer, res *aggregate.Result) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range res.SortedPaths() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(path)
		if err != nil {
			return err
		}
		v, err := json.Marshal(res.Files[path])
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}
