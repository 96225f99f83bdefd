// Package parser turns one instrument header file into a Record: the raw
// sectioned key/value entries plus the structured results of every block
// grammar whose section was present.
package parser

import (
	"bytes"
	"encoding/json"

	"github.com/whtowbin/empaparse/pkgs/grammar"
	"github.com/whtowbin/empaparse/pkgs/header"
)

// Synthetic record keys for the structured grammar results. They sit in
// the JSON output next to the raw sections they were derived from.
const (
	KeyComposition      = "Standard composition parsed"
	KeyCalibration      = "Calibration parsed"
	KeyAnalysisParams   = "Analysis Parameters parsed"
	KeyStandardNames    = "Standard Name parsed"
	KeyColumnConditions = "Column Conditions parsed"
)

// Record is the parse result for a single file. The structured fields
// are nil when no section key matched the corresponding grammar prefix.
type Record struct {
	Sections         *header.SectionMap
	Composition      *grammar.CompositionResult
	Calibration      grammar.CalibrationResult
	AnalysisParams   *grammar.TabularResult
	StandardNames    *grammar.StandardNameResult
	ColumnConditions *grammar.ColumnConditionResult
}

// ElementToStandard returns the element -> standard assignment for the
// file: the Standard-Name result when present, otherwise the reverse map
// derived from the composition block, otherwise nil.
func (r *Record) ElementToStandard() map[string]string {
	if r.StandardNames != nil && len(r.StandardNames.ElementToStandard) > 0 {
		return r.StandardNames.ElementToStandard
	}
	if r.Composition != nil && len(r.Composition.ElementToStandard) > 0 {
		return r.Composition.ElementToStandard
	}
	return nil
}

// MarshalJSON renders the raw sections in document order followed by the
// synthetic grammar keys that apply. json.MarshalIndent re-indents the
// compact object this produces.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, val any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}
	for _, key := range r.Sections.Keys() {
		val, _ := r.Sections.Get(key)
		if err := write(key, val); err != nil {
			return nil, err
		}
	}
	if r.Composition != nil {
		if err := write(KeyComposition, r.Composition); err != nil {
			return nil, err
		}
	}
	if r.Calibration != nil {
		if err := write(KeyCalibration, r.Calibration); err != nil {
			return nil, err
		}
	}
	if r.AnalysisParams != nil {
		if err := write(KeyAnalysisParams, r.AnalysisParams); err != nil {
			return nil, err
		}
	}
	if r.StandardNames != nil {
		if err := write(KeyStandardNames, r.StandardNames); err != nil {
			return nil, err
		}
	}
	if r.ColumnConditions != nil {
		if err := write(KeyColumnConditions, r.ColumnConditions); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
