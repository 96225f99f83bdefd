package header

import (
	"bytes"
	"encoding/json"
)

// SectionMap is an insertion-ordered mapping from section key to section
// value. A value is either a scalar (the text after the colon) or a block
// (the joined lines collected under a `key:` opener). Duplicate keys keep
// their original position but take the later value.
type SectionMap struct {
	entries []sectionEntry
	index   map[string]int // key -> position in entries
}

type sectionEntry struct {
	key   string
	value string
}

// NewSectionMap returns an empty SectionMap.
func NewSectionMap() *SectionMap {
	return &SectionMap{index: map[string]int{}}
}

// Set records key=value, overwriting a previous value for the same key
// while keeping the key's original position.
func (m *SectionMap) Set(key, value string) {
	if idx, ok := m.index[key]; ok {
		m.entries[idx].value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, sectionEntry{key: key, value: value})
}

// Get returns the value for key and whether it was present.
func (m *SectionMap) Get(key string) (string, bool) {
	idx, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[idx].value, true
}

// Keys returns the keys in insertion order.
func (m *SectionMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of entries.
func (m *SectionMap) Len() int {
	return len(m.entries)
}

// MarshalJSON renders the map as a JSON object with keys in insertion
// order. encoding/json's map marshalling sorts keys, which would destroy
// the document order the segmenter worked to preserve.
func (m *SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
