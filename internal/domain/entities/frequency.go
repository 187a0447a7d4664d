package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// FrequencyEntry is a single key/count pair.
type FrequencyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FrequencyMap is a key->count mapping that remembers the order keys were
// first seen, including the key order of a decoded JSON object.
// Absent keys count as zero.
type FrequencyMap struct {
	entries []FrequencyEntry
	index   map[string]int
}

// NewFrequencyMap builds a map from entries in the given order.
func NewFrequencyMap(entries ...FrequencyEntry) FrequencyMap {
	var m FrequencyMap
	for _, e := range entries {
		m.set(e.Key, e.Count)
	}
	return m
}

func (m *FrequencyMap) set(key string, count int) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Count = count
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, FrequencyEntry{Key: key, Count: count})
}

// Get returns the count for key, or zero.
func (m FrequencyMap) Get(key string) int {
	if i, ok := m.index[key]; ok {
		return m.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (m FrequencyMap) Len() int {
	return len(m.entries)
}

// Entries returns the entries in first-seen order.
func (m FrequencyMap) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Ranked returns the entries sorted by descending count. Equal counts keep
// first-seen order.
func (m FrequencyMap) Ranked() []FrequencyEntry {
	out := m.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Top returns the highest ranked entry.
func (m FrequencyMap) Top() (FrequencyEntry, bool) {
	if len(m.entries) == 0 {
		return FrequencyEntry{}, false
	}
	return m.Ranked()[0], true
}

// MarshalJSON encodes the map as a JSON object in first-seen order.
func (m FrequencyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping its key order.
func (m *FrequencyMap) UnmarshalJSON(data []byte) error {
	*m = FrequencyMap{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("frequency map: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("frequency map: expected string key, got %v", keyTok)
		}
		var raw json.Number
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("frequency map: count for %q: %w", key, err)
		}
		count, err := parseCount(raw)
		if err != nil {
			return fmt.Errorf("frequency map: count for %q: %w", key, err)
		}
		m.set(key, count)
	}

	_, err = dec.Token()
	return err
}

// parseCount accepts non-negative whole numbers that fit in an int, including
// float spellings such as 4.0.
func parseCount(raw json.Number) (int, error) {
	n, err := raw.Int64()
	if err != nil {
		f, ferr := raw.Float64()
		if ferr != nil || f != math.Trunc(f) || f < 0 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("invalid count %q", raw.String())
		}
		n = int64(f)
	}
	if n < 0 || n > math.MaxInt {
		return 0, fmt.Errorf("invalid count %q", raw.String())
	}
	return int(n), nil
}
