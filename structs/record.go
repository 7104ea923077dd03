package structs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a JSON object that remembers the key order it was decoded in.
// The provider decides which fields a response carries, so results are kept
// as ordered key/value pairs instead of a struct.
type Record struct {
	keys   []string
	values map[string]interface{}
}

func NewRecord() *Record {
	return &Record{values: make(map[string]interface{})}
}

// Set stores v under key, appending the key on first use.
func (r *Record) Set(key string, v interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in insertion order. The caller must not
// modify the returned slice.
func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// String renders the value under key as a CSV cell: scalars verbatim,
// nested values as compact JSON, missing keys as the empty string.
func (r *Record) String(key string) string {
	v, ok := r.values[key]
	if !ok || v == nil {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// UnmarshalJSON decodes a JSON object, preserving key order and keeping
// numbers as json.Number so they round-trip unchanged.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	r.keys = nil
	r.values = make(map[string]interface{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return err
		}
		r.Set(key, v)
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the record with its fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
