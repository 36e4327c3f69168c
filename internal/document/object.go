// Package document builds the nested per-contact tree shared by the
// structured renderers.
package document

import (
	"bytes"
	"encoding/json"
)

// Object is a string-keyed map that remembers insertion order. Values are
// string, []string or *Object.
type Object struct {
	keys   []string
	values map[string]any
}

// Entry is one key/value pair of an Object.
type Entry struct {
	Key   string
	Value any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key, if present.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len reports the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Entries returns the pairs in insertion order.
func (o *Object) Entries() []Entry {
	out := make([]Entry, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, Entry{Key: k, Value: o.values[k]})
	}
	return out
}

// MarshalJSON encodes the object with keys in insertion order and without
// HTML escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeRaw(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeRaw(&buf, o.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeRaw(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
