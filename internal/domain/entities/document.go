package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Extra holds the stored keys of a record that the typed fields cannot hold:
// keys with no typed field, and typed keys whose stored value has another
// JSON type. They are written back unchanged so that a rewrite of the
// collection never loses data.
type Extra map[string]interface{}

// Drop forgets the stored values of keys that now carry a typed value
func (e Extra) Drop(keys ...string) {
	for _, k := range keys {
		delete(e, k)
	}
}

func (e Extra) valueOr(key string, typed interface{}) interface{} {
	if v, ok := e[key]; ok {
		return v
	}
	return typed
}

// recordDecoder decodes one stored JSON object field by field.
type recordDecoder struct {
	fields map[string]json.RawMessage
}

func newRecordDecoder(data []byte) (*recordDecoder, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return &recordDecoder{fields: fields}, nil
}

// required decodes key into dst. A value of another JSON type is an error.
func required[T any](d *recordDecoder, key string, dst *T) error {
	raw, ok := d.fields[key]
	if !ok {
		return nil
	}
	delete(d.fields, key)

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	*dst = v
	return nil
}

// optional decodes key into dst. A value of another JSON type stays with the
// extra keys and dst is left unset.
func optional[T any](d *recordDecoder, key string, dst *T) {
	raw, ok := d.fields[key]
	if !ok {
		return
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	delete(d.fields, key)
	*dst = v
}

// extra returns the keys no typed field consumed, or nil if there are none
func (d *recordDecoder) extra() (Extra, error) {
	if len(d.fields) == 0 {
		return nil, nil
	}

	out := make(Extra, len(d.fields))
	for k, raw := range d.fields {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// mergeExtra adds the extra keys to the encoded object. Typed keys come first
// in the given order, followed by the remaining extra keys sorted by name. An
// extra value replaces the typed value of the same key.
func mergeExtra(typed []byte, extra Extra, order ...string) ([]byte, error) {
	if len(extra) == 0 {
		return typed, nil
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(typed, &values); err != nil {
		return nil, err
	}

	rest := make([]string, 0, len(extra))
	for k, v := range extra {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		values[k] = raw
		if !slices.Contains(order, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, k := range append(slices.Clone(order), rest...) {
		raw, ok := values[k]
		if !ok {
			continue
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
