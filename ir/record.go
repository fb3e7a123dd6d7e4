// Package ir reconciles a stream of parsed DDL statement records into
// canonical, dialect-shaped entities. The upstream parser is a black box:
// it hands over ordered, key-presence-significant maps, and this package
// folds them into tables (plus pass-through entities) in statement order.
package ir

// Record is a single statement record as produced by the upstream parser,
// or a single entity in the final output. Key presence is significant: an
// absent key and a key holding a zero value are different things for
// output shaping, so callers must not insert keys they did not receive.
type Record map[string]any

// Has reports whether the key was present in the record.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the value under key as a string, or "" when the key is
// absent or holds a non-string value.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool returns the value under key as a bool, or false when the key is
// absent or holds a non-bool value.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Map returns the value under key as a nested Record. Both Record and
// map[string]any values are accepted since JSON decoding produces the
// latter. Returns nil when the key is absent or holds something else.
func (r Record) Map(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// List returns the value under key as a []any slice.
func (r Record) List(key string) []any {
	l, _ := r[key].([]any)
	return l
}

// Strings returns the value under key as a list of strings, skipping
// non-string elements.
func (r Record) Strings(key string) []string {
	var out []string
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// Records returns the value under key as a list of nested records,
// skipping elements that are not maps.
func (r Record) Records(key string) []Record {
	var out []Record
	for _, item := range r.List(key) {
		switch v := item.(type) {
		case Record:
			out = append(out, v)
		case map[string]any:
			out = append(out, Record(v))
		}
	}
	return out
}

// Clone returns a shallow copy of the record. Nested values are shared;
// the engine only ever rewrites top-level keys on cloned records.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
