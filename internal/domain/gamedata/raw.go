// Package gamedata holds the normalized row-tree types for each entity
// family and the pure normalization functions that build them from raw
// upstream JSON records.
package gamedata

// RawRecord is one untyped JSON object from the upstream provider, prior
// to normalization. Numbers carry the encoding/json default float64
// representation.
type RawRecord map[string]any

// object reads an optional sub-object. Absent keys, explicit nulls and
// empty objects are all reported as not present, so optional dependents
// behave identically across the three representations.
func (r RawRecord) object(key string) (RawRecord, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	return RawRecord(m), true
}

// intValue reads an integer field. Reports false when the field is
// absent, null or not a number.
func (r RawRecord) intValue(key string) (int64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// optionalInt reads a nullable integer field. Absent and null both map
// to nil.
func (r RawRecord) optionalInt(key string) *int64 {
	n, ok := r.intValue(key)
	if !ok {
		return nil
	}
	return &n
}

func (r RawRecord) boolOr(key string, def bool) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func (r RawRecord) boolValue(key string) (bool, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func (r RawRecord) stringValue(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// optionalString reads a nullable string field. Absent and null both map
// to nil, never to an empty string, so "untranslated" stays
// distinguishable from "empty string".
func (r RawRecord) optionalString(key string) *string {
	s, ok := r.stringValue(key)
	if !ok {
		return nil
	}
	return &s
}

// stringList reads a list of strings. An absent or null field defaults
// to an empty slice so callers can always iterate safely.
func (r RawRecord) stringList(key string) []string {
	out := []string{}
	v, ok := r[key]
	if !ok || v == nil {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// intList reads a list of integers, defaulting to an empty slice.
func (r RawRecord) intList(key string) []int64 {
	out := []int64{}
	v, ok := r[key]
	if !ok || v == nil {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if f, ok := item.(float64); ok {
			out = append(out, int64(f))
		}
	}
	return out
}

// floatList reads a list of floats, defaulting to an empty slice.
func (r RawRecord) floatList(key string) []float64 {
	out := []float64{}
	v, ok := r[key]
	if !ok || v == nil {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if f, ok := item.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// objectList reads a list of sub-objects, defaulting to an empty slice.
// Non-object entries are dropped rather than failing the record.
func (r RawRecord) objectList(key string) []RawRecord {
	out := []RawRecord{}
	v, ok := r[key]
	if !ok || v == nil {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, RawRecord(m))
		}
	}
	return out
}
