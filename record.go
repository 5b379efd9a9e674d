// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import "strings"

// UnknownPrefix is used as prefix for unknown tags.
const UnknownPrefix = "UnknownTag_"

// Record is the output mapping from namespaced keys (e.g. "EXIF:Make",
// "MakerNotes:LensType") to decoded values. Keys are unique; when multiple
// passes produce the same key, the first successfully decoded value wins.
// Decode order is deterministic, so merges are reproducible across runs.
type Record struct {
	values map[string]any
	keys   []string
}

func newRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// add stores a value under key if the key is not already present.
// It reports whether the value was stored.
func (rec *Record) add(key string, v any) bool {
	if _, found := rec.values[key]; found {
		return false
	}
	rec.values[key] = v
	rec.keys = append(rec.keys, key)
	return true
}

// Get returns the value stored under key.
func (rec *Record) Get(key string) (any, bool) {
	v, ok := rec.values[key]
	return v, ok
}

// Has reports whether key is present.
func (rec *Record) Has(key string) bool {
	_, ok := rec.values[key]
	return ok
}

// Len returns the number of keys.
func (rec *Record) Len() int {
	return len(rec.values)
}

// Keys returns the keys in insertion order.
func (rec *Record) Keys() []string {
	keys := make([]string, len(rec.keys))
	copy(keys, rec.keys)
	return keys
}

// All returns a copy of the key/value mapping.
func (rec *Record) All() map[string]any {
	all := make(map[string]any, len(rec.values))
	for k, v := range rec.values {
		all[k] = v
	}
	return all
}

// nsKey joins a namespace and a tag name into a record key. A name that
// already carries the namespace prefix is not prefixed again.
func nsKey(namespace, name string) string {
	if strings.HasPrefix(name, namespace+":") {
		return name
	}
	return namespace + ":" + name
}
