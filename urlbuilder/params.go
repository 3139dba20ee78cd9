/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlbuilder

import (
	"iter"
	"maps"
	"slices"
)

// Entry is a single key/value pair of an ordered map.
type Entry[V any] struct {
	Key   string
	Value V
}

// Param is a named parameter value.
type Param = Entry[Value]

// Predicate selects parameters. It receives the entry, its index, and a
// snapshot of every entry taken before the operation started.
type Predicate func(p Param, index int, all []Param) bool

// orderedMap maps unique string keys to values, preserving insertion order.
type orderedMap[V any] struct {
	entries []Entry[V]
	index   map[string]int
}

// newOrderedMap builds a map from entries. A repeated key keeps the position
// of its first occurrence and the value of its last.
func newOrderedMap[V any](entries []Entry[V]) orderedMap[V] {
	var m orderedMap[V]
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	return m
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *orderedMap[V]) has(key string) bool {
	_, ok := m.index[key]
	return ok
}

func (m *orderedMap[V]) len() int { return len(m.entries) }

// add inserts the pair only if key is absent.
func (m *orderedMap[V]) add(key string, value V) {
	if !m.has(key) {
		m.set(key, value)
	}
}

// set overwrites the value of key in place, or appends the pair.
func (m *orderedMap[V]) set(key string, value V) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry[V]{Key: key, Value: value})
}

// addAll applies add to every pair of record, in sorted key order.
func (m *orderedMap[V]) addAll(record map[string]V) {
	for _, k := range slices.Sorted(maps.Keys(record)) {
		m.add(k, record[k])
	}
}

// setAll applies set to every pair of record, in sorted key order.
func (m *orderedMap[V]) setAll(record map[string]V) {
	for _, k := range slices.Sorted(maps.Keys(record)) {
		m.set(k, record[k])
	}
}

func (m *orderedMap[V]) delete(key string) {
	if !m.has(key) {
		return
	}
	m.deleteBy(func(e Entry[V], _ int, _ []Entry[V]) bool { return e.Key == key })
}

// deleteBy removes every entry matching pred. pred is evaluated against a
// snapshot, so it never observes a partially deleted map.
func (m *orderedMap[V]) deleteBy(pred func(Entry[V], int, []Entry[V]) bool) {
	snapshot := m.snapshot()
	kept := m.entries[:0]
	for i, e := range snapshot {
		if !pred(e, i, snapshot) {
			kept = append(kept, e)
		}
	}
	clear(m.entries[len(kept):])
	m.entries = kept
	m.reindex()
}

func (m *orderedMap[V]) reindex() {
	clear(m.index)
	for i, e := range m.entries {
		m.index[e.Key] = i
	}
}

// filter returns a new map holding the entries matching pred.
func (m *orderedMap[V]) filter(pred func(Entry[V], int, []Entry[V]) bool) orderedMap[V] {
	snapshot := m.snapshot()
	var matched []Entry[V]
	for i, e := range snapshot {
		if pred(e, i, snapshot) {
			matched = append(matched, e)
		}
	}
	return newOrderedMap(matched)
}

// snapshot returns a copy of the entries in insertion order.
func (m *orderedMap[V]) snapshot() []Entry[V] {
	return slices.Clone(m.entries)
}

func (m *orderedMap[V]) keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

func (m *orderedMap[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *orderedMap[V]) toMap() map[string]V {
	out := make(map[string]V, len(m.entries))
	for _, e := range m.entries {
		out[e.Key] = e.Value
	}
	return out
}

func (m *orderedMap[V]) clone() orderedMap[V] {
	return newOrderedMap(m.entries)
}
