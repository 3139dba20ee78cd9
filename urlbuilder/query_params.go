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
	"strings"
)

// QueryParams holds the query string parameters of a URL in insertion order.
// Each key maps to a single value.
type QueryParams struct {
	m   orderedMap[Value]
	url *URL
}

// NewQueryParams returns query parameters built from entries, not yet bound to a URL.
// A repeated key keeps its first position and its last value.
func NewQueryParams(entries ...Param) *QueryParams {
	return newQueryParams(nil, entries)
}

func newQueryParams(owner *URL, entries []Param) *QueryParams {
	return &QueryParams{m: newOrderedMap(entries), url: owner}
}

// BaseURL returns the URL owning the parameters, or nil when unbound.
func (p *QueryParams) BaseURL() *URL { return p.url }

// Get returns the value of key and whether it is present.
func (p *QueryParams) Get(key string) (Value, bool) { return p.m.get(key) }

// Has reports whether key is present.
func (p *QueryParams) Has(key string) bool { return p.m.has(key) }

// Len returns the number of parameters.
func (p *QueryParams) Len() int { return p.m.len() }

// Keys returns the parameter names in insertion order.
func (p *QueryParams) Keys() []string { return p.m.keys() }

// Entries returns a copy of the parameters in insertion order.
func (p *QueryParams) Entries() []Param { return p.m.snapshot() }

// All iterates over the parameters in insertion order.
func (p *QueryParams) All() iter.Seq2[string, Value] { return p.m.all() }

// GetAll returns the parameters as a plain map.
func (p *QueryParams) GetAll() Record { return p.m.toMap() }

// Add sets key to value unless key is already present.
func (p *QueryParams) Add(key string, value Value) *QueryParams {
	p.m.add(key, value)
	return p
}

// Set sets key to value, keeping the position of an existing key.
func (p *QueryParams) Set(key string, value Value) *QueryParams {
	p.m.set(key, value)
	return p
}

// AddAll applies Add to every pair of record, in sorted key order.
func (p *QueryParams) AddAll(record Record) *QueryParams {
	p.m.addAll(record)
	return p
}

// SetAll applies Set to every pair of record, in sorted key order.
func (p *QueryParams) SetAll(record Record) *QueryParams {
	p.m.setAll(record)
	return p
}

// AddEntries is like AddAll but keeps the order of entries.
func (p *QueryParams) AddEntries(entries ...Param) *QueryParams {
	for _, e := range entries {
		p.m.add(e.Key, e.Value)
	}
	return p
}

// SetEntries applies Set to every entry, in the given order.
func (p *QueryParams) SetEntries(entries ...Param) *QueryParams {
	for _, e := range entries {
		p.m.set(e.Key, e.Value)
	}
	return p
}

// Delete removes key. Unknown keys are ignored.
func (p *QueryParams) Delete(key string) *QueryParams {
	p.m.delete(key)
	return p
}

// DeleteBy removes every parameter matching pred.
func (p *QueryParams) DeleteBy(pred Predicate) *QueryParams {
	p.m.deleteBy(pred)
	return p
}

// Filter returns a new QueryParams over the entries matching pred.
func (p *QueryParams) Filter(pred Predicate) *QueryParams {
	return &QueryParams{m: p.m.filter(pred), url: p.url}
}

// clone returns a copy bound to owner.
func (p *QueryParams) clone(owner *URL) *QueryParams {
	return &QueryParams{m: p.m.clone(), url: owner}
}

// String renders the parameters as "?k1=v1&k2=v2" in insertion order, or the
// empty string when there are none. Nothing is percent-encoded.
func (p *QueryParams) String() string {
	if p.m.len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range p.m.entries {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value.String())
	}
	return b.String()
}
