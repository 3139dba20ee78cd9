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

import "iter"

// PathParams holds the path parameters of a URL in insertion order. Every method that
// mutates it returns the receiver so calls can be chained; BaseURL returns to
// the owning URL.
type PathParams struct {
	m   orderedMap[Value]
	url *URL
}

// NewPathParams returns path parameters built from entries, not yet bound to a URL.
// A repeated key keeps its first position and its last value.
func NewPathParams(entries ...Param) *PathParams {
	return newPathParams(nil, entries)
}

func newPathParams(owner *URL, entries []Param) *PathParams {
	return &PathParams{m: newOrderedMap(entries), url: owner}
}

// BaseURL returns the URL owning the parameters, or nil when unbound.
func (p *PathParams) BaseURL() *URL { return p.url }

// Get returns the value of key and whether it is present.
func (p *PathParams) Get(key string) (Value, bool) { return p.m.get(key) }

// Has reports whether key is present.
func (p *PathParams) Has(key string) bool { return p.m.has(key) }

// Len returns the number of parameters.
func (p *PathParams) Len() int { return p.m.len() }

// Keys returns the parameter names in insertion order.
func (p *PathParams) Keys() []string { return p.m.keys() }

// Entries returns a copy of the parameters in insertion order.
func (p *PathParams) Entries() []Param { return p.m.snapshot() }

// All iterates over the parameters in insertion order.
func (p *PathParams) All() iter.Seq2[string, Value] { return p.m.all() }

// GetAll returns the parameters as a plain map.
func (p *PathParams) GetAll() Record { return p.m.toMap() }

// Add sets key to value unless key is already present.
func (p *PathParams) Add(key string, value Value) *PathParams {
	p.m.add(key, value)
	return p
}

// Set sets key to value, keeping the position of an existing key.
func (p *PathParams) Set(key string, value Value) *PathParams {
	p.m.set(key, value)
	return p
}

// AddAll applies Add to every pair of record, in sorted key order.
func (p *PathParams) AddAll(record Record) *PathParams {
	p.m.addAll(record)
	return p
}

// SetAll applies Set to every pair of record, in sorted key order.
func (p *PathParams) SetAll(record Record) *PathParams {
	p.m.setAll(record)
	return p
}

// AddEntries applies Add to every entry, in the given order.
func (p *PathParams) AddEntries(entries ...Param) *PathParams {
	for _, e := range entries {
		p.m.add(e.Key, e.Value)
	}
	return p
}

// SetEntries applies Set to every entry, in the given order.
func (p *PathParams) SetEntries(entries ...Param) *PathParams {
	for _, e := range entries {
		p.m.set(e.Key, e.Value)
	}
	return p
}

// Delete removes key. Unknown keys are ignored.
func (p *PathParams) Delete(key string) *PathParams {
	p.m.delete(key)
	return p
}

// DeleteBy removes every parameter matching pred.
func (p *PathParams) DeleteBy(pred Predicate) *PathParams {
	p.m.deleteBy(pred)
	return p
}

// Filter returns new path parameters holding the entries matching pred, bound
// to the same URL. The receiver is not modified.
func (p *PathParams) Filter(pred Predicate) *PathParams {
	return &PathParams{m: p.m.filter(pred), url: p.url}
}

// clone returns a copy bound to owner.
func (p *PathParams) clone(owner *URL) *PathParams {
	return &PathParams{m: p.m.clone(), url: owner}
}
