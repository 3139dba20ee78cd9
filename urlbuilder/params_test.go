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

//nolint:testpackage // White-box tests check back-references and internal state.
package urlbuilder

import (
	"reflect"
	"strings"
	"testing"
)

// TestParams_AddNeverOverwrites tests that Add keeps the first value while Set replaces it.
func TestParams_AddNeverOverwrites(t *testing.T) {
	p := NewPathParams()

	p.Add("id", IntValue(1)).Add("id", IntValue(2))
	if v, _ := p.Get("id"); v != IntValue(1) {
		t.Errorf("after two Add, Get(id) = %v, want 1", v)
	}

	p.Set("id", IntValue(3)).Set("id", IntValue(4))
	if v, _ := p.Get("id"); v != IntValue(4) {
		t.Errorf("after two Set, Get(id) = %v, want 4", v)
	}
}

// TestParams_SetKeepsPosition tests that overwriting a key does not move it.
func TestParams_SetKeepsPosition(t *testing.T) {
	q := NewQueryParams().
		Set("page", IntValue(1)).
		Set("order", StringValue("ASC")).
		Set("page", IntValue(2))

	if got, want := q.Keys(), []string{"page", "order"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := q.String(), "?page=2&order=ASC"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestParams_AddAllSetAll tests the bulk operations and their deterministic order.
func TestParams_AddAllSetAll(t *testing.T) {
	q := NewQueryParams().Set("page", IntValue(1))

	q.AddAll(Record{"page": IntValue(3), "order": StringValue("DESC"), "lang": StringValue("fr")})
	if got, want := q.String(), "?page=1&lang=fr&order=DESC"; got != want {
		t.Errorf("after AddAll, String() = %q, want %q", got, want)
	}

	q.SetAll(Record{"page": IntValue(3), "order": StringValue("ASC")})
	if got, want := q.String(), "?page=3&lang=fr&order=ASC"; got != want {
		t.Errorf("after SetAll, String() = %q, want %q", got, want)
	}
}

// TestParams_Entries tests the order-preserving bulk operations.
func TestParams_Entries(t *testing.T) {
	q := NewQueryParams().
		AddEntries(Param{Key: "z", Value: IntValue(1)}, Param{Key: "a", Value: IntValue(2)}).
		AddEntries(Param{Key: "z", Value: IntValue(9)}).
		SetEntries(Param{Key: "a", Value: IntValue(3)}, Param{Key: "m", Value: BoolValue(true)})

	if got, want := q.String(), "?z=1&a=3&m=true"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	entries := q.Entries()
	entries[0].Value = IntValue(100)
	if v, _ := q.Get("z"); v != IntValue(1) {
		t.Error("Entries() should return a copy")
	}
}

// TestParams_DeleteBy tests that the predicate sees a stable snapshot.
func TestParams_DeleteBy(t *testing.T) {
	p := NewPathParams(
		Param{Key: "a", Value: IntValue(1)},
		Param{Key: "b", Value: IntValue(2)},
		Param{Key: "c", Value: IntValue(3)},
		Param{Key: "d", Value: IntValue(4)},
	)

	var seen []int
	p.DeleteBy(func(e Param, i int, all []Param) bool {
		if len(all) != 4 {
			t.Errorf("predicate saw %d entries, want 4", len(all))
		}
		seen = append(seen, i)
		return i%2 == 0
	})

	if !reflect.DeepEqual(seen, []int{0, 1, 2, 3}) {
		t.Errorf("predicate indexes = %v, want [0 1 2 3]", seen)
	}
	if got, want := p.Keys(), []string{"b", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, ok := p.Get("d"); !ok || v != IntValue(4) {
		t.Errorf("Get(d) = (%v, %v), want (4, true)", v, ok)
	}

	p.Delete("unknown").Delete("b")
	if p.Len() != 1 || p.Has("b") {
		t.Errorf("after Delete(b), Keys() = %v", p.Keys())
	}
}

// TestParams_Filter tests that Filter copies and keeps the back-reference.
func TestParams_Filter(t *testing.T) {
	u := New().SetQueryParams(NewQueryParams(
		Param{Key: "style", Value: StringValue("dark")},
		Param{Key: "utm_source", Value: StringValue("Google")},
		Param{Key: "utm_medium", Value: StringValue("newsletter")},
		Param{Key: "utm_campaign", Value: StringValue("summer")},
		Param{Key: "isMobile", Value: IntValue(1)},
	))

	filtered := u.QueryParams().Filter(func(e Param, _ int, _ []Param) bool {
		return strings.HasPrefix(e.Key, "utm")
	})

	if got, want := filtered.Keys(), []string{"utm_source", "utm_medium", "utm_campaign"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter keys = %v, want %v", got, want)
	}
	if filtered.BaseURL() != u {
		t.Error("Filter should keep the back-reference")
	}
	if u.QueryParams().Len() != 5 {
		t.Error("Filter should not modify the source")
	}

	filtered.Set("utm_source", StringValue("Bing"))
	if v, _ := u.QueryParams().Get("utm_source"); v != StringValue("Google") {
		t.Error("Filter should return an independent map")
	}

	path := NewPathParams(Param{Key: "id", Value: IntValue(1)}).Filter(func(Param, int, []Param) bool { return false })
	if path.Len() != 0 {
		t.Errorf("empty Filter Len() = %d, want 0", path.Len())
	}
}

// TestParams_GetAll tests materialization into a plain map.
func TestParams_GetAll(t *testing.T) {
	p := NewPathParams(Param{Key: "userId", Value: IntValue(10)}, Param{Key: "commentId", Value: IntValue(1)})
	want := Record{"userId": IntValue(10), "commentId": IntValue(1)}
	if got := p.GetAll(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetAll() = %v, want %v", got, want)
	}
}

// TestParams_All tests iteration order and early exit.
func TestParams_All(t *testing.T) {
	q := NewQueryParams(
		Param{Key: "a", Value: IntValue(1)},
		Param{Key: "b", Value: IntValue(2)},
		Param{Key: "c", Value: IntValue(3)},
	)

	var keys []string
	for k := range q.All() {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	if !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Errorf("All() yielded %v, want [a b]", keys)
	}
}

// TestNewParams_DuplicateKeys tests that construction keeps the last value at the first position.
func TestNewParams_DuplicateKeys(t *testing.T) {
	q := NewQueryParams(
		Param{Key: "page", Value: IntValue(1)},
		Param{Key: "order", Value: StringValue("ASC")},
		Param{Key: "page", Value: IntValue(2)},
	)
	if got, want := q.String(), "?page=2&order=ASC"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if q.BaseURL() != nil {
		t.Error("NewQueryParams should be unbound")
	}
}

// TestQueryParams_String tests the empty and non-empty renderings.
func TestQueryParams_String(t *testing.T) {
	if got := NewQueryParams().String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
	q := NewQueryParams().Add("flag", BoolValue(true)).Add("name", StringValue("a b"))
	if got, want := q.String(), "?flag=true&name=a b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestParams_BaseURL tests returning to the URL from a parameter chain.
func TestParams_BaseURL(t *testing.T) {
	u := New().AddPath("users/:id", nil).
		PathParams().Add("id", IntValue(10)).BaseURL().
		QueryParams().Add("page", IntValue(1)).BaseURL().
		SetHost("localhost")

	if got, want := u.String(), "https://localhost/users/10?page=1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
