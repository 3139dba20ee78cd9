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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompareTo reports whether u and other render to the same string. When
// relative is true only the relative paths, without query and fragment, are
// compared; otherwise the full URLs are. No normalization is applied.
func (u *URL) CompareTo(other *URL, relative bool) bool {
	if relative {
		return u.RelativePath(false, false) == other.RelativePath(false, false)
	}
	return u.String() == other.String()
}

// Equal is CompareTo with relative set.
func (u *URL) Equal(other *URL) bool {
	return u.CompareTo(other, true)
}

// MatchPath reports whether path matches the path segments of u, segment by
// segment. Literal segments match case-insensitively. A ":name" placeholder
// matches when validateUnfilledParams is set, whatever its binding, or when
// the path parameter name is bound to a value whose string form equals the
// segment of path.
//
//	u, _ := Parse("/users/:id/comments", WithBase("https://example.com"))
//	u.MatchPath("/users/10/comments", false) // false, id is unbound
//	u.MatchPath("/users/10/comments", true)  // true
func (u *URL) MatchPath(path string, validateUnfilledParams bool) bool {
	other := SplitPath(path)
	if len(other) != len(u.segments) {
		return false
	}

	lower := cases.Lower(language.Und)
	for i, segment := range u.segments {
		if name, ok := strings.CutPrefix(segment, PathPrefix); ok {
			if validateUnfilledParams {
				continue
			}
			value, bound := u.pathParams.Get(name)
			if !bound || value.String() != other[i] {
				return false
			}
			continue
		}
		if lower.String(segment) != lower.String(other[i]) {
			return false
		}
	}
	return true
}
