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
	"slices"
	"strings"
)

// FirstPathSegment returns the first path segment, if any.
func (u *URL) FirstPathSegment() (string, bool) {
	if len(u.segments) == 0 {
		return "", false
	}
	return u.segments[0], true
}

// LastPathSegment returns the last path segment, if any.
func (u *URL) LastPathSegment() (string, bool) {
	if len(u.segments) == 0 {
		return "", false
	}
	return u.segments[len(u.segments)-1], true
}

// Parent returns a copy of u going up n levels (e.g. "/users/:id/groups" ->
// "/users/:id" for n = 1). Each level drops the last path segment, and the
// path parameter it referenced if it was a placeholder. The query parameters
// of the result are empty; the file and fragment are kept. Any n below 1
// counts as 1.
func (u *URL) Parent(n int) *URL {
	parent := u.Copy()
	if last := len(parent.segments) - 1; last >= 0 {
		segment := parent.segments[last]
		parent.segments = parent.segments[:last]
		if name, ok := strings.CutPrefix(segment, PathPrefix); ok {
			parent.pathParams.Delete(name)
		}
	}
	parent.queryParams = newQueryParams(parent, nil)

	if n > 1 {
		return parent.Parent(n - 1)
	}
	return parent
}

// Between2Segments returns the segment right after the first segment equal
// to a, provided a segment equal to b exists further on. It reports false
// when a or b is missing, or when nothing lies between them.
func (u *URL) Between2Segments(a, b string) (string, bool) {
	indexA := slices.Index(u.segments, a)
	indexB := slices.Index(u.segments, b)
	if indexA == -1 || indexB == -1 || indexA+1 >= indexB {
		return "", false
	}
	return u.segments[indexA+1], true
}

// MergePathWith appends the path segments of other to those of u, and the
// path and query parameters of other to those of u; on a shared key the value
// of other wins. The file of u is replaced by the file of other, even when
// other has none. It returns u.
func (u *URL) MergePathWith(other *URL) *URL {
	u.segments = append(slices.Clone(u.segments), other.segments...)
	u.pathParams = newPathParams(u, slices.Concat(u.pathParams.m.entries, other.pathParams.m.entries))
	u.queryParams = newQueryParams(u, slices.Concat(u.queryParams.m.entries, other.queryParams.m.entries))
	if other.file != nil {
		f := *other.file
		u.file = &f
	} else {
		u.file = nil
	}
	return u
}
