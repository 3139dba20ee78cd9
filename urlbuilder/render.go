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
	"strconv"
	"strings"
)

// RelativePath renders the path of u: each ":name" segment bound in the path
// parameters is replaced by its value, then the file is appended. The query
// string and the fragment follow on request. A URL without segments, file,
// query or fragment renders as the empty string.
func (u *URL) RelativePath(withQuery, withFragment bool) string {
	var b strings.Builder

	for _, segment := range u.segments {
		b.WriteString(PathSeparator)
		b.WriteString(u.resolveSegment(segment))
	}
	if u.file != nil {
		b.WriteString(PathSeparator)
		b.WriteString(u.file.String())
	}
	if withQuery {
		b.WriteString(u.queryParams.String())
	}
	if withFragment && u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// resolveSegment substitutes a bound placeholder with its value.
func (u *URL) resolveSegment(segment string) string {
	name, ok := strings.CutPrefix(segment, PathPrefix)
	if !ok {
		return segment
	}
	if value, bound := u.pathParams.Get(name); bound {
		return value.String()
	}
	return segment
}

// String renders the full URL:
//
//	scheme://host[:port][/seg1/.../segN][/name.ext][?k1=v1&k2=v2][#fragment]
//
// The "scheme://host" part is omitted when there is no host.
func (u *URL) String() string {
	var b strings.Builder
	if u.host != "" {
		b.WriteString(string(u.scheme))
		b.WriteString("://")
		b.WriteString(u.host)
	}
	if u.port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	b.WriteString(u.RelativePath(true, true))
	return b.String()
}

// MarshalText implements encoding.TextMarshaler. It encodes u as String does.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be an
// absolute URL.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	u.pathParams.url = u
	u.queryParams.url = u
	return nil
}
