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
	"regexp"
	"strings"
)

var (
	// bracePattern matches "{name}" path parameters.
	bracePattern = regexp.MustCompile(`\{(.*?)\}`)
	// filePattern matches "name.ext"; the name part is greedy.
	filePattern = regexp.MustCompile(`^(.+)\.([a-zA-Z0-9]+)$`)
)

// File is a file name split into its base name and extension.
type File struct {
	Name string
	// Ext is the extension without the leading dot.
	Ext string
}

// String returns "name.ext".
func (f File) String() string {
	return f.Name + ExtSeparator + f.Ext
}

// rewriteBraceParams turns every "{name}" into ":name".
func rewriteBraceParams(s string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	return bracePattern.ReplaceAllString(s, PathPrefix+"${1}")
}

// SplitPath splits path into its non-empty segments and rewrites "{name}"
// parameters to ":name".
//
//	SplitPath("/users/{id}//comments/") // ["users", ":id", "comments"]
func SplitPath(path string) []string {
	segments := make([]string, 0, strings.Count(path, PathSeparator)+1)
	for segment := range strings.SplitSeq(path, PathSeparator) {
		if segment == "" {
			continue
		}
		segments = append(segments, rewriteBraceParams(segment))
	}
	return segments
}

// TrimPath returns path without leading, trailing or repeated slashes
// (e.g. "/users/:id/" -> "users/:id").
func TrimPath(path string) string {
	return strings.Join(SplitPath(path), PathSeparator)
}

// ParseFile splits filename on its last dot. It reports false when filename
// has no extension made of letters and digits.
func ParseFile(filename string) (File, bool) {
	match := filePattern.FindStringSubmatch(filename)
	if match == nil {
		return File{}, false
	}
	return File{Name: match[1], Ext: match[2]}, true
}
