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

package rawurl

import "strings"

// removeDotSegments resolves "." and ".." segments of a path as described in
// RFC 3986, Section 5.2.4. A trailing dot segment leaves a trailing slash.
func removeDotSegments(path string) string {
	if path == "" {
		return ""
	}

	absolute := strings.HasPrefix(path, "/")
	if absolute {
		path = path[1:]
	}

	segments := strings.Split(path, "/")
	output := make([]string, 0, len(segments))
	for i, segment := range segments {
		last := i == len(segments)-1
		switch segment {
		case ".":
		case "..":
			if len(output) > 0 {
				output = output[:len(output)-1]
			}
		default:
			output = append(output, segment)
			continue
		}
		if last {
			output = append(output, "")
		}
	}

	joined := strings.Join(output, "/")
	if absolute {
		return "/" + joined
	}
	return joined
}

// mergePaths merges a relative-path reference with the base path, per
// RFC 3986, Section 5.2.3.
func mergePaths(basePath, relPath string, baseHasAuthority bool) string {
	if baseHasAuthority && basePath == "" {
		return "/" + relPath
	}
	lastSlash := strings.LastIndexByte(basePath, '/')
	if lastSlash == -1 {
		return relPath
	}
	return basePath[:lastSlash+1] + relPath
}
