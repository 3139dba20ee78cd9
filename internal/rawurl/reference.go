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

// reference holds the raw, unresolved pieces of a URL string.
type reference struct {
	scheme       string
	authority    string
	path         string
	query        string
	fragment     string
	hasScheme    bool
	hasAuthority bool
	hasQuery     bool
	hasFragment  bool
}

// trimInput strips leading and trailing C0 controls and spaces, and removes
// ASCII tab and newline characters anywhere in the input.
func trimInput(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	if strings.ContainsAny(s, "\t\n\r") {
		s = strings.NewReplacer("\t", "", "\n", "", "\r", "").Replace(s)
	}
	return s
}

// splitReference breaks a URL string into its components without validating
// or resolving them. baseScheme is the scheme of the base URL, used to decide
// whether a reference without scheme follows the special-scheme rules.
//
// For special schemes a backslash is read as a slash, and an absolute URL
// always has an authority whatever the number of slashes after the scheme
// (e.g. "http:example.com/a" is "http://example.com/a").
func splitReference(s, baseScheme string) reference {
	var ref reference

	if i := strings.IndexByte(s, '#'); i != -1 {
		ref.fragment = s[i+1:]
		ref.hasFragment = true
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i != -1 {
		ref.query = s[i+1:]
		ref.hasQuery = true
		s = s[:i]
	}
	if i := strings.IndexByte(s, ':'); i > 0 && isValidScheme(s[:i]) {
		ref.scheme = strings.ToLower(s[:i])
		ref.hasScheme = true
		s = s[i+1:]
	}

	scheme := ref.scheme
	if !ref.hasScheme {
		scheme = baseScheme
	}
	if isSpecial(scheme) {
		s = strings.ReplaceAll(s, `\`, "/")
		if ref.hasScheme && scheme != "file" {
			s = "//" + strings.TrimLeft(s, "/")
		}
	}

	if strings.HasPrefix(s, "//") {
		ref.hasAuthority = true
		s = s[len("//"):]
		end := strings.IndexByte(s, '/')
		if end == -1 {
			end = len(s)
		}
		ref.authority = s[:end]
		s = s[end:]
	}
	ref.path = s
	return ref
}

// resolve computes the target reference of ref against the absolute base,
// following RFC 3986, Section 5.2.2.
func resolve(base, ref reference) reference {
	if ref.hasScheme {
		return ref
	}

	t := reference{
		scheme:      base.scheme,
		hasScheme:   true,
		fragment:    ref.fragment,
		hasFragment: ref.hasFragment,
	}

	if ref.hasAuthority {
		t.authority = ref.authority
		t.hasAuthority = true
		t.path = ref.path
		t.query = ref.query
		t.hasQuery = ref.hasQuery
		return t
	}

	t.authority = base.authority
	t.hasAuthority = base.hasAuthority

	switch {
	case ref.path == "":
		t.path = base.path
		if ref.hasQuery {
			t.query, t.hasQuery = ref.query, true
		} else {
			t.query, t.hasQuery = base.query, base.hasQuery
		}
	case strings.HasPrefix(ref.path, "/"):
		t.path = ref.path
		t.query, t.hasQuery = ref.query, ref.hasQuery
	default:
		t.path = mergePaths(base.path, ref.path, base.hasAuthority)
		t.query, t.hasQuery = ref.query, ref.hasQuery
	}
	return t
}
