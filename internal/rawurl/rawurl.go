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

// Package rawurl splits URL strings into their structural components.
//
// It resolves relative references against a base URL, lower-cases the scheme
// and host, converts internationalized hosts to ASCII, drops default ports and
// removes dot segments from the path. It performs no percent-encoding or
// decoding and keeps query pairs in input order.
package rawurl

// Components holds the parts of a parsed, absolute URL.
type Components struct {
	// Scheme is the lower-cased scheme without its trailing ':'.
	Scheme string
	// Host is the ASCII host, empty when the URL has no authority.
	Host string
	// Port is the explicit non-default port, 0 when absent.
	Port int
	// Path is the path with dot segments removed.
	Path string
	// Query holds the query pairs in input order.
	Query []Pair
	// RawQuery is the query without its leading '?'.
	RawQuery string
	// Fragment is the fragment without its leading '#'.
	Fragment string
}

// Parse parses raw into Components. When raw is a relative reference it is
// resolved against base, which must then be an absolute URL. An empty base
// means no base. Every returned error is a *ParseError matching ErrInvalidURL.
func Parse(raw, base string) (*Components, error) {
	c, err := parse(raw, base)
	if err != nil {
		return nil, newParseError(raw, err)
	}
	return c, nil
}

func parse(raw, base string) (*Components, error) {
	if base == "" {
		ref := splitReference(trimInput(raw), "")
		if !ref.hasScheme {
			return nil, errRelativeWithoutBase
		}
		return build(ref)
	}

	b := splitReference(trimInput(base), "")
	if !b.hasScheme {
		return nil, errRelativeBase
	}
	if _, err := build(b); err != nil {
		return nil, err
	}
	ref := splitReference(trimInput(raw), b.scheme)
	return build(resolve(b, ref))
}

// build validates a resolved reference and produces its Components.
func build(ref reference) (*Components, error) {
	c := &Components{
		Scheme:   ref.scheme,
		RawQuery: ref.query,
		Query:    splitQuery(ref.query),
		Fragment: ref.fragment,
	}

	special := isSpecial(ref.scheme)
	if ref.hasAuthority {
		host, port := splitAuthority(ref.authority)
		var err error
		if c.Host, err = parseHost(host); err != nil {
			return nil, err
		}
		if c.Port, err = parsePort(port, ref.scheme); err != nil {
			return nil, err
		}
	}
	if special && c.Host == "" && ref.scheme != "file" {
		return nil, errEmptyHost
	}

	c.Path = removeDotSegments(ref.path)
	if special && c.Path == "" {
		c.Path = "/"
	}
	return c, nil
}
