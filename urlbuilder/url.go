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

	"github.com/jplu/urlbuilder/internal/rawurl"
)

// URL is a URL split into structured components. The zero value is not
// usable; create one with New or Parse.
//
// A URL exclusively owns its PathParams and QueryParams. Copy and Parent
// return URLs with fresh parameter maps bound to the new URL.
type URL struct {
	scheme      Scheme
	host        string
	port        int
	segments    []string
	pathParams  *PathParams
	queryParams *QueryParams
	fragment    string
	file        *File
}

// New returns an empty URL with the https scheme.
func New() *URL {
	u := &URL{scheme: SchemeHTTPS}
	u.pathParams = newPathParams(u, nil)
	u.queryParams = newQueryParams(u, nil)
	return u
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	base   string
	isFile bool
}

// WithBase sets the base URL used to resolve a relative input. It is only
// needed when the input has no scheme.
func WithBase(base string) ParseOption {
	return func(o *parseOptions) { o.base = base }
}

// AsFile makes Parse split a trailing "name.ext" segment into the file
// component (e.g. "/books/10.html" has the path "/books" and the file "10.html").
func AsFile() ParseOption {
	return func(o *parseOptions) { o.isFile = true }
}

// Parse builds a URL from a string. Query values are stored as strings.
// A repeated query key keeps its first position and its last value.
// It returns a *ParseError matching ErrInvalidURL when raw cannot be parsed,
// including when raw is relative and no base was given.
func Parse(raw string, opts ...ParseOption) (*URL, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	c, err := rawurl.Parse(raw, o.base)
	if err != nil {
		return nil, err
	}

	u := New()
	if c.Scheme != "" {
		u.scheme = Scheme(c.Scheme)
	}
	u.host = c.Host
	u.port = c.Port

	segments := SplitPath(rewriteBraceParams(c.Path))
	if o.isFile && len(segments) > 0 && segments[len(segments)-1] != "" {
		if f, ok := ParseFile(segments[len(segments)-1]); ok {
			u.file = &f
			segments = segments[:len(segments)-1]
		}
	}
	u.segments = segments

	for _, pair := range c.Query {
		u.queryParams.Set(pair.Key, StringValue(pair.Value))
	}
	u.fragment = c.Fragment
	return u, nil
}

// MustParse is like Parse but panics on error. It simplifies the
// initialization of variables holding well-known URLs.
func MustParse(raw string, opts ...ParseOption) *URL {
	u, err := Parse(raw, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Copy returns a deep copy of u. The parameter maps of the copy are bound to
// the copy.
func (u *URL) Copy() *URL {
	c := &URL{
		scheme:   u.scheme,
		host:     u.host,
		port:     u.port,
		segments: slices.Clone(u.segments),
		fragment: u.fragment,
	}
	c.pathParams = u.pathParams.clone(c)
	c.queryParams = u.queryParams.clone(c)
	if u.file != nil {
		f := *u.file
		c.file = &f
	}
	return c
}

// Scheme returns the scheme.
func (u *URL) Scheme() Scheme { return u.scheme }

// SetScheme sets the scheme.
func (u *URL) SetScheme(scheme Scheme) *URL {
	u.scheme = scheme
	return u
}

// Host returns the host, empty when unset.
func (u *URL) Host() string { return u.host }

// SetHost sets the host.
func (u *URL) SetHost(host string) *URL {
	u.host = host
	return u
}

// Port returns the port, 0 when unset.
func (u *URL) Port() int { return u.port }

// SetPort sets the port. 0 unsets it.
func (u *URL) SetPort(port int) *URL {
	u.port = port
	return u
}

// PathSegments returns a copy of the path segments.
func (u *URL) PathSegments() []string { return slices.Clone(u.segments) }

// SetPathSegments replaces the path segments and adds params to the path
// parameters with PathParams.AddAll. Segments containing slashes are split,
// and empty segments are dropped.
func (u *URL) SetPathSegments(segments []string, params Record) *URL {
	u.segments = SplitPath(strings.Join(segments, PathSeparator))
	u.pathParams.AddAll(params)
	return u
}

// AddPath appends the segments of path (e.g. "users/:id") and adds params to
// the path parameters with PathParams.AddAll.
func (u *URL) AddPath(path string, params Record) *URL {
	u.segments = append(u.segments, SplitPath(path)...)
	u.pathParams.AddAll(params)
	return u
}

// PathParams returns the path parameters.
func (u *URL) PathParams() *PathParams { return u.pathParams }

// SetPathParams replaces the path parameters of u with a copy of params
// bound to u. A nil params clears the path parameters.
func (u *URL) SetPathParams(params *PathParams) *URL {
	if params == nil {
		u.pathParams = newPathParams(u, nil)
		return u
	}
	u.pathParams = params.clone(u)
	return u
}

// QueryParams returns the query parameters.
func (u *URL) QueryParams() *QueryParams { return u.queryParams }

// SetQueryParams replaces the query parameters of u with a copy of params
// bound to u. A nil params clears the query parameters.
func (u *URL) SetQueryParams(params *QueryParams) *URL {
	if params == nil {
		u.queryParams = newQueryParams(u, nil)
		return u
	}
	u.queryParams = params.clone(u)
	return u
}

// AddQueryParam sets the query parameter key unless it is already present.
func (u *URL) AddQueryParam(key string, value Value) *URL {
	u.queryParams.Add(key, value)
	return u
}

// File returns the file component and whether it is set.
func (u *URL) File() (File, bool) {
	if u.file == nil {
		return File{}, false
	}
	return *u.file, true
}

// SetFile sets the file component.
func (u *URL) SetFile(file File) *URL {
	u.file = &file
	return u
}

// SetFilename parses filename with ParseFile and sets the file component.
// The file component is cleared when filename has no extension.
func (u *URL) SetFilename(filename string) *URL {
	if f, ok := ParseFile(filename); ok {
		u.file = &f
	} else {
		u.file = nil
	}
	return u
}

// ClearFile removes the file component.
func (u *URL) ClearFile() *URL {
	u.file = nil
	return u
}

// Fragment returns the fragment without its '#', empty when unset.
func (u *URL) Fragment() string { return u.fragment }

// SetFragment sets the fragment, given without its '#'.
func (u *URL) SetFragment(fragment string) *URL {
	u.fragment = fragment
	return u
}
