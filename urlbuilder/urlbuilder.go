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

// Package urlbuilder models a URL as structured components and builds,
// mutates, merges, compares and renders URLs without string concatenation.
//
// A URL holds a scheme, a host, a port, ordered path segments, path
// parameters, query parameters, a fragment and an optional file name.
// Path segments of the form ":name" are placeholders replaced by the value of
// the path parameter "name" when the URL is rendered:
//
//	u := urlbuilder.New().
//		SetHost("api.example.com").
//		AddPath("/users/:userId/comments/:commentId", urlbuilder.Record{
//			"userId":    urlbuilder.IntValue(10),
//			"commentId": urlbuilder.IntValue(1),
//		}).
//		AddQueryParam("page", urlbuilder.IntValue(2))
//
//	u.String() // "https://api.example.com/users/10/comments/1?page=2"
//
// Path templates may also use the "{name}" form, which is rewritten to ":name".
//
// A URL is not safe for concurrent mutation. Share it by Copy, or guard it
// with external synchronization.
package urlbuilder

import "github.com/jplu/urlbuilder/internal/rawurl"

const (
	// PathPrefix marks a path segment as a parameter placeholder.
	PathPrefix = ":"
	// PathSeparator separates path segments.
	PathSeparator = "/"
	// ExtSeparator separates a file name from its extension.
	ExtSeparator = "."
)

// Scheme is the protocol token of a URL. The constants below cover the usual
// values; any other string is accepted.
type Scheme string

// Well-known schemes.
const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
	SchemeWS    Scheme = "ws"
	SchemeWSS   Scheme = "wss"
	SchemeFTP   Scheme = "ftp"
	SchemeFile  Scheme = "file"
)

// String returns the scheme token.
func (s Scheme) String() string { return string(s) }

// ErrInvalidURL is matched, with errors.Is, by every error returned from Parse.
var ErrInvalidURL = rawurl.ErrInvalidURL

// ParseError is the error type returned by Parse.
type ParseError = rawurl.ParseError
