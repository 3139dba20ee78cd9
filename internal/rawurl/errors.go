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

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is matched by every error returned from Parse.
var ErrInvalidURL = errors.New("invalid URL")

var (
	// errRelativeWithoutBase is returned when a relative reference is given
	// without a base URL to resolve it against.
	errRelativeWithoutBase = &kindError{message: "Relative URL without a base"}
	// errRelativeBase is returned when the base URL is itself relative.
	errRelativeBase = &kindError{message: "Base URL must be absolute"}
	// errEmptyHost is returned when a special scheme (http, https, ws, wss,
	// ftp) has no host.
	errEmptyHost = &kindError{message: "Empty host"}
)

// ParseError is the error type returned by Parse. It carries a descriptive
// message and wraps the detailed cause.
type ParseError struct {
	Input   string
	Message string
	Err     error
}

// newParseError wraps err into a ParseError for the given input.
// It returns nil if err is nil.
func newParseError(input string, err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Input: input, Message: err.Error(), Err: err}
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("URL parse error: %s", e.Message)
	}
	return fmt.Sprintf("URL parse error: %s in %q", e.Message, e.Input)
}

// Unwrap returns the detailed cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidURL, so that callers can match any
// parse failure without knowing its detail.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidURL
}

// kindError describes a single structural failure, optionally pointing at
// the offending character or fragment of input.
type kindError struct {
	message string
	char    rune
	details string
}

// Error formats the message with the character or details, when present.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}
