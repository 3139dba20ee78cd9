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

package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jplu/urlbuilder/urlbuilder"
)

var errAssignment = errors.New("expected key=value")

// parseAssignments turns "key=value" flags into parameters. Values that
// read as integers, finite numbers, true or false keep that type when they
// render back to the same text; anything else is a string.
func parseAssignments(args []string) ([]urlbuilder.Param, error) {
	params := make([]urlbuilder.Param, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w, got %q", errAssignment, arg)
		}
		params = append(params, urlbuilder.Param{Key: key, Value: inferValue(value)})
	}
	return params, nil
}

// inferValue never changes the rendered text: "007" or "1.10" stay strings.
func inferValue(s string) urlbuilder.Value {
	v := urlbuilder.StringValue(s)
	switch s {
	case "true":
		v = urlbuilder.BoolValue(true)
	case "false":
		v = urlbuilder.BoolValue(false)
	default:
		if n, err := strconv.Atoi(s); err == nil {
			v = urlbuilder.IntValue(n)
		} else if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			v = urlbuilder.FloatValue(f)
		}
	}
	if v.String() != s {
		return urlbuilder.StringValue(s)
	}
	return v
}
