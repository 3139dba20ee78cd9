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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a Value.
type Kind int

// Value kinds.
const (
	KindString Kind = iota
	KindNumber
	KindBool
)

// Value is a scalar parameter value: a string, a number or a boolean.
// The zero Value is the empty string. Values are comparable with ==.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Record is a set of parameter values keyed by name.
type Record = map[string]Value

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue returns a number Value holding n.
func IntValue(n int) Value { return Value{kind: KindNumber, num: float64(n)} }

// FloatValue returns a number Value holding f.
func FloatValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf converts a Go scalar to a Value. It reports false for values that
// are not strings, numbers, booleans or fmt.Stringers.
func ValueOf(v any) (Value, bool) {
	switch x := v.(type) {
	case Value:
		return x, true
	case string:
		return StringValue(x), true
	case bool:
		return BoolValue(x), true
	case int:
		return IntValue(x), true
	case int8:
		return FloatValue(float64(x)), true
	case int16:
		return FloatValue(float64(x)), true
	case int32:
		return FloatValue(float64(x)), true
	case int64:
		return FloatValue(float64(x)), true
	case uint:
		return FloatValue(float64(x)), true
	case uint8:
		return FloatValue(float64(x)), true
	case uint16:
		return FloatValue(float64(x)), true
	case uint32:
		return FloatValue(float64(x)), true
	case uint64:
		return FloatValue(float64(x)), true
	case float32:
		return FloatValue(float64(x)), true
	case float64:
		return FloatValue(x), true
	case fmt.Stringer:
		return StringValue(x.String()), true
	}
	return Value{}, false
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Float returns the number held by v and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean held by v and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Any returns v as a string, float64 or bool.
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return v.str
	}
}

// String renders v the way it appears in a URL: strings verbatim, integral
// numbers without a fractional part, booleans as "true" or "false".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// formatNumber formats f in its shortest form, using an exponent only for
// very large or very small magnitudes.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		// Exponents carry no leading zero: 1e-7, not 1e-07.
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'g', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
