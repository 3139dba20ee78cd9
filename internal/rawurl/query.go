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

// Pair is a single key/value pair of a query string, in the order it
// appeared. Neither part is decoded.
type Pair struct {
	Key   string
	Value string
}

// splitQuery splits a raw query on '&' and each piece on its first '='.
// Empty pieces are skipped; a piece without '=' has an empty value.
func splitQuery(rawQuery string) []Pair {
	if rawQuery == "" {
		return nil
	}
	var pairs []Pair
	for piece := range strings.SplitSeq(rawQuery, "&") {
		if piece == "" {
			continue
		}
		key, value, _ := strings.Cut(piece, "=")
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs
}
