// SPDX-License-Identifier: MPL-2.0

package render

import (
	"bytes"
	"encoding/json"
)

// encodeJSON renders v with 2-space indentation, no HTML escaping and a
// trailing newline. v is always built from plain strings, ints, bools and
// slices, so encoding cannot fail; the empty object is returned if it does.
func encodeJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "{}\n"
	}
	return buf.String()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
