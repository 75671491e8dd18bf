package valfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var flattenReplacer = strings.NewReplacer(
	"{", "",
	"}", "",
	"[", " ",
	"]", " ",
	`"`, "",
)

// Flatten renders v as a single line of text for showing validation payloads
// next to a form. v is JSON encoded, braces and quotes are dropped, brackets
// become spaces, and every "non_field_errors:" label is removed. The result
// cannot be parsed back.
//
// Struct fields keep their declaration order and map keys are sorted, so
// the output is deterministic. Values the encoder rejects, such as reference
// cycles, return an error wrapping [ErrUnflattenable].
func Flatten(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnflattenable, err)
	}
	s := strings.TrimSuffix(buf.String(), "\n")
	return strings.ReplaceAll(flattenReplacer.Replace(s), "non_field_errors:", ""), nil
}
