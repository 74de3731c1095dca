// Package validate is the surface the debouncer pulls diagnostic markers
// from. This implementation only checks JSON well-formedness; semantic
// schema validation lives outside the editing-intelligence core.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/schemabench/swls/internal/debounce"
)

// SyntaxMarkers parses content as JSON and reports a single error marker at
// the failure offset when it does not parse. Well-formed content — and the
// empty document — produce no markers.
func SyntaxMarkers(_ string, content string) []debounce.Marker {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var value any
	err := json.Unmarshal([]byte(content), &value)
	if err == nil {
		return nil
	}

	line, column := offsetToPosition(content, errorOffset(err, content))
	return []debounce.Marker{{
		StartLine:   line,
		StartColumn: column,
		EndLine:     line,
		EndColumn:   column + 1,
		Message:     fmt.Sprintf("Invalid JSON: %v", err),
		Severity:    "error",
	}}
}

// errorOffset extracts the byte offset of a JSON parse failure, clamped to
// the content bounds. Unknown error shapes report offset zero.
func errorOffset(err error, content string) int {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	offset := int64(0)
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	return int(offset)
}

// offsetToPosition converts a byte offset into 1-based line and column.
func offsetToPosition(content string, offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
