package main

import (
	"encoding/json"
	"io"
	"strings"
)

// writeJSON encodes v to w with the given number of spaces per nesting
// level, honoring the same output.indent setting the diff report uses.
func writeJSON(w io.Writer, v any, indent int) error {
	if indent <= 0 {
		indent = 2
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", indent))
	return enc.Encode(v)
}
