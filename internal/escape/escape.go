package escape

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode"
)

// Line escapes a single line for use as a literal regex pattern. Trailing
// whitespace (including the line terminator) is stripped, regex
// metacharacters are backslash-escaped, and every forward slash becomes
// `\/` so the result is safe inside `/`-delimited substitution syntax.
//
// Escaping is one-directional: applying Line to already-escaped text
// escapes the introduced backslashes again.
func Line(line string) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	escaped := regexp.QuoteMeta(line)
	return strings.ReplaceAll(escaped, "/", `\/`)
}

// Stream reads r line by line and writes one escaped line per input line
// to w. Lines are processed independently; memory is bounded to one line
// at a time. A final line without a terminator is still emitted.
func Stream(r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if _, werr := writer.WriteString(Line(line)); werr != nil {
				return werr
			}
			if werr := writer.WriteByte('\n'); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}
	return writer.Flush()
}
