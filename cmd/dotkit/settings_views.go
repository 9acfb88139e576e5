package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dotkit/internal/jsonc"
)

type orphanRow struct {
	path  string
	kind  string
	value string
}

var kindTitle = cases.Title(language.Und)

// renderOrphanTable flattens the orphan report to leaf rows. Nested
// objects contribute one row per leaf with a dotted path; orphaned array
// elements keep their element index.
func renderOrphanTable(orphans *jsonc.Value) string {
	rows := flattenOrphans("", orphans)
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.path, row.kind, row.value})
	}
	return renderTable(
		[]string{"Setting", "Kind", "Orphaned value"},
		cells,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	)
}

func flattenOrphans(prefix string, v *jsonc.Value) []orphanRow {
	var rows []orphanRow
	switch v.Kind() {
	case jsonc.Object:
		for _, m := range v.Members() {
			path := m.Key
			if prefix != "" {
				path = prefix + "." + m.Key
			}
			rows = append(rows, flattenOrphans(path, m.Value)...)
		}
	case jsonc.Array:
		for _, e := range v.Elems() {
			rows = append(rows, orphanRow{
				path:  prefix + "[]",
				kind:  kindTitle.String(e.Kind().String()),
				value: compactValue(e),
			})
		}
	default:
		rows = append(rows, orphanRow{
			path:  prefix,
			kind:  kindTitle.String(v.Kind().String()),
			value: compactValue(v),
		})
	}
	return rows
}

// compactValue renders a value on one line for table cells.
func compactValue(v *jsonc.Value) string {
	return jsonc.EncodeCompact(v)
}

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// colorizeDiff highlights added and removed lines when out is a terminal.
func colorizeDiff(out io.Writer, diff string) string {
	if !shouldColorize(out) {
		return diff
	}
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			lines[i] = ansiGreen + line + ansiReset
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			lines[i] = ansiRed + line + ansiReset
		}
	}
	return strings.Join(lines, "\n")
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
