package exceltable

import (
	"regexp"
	"strings"
)

// Template is a spreadsheet formula template that is not yet bound to a
// table. Two kinds of references may appear:
//
//   - [@Col] — a this-row structured reference, rendered as
//     Table[[#This Row],[Col]]
//   - {T}    — the table name itself, for aggregate expressions such as
//     COUNT({T}[ScanId])
//
// Templates are rendered exactly once, when the table (and therefore
// its name) is known. Building formulas this way instead of
// concatenating strings at write sites keeps column references in one
// place when the schema moves.
type Template string

var rowRefPattern = regexp.MustCompile(`\[@([A-Za-z0-9_]+)\]`)

// Render binds the template to a table name and returns the final
// formula expression, without a leading "=".
func (t Template) Render(table string) string {
	expr := rowRefPattern.ReplaceAllString(string(t), table+"[[#This Row],[$1]]")
	return strings.ReplaceAll(expr, "{T}", table)
}

// IsZero reports whether the template is empty, i.e. the column holds
// written values rather than a bound formula.
func (t Template) IsZero() bool {
	return t == ""
}
