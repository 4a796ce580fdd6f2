package report

// UntrackedColumn is the sentinel index for languages that appear in
// scan data but have no report column.
const UntrackedColumn = -1

// LanguageColumn fixes where one language lives in the table. Col is
// the zero-based table column index, or UntrackedColumn.
type LanguageColumn struct {
	Name   string
	Col    int
	Hidden bool
}

// LanguageRegistry is the fixed ordered mapping from language name to
// column position. It is built once per run and read-only afterwards;
// column indices never depend on the data being reported.
type LanguageRegistry struct {
	columns []LanguageColumn
	byName  map[string]int
}

// Language columns start directly after the fixed columns. The closed
// set of untracked categories is excluded from the schema and from
// per-record writing but is not a normalization error.
var registeredLanguages = []string{
	"Apex",
	"ASP",
	"Cobol",
	"CPP",
	"CSharp",
	"Groovy",
	"Go",
	"Java",
	"JavaScript",
	"Kotlin",
	"Objc",
	"PHP",
	"Perl",
	"Python",
	"Ruby",
	"Scala",
	"Typescript",
	"VbNet",
	"VB6",
}

var untrackedLanguages = []string{
	"Common",
	"PLSQL",
	"VbScript",
	"Unknown",
}

// NewLanguageRegistry builds the registry. Languages named in hidden
// keep their column but start out not visible in the workbook.
func NewLanguageRegistry(hidden []string) *LanguageRegistry {
	hiddenSet := make(map[string]bool, len(hidden))
	for _, name := range hidden {
		hiddenSet[name] = true
	}

	r := &LanguageRegistry{
		columns: make([]LanguageColumn, 0, len(registeredLanguages)+len(untrackedLanguages)),
		byName:  make(map[string]int),
	}
	for i, name := range registeredLanguages {
		r.add(LanguageColumn{Name: name, Col: languageColumnStart + i, Hidden: hiddenSet[name]})
	}
	for _, name := range untrackedLanguages {
		r.add(LanguageColumn{Name: name, Col: UntrackedColumn})
	}
	return r
}

func (r *LanguageRegistry) add(col LanguageColumn) {
	r.byName[col.Name] = len(r.columns)
	r.columns = append(r.columns, col)
}

// Lookup resolves a language name. The second return is false for
// languages the registry has never heard of.
func (r *LanguageRegistry) Lookup(name string) (LanguageColumn, bool) {
	i, ok := r.byName[name]
	if !ok {
		return LanguageColumn{}, false
	}
	return r.columns[i], true
}

// Tracked returns the languages with a real column, in column order.
func (r *LanguageRegistry) Tracked() []LanguageColumn {
	tracked := make([]LanguageColumn, 0, len(registeredLanguages))
	for _, col := range r.columns {
		if col.Col != UntrackedColumn {
			tracked = append(tracked, col)
		}
	}
	return tracked
}
