package exceltable

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellFormat is a closed set of number formats used by report columns.
// Keeping this a tagged enum (instead of open-ended format maps) means
// the schema layer can only ask for formats the style set knows how to
// build.
type CellFormat int

const (
	FormatGeneral CellFormat = iota
	FormatDateTime            // yyyy-mm-dd hh:mm:ss
	FormatDuration            // [h]:mm:ss, elapsed hours past 24
	FormatInteger             // 0
	FormatLong                // #,##0
	FormatDecimal2            // 0.00
	FormatPercent             // 0%
)

const (
	numFmtDateTime = "yyyy-mm-dd hh:mm:ss"
	numFmtDuration = "[h]:mm:ss"
)

// Default table chrome, matching the xlsxwriter header colors the
// reports have always shipped with.
const (
	headerFillColor   = "4F81BD"
	headerFontColor   = "FFFFFF"
	headerBorderColor = "EEECE1"
)

// StyleSet resolves CellFormat values (and the fixed header styles) to
// excelize style IDs, caching per workbook so repeated lookups reuse
// the same style entry.
type StyleSet struct {
	file  *excelize.File
	cache map[string]int
}

func NewStyleSet(f *excelize.File) *StyleSet {
	return &StyleSet{
		file:  f,
		cache: make(map[string]int),
	}
}

// Cell returns the style ID for a plain data cell of the given format.
func (s *StyleSet) Cell(format CellFormat) (int, error) {
	return s.resolve(fmt.Sprintf("cell:%d", format), cellStyle(format, false))
}

// CellBold returns the bold variant of a data cell style. The summary
// sheet uses these for emphasized statistics.
func (s *StyleSet) CellBold(format CellFormat) (int, error) {
	return s.resolve(fmt.Sprintf("cellbold:%d", format), cellStyle(format, true))
}

// Header returns the column-title row style: bold white on the table
// header blue.
func (s *StyleSet) Header() (int, error) {
	return s.resolve("header", &excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: headerBorderColor, Style: 1},
		},
	})
}

// GroupHeader returns the style for merged column-group titles.
func (s *StyleSet) GroupHeader() (int, error) {
	return s.resolve("groupheader", &excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: headerBorderColor, Style: 1},
			{Type: "right", Color: headerBorderColor, Style: 1},
			{Type: "top", Color: headerBorderColor, Style: 1},
			{Type: "bottom", Color: headerBorderColor, Style: 1},
		},
	})
}

// SummaryHeader returns the bold centered style for statistic section
// headers.
func (s *StyleSet) SummaryHeader() (int, error) {
	return s.resolve("summaryheader", &excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

// Bold returns a plain bold style.
func (s *StyleSet) Bold() (int, error) {
	return s.resolve("bold", &excelize.Style{Font: &excelize.Font{Bold: true}})
}

func (s *StyleSet) resolve(key string, style *excelize.Style) (int, error) {
	if id, ok := s.cache[key]; ok {
		return id, nil
	}
	id, err := s.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style %s: %w", key, err)
	}
	s.cache[key] = id
	return id, nil
}

func cellStyle(format CellFormat, bold bool) *excelize.Style {
	style := &excelize.Style{}
	if bold {
		style.Font = &excelize.Font{Bold: true}
	}
	switch format {
	case FormatDateTime:
		fmtStr := numFmtDateTime
		style.CustomNumFmt = &fmtStr
	case FormatDuration:
		fmtStr := numFmtDuration
		style.CustomNumFmt = &fmtStr
	case FormatInteger:
		style.NumFmt = 1
	case FormatLong:
		style.NumFmt = 3
	case FormatDecimal2:
		style.NumFmt = 2
	case FormatPercent:
		style.NumFmt = 9
	}
	return style
}
