// Package exceltable writes named Excel tables whose derived columns
// are bound as structured-reference formulas rather than precomputed
// values, so the workbook keeps recalculating correctly after rows are
// sorted, filtered, inserted, or removed in the viewer.
package exceltable

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column describes one table column: its header, how its cells are
// formatted, and optionally a formula template bound once per data row.
// A column with a non-empty Formula is never written by callers; the
// table fills it in during Finalize.
type Column struct {
	Header  string
	Format  CellFormat
	Width   float64
	Hidden  bool
	Formula Template
}

// HeaderGroup is a merged title spanning a contiguous run of columns,
// written one row above the column headers. First and Last are
// inclusive zero-based column offsets.
type HeaderGroup struct {
	Title string
	First int
	Last  int
}

// Cell is one write-time constant value keyed by its zero-based column
// offset within the table.
type Cell struct {
	Col   int
	Value interface{}
}

// Table incrementally assembles a named table on one sheet. Usage is
// strictly ordered: WriteGroupHeaders (optional), WriteHeaderRow, any
// number of WriteRow calls, then Finalize.
type Table struct {
	file      *excelize.File
	sheet     string
	name      string
	styleName string
	columns   []Column
	styles    *StyleSet

	headerRow  int // 1-based sheet row holding the column titles
	dataRows   int
	freezeCols int
	freezeRows int

	colNameCache map[int]string
}

// NewTable prepares a table writer on the given sheet. headerRow is the
// 1-based sheet row for the column-title row; group headers, if any,
// occupy the row above it.
func NewTable(f *excelize.File, sheet, name string, headerRow int, columns []Column, styles *StyleSet) (*Table, error) {
	if headerRow < 1 {
		return nil, fmt.Errorf("header row %d out of range", headerRow)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns", name)
	}
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col.Header == "" {
			return nil, fmt.Errorf("table %s has a column without a header", name)
		}
		if seen[col.Header] {
			return nil, fmt.Errorf("table %s has duplicate column %s", name, col.Header)
		}
		seen[col.Header] = true
	}
	return &Table{
		file:         f,
		sheet:        sheet,
		name:         name,
		styleName:    "TableStyleMedium9",
		columns:      columns,
		styles:       styles,
		headerRow:    headerRow,
		colNameCache: make(map[int]string),
	}, nil
}

// Name returns the table name formulas reference.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the column definitions in order.
func (t *Table) Columns() []Column {
	return t.columns
}

// RowCount returns the number of data rows written so far.
func (t *Table) RowCount() int {
	return t.dataRows
}

// Range returns the A1 range of the table, header row included.
func (t *Table) Range() string {
	first := t.cellAddress(0, t.headerRow)
	last := t.cellAddress(len(t.columns)-1, t.headerRow+t.dataRows)
	return first + ":" + last
}

// SetFreeze freezes the given number of leading columns and top sheet
// rows when the table is finalized.
func (t *Table) SetFreeze(cols, rows int) {
	t.freezeCols = cols
	t.freezeRows = rows
}

// SetStyleName overrides the default table style. An empty name keeps
// the default.
func (t *Table) SetStyleName(name string) {
	if name != "" {
		t.styleName = name
	}
}

// WriteGroupHeaders writes the merged group titles one row above the
// column headers.
func (t *Table) WriteGroupHeaders(groups []HeaderGroup) error {
	if t.headerRow < 2 {
		return fmt.Errorf("table %s has no room for a group header row", t.name)
	}
	row := t.headerRow - 1
	styleID, err := t.styles.GroupHeader()
	if err != nil {
		return err
	}
	for _, group := range groups {
		if group.First < 0 || group.Last >= len(t.columns) || group.First > group.Last {
			return fmt.Errorf("group %q spans columns %d-%d outside the table", group.Title, group.First, group.Last)
		}
		first := t.cellAddress(group.First, row)
		last := t.cellAddress(group.Last, row)
		if err := t.file.MergeCell(t.sheet, first, last); err != nil {
			return fmt.Errorf("merge group %q: %w", group.Title, err)
		}
		if err := t.file.SetCellValue(t.sheet, first, group.Title); err != nil {
			return err
		}
		if err := t.file.SetCellStyle(t.sheet, first, last, styleID); err != nil {
			return err
		}
	}
	return t.file.SetRowHeight(t.sheet, row, 14.4)
}

// WriteHeaderRow writes the column titles and applies widths and
// default column visibility. Must run before AddTable picks the column
// names up from the sheet.
func (t *Table) WriteHeaderRow() error {
	styleID, err := t.styles.Header()
	if err != nil {
		return err
	}
	for i, col := range t.columns {
		cell := t.cellAddress(i, t.headerRow)
		if err := t.file.SetCellValue(t.sheet, cell, col.Header); err != nil {
			return err
		}
		if err := t.file.SetCellStyle(t.sheet, cell, cell, styleID); err != nil {
			return err
		}
		name := t.colName(i)
		if col.Width > 0 {
			if err := t.file.SetColWidth(t.sheet, name, name, col.Width); err != nil {
				return err
			}
		}
		if col.Hidden {
			if err := t.file.SetColVisible(t.sheet, name, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteRow writes the constant cells of one data row. index is the
// zero-based data row number; rows may be written in any order but the
// table covers up to the highest index seen.
func (t *Table) WriteRow(index int, cells []Cell) error {
	if index < 0 {
		return fmt.Errorf("row index %d out of range", index)
	}
	row := t.headerRow + 1 + index
	for _, cell := range cells {
		if cell.Col < 0 || cell.Col >= len(t.columns) {
			return fmt.Errorf("row %d references column %d outside the table", index, cell.Col)
		}
		if err := t.file.SetCellValue(t.sheet, t.cellAddress(cell.Col, row), cell.Value); err != nil {
			return fmt.Errorf("write row %d: %w", index, err)
		}
	}
	if index+1 > t.dataRows {
		t.dataRows = index + 1
	}
	return nil
}

// Finalize binds formula columns, applies per-column data formats,
// registers the named table over the full header+data range, and
// freezes the configured panes.
func (t *Table) Finalize() error {
	firstDataRow := t.headerRow + 1
	lastDataRow := t.headerRow + t.dataRows

	for i, col := range t.columns {
		if col.Formula.IsZero() {
			continue
		}
		expr := col.Formula.Render(t.name)
		for row := firstDataRow; row <= lastDataRow; row++ {
			if err := t.file.SetCellFormula(t.sheet, t.cellAddress(i, row), expr); err != nil {
				return fmt.Errorf("bind formula %s: %w", col.Header, err)
			}
		}
	}

	if t.dataRows > 0 {
		for i, col := range t.columns {
			styleID, err := t.styles.Cell(col.Format)
			if err != nil {
				return err
			}
			first := t.cellAddress(i, firstDataRow)
			last := t.cellAddress(i, lastDataRow)
			if err := t.file.SetCellStyle(t.sheet, first, last, styleID); err != nil {
				return err
			}
		}
	}

	if err := t.file.AddTable(t.sheet, &excelize.Table{
		Range:     t.Range(),
		Name:      t.name,
		StyleName: t.styleName,
	}); err != nil {
		return fmt.Errorf("add table %s: %w", t.name, err)
	}

	if t.freezeCols > 0 || t.freezeRows > 0 {
		topLeft, err := excelize.CoordinatesToCellName(t.freezeCols+1, t.freezeRows+1)
		if err != nil {
			return err
		}
		if err := t.file.SetPanes(t.sheet, &excelize.Panes{
			Freeze:      true,
			XSplit:      t.freezeCols,
			YSplit:      t.freezeRows,
			TopLeftCell: topLeft,
			ActivePane:  "bottomRight",
		}); err != nil {
			return fmt.Errorf("freeze panes: %w", err)
		}
	}
	return nil
}

// colName returns the sheet column name for a zero-based table column
// offset, with caching.
func (t *Table) colName(col int) string {
	if name, ok := t.colNameCache[col]; ok {
		return name
	}
	name, _ := excelize.ColumnNumberToName(col + 1)
	t.colNameCache[col] = name
	return name
}

func (t *Table) cellAddress(col, row int) string {
	return fmt.Sprintf("%s%d", t.colName(col), row)
}
