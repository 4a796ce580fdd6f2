package report

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/locvowork/scaninsight/pkg/exceltable"
)

// Leading identifier columns and header rows stay visible while
// scrolling the data table.
const (
	frozenColumns = 2
	frozenRows    = 2
)

// Assembler writes the scans data table into the workbook.
type Assembler struct {
	log              zerolog.Logger
	progressInterval int
	tableStyle       string
}

func NewAssembler(log zerolog.Logger, progressInterval int, tableStyle string) *Assembler {
	if progressInterval <= 0 {
		progressInterval = 500
	}
	return &Assembler{log: log, progressInterval: progressInterval, tableStyle: tableStyle}
}

// WriteScansSheet lays out the table sheet: merged group headers, the
// column-title row, every normalized row in input order, and finally
// the named table object with formats, formula bindings, hidden
// columns, and frozen panes. Progress feedback is log-only and has no
// effect on the artifact.
func (a *Assembler) WriteScansSheet(rctx *Context, rows []Row) (*exceltable.Table, error) {
	columns := BuildScanColumns(rctx.Registry)
	table, err := exceltable.NewTable(rctx.File, ScansSheet, ScansTable, tableStartRow, columns, rctx.Styles)
	if err != nil {
		return nil, err
	}
	table.SetFreeze(frozenColumns, frozenRows)
	table.SetStyleName(a.tableStyle)

	if err := table.WriteGroupHeaders(ScanHeaderGroups(len(columns))); err != nil {
		return nil, fmt.Errorf("write group headers: %w", err)
	}
	if err := table.WriteHeaderRow(); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		if err := table.WriteRow(i, row); err != nil {
			return nil, err
		}
		if (i+1)%a.progressInterval == 0 {
			a.log.Info().Int("written", i+1).Int("total", len(rows)).Msg("Writing scan rows")
		}
	}

	if err := table.Finalize(); err != nil {
		return nil, err
	}
	a.log.Info().Int("rows", table.RowCount()).Str("range", table.Range()).Msg("Scans table written")
	return table, nil
}
