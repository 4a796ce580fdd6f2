package report

import (
	"fmt"

	"github.com/locvowork/scaninsight/pkg/exceltable"
)

// SummaryStatistic is one labeled row of the summary sheet. Formula is
// an aggregate over the named scans table; Extra optionally puts a
// second formula cell next to the value (the full/incremental split
// percentage), and Note a unit annotation.
type SummaryStatistic struct {
	Label       string
	Formula     exceltable.Template
	Format      exceltable.CellFormat
	Extra       exceltable.Template
	ExtraFormat exceltable.CellFormat
	Note        string
}

// SummaryStatistics returns the fixed ordered statistic list. Every
// formula addresses the table by name and column, never by literal row
// ranges, so the sheet stays correct when the viewer inserts or removes
// table rows.
func SummaryStatistics() []SummaryStatistic {
	span := "(MAX({T}[ScanRequestedOn])-MIN({T}[ScanRequestedOn]))"
	weekday := func(day int) exceltable.Template {
		return exceltable.Template(fmt.Sprintf(`COUNTIF({T}[Weekday],"=%d")/(%s/7)`, day, span))
	}

	return []SummaryStatistic{
		{Label: "Start Date", Formula: "MIN({T}[ScanRequestedOn])", Format: exceltable.FormatDateTime},
		{Label: "End Date", Formula: "MAX({T}[ScanRequestedOn])", Format: exceltable.FormatDateTime},
		{Label: "Days", Formula: exceltable.Template("MAX({T}[ScanRequestedOn])-MIN({T}[ScanRequestedOn])"), Format: exceltable.FormatInteger},
		{Label: "Weeks", Formula: exceltable.Template("ROUNDUP(" + span + "/7,0)"), Format: exceltable.FormatInteger},
		{Label: "Scans", Formula: "COUNT({T}[ScanId])", Format: exceltable.FormatInteger},
		{Label: "Completed Scans", Formula: "COUNT({T}[ScanCompletedOn])", Format: exceltable.FormatInteger},
		{Label: "Scans Inflight", Formula: "COUNT({T}[ScanId])-COUNT({T}[ScanCompletedOn])", Format: exceltable.FormatInteger},
		{Label: "Full Scans", Formula: `COUNTIF({T}[Incr],"=0")`, Format: exceltable.FormatInteger},
		{Label: "Incr Scans", Formula: `COUNTIF({T}[Incr],"=1")`, Format: exceltable.FormatInteger,
			Extra: `COUNTIF({T}[Incr],"=1")/COUNT({T}[ScanId])`, ExtraFormat: exceltable.FormatPercent},
		{Label: "Avg Full Scan Rate", Formula: `AVERAGEIF({T}[FullSpeed],"<>0")`, Format: exceltable.FormatInteger, Note: "LOC / Hr"},
		{Label: "Avg Incr Scan Rate", Formula: `AVERAGEIFS({T}[IncrSpeed],{T}[Incr],"=1")`, Format: exceltable.FormatInteger, Note: "LOC / Hr"},
		{Label: "Max Scan Rate", Formula: "MAX({T}[FullSpeed])", Format: exceltable.FormatInteger, Note: "LOC / Hr"},
		{Label: "Avg Scans Per Day", Formula: exceltable.Template("COUNT({T}[ScanId])/" + span), Format: exceltable.FormatDecimal2},
		{Label: "   Sun", Formula: weekday(1), Format: exceltable.FormatDecimal2},
		{Label: "   Mon", Formula: weekday(2), Format: exceltable.FormatDecimal2},
		{Label: "   Tue", Formula: weekday(3), Format: exceltable.FormatDecimal2},
		{Label: "   Wed", Formula: weekday(4), Format: exceltable.FormatDecimal2},
		{Label: "   Thu", Formula: weekday(5), Format: exceltable.FormatDecimal2},
		{Label: "   Fri", Formula: weekday(6), Format: exceltable.FormatDecimal2},
		{Label: "   Sat", Formula: weekday(7), Format: exceltable.FormatDecimal2},
	}
}

// Layout of the summary sheet: title on A1, the Scans/Stats header on
// B2:C2, one statistic per row from row 3, labels in B, formulas in C,
// notes and split percentages in D.
const (
	summaryTitleCell = "A1"
	summaryLabelCol  = "B"
	summaryValueCol  = "C"
	summaryNoteCol   = "D"
	summaryFirstRow  = 3
)

// WriteSummarySheet writes the labeled-statistics sheet, every value an
// aggregate formula over the named table.
func WriteSummarySheet(rctx *Context, tableName string) error {
	f := rctx.File

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 5}, {"B", 20}, {"C", 18}, {"D", 10},
	}
	for _, w := range widths {
		if err := f.SetColWidth(SummarySheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}

	boldID, err := rctx.Styles.Bold()
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SummarySheet, summaryTitleCell, fmt.Sprintf("%s Scan Summary Info", rctx.Customer)); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, summaryTitleCell, summaryTitleCell, boldID); err != nil {
		return err
	}

	headerID, err := rctx.Styles.SummaryHeader()
	if err != nil {
		return err
	}
	for i, header := range []string{"Scans", "Stats"} {
		cell := fmt.Sprintf("%c2", 'B'+i)
		if err := f.SetCellValue(SummarySheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, cell, cell, headerID); err != nil {
			return err
		}
	}

	for i, stat := range SummaryStatistics() {
		row := summaryFirstRow + i
		labelCell := fmt.Sprintf("%s%d", summaryLabelCol, row)
		valueCell := fmt.Sprintf("%s%d", summaryValueCol, row)
		noteCell := fmt.Sprintf("%s%d", summaryNoteCol, row)

		if err := f.SetCellValue(SummarySheet, labelCell, stat.Label); err != nil {
			return err
		}
		if err := f.SetCellFormula(SummarySheet, valueCell, stat.Formula.Render(tableName)); err != nil {
			return fmt.Errorf("bind summary formula %q: %w", stat.Label, err)
		}
		styleID, err := rctx.Styles.CellBold(stat.Format)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, valueCell, valueCell, styleID); err != nil {
			return err
		}

		if !stat.Extra.IsZero() {
			if err := f.SetCellFormula(SummarySheet, noteCell, stat.Extra.Render(tableName)); err != nil {
				return fmt.Errorf("bind summary formula %q: %w", stat.Label, err)
			}
			extraID, err := rctx.Styles.Cell(stat.ExtraFormat)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(SummarySheet, noteCell, noteCell, extraID); err != nil {
				return err
			}
		} else if stat.Note != "" {
			if err := f.SetCellValue(SummarySheet, noteCell, stat.Note); err != nil {
				return err
			}
		}
	}
	return nil
}
