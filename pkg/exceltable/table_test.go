package exceltable

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func buildTestTable(t *testing.T, f *excelize.File) *Table {
	t.Helper()

	columns := []Column{
		{Header: "ScanId", Format: FormatInteger, Width: 10},
		{Header: "RequestedOn", Format: FormatDateTime, Width: 18},
		{Header: "CompletedOn", Format: FormatDateTime, Width: 18},
		{Header: "LOC", Format: FormatInteger, Width: 10, Hidden: true},
		{Header: "Duration", Format: FormatDuration, Width: 14,
			Formula: "IF([@CompletedOn]>0,[@CompletedOn]-[@RequestedOn],0)"},
	}

	table, err := NewTable(f, "Sheet1", "TestScans", 2, columns, NewStyleSet(f))
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func TestTableRoundTrip(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	table := buildTestTable(t, f)
	table.SetFreeze(1, 2)

	if err := table.WriteGroupHeaders([]HeaderGroup{
		{Title: "Timestamps", First: 1, Last: 2},
	}); err != nil {
		t.Fatalf("WriteGroupHeaders failed: %v", err)
	}
	if err := table.WriteHeaderRow(); err != nil {
		t.Fatalf("WriteHeaderRow failed: %v", err)
	}

	requested := time.Date(2019, 5, 10, 8, 0, 0, 0, time.UTC)
	rows := [][]Cell{
		{{Col: 0, Value: 1001}, {Col: 1, Value: requested}, {Col: 2, Value: requested.Add(2 * time.Hour)}, {Col: 3, Value: 15000}},
		{{Col: 0, Value: 1002}, {Col: 1, Value: requested.Add(24 * time.Hour)}, {Col: 3, Value: 500}},
	}
	for i, cells := range rows {
		if err := table.WriteRow(i, cells); err != nil {
			t.Fatalf("WriteRow %d failed: %v", i, err)
		}
	}

	if got, want := table.Range(), "A2:E4"; got != want {
		t.Errorf("Range() = %s, want %s", got, want)
	}

	if err := table.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	// Reopen from bytes and verify what the viewer would see.
	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer reopened.Close()

	tables, err := reopened.GetTables("Sheet1")
	if err != nil {
		t.Fatalf("GetTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if tables[0].Name != "TestScans" {
		t.Errorf("Table name = %s, want TestScans", tables[0].Name)
	}
	if tables[0].Range != "A2:E4" {
		t.Errorf("Table range = %s, want A2:E4", tables[0].Range)
	}

	header, err := reopened.GetCellValue("Sheet1", "A2")
	if err != nil || header != "ScanId" {
		t.Errorf("Header A2 = %q (err %v), want ScanId", header, err)
	}
	group, _ := reopened.GetCellValue("Sheet1", "B1")
	if group != "Timestamps" {
		t.Errorf("Group header B1 = %q, want Timestamps", group)
	}

	formula, err := reopened.GetCellFormula("Sheet1", "E3")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	want := "IF(TestScans[[#This Row],[CompletedOn]]>0,TestScans[[#This Row],[CompletedOn]]-TestScans[[#This Row],[RequestedOn]],0)"
	if formula != want {
		t.Errorf("Formula E3 = %s, want %s", formula, want)
	}

	// Row with no CompletedOn cell leaves the cell blank for COUNT.
	blank, _ := reopened.GetCellValue("Sheet1", "C4")
	if blank != "" {
		t.Errorf("C4 should be blank, got %q", blank)
	}

	visible, err := reopened.GetColVisible("Sheet1", "D")
	if err != nil {
		t.Fatalf("GetColVisible failed: %v", err)
	}
	if visible {
		t.Error("Column D should be hidden")
	}
}

func TestTableRejectsDuplicateHeaders(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := NewTable(f, "Sheet1", "Dup", 1, []Column{
		{Header: "A"}, {Header: "A"},
	}, NewStyleSet(f))
	if err == nil {
		t.Fatal("expected duplicate header error")
	}
}

func TestTableRejectsOutOfRangeCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	table := buildTestTable(t, f)
	if err := table.WriteRow(0, []Cell{{Col: 9, Value: 1}}); err == nil {
		t.Fatal("expected out of range column error")
	}
	if err := table.WriteRow(-1, nil); err == nil {
		t.Fatal("expected negative row error")
	}
}

func TestStyleSetCachesStyles(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	styles := NewStyleSet(f)
	first, err := styles.Cell(FormatDuration)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	second, err := styles.Cell(FormatDuration)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected cached style ID, got %d and %d", first, second)
	}

	bold, err := styles.CellBold(FormatDuration)
	if err != nil {
		t.Fatalf("CellBold failed: %v", err)
	}
	if bold == first {
		t.Error("Bold variant should be a distinct style")
	}
}
