package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/scaninsight/internal/model"
)

func newTestService() Service {
	return NewService("Acme", "Acme Corp", "tester", NewLanguageRegistry(nil), zerolog.Nop())
}

func testRecords() []model.ScanRecord {
	first := validRecord()
	second := validRecord()
	second.ID = 1000002
	second.ProjectName = "Billing"
	second.IsIncremental = true
	second.ScannedLanguages = []model.ScannedLanguage{{LanguageName: "Go"}}
	return []model.ScanRecord{first, second}
}

func TestGenerateWorkbook(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "scans.xlsx")
	svc := newTestService()

	require.NoError(t, svc.Generate(context.Background(), testRecords(), outPath))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, ScansSheet}, f.GetSheetList())

	tables, err := f.GetTables(ScansSheet)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, ScansTable, tables[0].Name)
	assert.Equal(t, "A2:AZ4", tables[0].Range)

	// Constants land as values, derived columns as structured formulas.
	scanID, err := f.GetCellValue(ScansSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "1000001", scanID)
	project, err := f.GetCellValue(ScansSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Billing", project)

	duration, err := f.GetCellFormula(ScansSheet, "R3")
	require.NoError(t, err)
	assert.Equal(t,
		"IF(AllScans[[#This Row],[ScanCompletedOn]]>0,AllScans[[#This Row],[ScanCompletedOn]]-AllScans[[#This Row],[ScanRequestedOn]],0)",
		duration)
	weekday, err := f.GetCellFormula(ScansSheet, "W4")
	require.NoError(t, err)
	assert.Equal(t, "WEEKDAY(AllScans[[#This Row],[ScanRequestedOn]])", weekday)

	// Java was scanned in the first record only; Go in the second.
	java, err := f.GetCellValue(ScansSheet, "AO3")
	require.NoError(t, err)
	assert.Equal(t, "1", java)
	java2, err := f.GetCellValue(ScansSheet, "AO4")
	require.NoError(t, err)
	assert.Equal(t, "", java2)
	golang, err := f.GetCellValue(ScansSheet, "AN4")
	require.NoError(t, err)
	assert.Equal(t, "1", golang)

	// ProjectId stays in the table but starts out hidden.
	visible, err := f.GetColVisible(ScansSheet, "C")
	require.NoError(t, err)
	assert.False(t, visible)

	scans, err := f.GetCellFormula(SummarySheet, "C7")
	require.NoError(t, err)
	assert.Equal(t, "COUNT(AllScans[ScanId])", scans)
	title, err := f.GetCellValue(SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Scan Summary Info", title)
}

func TestGenerateOutputConflict(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "scans.xlsx")
	require.NoError(t, os.WriteFile(outPath, []byte("existing"), 0644))
	svc := newTestService()

	err := svc.Generate(context.Background(), testRecords(), outPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputConflict))

	// The existing artifact is untouched.
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))

	require.NoError(t, svc.Generate(context.Background(), testRecords(), outPath, WithForce(true)))
	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	f.Close()
}

func TestGenerateStrictAbort(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "scans.xlsx")
	svc := newTestService()

	bad := validRecord()
	bad.ProjectName = ""
	records := append(testRecords(), bad)

	err := svc.Generate(context.Background(), records, outPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))

	// An aborted run leaves no artifact and no staged temp file.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateLenient(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "scans.xlsx")
	svc := newTestService()

	bad := validRecord()
	bad.ScanRequestedOn = "not-a-timestamp"
	records := append(testRecords(), bad)

	require.NoError(t, svc.Generate(context.Background(), records, outPath, WithLenient(true)))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	tables, err := f.GetTables(ScansSheet)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "A2:AZ4", tables[0].Range, "the malformed record must be skipped, not written")
}

func TestGenerateCancelledContext(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "scans.xlsx")
	svc := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Generate(ctx, testRecords(), outPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateBytes(t *testing.T) {
	svc := newTestService()

	data, err := svc.GenerateBytes(context.Background(), testRecords())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	tables, err := f.GetTables(ScansSheet)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, ScansTable, tables[0].Name)
}
