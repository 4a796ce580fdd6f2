package report

import (
	"fmt"
	"time"

	"github.com/locvowork/scaninsight/internal/model"
	"github.com/locvowork/scaninsight/pkg/exceltable"
)

// Row is the normalized form of one scan record: the write-time
// constant cells keyed by table column index. Formula columns are
// intentionally absent; the table binds those itself.
type Row []exceltable.Cell

// Normalizer maps raw scan records to report rows, resolving language
// usage through the column registry.
type Normalizer struct {
	registry *LanguageRegistry
}

func NewNormalizer(registry *LanguageRegistry) *Normalizer {
	return &Normalizer{registry: registry}
}

// Accepted textual timestamp forms. The platform emits RFC 3339 with
// fractional seconds; older exports drop the zone designator.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize converts one scan record into a row. It fails with
// ErrMalformedRecord when a required field is missing, a timestamp is
// present but unparsable, or a language-usage entry is unknown to the
// registry. Untracked languages are valid input and simply write no
// cell.
func (n *Normalizer) Normalize(rec model.ScanRecord) (Row, error) {
	if rec.ID <= 0 {
		return nil, fmt.Errorf("record without scan id: %w", ErrMalformedRecord)
	}
	if rec.ProjectName == "" {
		return nil, fmt.Errorf("scan %d: missing project name: %w", rec.ID, ErrMalformedRecord)
	}
	if rec.ScanRequestedOn == "" {
		return nil, fmt.Errorf("scan %d: missing ScanRequestedOn timestamp: %w", rec.ID, ErrMalformedRecord)
	}

	row := Row{
		{Col: colScanID, Value: rec.ID},
		{Col: colProjectName, Value: rec.ProjectName},
		{Col: colTeamID, Value: rec.OwningTeamID},
		{Col: colTeam, Value: rec.TeamName},
		{Col: colEngineID, Value: rec.EngineServerID},
		{Col: colOrigin, Value: rec.Origin},
		{Col: colPreset, Value: rec.PresetName},
		{Col: colIncr, Value: flagValue(rec.IsIncremental)},
		{Col: colLOC, Value: rec.LOC},
		{Col: colFailedLOC, Value: rec.FailedLOC},
		{Col: colFileCount, Value: rec.FileCount},
		{Col: colHigh, Value: rec.High},
		{Col: colMed, Value: rec.Medium},
		{Col: colLow, Value: rec.Low},
		{Col: colInfo, Value: rec.Info},
		{Col: colVersion, Value: rec.ProductVersion},
		{Col: colLocked, Value: flagValue(rec.IsLocked)},
		{Col: colPublic, Value: flagValue(rec.IsPublic)},
	}

	timestamps := []struct {
		col      int
		field    string
		value    string
		required bool
	}{
		{colScanRequestedOn, "ScanRequestedOn", rec.ScanRequestedOn, true},
		{colQueuedOn, "QueuedOn", rec.QueuedOn, false},
		{colEngineStartedOn, "EngineStartedOn", rec.EngineStartedOn, false},
		{colEngineFinishedOn, "EngineFinishedOn", rec.EngineFinishedOn, false},
		{colScanCompletedOn, "ScanCompletedOn", rec.ScanCompletedOn, false},
	}
	for _, ts := range timestamps {
		if ts.value == "" {
			// No cell at all, so COUNT over the column keeps counting
			// only the scans that reached this lifecycle stage.
			continue
		}
		parsed, err := parseTimestamp(ts.value)
		if err != nil {
			return nil, fmt.Errorf("scan %d: unparsable %s timestamp %q: %w", rec.ID, ts.field, ts.value, ErrMalformedRecord)
		}
		row = append(row, exceltable.Cell{Col: ts.col, Value: parsed})
	}

	for _, usage := range rec.ScannedLanguages {
		lang, ok := n.registry.Lookup(usage.LanguageName)
		if !ok {
			return nil, fmt.Errorf("scan %d: unknown language %q: %w", rec.ID, usage.LanguageName, ErrMalformedRecord)
		}
		if lang.Col == UntrackedColumn {
			continue
		}
		row = append(row, exceltable.Cell{Col: lang.Col, Value: 1})
	}

	return row, nil
}

// parseTimestamp parses a textual timestamp, dropping the zone so the
// sheet shows the platform's wall-clock time.
func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return stripZone(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func flagValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
