package report

import (
	"github.com/locvowork/scaninsight/pkg/exceltable"
)

// Fixed column positions of the scans table. Header and data rows share
// these indices; the dynamic language columns follow directly after.
const (
	colScanID = iota
	colProjectName
	colProjectID
	colTeamID
	colTeam
	colEngineID
	colOrigin
	colPreset
	colIncr
	colLOC
	colFailedLOC
	colFileCount
	colScanRequestedOn
	colQueuedOn
	colEngineStartedOn
	colEngineFinishedOn
	colScanCompletedOn
	colScanDuration
	colSourceTime
	colQueuedTime
	colEngineTime
	colScanHours
	colWeekday
	colFullSpeed
	colIncrSpeed
	colResults
	colHigh
	colMed
	colLow
	colInfo
	colVersion
	colLocked
	colPublic

	fixedColumnCount
)

// languageColumnStart is where the registry places the first language.
const languageColumnStart = fixedColumnCount

const (
	defaultColWidth      = 10
	defaultDateWidth     = 18
	defaultDurationWidth = 14
	defaultRateWidth     = 12
	defaultResultWidth   = 8
	defaultLangWidth     = 8
)

// BuildScanColumns returns the full ordered column definition list:
// the fixed identity/timing/duration/rate/result/version/flag columns
// followed by one column per tracked language. Derived columns carry
// formula templates bound once at table-construction time; they are
// recalculated by the viewer, never materialized as numbers.
func BuildScanColumns(registry *LanguageRegistry) []exceltable.Column {
	columns := []exceltable.Column{
		{Header: "ScanId", Format: exceltable.FormatInteger, Width: defaultColWidth},
		{Header: "ProjectName", Width: 30},
		{Header: "ProjectId", Format: exceltable.FormatInteger, Width: defaultColWidth, Hidden: true},
		{Header: "TeamId", Width: 36},
		{Header: "Team", Width: 15},
		{Header: "EngineId", Format: exceltable.FormatInteger, Width: defaultColWidth},
		{Header: "Origin", Width: defaultColWidth},
		{Header: "Preset", Width: 28},
		{Header: "Incr", Format: exceltable.FormatInteger, Width: 8},
		{Header: "LOC", Format: exceltable.FormatInteger, Width: defaultColWidth},
		{Header: "FailedLOC", Format: exceltable.FormatInteger, Width: 11},
		{Header: "FileCount", Format: exceltable.FormatInteger, Width: defaultColWidth},
		{Header: "ScanRequestedOn", Format: exceltable.FormatDateTime, Width: defaultDateWidth},
		{Header: "QueuedOn", Format: exceltable.FormatDateTime, Width: defaultDateWidth},
		{Header: "EngineStartedOn", Format: exceltable.FormatDateTime, Width: defaultDateWidth},
		{Header: "EngineFinishedOn", Format: exceltable.FormatDateTime, Width: defaultDateWidth},
		{Header: "ScanCompletedOn", Format: exceltable.FormatDateTime, Width: defaultDateWidth},
		{Header: "ScanDuration", Format: exceltable.FormatDuration, Width: defaultDurationWidth,
			Formula: "IF([@ScanCompletedOn]>0,[@ScanCompletedOn]-[@ScanRequestedOn],0)"},
		{Header: "SourceTime", Format: exceltable.FormatDuration, Width: defaultDurationWidth,
			Formula: "[@QueuedOn]-[@ScanRequestedOn]"},
		{Header: "QueuedTime", Format: exceltable.FormatDuration, Width: defaultDurationWidth,
			Formula: "IF([@EngineStartedOn]>0,[@EngineStartedOn]-[@QueuedOn],0)"},
		{Header: "EngineTime", Format: exceltable.FormatDuration, Width: defaultDurationWidth,
			Formula: "IF([@EngineFinishedOn]>0,[@EngineFinishedOn]-[@QueuedOn],0)"},
		{Header: "ScanHours", Format: exceltable.FormatDecimal2, Width: defaultColWidth,
			Formula: "[@ScanDuration]*24"},
		{Header: "Weekday", Format: exceltable.FormatInteger, Width: defaultColWidth,
			Formula: "WEEKDAY([@ScanRequestedOn])"},
		{Header: "FullSpeed", Format: exceltable.FormatInteger, Width: defaultRateWidth,
			Formula: "IF(AND([@ScanDuration]>0,[@Incr]=0),[@LOC]/([@ScanDuration]*24),0)"},
		{Header: "IncrSpeed", Format: exceltable.FormatInteger, Width: defaultRateWidth,
			Formula: "IF(AND([@ScanDuration]>0,[@Incr]=1),[@LOC]/([@ScanDuration]*24),0)"},
		{Header: "Results", Format: exceltable.FormatInteger, Width: defaultResultWidth,
			Formula: "SUM([@High],[@Med],[@Low],[@Info])"},
		{Header: "High", Format: exceltable.FormatInteger, Width: defaultResultWidth},
		{Header: "Med", Format: exceltable.FormatInteger, Width: defaultResultWidth},
		{Header: "Low", Format: exceltable.FormatInteger, Width: defaultResultWidth},
		{Header: "Info", Format: exceltable.FormatInteger, Width: defaultResultWidth},
		{Header: "Version", Width: 13},
		{Header: "Locked", Format: exceltable.FormatInteger, Width: 8},
		{Header: "Public", Format: exceltable.FormatInteger, Width: 8},
	}

	for _, lang := range registry.Tracked() {
		columns = append(columns, exceltable.Column{
			Header: lang.Name,
			Format: exceltable.FormatInteger,
			Width:  defaultLangWidth,
			Hidden: lang.Hidden,
		})
	}
	return columns
}

// ScanHeaderGroups returns the merged group titles for the scans sheet,
// with spans computed from the column layout instead of hard-coded
// cell ranges.
func ScanHeaderGroups(columnCount int) []exceltable.HeaderGroup {
	groups := []exceltable.HeaderGroup{
		{Title: "Date Timestamps", First: colScanRequestedOn, Last: colScanCompletedOn},
		{Title: "Durations", First: colScanDuration, Last: colScanHours},
		{Title: "Rates per hour", First: colWeekday, Last: colIncrSpeed},
		{Title: "Result counts", First: colResults, Last: colInfo},
	}
	if columnCount > fixedColumnCount {
		groups = append(groups, exceltable.HeaderGroup{
			Title: "Languages",
			First: languageColumnStart,
			Last:  columnCount - 1,
		})
	}
	return groups
}
