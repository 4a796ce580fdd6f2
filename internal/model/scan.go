// Package model defines the scan-execution records the report is built
// from. Field names follow the CxSAST OData Scans payload.
package model

// ScanRecord is one scan execution as delivered by the scanning
// platform. Timestamps stay textual here; parsing into date-time values
// is the normalizer's job.
type ScanRecord struct {
	ID               int64             `json:"Id"`
	ProjectName      string            `json:"ProjectName"`
	OwningTeamID     string            `json:"OwningTeamId"`
	TeamName         string            `json:"TeamName"`
	ProductVersion   string            `json:"ProductVersion"`
	EngineServerID   int64             `json:"EngineServerId"`
	Origin           string            `json:"Origin"`
	PresetName       string            `json:"PresetName"`
	ScanRequestedOn  string            `json:"ScanRequestedOn"`
	QueuedOn         string            `json:"QueuedOn"`
	EngineStartedOn  string            `json:"EngineStartedOn"`
	EngineFinishedOn string            `json:"EngineFinishedOn"`
	ScanCompletedOn  string            `json:"ScanCompletedOn"`
	FileCount        int64             `json:"FileCount"`
	LOC              int64             `json:"LOC"`
	FailedLOC        int64             `json:"FailedLOC"`
	High             int64             `json:"High"`
	Medium           int64             `json:"Medium"`
	Low              int64             `json:"Low"`
	Info             int64             `json:"Info"`
	IsIncremental    bool              `json:"IsIncremental"`
	IsLocked         bool              `json:"IsLocked"`
	IsPublic         bool              `json:"IsPublic"`
	ScannedLanguages []ScannedLanguage `json:"ScannedLanguages"`
}

// ScannedLanguage is one language-usage entry of a scan.
type ScannedLanguage struct {
	LanguageName string `json:"LanguageName"`
}
