package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const odataSelect = "Id,ProjectName,OwningTeamId,TeamName,ProductVersion,EngineServerId,Origin,PresetName," +
	"ScanRequestedOn,QueuedOn,EngineStartedOn,EngineFinishedOn,ScanCompletedOn,ScanDuration,FileCount,LOC," +
	"FailedLOC,High,Medium,Low,Info,IsIncremental,IsLocked,IsPublic"

// NewQueryCmd creates the query command, which prints the OData query
// used to export the scan data this tool consumes.
func NewQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Print the CxSAST OData query that produces the scan data",
		Run: func(cmd *cobra.Command, args []string) {
			expand := "ScannedLanguages($select=LanguageName)"
			filter := "ScanRequestedOn%20gt%202019-05-01T00:00:00.000Z%20and%20ScanRequestedOn%20lt%202019-08-01T00:00:00.000Z"
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "OData query to generate scan data (adjust the date filter):")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "http://<cxhost>/cxwebinterface/odata/v1/Scans?$select=%s&$expand=%s&$filter=%s\n",
				odataSelect, expand, filter)
		},
	}
}
