package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/scaninsight/internal/report"
)

// NewRootCmd creates the root command for scaninsight.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaninsight",
		Short: "CxSAST scan usage insight",
		Long: `scaninsight analyzes CxSAST scan data and generates an Excel workbook
with two worksheets:

  * Summary:  scan usage analytics, computed as spreadsheet formulas
  * Scans:    a data table with every scan, ready for sorting and filtering

The scan data is the JSON response of the CxSAST OData Scans query;
run "scaninsight query" to print the query to use.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewQueryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and maps the failure kind to the exit
// code: 2 for bad scan data, 3 for an output conflict, 4 for a write
// failure, 1 for anything else.
func Execute() {
	err := NewRootCmd().Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	switch {
	case errors.Is(err, report.ErrMalformedRecord):
		os.Exit(2)
	case errors.Is(err, report.ErrOutputConflict):
		os.Exit(3)
	case errors.Is(err, report.ErrOutputWriteFailure):
		os.Exit(4)
	default:
		os.Exit(1)
	}
}
