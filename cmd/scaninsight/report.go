package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/locvowork/scaninsight/internal/config"
	"github.com/locvowork/scaninsight/internal/loader"
	"github.com/locvowork/scaninsight/internal/logger"
	"github.com/locvowork/scaninsight/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the scan usage workbook from a scan data file",
		Long: `Report parses the supplied CxSAST scan data and generates an Excel
workbook with a Summary sheet of usage analytics and a Scans data
table. All derived values are spreadsheet formulas over the named
scan table, so the workbook keeps recalculating in the viewer.

Examples:
  # Generate scans.xlsx from scans.json
  scaninsight report --customer "Acme Corp"

  # Custom paths, overwrite an existing workbook
  scaninsight report -c "Acme Corp" -j q2_scans.json -o q2_usage.xlsx -f

  # Skip malformed records instead of aborting
  scaninsight report -c "Acme Corp" --lenient`,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("customer", "c", "", "Customer name shown in the workbook")
	cmd.Flags().StringP("scan-data", "j", "", "Scan data JSON file to analyze (default scans.json)")
	cmd.Flags().StringP("excel", "o", "", "Output Excel file (default scans.xlsx)")
	cmd.Flags().BoolP("force", "f", false, "Overwrite the output file if it exists")
	cmd.Flags().BoolP("debug", "d", false, "Enable debug logging on the console")
	cmd.Flags().Bool("lenient", false, "Skip malformed records instead of aborting")
	cmd.Flags().String("config", "", "Report configuration YAML file")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvConfig(); err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if err := logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, debug); err != nil {
		return err
	}

	customer, _ := cmd.Flags().GetString("customer")
	scanData, _ := cmd.Flags().GetString("scan-data")
	excelFile, _ := cmd.Flags().GetString("excel")
	force, _ := cmd.Flags().GetBool("force")
	lenient, _ := cmd.Flags().GetBool("lenient")
	configPath, _ := cmd.Flags().GetString("config")

	var hiddenLanguages []string
	var tableStyle string
	if configPath != "" {
		reportCfg, err := config.LoadReportConfig(configPath)
		if err != nil {
			return err
		}
		if customer == "" {
			customer = reportCfg.Customer
		}
		lenient = lenient || reportCfg.Lenient
		hiddenLanguages = reportCfg.HiddenLanguages
		tableStyle = reportCfg.TableStyle
	}
	if customer == "" {
		return fmt.Errorf("customer name is required (use --customer or a config file)")
	}
	if scanData == "" {
		scanData = config.DefaultEnvConfig.SCAN_DATA_FILE
	}
	if excelFile == "" {
		excelFile = config.DefaultEnvConfig.EXCEL_FILE
	}

	ctx := cmd.Context()
	logger.InfoLog(ctx, "scaninsight v%s", getVersion())
	logger.InfoLog(ctx, "Loading scan data from %s", scanData)

	records, err := loader.Load(scanData)
	if err != nil {
		return err
	}
	logger.InfoLog(ctx, "Loaded %d scan records", len(records))

	registry := report.NewLanguageRegistry(hiddenLanguages)
	svc := report.NewService(
		customer,
		config.DefaultEnvConfig.REPORT_COMPANY,
		config.DefaultEnvConfig.REPORT_AUTHOR,
		registry,
		logger.Logger(),
	)

	if err := svc.Generate(ctx, records, excelFile,
		report.WithForce(force),
		report.WithLenient(lenient),
		report.WithTableStyle(tableStyle),
	); err != nil {
		logger.DebugLog(ctx, "report generation failed: %+v", err)
		return err
	}
	return nil
}
