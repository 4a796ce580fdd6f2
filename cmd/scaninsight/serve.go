package main

import (
	"github.com/spf13/cobra"

	"github.com/locvowork/scaninsight/internal/bootstrap"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve report generation over HTTP",
		Long: `Serve starts an HTTP server that generates scan usage workbooks on
demand. POST the scan data JSON envelope to /reports?customer=<name>
and the workbook is returned as an xlsx attachment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap.NewApp()
			if err := app.Initialize(cmd.Context()); err != nil {
				return err
			}
			return app.Run()
		},
	}
}
