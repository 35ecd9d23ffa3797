package main

import (
	"fmt"
	"os"

	"redbus/internal/domain/models"
	"redbus/internal/services"

	"github.com/spf13/cobra"
)

var reportInput models.CriteriaInput

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF report (seat chart and result table) for a search",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := reportInput.Criteria()
		if err != nil {
			return err
		}

		res, err := offeringService().Search(cmd.Context(), criteria)
		if err != nil {
			return fmt.Errorf("searching offerings: %w", err)
		}

		pdfBytes, filename, err := services.ReportService{RequestID: "cli"}.Render(res, criteria)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = filename
		}
		if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows)\n", path, res.Count)
		return nil
	},
}

func init() {
	bindCriteriaFlags(reportCmd, &reportInput)
	reportCmd.Flags().StringP("output", "o", "", "output file (default REDBUS_<state>_<timestamp>.pdf)")
}
