package main

import (
	"fmt"

	"redbus/internal/domain/models"

	"github.com/spf13/cobra"
)

var searchInput models.CriteriaInput

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search route offerings with optional filters",
	Example: `  redbus search --state KL --max-price 800
  redbus search --route "Kochi to Bangalore" --min-time 20:00 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := searchInput.Criteria()
		if err != nil {
			return err
		}

		res, err := offeringService().Search(cmd.Context(), criteria)
		if err != nil {
			return fmt.Errorf("searching offerings: %w", err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, res)
		}
		printSearchResult(out, res)
		return nil
	},
}

func init() {
	bindCriteriaFlags(searchCmd, &searchInput)
}

// bindCriteriaFlags registers the filter flags shared by search and report.
func bindCriteriaFlags(cmd *cobra.Command, in *models.CriteriaInput) {
	f := cmd.Flags()
	f.StringVar(&in.State, "state", "", "state code (e.g. KL)")
	f.StringVar(&in.RouteName, "route", "", "route name")
	f.StringVar(&in.BusName, "bus", "", "bus operator name")
	f.StringVar(&in.BusType, "bus-type", "", "bus type")
	f.StringVar(&in.MinPrice, "min-price", "", "minimum fare")
	f.StringVar(&in.MaxPrice, "max-price", "", "maximum fare")
	f.StringVar(&in.MinDepartingTime, "min-time", "", "earliest departure (HH:MM[:SS])")
	f.StringVar(&in.MaxDepartingTime, "max-time", "", "latest departure (HH:MM[:SS])")
	f.StringVar(&in.MinStarRating, "min-rating", "", "minimum star rating (1-5)")
	f.StringVar(&in.MaxStarRating, "max-rating", "", "maximum star rating (1-5)")
}
