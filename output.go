package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"redbus/internal/domain/models"
	"redbus/internal/utils"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printSearchResult(w io.Writer, res models.SearchResult) {
	fmt.Fprintf(w, "Query:  %s\n", res.Query)
	fmt.Fprintf(w, "Params: %v\n\n", res.Params)

	if res.Empty() {
		fmt.Fprintln(w, res.Message)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tROUTE\tBUS\tTYPE\tDEPARTS\tARRIVES\tPRICE\tRATING\tSEATS")
	for _, o := range res.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.State,
			utils.Truncate(o.RouteName, 40),
			utils.Truncate(o.BusName, 30),
			utils.Truncate(o.BusType, 30),
			o.DepartingTime,
			o.ReachingTime,
			priceCell(o.Price),
			ratingCell(o.StarRating),
			intCell(o.SeatsAvailable),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d offerings\n", res.Count)

	fmt.Fprintln(w, "\nSeats available by bus name:")
	if !res.Chart.HasData {
		fmt.Fprintln(w, "  "+res.Chart.Message)
		return
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range res.Chart.Slices {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\n", s.BusName, s.Seats, s.Share*100)
	}
	tw.Flush()
	fmt.Fprintf(w, "  total %d seats\n", res.Chart.Total)
}

func printStates(w io.Writer, states []models.StateOption) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tNAME")
	for _, s := range states {
		fmt.Fprintf(tw, "%s\t%s\n", s.Code, s.Name)
	}
	tw.Flush()
}

func printList(w io.Writer, values []string) {
	if len(values) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	fmt.Fprintln(w, strings.Join(values, "\n"))
}

func priceCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return utils.FormatMoney(*v)
}

func ratingCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func intCell(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
