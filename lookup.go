package main

import (
	"fmt"
	"strings"

	"redbus/internal/domain"
	"redbus/internal/utils"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "List the values available for each filter",
}

var lookupStatesCmd = &cobra.Command{
	Use:   "states",
	Short: "List states that have offerings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		states, err := offeringService().States(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing states: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), states)
		}
		printStates(cmd.OutOrStdout(), states)
		return nil
	},
}

var lookupRoutesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes offered in a state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := requiredSelection(cmd, "state")
		if err != nil {
			return err
		}
		routes, err := offeringService().RoutesForState(cmd.Context(), state)
		if err != nil {
			return fmt.Errorf("listing routes: %w", err)
		}
		return printValues(cmd, routes)
	},
}

var lookupBusesCmd = &cobra.Command{
	Use:   "buses",
	Short: "List bus operators running a route",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := requiredSelection(cmd, "route")
		if err != nil {
			return err
		}
		names, err := offeringService().BusNamesForRoute(cmd.Context(), route)
		if err != nil {
			return fmt.Errorf("listing bus names: %w", err)
		}
		return printValues(cmd, names)
	},
}

var lookupTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List bus types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := offeringService().BusTypes(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing bus types: %w", err)
		}
		return printValues(cmd, types)
	},
}

func init() {
	lookupRoutesCmd.Flags().String("state", "", "state code")
	_ = lookupRoutesCmd.MarkFlagRequired("state")
	lookupBusesCmd.Flags().String("route", "", "route name")
	_ = lookupBusesCmd.MarkFlagRequired("route")

	lookupCmd.AddCommand(lookupStatesCmd)
	lookupCmd.AddCommand(lookupRoutesCmd)
	lookupCmd.AddCommand(lookupBusesCmd)
	lookupCmd.AddCommand(lookupTypesCmd)
}

// requiredSelection reads an upstream filter value; "" and "None" mean nothing was chosen.
func requiredSelection(cmd *cobra.Command, flag string) (string, error) {
	v, _ := cmd.Flags().GetString(flag)
	if utils.IsUnselected(v) {
		return "", domain.ValidationError{Field: flag, Msg: "is required"}
	}
	return strings.TrimSpace(v), nil
}

func printValues(cmd *cobra.Command, values []string) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), values)
	}
	printList(cmd.OutOrStdout(), values)
	return nil
}
