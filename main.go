package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	intconfig "redbus/internal/config"
	"redbus/internal/repositories"
	"redbus/internal/services"
	"redbus/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	configPath string
	jsonOutput bool

	env intconfig.Env
	db  *sql.DB
)

var rootCmd = &cobra.Command{
	Use:           "redbus",
	Short:         "Explore redbus route offerings by state, route, operator, fare, time and rating",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utils.InitLogging()

		loaded, err := intconfig.LoadEnv(configPath)
		if err != nil {
			return err
		}
		env = loaded
		if env.GinMode != "" {
			gin.SetMode(env.GinMode)
		}

		conn, err := intconfig.OpenDB(cmd.Context(), env.DB)
		if err != nil {
			return fmt.Errorf("connecting to %s: %w", env.DB.Driver, err)
		}
		db = conn
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeSession()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default $REDBUS_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(reportCmd)
}

// closeSession releases the storage handle; safe to call more than once.
func closeSession() {
	intconfig.CloseDB(db)
	db = nil
}

func offeringService() services.OfferingService {
	return services.OfferingService{
		Offerings:    repositories.OfferingRepository{DB: db},
		Lookups:      repositories.LookupRepository{DB: db},
		QueryTimeout: env.QueryTimeout,
		RequestID:    "cli",
	}
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	// post-run hooks are skipped when a command fails
	closeSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
