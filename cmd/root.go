package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twm/internal/app"
	"twm/internal/config"
	"twm/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "twm",
	Short: "TWM content studio",
	Long: `TWM classifies prompts into task types (text, table, presentation,
podcast, image, video), generates content for them and keeps the results in a
local library. It runs as a CLI, an HTTP API server and a background worker.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, nil); err != nil {
			return err
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if a, err := GetAppFromContext(cmd.Context()); err == nil {
			return a.Close()
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext returns the app built in PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml or ~/.config/twm/config.yaml)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check storage and task queue connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}
		out := cmd.OutOrStdout()
		cfg := appInstance.Config

		fmt.Fprintf(out, "Checking %s storage...\n", cfg.Storage.Driver)
		if err := appInstance.Ping(ctx); err != nil {
			fmt.Fprintf(out, "  %s %v\n", failMark(), err)
			return fmt.Errorf("storage ping failed: %w", err)
		}
		fmt.Fprintf(out, "  %s storage reachable\n", okMark())

		if !cfg.JobsEnabled() {
			fmt.Fprintf(out, "  %s background jobs disabled (redis.address not set)\n", warnMark())
			return nil
		}
		fmt.Fprintf(out, "Checking task queue at %s...\n", cfg.Redis.Address)
		if err := pingBroker(ctx, cfg); err != nil {
			fmt.Fprintf(out, "  %s %v\n", failMark(), err)
			return fmt.Errorf("task queue ping failed: %w", err)
		}
		fmt.Fprintf(out, "  %s task queue reachable\n", okMark())
		return nil
	},
}
