package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planlint/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "planlint",
	Short: "Static validation for agent execution plans",
	Long: `planlint validates agent execution plans before anything runs.
It checks every step against the declared tool contracts, follows the
dependency graph spanned by step references and depends_on edges, and
reports typo'd tool names, missing or mistyped parameters, leaked
secrets, cycles, and dangling edges. For a subset of findings it can
synthesize patches that repair the plan in place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := log.DefaultConfig()
		cfg.Level = log.ParseLevel(logLevel)
		cfg.Format = log.ParseFormat(logFormat)
		log.SetDefaultLogger(log.New(cfg))
	},
}

var (
	logLevel  string
	logFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format: json, text")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with signal-aware cancellation
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
