package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/proplogic"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
	config proplogic.Config
)

var rootCmd = &cobra.Command{
	Use:              "proplogic",
	Short:            "proplogic - parse, evaluate, and prove propositional-logic expressions",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = proplogic.LoadConfig(cfgFile)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		// display help when only 'proplogic' is entered
		_ = cmd.Help()
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to the configuration file")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "timeout for table enumeration")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(simplifyCmd)
}

// runWithTimeout runs f, giving up when ctx expires. Table enumeration is
// O(2^n) and has no built-in bound.
func runWithTimeout(ctx context.Context, f func()) {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		logger.Fatal("Operation timed out", zap.Duration("timeout", timeout))
	}
}
