package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/example/casework/internal/cli"
	"github.com/example/casework/internal/version"
	"github.com/example/casework/internal/wire"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "casework",
		Short:   "casework - negative spans and dragon flocks",
		Version: version.String(),
		Long: `casework bundles two small exercises:

  span    sum of negative elements between a sequence's maximum and minimum
  dragon  maximum power of a dragon flock with a fixed number of heads`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateLogLevel(logLevel); err != nil {
				return err
			}
			if logLevel != "" {
				wire.SetLogLevel(logLevel)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			wire.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	// Add subcommands
	rootCmd.AddCommand(cli.SpanCmd())
	rootCmd.AddCommand(cli.DragonCmd())
	rootCmd.AddCommand(cli.MenuCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
