package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/casework/internal/wire"
)

// DragonCmd returns the dragon command
func DragonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dragon",
		Short: "Maximize the power of a dragon flock",
		Long: `Split N heads between dragons carrying at most 7 heads each so that the
flock's power, the product of heads per dragon, is maximal.`,
	}

	cmd.AddCommand(dragonSolveCmd())
	cmd.AddCommand(dragonSuiteCmd())
	cmd.AddCommand(dragonVerifyCmd())

	return cmd
}

func dragonSolveCmd() *cobra.Command {
	var unbounded bool

	cmd := &cobra.Command{
		Use:   "solve <heads>",
		Short: "Solve the flock for a number of heads",
		Long: `Solve the flock for a number of heads (1-99).

Examples:
  casework dragon solve 10
  casework dragon solve 300 --unbounded`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			heads, err := parseInt("heads", args[0])
			if err != nil {
				return err
			}
			return wire.DragonAdapterWithOutput(cmd.OutOrStdout()).Solve(cmd.Context(), heads, !unbounded)
		},
	}

	cmd.Flags().BoolVar(&unbounded, "unbounded", false, "Accept head counts outside 1-99 (up to 100000)")

	return cmd
}

func dragonSuiteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suite",
		Short: "Solve the configured suite of head counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DragonAdapterWithOutput(cmd.OutOrStdout()).Suite(cmd.Context())
		},
	}
}

func dragonVerifyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the closed-form solution against brute force",
		Long: `Compare the closed-form maximum with an exhaustive search for every head
count from 1 to --limit. Exits non-zero on any mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.DragonAdapterWithOutput(cmd.OutOrStdout()).CrossCheck(cmd.Context(), limit); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Largest head count to check (default from config)")

	return cmd
}
