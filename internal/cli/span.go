// Package cli provides CLI commands for the casework application.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/casework/internal/wire"
)

// SpanCmd returns the span command
func SpanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span",
		Short: "Sum negative elements between a sequence's maximum and minimum",
		Long: `Find the first maximum and the first minimum of an integer sequence and
sum the negative elements that lie strictly between them.`,
	}

	cmd.AddCommand(spanAnalyzeCmd())
	cmd.AddCommand(spanGenerateCmd())
	cmd.AddCommand(spanSamplesCmd())

	return cmd
}

func spanAnalyzeCmd() *cobra.Command {
	var values string

	cmd := &cobra.Command{
		Use:   "analyze [-- values...]",
		Short: "Analyze a sequence given on the command line",
		Long: `Analyze an integer sequence.

Values are taken from --values and from positional arguments. Put
positional arguments after -- so negative numbers are not read as flags.

Examples:
  casework span analyze --values "3 -2 8 -5 1 -3 9 -1 2"
  casework span analyze -- 3 -2 8 -5 1 -3 9 -1 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(values + " " + strings.Join(args, " "))
			seq, err := parseSequence(input)
			if err != nil {
				return err
			}
			return wire.SpanAdapterWithOutput(cmd.OutOrStdout()).Analyze(cmd.Context(), seq)
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "Whitespace-separated integers")

	return cmd
}

func spanGenerateCmd() *cobra.Command {
	var (
		size   int
		minVal int
		maxVal int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Analyze a randomly generated sequence",
		Long: `Generate a random integer sequence and analyze it.

Unset flags fall back to the span section of .casework/config.yaml.

Examples:
  casework span generate
  casework span generate --size 15 --min -20 --max 20 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				wire.SetSeed(seed)
			}

			defaults := wire.Config().Span
			if !cmd.Flags().Changed("size") {
				size = defaults.Size
			}
			if !cmd.Flags().Changed("min") {
				minVal = defaults.Min
			}
			if !cmd.Flags().Changed("max") {
				maxVal = defaults.Max
			}

			return wire.SpanAdapterWithOutput(cmd.OutOrStdout()).Generate(cmd.Context(), size, minVal, maxVal)
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Number of elements (default from config)")
	cmd.Flags().IntVar(&minVal, "min", 0, "Smallest value (default from config)")
	cmd.Flags().IntVar(&maxVal, "max", 0, "Largest value (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible sequences")

	return cmd
}

func spanSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Analyze the built-in sample sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.SpanAdapterWithOutput(cmd.OutOrStdout()).Samples(cmd.Context()); err != nil {
				return fmt.Errorf("samples failed: %w", err)
			}
			return nil
		},
	}
}
