package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/casework/internal/wire"
)

// spanActions is the subset of the span adapter the menu drives.
type spanActions interface {
	Analyze(ctx context.Context, values []int) error
	Generate(ctx context.Context, size, minVal, maxVal int) error
	Samples(ctx context.Context) error
}

// dragonActions is the subset of the dragon adapter the menu drives.
type dragonActions interface {
	Solve(ctx context.Context, heads int, bounded bool) error
	Suite(ctx context.Context) error
	CrossCheck(ctx context.Context, limit int) error
}

// MenuCmd returns the menu command
func MenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menus for the exercises",
		Long: `Numbered interactive menus reading from standard input.

Invalid choices and malformed numbers are reported and re-prompted.
Choose the quit option or send EOF (Ctrl-D) to leave.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "span",
		Short: "Interactive negative-span analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return runSpanMenu(cmd.Context(), cmd.InOrStdin(), out, wire.SpanAdapterWithOutput(out))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "dragon",
		Short: "Interactive dragon flock solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return runDragonMenu(cmd.Context(), cmd.InOrStdin(), out, wire.DragonAdapterWithOutput(out))
		},
	})

	return cmd
}

// menuSession reads line-oriented answers from a scanner.
type menuSession struct {
	in  *bufio.Scanner
	out io.Writer
}

// maxMenuLine bounds a single answer, long enough for hand-typed sequences.
const maxMenuLine = 1 << 20

func newMenuSession(in io.Reader, out io.Writer) *menuSession {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxMenuLine)
	return &menuSession{in: scanner, out: out}
}

// ask prints label and returns the trimmed answer; ok is false once input
// ends. A read failure is reported before the session ends.
func (m *menuSession) ask(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		if err := m.in.Err(); err != nil {
			m.report(fmt.Errorf("failed to read input: %w", err))
		}
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// askInt asks for an integer; ok is false on EOF.
func (m *menuSession) askInt(label, field string) (int, bool, error) {
	answer, ok := m.ask(label)
	if !ok {
		return 0, false, nil
	}
	v, err := parseInt(field, answer)
	return v, true, err
}

func (m *menuSession) report(err error) {
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func runSpanMenu(ctx context.Context, in io.Reader, out io.Writer, actions spanActions) error {
	m := newMenuSession(in, out)

	fmt.Fprintln(out, "=== NEGATIVE SPAN ===")
	fmt.Fprintln(out, "Sum of negative elements between the maximum and the minimum")
	fmt.Fprintln(out)

	for {
		fmt.Fprintln(out, "Choose a mode:")
		fmt.Fprintln(out, "1. Enter a sequence manually")
		fmt.Fprintln(out, "2. Generate a random sequence")
		fmt.Fprintln(out, "3. Run self tests")
		fmt.Fprintln(out, "4. Quit")

		choice, ok := m.ask("\nYour choice (1-4): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			fmt.Fprintln(out, "\nEnter sequence elements separated by spaces:")
			line, ok := m.ask("")
			if !ok {
				return nil
			}
			if line == "" {
				fmt.Fprintln(out, "Sequence cannot be empty!")
				continue
			}
			values, err := parseSequence(line)
			if err != nil {
				m.report(err)
				continue
			}
			fmt.Fprintln(out)
			m.report(actions.Analyze(ctx, values))

		case "2":
			size, ok, err := m.askInt("Sequence size: ", "size")
			if !ok {
				return nil
			}
			if err != nil {
				m.report(err)
				continue
			}
			minVal, ok, err := m.askInt("Minimum element value: ", "minimum")
			if !ok {
				return nil
			}
			if err != nil {
				m.report(err)
				continue
			}
			maxVal, ok, err := m.askInt("Maximum element value: ", "maximum")
			if !ok {
				return nil
			}
			if err != nil {
				m.report(err)
				continue
			}
			fmt.Fprintln(out)
			m.report(actions.Generate(ctx, size, minVal, maxVal))

		case "3":
			m.report(actions.Samples(ctx))

		case "4":
			fmt.Fprintln(out, "Program finished.")
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice! Try again.")
		}

		fmt.Fprintln(out)
	}
}

func runDragonMenu(ctx context.Context, in io.Reader, out io.Writer, actions dragonActions) error {
	m := newMenuSession(in, out)

	fmt.Fprintln(out, "=== DRAGON FLOCK POWER ===")
	fmt.Fprintln(out, "Find the maximum power of a dragon flock with a known number of heads")
	fmt.Fprintln(out, "Constraint: at most 7 heads per dragon")
	fmt.Fprintln(out)

	for {
		fmt.Fprintln(out, "Choose a mode:")
		fmt.Fprintln(out, "1. Solve for a specific N")
		fmt.Fprintln(out, "2. Run comprehensive tests")
		fmt.Fprintln(out, "3. Verify the algorithm")
		fmt.Fprintln(out, "4. Quit")

		choice, ok := m.ask("\nYour choice (1-4): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			heads, ok, err := m.askInt("Enter the number of heads in the flock (1-99): ", "heads")
			if !ok {
				return nil
			}
			if err != nil {
				m.report(err)
				continue
			}
			fmt.Fprintln(out)
			m.report(actions.Solve(ctx, heads, true))

		case "2":
			m.report(actions.Suite(ctx))

		case "3":
			m.report(actions.CrossCheck(ctx, 0))

		case "4":
			fmt.Fprintln(out, "Program finished.")
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice!")
		}

		fmt.Fprintln(out)
	}
}
