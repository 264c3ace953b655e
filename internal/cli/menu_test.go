package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeSpanActions records menu calls.
type fakeSpanActions struct {
	analyzed  [][]int
	generated [][3]int
	samples   int
	err       error
}

func (f *fakeSpanActions) Analyze(ctx context.Context, values []int) error {
	f.analyzed = append(f.analyzed, values)
	return f.err
}

func (f *fakeSpanActions) Generate(ctx context.Context, size, minVal, maxVal int) error {
	f.generated = append(f.generated, [3]int{size, minVal, maxVal})
	return f.err
}

func (f *fakeSpanActions) Samples(ctx context.Context) error {
	f.samples++
	return f.err
}

// fakeDragonActions records menu calls.
type fakeDragonActions struct {
	solved      []int
	bounded     []bool
	suites      int
	crossChecks []int
	err         error
}

func (f *fakeDragonActions) Solve(ctx context.Context, heads int, bounded bool) error {
	f.solved = append(f.solved, heads)
	f.bounded = append(f.bounded, bounded)
	return f.err
}

func (f *fakeDragonActions) Suite(ctx context.Context) error {
	f.suites++
	return f.err
}

func (f *fakeDragonActions) CrossCheck(ctx context.Context, limit int) error {
	f.crossChecks = append(f.crossChecks, limit)
	return f.err
}

func TestSpanMenu_ManualEntryAndQuit(t *testing.T) {
	actions := &fakeSpanActions{}
	var out bytes.Buffer
	in := strings.NewReader("1\n3 -2 8\n4\n")

	if err := runSpanMenu(context.Background(), in, &out, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([][]int{{3, -2, 8}}, actions.analyzed); diff != "" {
		t.Errorf("analyzed mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "Program finished.") {
		t.Errorf("expected quit message, got:\n%s", out.String())
	}
}

func TestSpanMenu_RejectsBadInput(t *testing.T) {
	actions := &fakeSpanActions{}
	var out bytes.Buffer
	in := strings.NewReader("9\n1\n\n1\n1 x 2\n2\nten\n4\n")

	if err := runSpanMenu(context.Background(), in, &out, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Invalid choice! Try again.",
		"Sequence cannot be empty!",
		"Error: invalid integer 'x'",
		"Error: invalid size 'ten'",
		"Program finished.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if len(actions.analyzed) != 0 || len(actions.generated) != 0 {
		t.Errorf("no action should run on bad input: analyzed=%v generated=%v", actions.analyzed, actions.generated)
	}
}

func TestSpanMenu_GenerateAndSamples(t *testing.T) {
	actions := &fakeSpanActions{}
	in := strings.NewReader("2\n5\n-3\n3\n3\n4\n")

	if err := runSpanMenu(context.Background(), in, &bytes.Buffer{}, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([][3]int{{5, -3, 3}}, actions.generated); diff != "" {
		t.Errorf("generated mismatch (-want +got):\n%s", diff)
	}
	if actions.samples != 1 {
		t.Errorf("samples = %d, want 1", actions.samples)
	}
}

func TestSpanMenu_ActionErrorIsReported(t *testing.T) {
	actions := &fakeSpanActions{err: errors.New("min value 5 cannot be greater than max value 1")}
	var out bytes.Buffer
	in := strings.NewReader("2\n3\n5\n1\n4\n")

	if err := runSpanMenu(context.Background(), in, &out, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Error: min value 5 cannot be greater than max value 1") {
		t.Errorf("expected reported error, got:\n%s", out.String())
	}
}

func TestSpanMenu_EOFEndsLoop(t *testing.T) {
	actions := &fakeSpanActions{}

	for _, input := range []string{"", "1\n", "2\n4\n"} {
		if err := runSpanMenu(context.Background(), strings.NewReader(input), &bytes.Buffer{}, actions); err != nil {
			t.Errorf("input %q: unexpected error: %v", input, err)
		}
	}
}

func TestSpanMenu_LongSequence(t *testing.T) {
	actions := &fakeSpanActions{}
	line := strings.Repeat("-1 ", 30000) // beyond bufio's default 64 KiB token
	in := strings.NewReader("1\n" + line + "\n4\n")

	if err := runSpanMenu(context.Background(), in, &bytes.Buffer{}, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions.analyzed) != 1 || len(actions.analyzed[0]) != 30000 {
		t.Fatalf("expected one analyzed sequence of 30000 values, got %d sequences", len(actions.analyzed))
	}
}

func TestSpanMenu_OversizedLineIsReported(t *testing.T) {
	actions := &fakeSpanActions{}
	var out bytes.Buffer
	in := strings.NewReader("1\n" + strings.Repeat("7", maxMenuLine+1) + "\n4\n")

	if err := runSpanMenu(context.Background(), in, &out, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Error: failed to read input: bufio.Scanner: token too long") {
		t.Errorf("expected read error to be reported, got:\n%s", out.String())
	}
	if len(actions.analyzed) != 0 {
		t.Errorf("no sequence should be analyzed, got %d", len(actions.analyzed))
	}
}

func TestDragonMenu(t *testing.T) {
	actions := &fakeDragonActions{}
	var out bytes.Buffer
	in := strings.NewReader("1\n10\n1\nabc\n2\n3\nx\n4\n")

	if err := runDragonMenu(context.Background(), in, &out, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int{10}, actions.solved); diff != "" {
		t.Errorf("solved mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true}, actions.bounded); diff != "" {
		t.Errorf("menu must solve with the bounded range (-want +got):\n%s", diff)
	}
	if actions.suites != 1 {
		t.Errorf("suites = %d, want 1", actions.suites)
	}
	if diff := cmp.Diff([]int{0}, actions.crossChecks); diff != "" {
		t.Errorf("crossChecks mismatch (-want +got):\n%s", diff)
	}

	output := out.String()
	for _, want := range []string{"Error: invalid heads 'abc'", "Invalid choice!", "Program finished."} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestDragonMenu_ActionErrorIsReported(t *testing.T) {
	actions := &fakeDragonActions{err: errors.New("heads must be between 1 and 99, got 150")}
	var out bytes.Buffer

	if err := runDragonMenu(context.Background(), strings.NewReader("1\n150\n4\n"), &out, actions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Error: heads must be between 1 and 99, got 150") {
		t.Errorf("expected reported error, got:\n%s", out.String())
	}
}
