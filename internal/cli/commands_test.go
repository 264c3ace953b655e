package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/casework/internal/config"
)

// TestCommandStructure verifies subcommands are registered with metadata.
func TestCommandStructure(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		subs string
	}{
		{cmd: SpanCmd(), subs: "analyze,generate,samples"},
		{cmd: DragonCmd(), subs: "solve,suite,verify"},
		{cmd: MenuCmd(), subs: "dragon,span"},
		{cmd: ConfigCmd(), subs: "init,show"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			var names []string
			for _, sub := range tt.cmd.Commands() {
				names = append(names, sub.Name())
				if sub.Short == "" {
					t.Errorf("%s %s should have a Short description", tt.cmd.Name(), sub.Name())
				}
			}
			if got := strings.Join(names, ","); got != tt.subs {
				t.Errorf("subcommands = %s, want %s", got, tt.subs)
			}
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvLogLevel, "")

	var out bytes.Buffer
	initCmd := ConfigCmd()
	initCmd.SetOut(&out)
	initCmd.SetArgs([]string{"init"})
	if err := initCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(config.Path(dir)); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// A second init without --force refuses to overwrite.
	again := ConfigCmd()
	again.SetOut(&bytes.Buffer{})
	again.SetErr(&bytes.Buffer{})
	again.SetArgs([]string{"init"})
	if err := again.Execute(); err == nil {
		t.Error("expected error when config already exists")
	}

	out.Reset()
	showCmd := ConfigCmd()
	showCmd.SetOut(&out)
	showCmd.SetArgs([]string{"show"})
	if err := showCmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out.String(), "verify_limit: 20") {
		t.Errorf("unexpected config output:\n%s", out.String())
	}
}
