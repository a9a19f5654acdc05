package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testAxes = `
[output]
formats = ["svg", "json"]

[[axis]]
name = "revenue"
orient = "left"
format = "$%.0f"
grid_lines = true
width = 400

[axis.scale]
domain = [0, 100]
range = [300, 0]

[[axis]]
name = "day"
orient = "bottom"

[axis.scale]
type = "band"
domain = ["Mon", "Tue", "Wed"]
range = [0, 300]
`

// writeAxes stores testAxes in a temp dir and returns its path.
func writeAxes(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(testAxes), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"render", "inspect", "serve", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out, "axisticks") {
		t.Error("bash completion does not mention the command name")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion for an unknown shell should fail")
	}
}
