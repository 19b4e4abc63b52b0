package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's config and TADA_* variables out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"TADA_THEME", "TADA_LOG_LEVEL", "TADA_LOG_FILE", "TADA_NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const groceries = `# groceries
add Buy milk
add Eggs
add Bread
done 1
edit 2
commit 2 Eggs (dozen)
rm 3
`

func TestReplayPanel(t *testing.T) {
	isolate(t)
	p := writeFile(t, "groceries.todo", groceries)

	code, out, errOut := run(t, "", "replay", "--theme", "mono", p)
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Todos  ✔ 1  • 1  Total 2")
	assert.Contains(t, out, "#1   [x] Buy milk")
	assert.Contains(t, out, "#2   [ ] Eggs (dozen)")
	assert.NotContains(t, out, "Bread")
	assert.Contains(t, out, "applied 7 commands")
}

func TestReplayGrouped(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, groceries, "replay", "--theme", "mono", "--group")
	require.Equal(t, 0, code)

	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	require.True(t, pending >= 0 && done > pending)
	assert.Greater(t, strings.Index(out, "Buy milk"), done)
}

func TestReplayJSONFromStdin(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "add A\nadd B\nedit 2\nclear\nadd C\n", "replay", "--json", "-")
	require.Equal(t, 0, code)

	var items []model.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, []model.Item{{ID: 3, Text: "C"}}, items, "ids keep counting after clear")
}

func TestReplayEmptyScript(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "", "replay", "--json")
	require.Equal(t, 0, code)
	assert.Equal(t, "[]\n", out)
}

func TestReplayParseErrorIsUsage(t *testing.T) {
	isolate(t)
	code, _, errOut := run(t, "add A\nfly 1\n", "replay")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "stdin: line 2")
	assert.Contains(t, errOut, "unknown command")
}

func TestReplayMissingFile(t *testing.T) {
	isolate(t)
	code, _, errOut := run(t, "", "replay", filepath.Join(t.TempDir(), "missing.todo"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "open script")
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown subcommand", args: []string{"frobnicate"}, want: "unknown subcommand"},
		{name: "unknown flag", args: []string{"replay", "--nope"}, want: "unknown flag"},
		{name: "too many files", args: []string{"replay", "a", "b"}, want: "at most one file"},
		{name: "bad theme", args: []string{"replay", "--theme", "pink"}, want: "theme"},
		{name: "bad level", args: []string{"replay", "--log-level", "loud"}, want: "logging.level"},
		{name: "missing config", args: []string{"replay", "-c", "/nonexistent/tada.yml"}, want: "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, "", tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	isolate(t)
	cfg := writeFile(t, "config.yml", "theme: mono\n")

	code, out, _ := run(t, "add A\n", "replay", "-c", cfg)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[ ] A")

	t.Setenv("TADA_THEME", "classic")
	code, out, _ = run(t, "add A\n", "replay", "-c", cfg)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "☐ A", "env overrides the file")

	code, out, _ = run(t, "add A\n", "replay", "-c", cfg, "--theme", "mono")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[ ] A", "flags override env")
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)
	code, _, errOut := run(t, "add A\nrm 9\n", "replay", "-v")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "component=store")
	assert.Contains(t, errOut, "msg=no-op")
	assert.Contains(t, errOut, "replay finished")
}

func TestReplayQuietByDefault(t *testing.T) {
	isolate(t)
	code, _, errOut := run(t, "add A\nrm 9\n", "replay")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

func TestLogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "tada.log")

	code, _, errOut := run(t, "add A\n", "replay", "--log-file", logPath, "--log-level", "debug")
	require.Equal(t, 0, code)
	assert.NotContains(t, errOut, "replay finished")

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "replay finished")
}

func TestInteractiveNeedsTerminal(t *testing.T) {
	isolate(t)
	code, _, errOut := run(t, "")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "needs a terminal")
}

func TestHelp(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "replay")
	assert.Contains(t, out, "space toggle")
}
