package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points the CLI at a throwaway SQLite database so state
// survives between command invocations.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`storage:
  driver: sqlite
  sqlite:
    path: %s
log:
  level: error
`, filepath.Join(dir, "twm.db"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, cfg, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag to its default; cobra keeps parsed values
// on the package-level commands between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestClassifyCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "", "classify", "Erstelle", "eine", "Tabelle", "der", "Planeten")
	require.NoError(t, err)
	assert.Contains(t, out, "table")
	assert.Contains(t, out, `matched keyword: "tabelle"`)

	out, err = run(t, cfg, "", "classify", "Hallo")
	require.NoError(t, err)
	assert.Contains(t, out, "text")
	assert.Contains(t, out, "no keyword matched")
}

func TestGenerateListShowDelete(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "", "generate", "Erstelle eine Präsentation über Mars")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved")

	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "presentation")
	assert.Contains(t, out, "Displayed 1 of 1 items.")

	out, err = run(t, cfg, "", "list", "--type", "podcast")
	require.NoError(t, err)
	assert.Contains(t, out, "No content found.")

	_, err = run(t, cfg, "", "list", "--type", "novel")
	require.Error(t, err)

	_, err = run(t, cfg, "", "show", "does-not-exist")
	require.Error(t, err)

	_, err = run(t, cfg, "", "delete", "--all")
	require.NoError(t, err)
	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No content found.")
}

func TestGenerateNoSave(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "", "generate", "--no-save", "Schreibe einen Artikel")
	require.NoError(t, err)
	assert.NotContains(t, out, "Saved")

	out, err = run(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No content found.")
}

func TestGenerateAsyncWithoutBroker(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "", "generate", "--async", "Schreibe einen Artikel")
	require.Error(t, err)
}

func TestDocumentFromStdin(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "Protokoll der Sitzung.", "document", "--title", "Protokoll")
	require.NoError(t, err)
	assert.Contains(t, out, `"Protokoll"`)

	out, err = run(t, cfg, "", "list", "--type", "document")
	require.NoError(t, err)
	assert.Contains(t, out, "Displayed 1 of 1 items.")

	_, err = run(t, cfg, "   ", "document")
	require.Error(t, err)
}

func TestChatCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Willkommen bei TWM")

	_, err = run(t, cfg, "", "chat", "Schreibe", "ein", "Gedicht")
	require.NoError(t, err)

	out, err = run(t, cfg, "", "chat", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Schreibe ein Gedicht")

	_, err = run(t, cfg, "", "chat", "--clear")
	require.NoError(t, err)
	out, err = run(t, cfg, "", "chat", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Willkommen bei TWM")
}

func TestSettingsCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "", "settings", "set", "openaiKey", "sk-secret-1234")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-secret")
	assert.Contains(t, out, "1234")

	out, err = run(t, cfg, "", "settings", "set", "mockMode", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "mock mode is off")

	_, err = run(t, cfg, "", "settings", "set", "colour", "blue")
	require.Error(t, err)
}

func TestJobCommand_Unknown(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "", "job", "no-such-task")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAbbreviate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "kurz", abbreviate("kurz", 10))
	assert.Equal(t, "äöü...", abbreviate("äöüß", 3))
}

func TestModelsCommand(t *testing.T) {
	out, err := run(t, "/nonexistent/config.yaml", "", "models")
	require.NoError(t, err)
	assert.Contains(t, out, "podcast")
	assert.Contains(t, out, "gpt-4")
	assert.Contains(t, out, "präsentation, folien, slides")

	out, err = run(t, "/nonexistent/config.yaml", "", "models", "--task", "image")
	require.NoError(t, err)
	assert.Contains(t, out, "llama-3-70b")
	assert.NotContains(t, out, "claude-3-opus")
}
