package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeConfig points the local store at a fresh SQLite file.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "database:\n" +
		"  driver: sqlite\n" +
		"  dsn: " + filepath.Join(dir, "press_machine.db") + "\n" +
		"  log_level: silent\n" +
		"report:\n" +
		"  title: Plant 2\n" +
		"  timezone: UTC\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSetup_SeedsOnce(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "setup", "--seed", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Example data inserted.")

	out, err = run(t, "setup", "--seed", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "example data skipped")
}

func TestMachines_JSONAndFilter(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "setup", "--seed", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "machines", "-o", "json", "--config", cfg)
	require.NoError(t, err)
	var all []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Len(t, all, 5)
	assert.Equal(t, "P001", all[0]["machine_number"])

	out, err = run(t, "machines", "--filter", "コマツ", "-o", "yaml", "--config", cfg)
	require.NoError(t, err)
	var filtered []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "P002", filtered[0]["machine_number"])
}

func TestMachines_Table(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "setup", "--seed", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "machines", "--config", cfg)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[0], "MACHINE NO")
}

func TestMaintenance_NewestFirst(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "setup", "--seed", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "maintenance", "-o", "json", "--config", cfg)
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 7)
	assert.Equal(t, "2024-07-20 11:15:00", entries[0]["maintenance_datetime"])
	assert.Equal(t, "P002", entries[0]["machine_number"])
}

func TestReport_Stats(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "setup", "--seed", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "report", "stats", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Plant 2 - Statistics")
	assert.Contains(t, out, "Total machines: 5")
	assert.Contains(t, out, "Total maintenance records: 7")
}

func TestReport_EmptyStore(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "report", "machines", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Plant 2 - Machine List")
}

func TestTarget_Errors(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, "machines", "--target", "remote", "--config", cfg)
	assert.ErrorContains(t, err, "no remote store configured")

	_, err = run(t, "machines", "--target", "cloud", "--config", cfg)
	assert.ErrorContains(t, err, "unknown target")
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, err := run(t, "machines", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "loading configuration")
}

func TestPrintTable_AlignsWideText(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"Maker", "No"}, [][]string{
		{"アイダ", "1"},
		{"AIDA", "2"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "MAKER   NO", lines[0])
	assert.Equal(t, "アイダ  1", lines[1])
	assert.Equal(t, "AIDA    2", lines[2])
}

func TestPrintOutput_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printOutput(&buf, "xml", map[string]int{"a": 1})
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ア...", truncate("アイダエンジニアリング", 5))
	assert.Equal(t, "アイダ...", truncate("アイダエンジニアリング", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
