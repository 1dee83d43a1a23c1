package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/internal/backend"
	"slate/internal/store"
)

func TestAddAndList(t *testing.T) {
	dbPath := testDBPath(t)

	out, err := runSlate(t, dbPath, "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Buy milk"`)

	_, err = runSlate(t, dbPath, "add", "Walk dog")
	require.NoError(t, err)

	out, err = runSlate(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. [ ] Buy milk")
	assert.Contains(t, out, " 2. [ ] Walk dog")
}

func TestAddWhitespaceTitleFails(t *testing.T) {
	_, err := runSlate(t, testDBPath(t), "add", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must not be empty")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListEmpty(t *testing.T) {
	out, err := runSlate(t, testDBPath(t), "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", out)
}

func TestToggleFlow(t *testing.T) {
	dbPath := testDBPath(t)
	_, err := runSlate(t, dbPath, "add", "Buy milk")
	require.NoError(t, err)

	out, err := runSlate(t, dbPath, "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] Buy milk")

	out, err = runSlate(t, dbPath, "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] Buy milk")
}

func TestToggleOutOfRangeIsNotAnError(t *testing.T) {
	out, err := runSlate(t, testDBPath(t), "toggle", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "no task at position 9")
}

func TestToggleNonIntegerFails(t *testing.T) {
	_, err := runSlate(t, testDBPath(t), "toggle", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSelectAndRmSelected(t *testing.T) {
	dbPath := testDBPath(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := runSlate(t, dbPath, "add", title)
		require.NoError(t, err)
	}

	out, err := runSlate(t, dbPath, "select", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "selected: a")
	assert.Contains(t, out, "selected: c")

	out, err = runSlate(t, dbPath, "rm", "--selected")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 task(s), 1 remaining")

	out, err = runSlate(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. [ ] b")
	assert.NotContains(t, out, "] a")
	assert.NotContains(t, out, "] c")
}

func TestRmByPosition(t *testing.T) {
	dbPath := testDBPath(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := runSlate(t, dbPath, "add", title)
		require.NoError(t, err)
	}

	out, err := runSlate(t, dbPath, "rm", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 task(s), 2 remaining")

	out, err = runSlate(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. [ ] a")
	assert.Contains(t, out, " 2. [ ] c")
}

func TestRmOutOfRangeRemovesNothing(t *testing.T) {
	dbPath := testDBPath(t)
	_, err := runSlate(t, dbPath, "add", "a")
	require.NoError(t, err)

	out, err := runSlate(t, dbPath, "rm", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 task(s), 1 remaining")
}

func TestRmAll(t *testing.T) {
	dbPath := testDBPath(t)
	for _, title := range []string{"a", "b"} {
		_, err := runSlate(t, dbPath, "add", title)
		require.NoError(t, err)
	}

	out, err := runSlate(t, dbPath, "rm", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 task(s), 0 remaining")

	out, err = runSlate(t, dbPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", out)
}

func TestRmRequiresExactlyOneMode(t *testing.T) {
	dbPath := testDBPath(t)

	_, err := runSlate(t, dbPath, "rm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = runSlate(t, dbPath, "rm", "1", "--all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = runSlate(t, dbPath, "rm", "--all", "--selected")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestAddJSONOutput(t *testing.T) {
	out, err := runSlate(t, testDBPath(t), "--format", "json", "add", "Buy milk")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	assert.Equal(t, "Buy milk", data["title"])
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, false, data["isCompleted"])
	assert.Equal(t, false, data["isSelected"])
}

func TestListJSONOutput(t *testing.T) {
	dbPath := testDBPath(t)
	_, err := runSlate(t, dbPath, "add", "Buy milk")
	require.NoError(t, err)

	out, err := runSlate(t, dbPath, "--format", "json", "list")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	assert.Equal(t, float64(1), data["count"])
}

func TestCorruptedStateStartsEmpty(t *testing.T) {
	dbPath := testDBPath(t)
	_, err := runSlate(t, dbPath, "add", "Buy milk")
	require.NoError(t, err)

	// Wreck the stored snapshot behind the CLI's back.
	b, err := backend.OpenSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, b.Put(context.Background(), store.Key, []byte("garbage {{{")))
	require.NoError(t, b.Close())

	out, err := runSlate(t, dbPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", out)
}

func TestMemoryBackendIsEphemeral(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--backend", "memory", "list"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestParsePositions(t *testing.T) {
	positions, err := parsePositions([]string{"1", "3", "12"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 12}, positions)

	_, err = parsePositions([]string{"1", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid position "two"`)
}

// runSlate executes one command line against the given database file,
// the way separate app launches would hit the same store.
func runSlate(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.db")
}
