//go:build basic

// Package integration contains integration tests for draftboard.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDraftWorkflowSQLite drives a full draft on the default SQLite backend
// and verifies the visible output at each step.
func TestDraftWorkflowSQLite(t *testing.T) {
	home := t.TempDir()
	csvPath := writeRosterCSV(t, t.TempDir())

	out := runDraftboard(t, home, "import", csvPath)
	assert.Contains(t, out, "Imported 5 players")

	out = runDraftboard(t, home, "set", "--teams", "10", "--slot", "3", "--rounds", "2")
	assert.Contains(t, out, "10 teams, slot 3, 2 rounds")

	// Two picks leave the board, one of them mine
	out = runDraftboard(t, home, "pick", "Alpha", "Back")
	assert.Contains(t, out, "Pick #1 (round 1, slot 1): Alpha Back (RB)")

	out = runDraftboard(t, home, "pick", "Bravo", "Wideout", "--mine")
	assert.Contains(t, out, "Pick #2")
	assert.Contains(t, out, "my roster")

	out = runDraftboard(t, home, "board", "--color", "no")
	assert.NotContains(t, out, "Alpha Back", "taken players leave the board")
	assert.Contains(t, out, "Charlie Passer")

	out = runDraftboard(t, home, "picks", "--output", "csv")
	assert.Contains(t, out, "1,1,1,Alpha Back,false")
	assert.Contains(t, out, "2,1,2,Bravo Wideout,true")

	out = runDraftboard(t, home, "roster", "--output", "csv")
	assert.Contains(t, out, "Bravo Wideout,WR")
	assert.NotContains(t, out, "Alpha Back")

	out = runDraftboard(t, home, "summary", "--color", "no")
	assert.Contains(t, out, "Pool: 5 players, 2 taken, 1 mine")

	// Undo returns the player to the pool
	out = runDraftboard(t, home, "undo")
	assert.Contains(t, out, "Undid pick #2: Bravo Wideout")

	out = runDraftboard(t, home, "export")
	assert.Contains(t, out, "name,pos,adp,rookie,upside,injuryRisk,offense,bye,rankNow")
	assert.Contains(t, out, "Echo Rookie,RB,35,1,0.9,0.2,4,11,")

	out = runDraftboard(t, home, "weights")
	assert.Contains(t, out, "Role sliders")

	out = runDraftboard(t, home, "session", "status")
	assert.Contains(t, out, "sqlite")

	out = runDraftboard(t, home, "session", "clear")
	assert.Contains(t, out, "cleared successfully")
}

// TestImportRejectsBadCSV checks structural CSV errors surface to the user.
func TestImportRejectsBadCSV(t *testing.T) {
	home := t.TempDir()
	csvPath := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,pos\nAlpha Back,RB\n"), 0o644))

	binaryPath := getDraftboardBinary()
	cmd := exec.Command(binaryPath, "import", csvPath)
	cmd.Env = append(cmd.Environ(), "HOME="+home)
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "adp")
}

// runDraftboard runs one command against an isolated HOME so each test gets
// its own SQLite session database.
func runDraftboard(t *testing.T, home string, args ...string) string {
	t.Helper()
	binaryPath := getDraftboardBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(cmd.Environ(), "HOME="+home)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	require.NoError(t, err, "command %v failed:\n%s", args, buf.String())
	return buf.String()
}
