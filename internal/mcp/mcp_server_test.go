package mcp_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	mcp_internal "github.com/3JRock3/Ver-2-Draft/internal/mcp"
	"github.com/3JRock3/Ver-2-Draft/internal/session"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seededManager returns a store manager whose session store serves the
// given snapshot and accepts saves.
func seededManager(t *testing.T, snap session.Snapshot) *session.MockStoreManager {
	t.Helper()
	data, err := session.EncodeSnapshot(snap)
	require.NoError(t, err)

	store := &session.MockSessionStore{}
	store.On("Get", "default").Return(data, session.SnapshotVersion, int64(1), nil)
	store.On("Set", "default", mock.Anything, session.SnapshotVersion, mock.AnythingOfType("int64")).Return(nil)

	mgr := &session.MockStoreManager{}
	mgr.On("GetSessionStore").Return(store)
	return mgr
}

func testSnapshot() session.Snapshot {
	snap := session.DefaultSnapshot()
	snap.League = schema.LeagueConfig{Teams: 2, MySlot: 1, Rounds: 3}
	snap.Roster = []schema.Player{
		{Name: "Alpha Back", Pos: schema.RB, ADP: 1},
		{Name: "Bravo Wideout", Pos: schema.WR, ADP: 2},
		{Name: "Charlie Passer", Pos: schema.QB, ADP: 3},
	}
	return snap
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerGetBoard(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}
	mgr := seededManager(t, testSnapshot())
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "get_board", map[string]any{"pos": "RB"})
	require.False(t, res.IsError)

	var board []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &board))
	require.Len(t, board, 1)
	assert.Equal(t, "Alpha Back", board[0]["name"])
	assert.Equal(t, float64(1), board[0]["currentRank"])
}

func TestMCPServerGetBoardNoRoster(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}

	store := &session.MockSessionStore{}
	store.On("Get", "default").Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	mgr := &session.MockStoreManager{}
	mgr.On("GetSessionStore").Return(store)

	s := mcp_internal.NewMCPServer(baseCfg, mgr)
	res := callTool(t, s, "get_board", nil)
	assert.True(t, res.IsError, "The response should indicate an error state")
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no roster loaded")
}

func TestMCPServerAddPick(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}
	mgr := seededManager(t, testSnapshot())
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "add_pick", map[string]any{"name": "alpha back", "mine": true})
	require.False(t, res.IsError)

	var ev map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &ev))
	assert.Equal(t, "Alpha Back", ev["name"])
	assert.Equal(t, float64(1), ev["overall"])
	assert.Equal(t, true, ev["mine"])
}

func TestMCPServerAddPickUnknown(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}
	mgr := seededManager(t, testSnapshot())
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "add_pick", map[string]any{"name": "Nobody"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "unknown player")
}

func TestMCPServerAddPickTaken(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}
	snap := testSnapshot()
	snap.Picks = []schema.PickEvent{{Overall: 1, Name: "Alpha Back", Mine: false}}
	mgr := seededManager(t, snap)
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "add_pick", map[string]any{"name": "Alpha Back"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "already taken")
}

func TestMCPServerUndoPickEmpty(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}
	mgr := seededManager(t, testSnapshot())
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "undo_pick", nil)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "nothing to undo")
}

func TestMCPServerGetUpcomingPicks(t *testing.T) {
	baseCfg := &contract.Config{SessionKey: contract.DefaultSessionKey}
	mgr := seededManager(t, testSnapshot())
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	res := callTool(t, s, "get_upcoming_picks", map[string]any{"count": 2.0})
	require.False(t, res.IsError)

	var upcoming []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &upcoming))
	require.Len(t, upcoming, 2)
	// Slot 1 of a 2-team snake owns overalls 1 and 4
	assert.Equal(t, float64(1), upcoming[0]["overall"])
	assert.Equal(t, float64(4), upcoming[1]["overall"])
}
