// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the draftboard MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Draftboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_board ---
	s.AddTool(mcp.NewTool("get_board",
		mcp.WithDescription("Rank the available player pool under the current session weights."),
		mcp.WithString("pos", mcp.Description("Position filter (QB, RB, WR, TE or ALL). Defaults to ALL."), mcp.Enum("QB", "RB", "WR", "TE", "ALL")),
		mcp.WithString("search", mcp.Description("Case-insensitive name substring filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("show_taken", mcp.Description("Keep drafted players on the board.")),
	), h.handleGetBoard)

	// --- 2. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize the draft: position counts, best available players and my upcoming picks."),
		mcp.WithNumber("top", mcp.Description("Pool depth for the position counts. Defaults to 30.")),
		mcp.WithNumber("best", mcp.Description("Best-available list length. Defaults to 5.")),
	), h.handleGetSummary)

	// --- 3. Tool: get_upcoming_picks ---
	s.AddTool(mcp.NewTool("get_upcoming_picks",
		mcp.WithDescription("Project my next picks in the snake order with best-available projections."),
		mcp.WithNumber("count", mcp.Description("Number of upcoming picks to project. Defaults to 3.")),
	), h.handleGetUpcomingPicks)

	// --- 4. Tool: add_pick ---
	s.AddTool(mcp.NewTool("add_pick",
		mcp.WithDescription("Record a pick, removing the player from the available pool."),
		mcp.WithString("name", mcp.Description("The drafted player's name (case-insensitive)."), mcp.Required()),
		mcp.WithBoolean("mine", mcp.Description("Whether my slot made the pick.")),
	), h.handleAddPick)

	// --- 5. Tool: undo_pick ---
	s.AddTool(mcp.NewTool("undo_pick",
		mcp.WithDescription("Undo the most recent pick, returning the player to the pool."),
	), h.handleUndoPick)

	return s
}

// StartMCPServer starts the draftboard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
