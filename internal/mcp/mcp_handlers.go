package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/3JRock3/Ver-2-Draft/core"
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// loadState rebuilds the draft state from the session snapshot.
func (h *toolHandler) loadState() (*draft.State, error) {
	return draft.LoadState(h.mgr.GetSessionStore(), h.baseCfg.SessionKey)
}

// saveState persists the sequencer's log back into the snapshot.
func (h *toolHandler) saveState(st *draft.State) error {
	return draft.SaveState(h.mgr.GetSessionStore(), h.baseCfg.SessionKey, st)
}

func (h *toolHandler) handleGetBoard(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.loadState()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filter := core.BoardFilter{
		Pos:          schema.AllPositionsFilter,
		Search:       request.GetString("search", ""),
		IncludeTaken: request.GetBool("show_taken", st.Snap.ShowTaken),
	}
	if p := request.GetString("pos", ""); p != "" {
		filter.Pos = schema.Position(p)
	}

	board := core.RankBoard(st.Roster, st.Weights, filter, st.Seq.Taken(), st.Seq.Mine())
	if l := request.GetInt("limit", 0); l > 0 && l < len(board) {
		board = board[:l]
	}

	jsonData, _ := json.MarshalIndent(board, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.loadState()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := st.Summary(request.GetInt("top", 0), request.GetInt("best", 0))
	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetUpcomingPicks(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.loadState()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	upcoming := st.Upcoming(request.GetInt("count", core.UpcomingPickCount))
	jsonData, _ := json.MarshalIndent(upcoming, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAddPick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	st, err := h.loadState()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	canonical, ok := st.Roster.ResolveName(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown player %q", name)), nil
	}

	mine := request.GetBool("mine", false)
	if !st.Seq.AddPick(canonical, mine) {
		return mcp.NewToolResultError(fmt.Sprintf("player %q is already taken", canonical)), nil
	}

	if err := h.saveState(st); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save session: %v", err)), nil
	}

	log := st.Seq.Log()
	jsonData, _ := json.MarshalIndent(log[len(log)-1], "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleUndoPick(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.loadState()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log := st.Seq.Log()
	if !st.Seq.UndoPick() {
		return mcp.NewToolResultError("pick log is empty, nothing to undo"), nil
	}

	if err := h.saveState(st); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save session: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(log[len(log)-1], "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
