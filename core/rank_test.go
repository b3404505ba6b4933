package core

import (
	"testing"

	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool returns a small mixed-position pool with distinct ADPs.
func testPool() []schema.Player {
	return []schema.Player{
		{Name: "Alpha Back", Pos: schema.RB, ADP: 1},
		{Name: "Bravo Wideout", Pos: schema.WR, ADP: 2},
		{Name: "Charlie Back", Pos: schema.RB, ADP: 3},
		{Name: "Delta Passer", Pos: schema.QB, ADP: 40},
		{Name: "Echo End", Pos: schema.TE, ADP: 60},
	}
}

func mustRoster(t *testing.T, players []schema.Player) *Roster {
	t.Helper()
	r, err := NewRoster(players)
	require.NoError(t, err)
	return r
}

func names(board []schema.RankedPlayer) []string {
	out := make([]string, len(board))
	for i, rp := range board {
		out[i] = rp.Name
	}
	return out
}

// TestRankBoardAnchorMatchesADP verifies that at full anchor the ranking
// order reduces to ascending ADP and all deltas are zero.
func TestRankBoardAnchorMatchesADP(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(schema.Knobs{QB: 100, RB: 100, WR: 100, TE: 100, ADPAnchor: 100})

	board := RankBoard(roster, w, BoardFilter{IncludeTaken: true}, nil, nil)
	require.Len(t, board, 5)

	assert.Equal(t, []string{"Alpha Back", "Bravo Wideout", "Charlie Back", "Delta Passer", "Echo End"}, names(board))
	for _, rp := range board {
		assert.Equal(t, rp.BaselineRank, rp.CurrentRank)
		assert.Zero(t, rp.Delta)
	}
}

// TestRankBoardRankMultiset checks that an unfiltered include-taken pass
// assigns exactly the ranks 1..N.
func TestRankBoardRankMultiset(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(defaultKnobs())

	board := RankBoard(roster, w, BoardFilter{IncludeTaken: true}, nil, nil)

	seen := make(map[int]bool)
	for _, rp := range board {
		seen[rp.CurrentRank] = true
		assert.Equal(t, rp.BaselineRank-rp.CurrentRank, rp.Delta)
	}
	for rank := 1; rank <= len(board); rank++ {
		assert.True(t, seen[rank], "missing rank %d", rank)
	}
}

// TestRankBoardStableTies checks that equal scores keep original pool order.
func TestRankBoardStableTies(t *testing.T) {
	pool := []schema.Player{
		{Name: "First Twin", Pos: schema.WR, ADP: 10},
		{Name: "Second Twin", Pos: schema.WR, ADP: 10},
		{Name: "Third Twin", Pos: schema.WR, ADP: 10},
	}
	roster := mustRoster(t, pool)
	w := ComputeWeights(defaultKnobs())

	board := RankBoard(roster, w, BoardFilter{IncludeTaken: true}, nil, nil)
	assert.Equal(t, []string{"First Twin", "Second Twin", "Third Twin"}, names(board))
}

// TestRankBoardFilters exercises the position and search filters.
func TestRankBoardFilters(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(defaultKnobs())

	tests := []struct {
		name     string
		filter   BoardFilter
		expected []string
	}{
		{
			name:     "position filter",
			filter:   BoardFilter{Pos: schema.RB, IncludeTaken: true},
			expected: []string{"Alpha Back", "Charlie Back"},
		},
		{
			name:     "all positions sentinel",
			filter:   BoardFilter{Pos: schema.AllPositionsFilter, Search: "end", IncludeTaken: true},
			expected: []string{"Echo End"},
		},
		{
			name:     "search is case-insensitive substring",
			filter:   BoardFilter{Search: "BACK", IncludeTaken: true},
			expected: []string{"Alpha Back", "Charlie Back"},
		},
		{
			name:     "search with no match",
			filter:   BoardFilter{Search: "zzz", IncludeTaken: true},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := RankBoard(roster, w, tt.filter, nil, nil)
			assert.Equal(t, tt.expected, names(board))
		})
	}
}

// TestRankBoardHideTakenKeepsGaps checks that hiding taken players removes
// them after ranks were assigned, leaving gaps instead of renumbering.
func TestRankBoardHideTakenKeepsGaps(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(schema.Knobs{QB: 100, RB: 100, WR: 100, TE: 100, ADPAnchor: 100})
	taken := map[string]bool{"Bravo Wideout": true}

	board := RankBoard(roster, w, BoardFilter{}, taken, nil)
	require.Len(t, board, 4)

	assert.Equal(t, []string{"Alpha Back", "Charlie Back", "Delta Passer", "Echo End"}, names(board))
	assert.Equal(t, 1, board[0].CurrentRank)
	assert.Equal(t, 3, board[1].CurrentRank) // rank 2 belonged to the hidden player
}

// TestRankBoardIdempotent checks that the pass is a pure re-derivation.
func TestRankBoardIdempotent(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(defaultKnobs())
	taken := map[string]bool{"Alpha Back": true}
	mine := map[string]bool{"Alpha Back": true}
	filter := BoardFilter{Search: "a", IncludeTaken: true}

	first := RankBoard(roster, w, filter, taken, mine)
	second := RankBoard(roster, w, filter, taken, mine)
	assert.Equal(t, first, second)
}

// TestNewRosterValidation checks the core pool invariants.
func TestNewRosterValidation(t *testing.T) {
	tests := []struct {
		name    string
		players []schema.Player
		errText string
	}{
		{
			name:    "empty name",
			players: []schema.Player{{Name: "", Pos: schema.RB, ADP: 1}},
			errText: "empty name",
		},
		{
			name:    "invalid position",
			players: []schema.Player{{Name: "Kicker Guy", Pos: "K", ADP: 1}},
			errText: "invalid position",
		},
		{
			name: "duplicate name",
			players: []schema.Player{
				{Name: "Twin", Pos: schema.RB, ADP: 1},
				{Name: "Twin", Pos: schema.WR, ADP: 2},
			},
			errText: "duplicate player name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoster(tt.players)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

// TestRosterBaselineAndResolve checks baseline ranks and name resolution.
func TestRosterBaselineAndResolve(t *testing.T) {
	roster := mustRoster(t, testPool())

	assert.Equal(t, 1, roster.BaselineRank("Alpha Back"))
	assert.Equal(t, 5, roster.BaselineRank("Echo End"))
	assert.Zero(t, roster.BaselineRank("Nobody"))

	canonical, ok := roster.ResolveName("  delta passer ")
	assert.True(t, ok)
	assert.Equal(t, "Delta Passer", canonical)

	_, ok = roster.ResolveName("missing")
	assert.False(t, ok)
}
