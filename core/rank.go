package core

import (
	"sort"
	"strings"

	"github.com/3JRock3/Ver-2-Draft/schema"
)

// BoardFilter narrows the pool before a ranking pass.
type BoardFilter struct {
	Pos          schema.Position // AllPositionsFilter (or empty) disables position filtering
	Search       string          // Case-insensitive substring match on player name
	IncludeTaken bool            // Keep already-picked players in the output
}

// matches reports whether a player survives the position and search filters.
func (f BoardFilter) matches(p *schema.Player) bool {
	if f.Pos != "" && f.Pos != schema.AllPositionsFilter && p.Pos != f.Pos {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// RankBoard runs one full ranking pass: filter the pool, score the
// survivors, sort descending by score with a stable tie-break on original
// order, assign 1-based current ranks and compute deltas against the
// load-time baseline. Taken players are removed last when IncludeTaken is
// false, so hiding them leaves gaps in the rank numbers instead of
// renumbering the rest.
//
// The pass is a pure re-derivation: it owns no state and two passes with
// identical inputs produce identical output.
func RankBoard(roster *Roster, w schema.Weights, f BoardFilter, taken, mine map[string]bool) []schema.RankedPlayer {
	pool := roster.Players()

	board := make([]schema.RankedPlayer, 0, len(pool))
	for i := range pool {
		p := &pool[i]
		if !f.matches(p) {
			continue
		}
		score, breakdown := Score(p, w)
		board = append(board, schema.RankedPlayer{
			Player:       *p,
			BaselineRank: roster.BaselineRank(p.Name),
			Score:        score,
			Taken:        taken[p.Name],
			Mine:         mine[p.Name],
			Breakdown:    breakdown,
		})
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Score > board[j].Score
	})

	for i := range board {
		board[i].CurrentRank = i + 1
		board[i].Delta = board[i].BaselineRank - board[i].CurrentRank
	}

	if f.IncludeTaken {
		return board
	}

	available := board[:0]
	for _, rp := range board {
		if !rp.Taken {
			available = append(available, rp)
		}
	}
	return available
}
