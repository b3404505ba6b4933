package core

import (
	"testing"

	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSummaryCounts checks position counts and best-available slicing.
func TestBuildSummaryCounts(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(schema.Knobs{QB: 100, RB: 100, WR: 100, TE: 100, ADPAnchor: 100})
	available := RankBoard(roster, w, BoardFilter{}, nil, nil)
	league := schema.LeagueConfig{Teams: 12, MySlot: 1, Rounds: 15}

	s := BuildSummary(available, league, 0, roster.Len(), 0, 0, 3, 2)

	assert.Equal(t, 3, s.TopN)
	// Top 3 by ADP: Alpha Back (RB), Bravo Wideout (WR), Charlie Back (RB).
	assert.Equal(t, 2, s.PositionCounts[schema.RB])
	assert.Equal(t, 1, s.PositionCounts[schema.WR])
	assert.Equal(t, 0, s.PositionCounts[schema.QB])
	assert.Equal(t, 0, s.PositionCounts[schema.TE])

	require.Len(t, s.BestAvailable, 2)
	assert.Equal(t, "Alpha Back", s.BestAvailable[0].Name)
	assert.Equal(t, 5, s.TotalPlayers)
}

// TestBuildSummaryUpcomingProjection checks the next-3-rounds preview.
func TestBuildSummaryUpcomingProjection(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(schema.Knobs{QB: 100, RB: 100, WR: 100, TE: 100, ADPAnchor: 100})
	available := RankBoard(roster, w, BoardFilter{}, nil, nil)
	league := schema.LeagueConfig{Teams: 2, MySlot: 1, Rounds: 15}

	s := BuildSummary(available, league, 0, roster.Len(), 0, 0, 0, 0)

	// Snake for 2 teams, slot 1: picks 1, 4, 5.
	require.Len(t, s.Upcoming, 3)
	assert.Equal(t, 1, s.Upcoming[0].Overall)
	assert.Equal(t, 4, s.Upcoming[1].Overall)
	assert.Equal(t, 5, s.Upcoming[2].Overall)

	// Pick 1 is next: best available projects straight off the board.
	assert.Equal(t, 0, s.Upcoming[0].PicksAway)
	assert.Equal(t, "Alpha Back", s.Upcoming[0].Projected)
	// Pick 4 arrives after three picks ahead of it.
	assert.Equal(t, 3, s.Upcoming[1].PicksAway)
	assert.Equal(t, "Delta Passer", s.Upcoming[1].Projected)
	assert.Equal(t, "Echo End", s.Upcoming[2].Projected)
}

// TestBuildSummaryDefaults checks the default knobs fall back when zero.
func TestBuildSummaryDefaults(t *testing.T) {
	roster := mustRoster(t, testPool())
	w := ComputeWeights(defaultKnobs())
	available := RankBoard(roster, w, BoardFilter{}, nil, nil)
	league := schema.LeagueConfig{Teams: 12, MySlot: 1, Rounds: 15}

	s := BuildSummary(available, league, 0, roster.Len(), 0, 0, 0, 0)
	assert.Equal(t, DefaultSummaryTopN, s.TopN)
	assert.Len(t, s.BestAvailable, roster.Len()) // pool smaller than default K
}
