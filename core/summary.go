package core

import "github.com/3JRock3/Ver-2-Draft/schema"

// Defaults for the summary aggregates.
const (
	DefaultSummaryTopN   = 30
	DefaultBestAvailable = 5
	UpcomingPickCount    = 3
)

// BuildSummary derives the read-only aggregates from one board pass over
// the available pool: per-position counts in the top N, the best-available
// top K, and the next-3-rounds preview for my slot. The board argument must
// be ranked with taken players excluded; the summary is a thin consumer and
// recomputes nothing.
func BuildSummary(available []schema.RankedPlayer, league schema.LeagueConfig, currentOverall, totalPlayers, takenCount, myCount, topN, bestK int) schema.Summary {
	if topN <= 0 {
		topN = DefaultSummaryTopN
	}
	if bestK <= 0 {
		bestK = DefaultBestAvailable
	}

	counts := make(map[schema.Position]int, len(schema.AllPositions))
	for _, pos := range schema.AllPositions {
		counts[pos] = 0
	}
	n := min(topN, len(available))
	for i := range n {
		counts[available[i].Pos]++
	}

	k := min(bestK, len(available))
	best := make([]schema.RankedPlayer, k)
	copy(best, available[:k])

	maxOverall := league.Teams * league.Rounds
	overalls := MyUpcomingOveralls(currentOverall, league.Teams, league.MySlot, UpcomingPickCount, maxOverall)

	upcoming := make([]schema.UpcomingPick, 0, len(overalls))
	for _, overall := range overalls {
		round, slot := PickRoundSlot(overall, league.Teams)
		up := schema.UpcomingPick{
			Overall:   overall,
			Round:     round,
			Slot:      slot,
			PicksAway: overall - currentOverall - 1,
		}
		// Project the board forward assuming everyone ahead drafts straight
		// off the top of the current ranking.
		if up.PicksAway < len(available) {
			proj := available[up.PicksAway]
			up.Projected = proj.Name
			up.ProjectedPos = proj.Pos
		}
		upcoming = append(upcoming, up)
	}

	return schema.Summary{
		TopN:           topN,
		PositionCounts: counts,
		BestAvailable:  best,
		Upcoming:       upcoming,
		TotalPlayers:   totalPlayers,
		TakenCount:     takenCount,
		MyCount:        myCount,
	}
}
