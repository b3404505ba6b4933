// Package draft orchestrates one command's worth of work: load the session
// state, run the engine, write the output and persist the result.
package draft

import (
	"fmt"

	"github.com/3JRock3/Ver-2-Draft/core"
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/session"
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// State bundles the session snapshot with the engine types rebuilt from it
// for one command invocation.
type State struct {
	Snap    session.Snapshot
	Roster  *core.Roster
	Seq     *core.Sequencer
	Weights schema.Weights
}

// LoadState rebuilds the draft state from the stored session snapshot.
// A session without an imported roster is an error; every ranked view
// needs the player pool.
func LoadState(store contract.SessionStore, key string) (*State, error) {
	snap := session.LoadSnapshot(store, key)
	if len(snap.Roster) == 0 {
		return nil, fmt.Errorf("no roster loaded for session %q, import one first", key)
	}

	roster, err := core.NewRoster(snap.Roster)
	if err != nil {
		return nil, fmt.Errorf("stored roster is invalid: %w", err)
	}

	return &State{
		Snap:    snap,
		Roster:  roster,
		Seq:     core.NewSequencer(roster, snap.Picks),
		Weights: core.ComputeWeights(snap.Knobs),
	}, nil
}

// SaveState persists the sequencer's pick log back into the snapshot.
func SaveState(store contract.SessionStore, key string, st *State) error {
	st.Snap.Picks = st.Seq.Log()
	st.Snap.MyRoster = st.Seq.MyRoster()
	return session.SaveSnapshot(store, key, st.Snap)
}

// AvailableBoard ranks the full available pool with no filters. This is the
// board the summary and upcoming views are derived from.
func (st *State) AvailableBoard() []schema.RankedPlayer {
	f := core.BoardFilter{Pos: schema.AllPositionsFilter}
	return core.RankBoard(st.Roster, st.Weights, f, st.Seq.Taken(), st.Seq.Mine())
}

// Upcoming projects my next count picks in the snake order, pairing each
// with the player projected to still be available at that point.
func (st *State) Upcoming(count int) []schema.UpcomingPick {
	if count < 1 {
		count = core.UpcomingPickCount
	}

	available := st.AvailableBoard()
	league := st.Snap.League
	overalls := core.MyUpcomingOveralls(st.Seq.CurrentOverall(), league.Teams, league.MySlot, count, league.Teams*league.Rounds)

	upcoming := make([]schema.UpcomingPick, 0, len(overalls))
	for _, overall := range overalls {
		round, slot := core.PickRoundSlot(overall, league.Teams)
		up := schema.UpcomingPick{
			Overall:   overall,
			Round:     round,
			Slot:      slot,
			PicksAway: overall - st.Seq.CurrentOverall() - 1,
		}
		if up.PicksAway < len(available) {
			proj := available[up.PicksAway]
			up.Projected = proj.Name
			up.ProjectedPos = proj.Pos
		}
		upcoming = append(upcoming, up)
	}
	return upcoming
}

// Summary derives the read-only draft aggregates for the current state.
func (st *State) Summary(topN, bestK int) schema.Summary {
	return core.BuildSummary(
		st.AvailableBoard(),
		st.Snap.League,
		st.Seq.CurrentOverall(),
		st.Roster.Len(),
		st.Seq.CurrentOverall(),
		len(st.Seq.MyRoster()),
		topN,
		bestK,
	)
}
