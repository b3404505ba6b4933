package core

// PickRoundSlot converts a 1-based overall pick number into its round and
// the drafting slot under snake order: slots run 1..teams on odd rounds and
// reverse on even rounds.
func PickRoundSlot(overall, teams int) (round, slot int) {
	if overall < 1 || teams < 1 {
		return 0, 0
	}
	round = (overall + teams - 1) / teams
	posInRound := overall - (round-1)*teams
	if round%2 == 1 {
		slot = posInRound
	} else {
		slot = teams - posInRound + 1
	}
	return round, slot
}

// MyUpcomingOveralls scans forward from currentOverall+1 and collects the
// next count overall pick numbers belonging to mySlot. maxOverall bounds
// the scan at the end of the draft; pass 0 for no bound.
func MyUpcomingOveralls(currentOverall, teams, mySlot, count, maxOverall int) []int {
	if teams < 1 || mySlot < 1 || mySlot > teams || count < 1 {
		return nil
	}
	var picks []int
	for n := currentOverall + 1; len(picks) < count; n++ {
		if maxOverall > 0 && n > maxOverall {
			break
		}
		if _, slot := PickRoundSlot(n, teams); slot == mySlot {
			picks = append(picks, n)
		}
	}
	return picks
}
