package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/3JRock3/Ver-2-Draft/schema"
)

// Roster holds the immutable-per-session pool of draftable players along
// with the baseline ranks fixed at load time. A new import replaces the
// whole Roster; nothing mutates it in place.
type Roster struct {
	players  []schema.Player
	baseline map[string]int // name -> 1-based ascending-ADP rank over the full pool
	byFold   map[string]string
}

// NewRoster validates the player pool and computes baseline ranks.
// Validation enforces the core invariants: non-empty unique names, a known
// position and a finite ADP for every player.
func NewRoster(players []schema.Player) (*Roster, error) {
	seen := make(map[string]struct{}, len(players))
	for i := range players {
		p := &players[i]
		if p.Name == "" {
			return nil, fmt.Errorf("player at index %d has an empty name", i)
		}
		if _, ok := schema.ValidPositions[p.Pos]; !ok {
			return nil, fmt.Errorf("player %q has invalid position %q", p.Name, p.Pos)
		}
		if math.IsNaN(p.ADP) || math.IsInf(p.ADP, 0) {
			return nil, fmt.Errorf("player %q has non-finite adp", p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	pool := make([]schema.Player, len(players))
	copy(pool, players)

	r := &Roster{
		players:  pool,
		baseline: baselineRanks(pool),
		byFold:   make(map[string]string, len(pool)),
	}
	for i := range pool {
		r.byFold[strings.ToLower(pool[i].Name)] = pool[i].Name
	}
	return r, nil
}

// baselineRanks assigns 1-based positions by ascending ADP over the entire
// unfiltered pool. Ties keep their original relative order.
func baselineRanks(players []schema.Player) map[string]int {
	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return players[order[a]].ADP < players[order[b]].ADP
	})

	ranks := make(map[string]int, len(players))
	for rank, idx := range order {
		ranks[players[idx].Name] = rank + 1
	}
	return ranks
}

// Players returns a copy of the full pool.
func (r *Roster) Players() []schema.Player {
	out := make([]schema.Player, len(r.players))
	copy(out, r.players)
	return out
}

// Len returns the pool size.
func (r *Roster) Len() int {
	return len(r.players)
}

// BaselineRank returns the load-time ascending-ADP rank for a name, or 0
// when the name is unknown.
func (r *Roster) BaselineRank(name string) int {
	return r.baseline[name]
}

// Lookup returns the player with the exact given name.
func (r *Roster) Lookup(name string) (schema.Player, bool) {
	for i := range r.players {
		if r.players[i].Name == name {
			return r.players[i], true
		}
	}
	return schema.Player{}, false
}

// ResolveName maps a case-insensitive name to its canonical spelling.
// Pick commands use this so "justin jefferson" resolves before hitting the
// sequencer, which only accepts exact names.
func (r *Roster) ResolveName(name string) (string, bool) {
	canonical, ok := r.byFold[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}
