// Package schema has the data model, configs and constants for all parts of draftboard.
package schema

import "time"

// Scoring defaults applied when optional player attributes are absent.
const (
	DefaultInjuryRisk = 0.15
	DefaultUpside     = 0.5
	DefaultOffense    = 3
)

// Player represents a draftable player loaded from a roster import.
// Name is the sole identity key; there is no surrogate id. Optional
// attributes use pointers so that "absent" is distinguishable from zero
// and triggers the scoring defaults.
type Player struct {
	Name   string   `json:"name"`           // Unique display name, join key against pick events
	Pos    Position `json:"pos"`            // One of QB/RB/WR/TE
	ADP    float64  `json:"adp"`            // Average draft position, lower is better
	Team   string   `json:"team,omitempty"` // Display only, never affects scoring
	Age    *int     `json:"age,omitempty"`  // Display only
	Bye    *int     `json:"bye,omitempty"`  // Display only
	Rookie bool     `json:"rookie"`         // First-year player flag

	InjuryRisk *float64 `json:"injuryRisk,omitempty"` // [0,1], defaults to 0.15
	Upside     *float64 `json:"upside,omitempty"`     // [0,1], defaults to 0.5
	Offense    *int     `json:"offense,omitempty"`    // Offense quality rank 1..5, 1 best, defaults to 3
}

// InjuryRiskValue returns the injury risk, falling back to the scoring default.
func (p *Player) InjuryRiskValue() float64 {
	if p.InjuryRisk == nil {
		return DefaultInjuryRisk
	}
	return *p.InjuryRisk
}

// UpsideValue returns the upside, falling back to the scoring default.
func (p *Player) UpsideValue() float64 {
	if p.Upside == nil {
		return DefaultUpside
	}
	return *p.Upside
}

// OffenseValue returns the offense quality rank, falling back to the scoring default.
func (p *Player) OffenseValue() int {
	if p.Offense == nil {
		return DefaultOffense
	}
	return *p.Offense
}

// RankedPlayer is a Player augmented with ranking state for one board pass.
// It is recomputed on every ranking pass and never persisted.
type RankedPlayer struct {
	Player

	BaselineRank int     `json:"baselineRank"` // Position in the ascending-ADP ordering, fixed at load
	Score        float64 `json:"score"`        // Output of the scoring function under current weights
	CurrentRank  int     `json:"currentRank"`  // 1-based position in the live ranking
	Delta        int     `json:"delta"`        // baselineRank - currentRank, positive = riser
	Taken        bool    `json:"taken"`        // Present in the pick log
	Mine         bool    `json:"mine"`         // Taken by my slot

	// Breakdown holds the contribution of each scoring term for explain output.
	Breakdown map[TermKey]float64 `json:"breakdown,omitempty"`
}

// PickEvent is an immutable record of one player leaving the available pool.
// Overall equals the 1-based position of the event in the log at all times;
// it is assigned by log position, never stored independently.
type PickEvent struct {
	Overall int    `json:"overall"`
	Name    string `json:"name"`
	Mine    bool   `json:"mine"`
}

// LeagueConfig holds the snake-order parameters. It never affects scoring.
type LeagueConfig struct {
	Teams  int `json:"teams"`  // Number of drafting teams, 2..16
	MySlot int `json:"mySlot"` // My draft slot, 1..Teams
	Rounds int `json:"rounds"` // Total rounds, 1..30
}

// Knobs holds the raw integer slider values exactly as the user set them.
// Role sliders run 0..200, scalar sliders 0..100. These are what the session
// snapshot persists; the normalized Weights are derived on every read.
type Knobs struct {
	QB int `json:"qb"`
	RB int `json:"rb"`
	WR int `json:"wr"`
	TE int `json:"te"`

	RookieBoost   int `json:"rookieBoost"`
	RiskAverse    int `json:"riskAverse"`
	UpsideWeight  int `json:"upsideWeight"`
	ADPAnchor     int `json:"adpAnchor"`
	OffenseWeight int `json:"offenseWeight"`
}

// Weights is the validated weight configuration consumed by the scoring
// function. Pos weights are normalized to sum to 1; the scalar knobs are
// clamped to [0,1]. Purely derived from Knobs, never persisted on its own.
type Weights struct {
	Pos map[Position]float64

	RookieBoost   float64
	RiskAversion  float64
	UpsideWeight  float64
	ADPAnchor     float64
	OffenseWeight float64
}

// UpcomingPick describes one of my future picks in the snake order.
type UpcomingPick struct {
	Overall   int `json:"overall"`
	Round     int `json:"round"`
	Slot      int `json:"slot"`
	PicksAway int `json:"picksAway"` // Picks other teams make before this one

	// Projected is the best available player assuming everyone ahead drafts
	// straight off the current board. Empty when the board runs out.
	Projected    string   `json:"projected,omitempty"`
	ProjectedPos Position `json:"projectedPos,omitempty"`
}

// Summary holds the derived read-only aggregates over one board pass.
type Summary struct {
	TopN           int              `json:"topN"`
	PositionCounts map[Position]int `json:"positionCounts"`
	BestAvailable  []RankedPlayer   `json:"bestAvailable"`
	Upcoming       []UpcomingPick   `json:"upcoming"`

	TotalPlayers int `json:"totalPlayers"`
	TakenCount   int `json:"takenCount"`
	MyCount      int `json:"myCount"`
}

// SessionStatus holds status information about the session store.
type SessionStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	HasSnapshot   bool      `json:"has_snapshot"`
	LastSavedTime time.Time `json:"last_saved_time,omitempty"`
	SnapshotBytes int64     `json:"snapshot_bytes"`
}

// ArchiveStatus holds status information about the draft archive store.
type ArchiveStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalRuns      int64     `json:"total_runs"`
	TotalPicks     int64     `json:"total_picks"`
	LastRunTime    time.Time `json:"last_run_time,omitempty"`
	TableSizeBytes int64     `json:"table_size_bytes,omitempty"`
}
