package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// SnapshotVersion is bumped whenever the snapshot layout changes in a way
// that older binaries cannot read. Version mismatches fall back to defaults.
const SnapshotVersion = 1

// Default slider values for a fresh session.
const (
	DefaultTeams  = 12
	DefaultMySlot = 1
	DefaultRounds = 15

	DefaultRoleSlider    = 100
	DefaultRookieBoost   = 20
	DefaultRiskAverse    = 50
	DefaultUpsideWeight  = 50
	DefaultADPAnchor     = 60
	DefaultOffenseWeight = 50
)

// Snapshot is the complete persisted state of one draft session. It is
// stored as an opaque JSON blob under a session key; nothing outside this
// package depends on the encoding.
type Snapshot struct {
	League    schema.LeagueConfig `json:"league"`
	Knobs     schema.Knobs        `json:"knobs"`
	ShowTaken bool                `json:"showTaken"`

	Roster   []schema.Player    `json:"roster,omitempty"`
	Picks    []schema.PickEvent `json:"picks,omitempty"`
	MyRoster []string           `json:"myRoster,omitempty"`
}

// DefaultSnapshot returns a fresh session with the documented defaults.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		League: schema.LeagueConfig{
			Teams:  DefaultTeams,
			MySlot: DefaultMySlot,
			Rounds: DefaultRounds,
		},
		Knobs: schema.Knobs{
			QB:            DefaultRoleSlider,
			RB:            DefaultRoleSlider,
			WR:            DefaultRoleSlider,
			TE:            DefaultRoleSlider,
			RookieBoost:   DefaultRookieBoost,
			RiskAverse:    DefaultRiskAverse,
			UpsideWeight:  DefaultUpsideWeight,
			ADPAnchor:     DefaultADPAnchor,
			OffenseWeight: DefaultOffenseWeight,
		},
		ShowTaken: false,
	}
}

// EncodeSnapshot serializes a snapshot to its stored JSON form.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot deserializes a stored snapshot blob. The blob is decoded
// over the defaults so fields absent from older snapshots keep their
// default values. A blob that fails to decode reports an error; callers
// treat that the same as a missing snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	snap := DefaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return DefaultSnapshot(), err
	}
	return snap, nil
}

// LoadSnapshot reads the snapshot for a session key. A missing, corrupted
// or version-mismatched snapshot yields the defaults; corruption is warned
// about but never fatal, so a bad blob can always be overwritten by the
// next save.
func LoadSnapshot(store contract.SessionStore, key string) Snapshot {
	if store == nil {
		return DefaultSnapshot()
	}

	data, version, _, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			contract.LogWarn("loading session snapshot", err)
		}
		return DefaultSnapshot()
	}
	if version != SnapshotVersion {
		return DefaultSnapshot()
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		contract.LogWarn("decoding session snapshot", err)
		return DefaultSnapshot()
	}
	return snap
}

// SaveSnapshot writes the snapshot for a session key.
func SaveSnapshot(store contract.SessionStore, key string, snap Snapshot) error {
	if store == nil {
		return nil
	}

	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	return store.Set(key, data, SnapshotVersion, time.Now().Unix())
}
