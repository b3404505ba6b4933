package draft

import (
	"fmt"

	"github.com/3JRock3/Ver-2-Draft/core"
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/session"
)

// SetOptions carries the session settings one set invocation changes. Nil
// fields are left untouched, so flags the user did not pass never clobber
// persisted values.
type SetOptions struct {
	Teams  *int
	MySlot *int
	Rounds *int

	QB *int
	RB *int
	WR *int
	TE *int

	RookieBoost   *int
	RiskAverse    *int
	UpsideWeight  *int
	ADPAnchor     *int
	OffenseWeight *int

	ShowTaken *bool
}

// ExecuteSet applies the given settings to the session snapshot and saves
// it. Out-of-range values are clamped before persisting, so the stored
// snapshot always holds what the engine will actually use. Works on a fresh
// session; no roster is required.
func ExecuteSet(cfg *contract.Config, mgr contract.StoreManager, opts SetOptions) error {
	store := mgr.GetSessionStore()
	snap := session.LoadSnapshot(store, cfg.SessionKey)

	applyInt(&snap.League.Teams, opts.Teams)
	applyInt(&snap.League.MySlot, opts.MySlot)
	applyInt(&snap.League.Rounds, opts.Rounds)
	snap.League = contract.ClampLeague(snap.League)

	applySlider(&snap.Knobs.QB, opts.QB, core.MaxRoleSlider)
	applySlider(&snap.Knobs.RB, opts.RB, core.MaxRoleSlider)
	applySlider(&snap.Knobs.WR, opts.WR, core.MaxRoleSlider)
	applySlider(&snap.Knobs.TE, opts.TE, core.MaxRoleSlider)

	applySlider(&snap.Knobs.RookieBoost, opts.RookieBoost, core.MaxScalarSlider)
	applySlider(&snap.Knobs.RiskAverse, opts.RiskAverse, core.MaxScalarSlider)
	applySlider(&snap.Knobs.UpsideWeight, opts.UpsideWeight, core.MaxScalarSlider)
	applySlider(&snap.Knobs.ADPAnchor, opts.ADPAnchor, core.MaxScalarSlider)
	applySlider(&snap.Knobs.OffenseWeight, opts.OffenseWeight, core.MaxScalarSlider)

	if opts.ShowTaken != nil {
		snap.ShowTaken = *opts.ShowTaken
	}

	if err := session.SaveSnapshot(store, cfg.SessionKey, snap); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Session %q saved: %d teams, slot %d, %d rounds, show-taken %v.\n",
		cfg.SessionKey, snap.League.Teams, snap.League.MySlot, snap.League.Rounds, snap.ShowTaken)
	return nil
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applySlider(dst *int, src *int, maxValue int) {
	if src == nil {
		return
	}
	v := *src
	if v < 0 {
		v = 0
	}
	if v > maxValue {
		v = maxValue
	}
	*dst = v
}
