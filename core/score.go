// Package core implements the ranking engine: scoring, board ranking,
// the draft pick sequencer and snake-order arithmetic.
package core

import (
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// Raw slider bounds. Values outside are clamped, never rejected.
const (
	MaxRoleSlider   = 200
	MaxScalarSlider = 100
)

// adpHorizon is the ADP beyond which a player normalizes to 0.
const adpHorizon = 240.0

// Weights of the custom formula terms.
const (
	wPos     = 0.35
	wADP     = 0.25
	wUpside  = 0.15
	wOffense = 0.15
	wRookie  = 0.10
	wRisk    = 0.10
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeWeights derives the validated weight configuration from the raw
// slider values. Role sliders are normalized to sum to 1; when all four are
// zero the roles fall back to equal weights rather than propagating NaN.
// Scalar sliders map onto [0,1].
func ComputeWeights(k schema.Knobs) schema.Weights {
	raw := map[schema.Position]float64{
		schema.QB: float64(clampInt(k.QB, 0, MaxRoleSlider)),
		schema.RB: float64(clampInt(k.RB, 0, MaxRoleSlider)),
		schema.WR: float64(clampInt(k.WR, 0, MaxRoleSlider)),
		schema.TE: float64(clampInt(k.TE, 0, MaxRoleSlider)),
	}

	var sum float64
	for _, v := range raw {
		sum += v
	}

	pos := make(map[schema.Position]float64, len(raw))
	if sum == 0 {
		for p := range raw {
			pos[p] = 1.0 / float64(len(raw))
		}
	} else {
		for p, v := range raw {
			pos[p] = v / sum
		}
	}

	scalar := func(v int) float64 {
		return float64(clampInt(v, 0, MaxScalarSlider)) / float64(MaxScalarSlider)
	}

	return schema.Weights{
		Pos:           pos,
		RookieBoost:   scalar(k.RookieBoost),
		RiskAversion:  scalar(k.RiskAverse),
		UpsideWeight:  scalar(k.UpsideWeight),
		ADPAnchor:     scalar(k.ADPAnchor),
		OffenseWeight: scalar(k.OffenseWeight),
	}
}

// Score computes a player's composite score under the given weights.
// It is deterministic, side-effect free and total: every attribute is
// clamped or defaulted, so any validated player yields a finite score.
// The returned breakdown maps each term to its contribution for explain
// output; the risk term is recorded as a negative contribution.
func Score(p *schema.Player, w schema.Weights) (float64, map[schema.TermKey]float64) {
	adpNorm := 1 - clamp01(p.ADP/adpHorizon)

	posWeight, ok := w.Pos[p.Pos]
	if !ok {
		// Cannot occur for a validated roster; keep scoring total anyway.
		posWeight = 1
	}

	var rookieTerm float64
	if p.Rookie {
		rookieTerm = w.RookieBoost
	}

	riskPenalty := w.RiskAversion * p.InjuryRiskValue()
	upsideBonus := w.UpsideWeight * p.UpsideValue()
	offenseBonus := w.OffenseWeight * (1 - float64(p.OffenseValue()-1)/4)

	custom := wPos*posWeight +
		wADP*adpNorm +
		wUpside*upsideBonus +
		wOffense*offenseBonus +
		wRookie*rookieTerm -
		wRisk*riskPenalty

	result := w.ADPAnchor*adpNorm + (1-w.ADPAnchor)*custom

	breakdown := map[schema.TermKey]float64{
		schema.TermPos:     wPos * posWeight,
		schema.TermADP:     wADP * adpNorm,
		schema.TermUpside:  wUpside * upsideBonus,
		schema.TermOffense: wOffense * offenseBonus,
		schema.TermRookie:  wRookie * rookieTerm,
		schema.TermRisk:    -wRisk * riskPenalty,
	}

	return result, breakdown
}
