package core

import (
	"testing"

	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// defaultKnobs mirrors the documented session defaults.
func defaultKnobs() schema.Knobs {
	return schema.Knobs{
		QB: 100, RB: 100, WR: 100, TE: 100,
		RookieBoost:   20,
		RiskAverse:    50,
		UpsideWeight:  50,
		ADPAnchor:     60,
		OffenseWeight: 50,
	}
}

// TestComputeWeightsNormalization checks role weight normalization.
func TestComputeWeightsNormalization(t *testing.T) {
	tests := []struct {
		name     string
		knobs    schema.Knobs
		expected map[schema.Position]float64
	}{
		{
			name:  "equal sliders",
			knobs: schema.Knobs{QB: 100, RB: 100, WR: 100, TE: 100},
			expected: map[schema.Position]float64{
				schema.QB: 0.25, schema.RB: 0.25, schema.WR: 0.25, schema.TE: 0.25,
			},
		},
		{
			name:  "skewed sliders",
			knobs: schema.Knobs{QB: 50, RB: 200, WR: 100, TE: 50},
			expected: map[schema.Position]float64{
				schema.QB: 0.125, schema.RB: 0.5, schema.WR: 0.25, schema.TE: 0.125,
			},
		},
		{
			name:  "zero sum falls back to equal weights",
			knobs: schema.Knobs{},
			expected: map[schema.Position]float64{
				schema.QB: 0.25, schema.RB: 0.25, schema.WR: 0.25, schema.TE: 0.25,
			},
		},
		{
			name:  "out of range sliders are clamped",
			knobs: schema.Knobs{QB: 500, RB: -50, WR: 200, TE: 0},
			expected: map[schema.Position]float64{
				schema.QB: 0.5, schema.RB: 0, schema.WR: 0.5, schema.TE: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ComputeWeights(tt.knobs)
			var sum float64
			for pos, want := range tt.expected {
				assert.InDelta(t, want, w.Pos[pos], 0.001)
				sum += w.Pos[pos]
			}
			assert.InDelta(t, 1.0, sum, 0.001)
		})
	}
}

// TestComputeWeightsScalars checks scalar knob scaling and clamping.
func TestComputeWeightsScalars(t *testing.T) {
	w := ComputeWeights(schema.Knobs{RookieBoost: 20, RiskAverse: 150, UpsideWeight: -10, ADPAnchor: 60, OffenseWeight: 100})
	assert.InDelta(t, 0.2, w.RookieBoost, 0.001)
	assert.InDelta(t, 1.0, w.RiskAversion, 0.001) // clamped high
	assert.InDelta(t, 0.0, w.UpsideWeight, 0.001) // clamped low
	assert.InDelta(t, 0.6, w.ADPAnchor, 0.001)
	assert.InDelta(t, 1.0, w.OffenseWeight, 0.001)
}

// TestScoreADPClamping verifies the adpNorm clamp at both ends through a
// pure-anchor configuration where score == adpNorm.
func TestScoreADPClamping(t *testing.T) {
	anchorOnly := ComputeWeights(schema.Knobs{ADPAnchor: 100})

	tests := []struct {
		name     string
		adp      float64
		expected float64
	}{
		{name: "adp at horizon", adp: 240, expected: 0},
		{name: "adp beyond horizon", adp: 300, expected: 0},
		{name: "adp at zero", adp: 0, expected: 1},
		{name: "negative adp", adp: -5, expected: 1},
		{name: "midpoint", adp: 120, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := schema.Player{Name: "P", Pos: schema.RB, ADP: tt.adp}
			score, _ := Score(&p, anchorOnly)
			assert.InDelta(t, tt.expected, score, 0.0001)
		})
	}
}

// TestScoreDefaultKnobs pins the composite formula against a hand-computed
// value under the documented defaults.
func TestScoreDefaultKnobs(t *testing.T) {
	w := ComputeWeights(defaultKnobs())
	p := schema.Player{Name: "Mid RB", Pos: schema.RB, ADP: 120}

	score, breakdown := Score(&p, w)

	// adpNorm=0.5, posWeight=0.25, upsideBonus=0.25, offenseBonus=0.25,
	// riskPenalty=0.075 -> custom=0.28, result=0.6*0.5+0.4*0.28.
	assert.InDelta(t, 0.412, score, 0.0001)
	assert.InDelta(t, 0.125, breakdown[schema.TermADP], 0.0001)
	assert.Negative(t, breakdown[schema.TermRisk])
}

// TestScoreRookieBoost checks that the rookie term separates otherwise
// identical players when the anchor is off.
func TestScoreRookieBoost(t *testing.T) {
	knobs := defaultKnobs()
	knobs.ADPAnchor = 0
	w := ComputeWeights(knobs)

	vet := schema.Player{Name: "Vet", Pos: schema.WR, ADP: 50}
	rook := schema.Player{Name: "Rook", Pos: schema.WR, ADP: 50, Rookie: true}

	vetScore, _ := Score(&vet, w)
	rookScore, _ := Score(&rook, w)

	assert.InDelta(t, 0.10*0.2, rookScore-vetScore, 0.0001)
}

// TestScoreOptionalDefaults checks that absent optionals score the same as
// explicitly set default values.
func TestScoreOptionalDefaults(t *testing.T) {
	w := ComputeWeights(defaultKnobs())

	implicit := schema.Player{Name: "A", Pos: schema.TE, ADP: 80}
	explicit := schema.Player{
		Name: "B", Pos: schema.TE, ADP: 80,
		InjuryRisk: floatPtr(0.15),
		Upside:     floatPtr(0.5),
		Offense:    intPtr(3),
	}

	implicitScore, _ := Score(&implicit, w)
	explicitScore, _ := Score(&explicit, w)
	assert.InDelta(t, implicitScore, explicitScore, 0.000001)
}

// TestScoreDeterministic ensures repeated scoring yields identical results.
func TestScoreDeterministic(t *testing.T) {
	w := ComputeWeights(defaultKnobs())
	p := schema.Player{Name: "X", Pos: schema.QB, ADP: 33.5, Rookie: true, Upside: floatPtr(0.9)}

	first, _ := Score(&p, w)
	for range 5 {
		again, _ := Score(&p, w)
		assert.Equal(t, first, again)
	}
}
