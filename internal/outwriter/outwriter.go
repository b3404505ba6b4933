// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteBoard prints the ranked board using the configured output format.
func (ow *OutWriter) WriteBoard(board []schema.RankedPlayer, cfg *contract.Config) error {
	return WriteBoardResults(board, cfg)
}

// WritePicks prints the pick log using the configured output format.
func (ow *OutWriter) WritePicks(picks []schema.PickEvent, league schema.LeagueConfig, cfg *contract.Config) error {
	return WritePickResults(picks, league, cfg)
}

// WriteUpcoming prints my upcoming snake picks using the configured output format.
func (ow *OutWriter) WriteUpcoming(upcoming []schema.UpcomingPick, cfg *contract.Config) error {
	return WriteUpcomingResults(upcoming, cfg)
}

// WriteSummary prints the draft summary using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.Summary, cfg *contract.Config) error {
	return WriteSummaryResults(summary, cfg)
}

// WriteMyRoster prints the players my slot has drafted.
func (ow *OutWriter) WriteMyRoster(roster []schema.RankedPlayer, cfg *contract.Config) error {
	return WriteMyRosterResults(roster, cfg)
}

// WriteWeights prints the raw sliders and the normalized weights derived
// from them.
func (ow *OutWriter) WriteWeights(knobs schema.Knobs, weights schema.Weights, cfg *contract.Config) error {
	return WriteWeightsResults(knobs, weights, cfg)
}
