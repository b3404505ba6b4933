package cmd

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/spf13/cobra"
)

// boardCmd shows the live ranked board.
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the ranked board of available players.",
	Long: `Rank the available player pool under the current session weights.

The board re-derives every rank from the roster, the weight sliders and the
pick log on each run, so it always reflects the latest state. Each row shows
the player's current rank, score and the delta against their pure-ADP
baseline rank: risers score better than the market, fallers worse.

Examples:
  # Show the full board
  draftboard board

  # Only running backs, top 20
  draftboard board --pos RB --limit 20

  # Explain why players rank where they do
  draftboard board --explain --detail

  # Keep drafted players visible for a market overview
  draftboard board --show-taken yes

  # Export the board for a spreadsheet
  draftboard board --output csv --output-file board.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecuteBoard(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot rank board", err)
		}
	},
}
