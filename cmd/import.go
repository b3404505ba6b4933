package cmd

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/spf13/cobra"
)

// importCmd loads a roster CSV into the session.
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a projection CSV as the session roster.",
	Long: `Replace the session's player pool with rows parsed from a CSV file.

Required columns: name, pos, adp. Optional columns: team, bye, age, rookie,
injuryRisk, upside, offense. Header matching is case-insensitive; unknown
columns are ignored. Rows with an empty name are dropped, and when the same
name appears twice the last row wins.

Importing a new roster invalidates the current draft, so the pick log is
cleared in the same save. League settings and weight sliders are kept.

Examples:
  # Load this year's projections
  draftboard import projections.csv

  # Keep a separate session per league
  draftboard import projections.csv --session work-league`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := draft.ExecuteImport(cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot import roster", err)
		}
	},
}
