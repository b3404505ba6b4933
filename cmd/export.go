package cmd

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/spf13/cobra"
)

// exportCmd writes the board back out as a roster CSV.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the board as a roster CSV with current ranks.",
	Long: `Write the player pool as a CSV with a rankNow column holding each
player's current rank under the session weights.

The export includes taken players so the file is a complete pool that can be
re-imported later. Position and search filters apply if given.

Examples:
  # Export to a file
  draftboard export --output-file ranked.csv

  # Pipe to another tool
  draftboard export | head -20`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecuteExport(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot export roster", err)
		}
	},
}
