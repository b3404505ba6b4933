package cmd

import (
	"strings"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/spf13/cobra"
)

// pickCmd records one pick in the running draft.
var pickCmd = &cobra.Command{
	Use:   "pick <player name>",
	Short: "Record a pick, removing the player from the board.",
	Long: `Append one pick to the session's pick log. The player leaves the
available pool and, with --mine, joins my roster.

Name matching is case-insensitive against the imported roster. Multi-word
names do not need quoting; all arguments are joined.

Examples:
  # Another team took a player
  draftboard pick Bijan Robinson

  # My pick
  draftboard pick "Justin Jefferson" --mine`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		mine, _ := cmd.Flags().GetBool("mine")
		if err := draft.ExecutePick(cfg, storeManager, name, mine); err != nil {
			contract.LogFatal("Cannot record pick", err)
		}
	},
}

// undoCmd retracts the most recent pick.
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent pick.",
	Long: `Remove the last pick event from the log, returning the player to
the available pool. Overall pick numbers stay gapless; only the final event
is ever retracted.

Examples:
  # Fix a mis-entered pick
  draftboard undo`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecuteUndo(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot undo pick", err)
		}
	},
}

// resetCmd clears the pick log for a fresh draft.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the pick log, keeping roster and settings.",
	Long: `Discard the entire pick log and my roster while keeping the player
pool, league settings and weight sliders. Irreversible unless archived.

With --archive, the finished draft is first recorded in the archive store:
the league settings, slider values and every pick with its snake round and
slot. Archived runs can be exported to Parquet with 'draftboard archive
export'.

Examples:
  # Start over after a mock draft
  draftboard reset

  # Keep the finished draft for later analysis
  draftboard reset --archive`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		archive, _ := cmd.Flags().GetBool("archive")
		if err := draft.ExecuteReset(cfg, storeManager, archive); err != nil {
			contract.LogFatal("Cannot reset draft", err)
		}
	},
}
