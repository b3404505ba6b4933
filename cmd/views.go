package cmd

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/spf13/cobra"
)

// picksCmd shows the pick log.
var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "Show the pick log with snake round and slot.",
	Long: `List every recorded pick in draft order, annotated with the snake
round and drafting slot each overall number maps to.

Examples:
  # Review the draft so far
  draftboard picks

  # Machine-readable log
  draftboard picks --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecutePicks(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list picks", err)
		}
	},
}

// rosterCmd shows my roster.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show my roster in pick order.",
	Long: `List the players I have drafted, in the order I picked them, with
their position, ADP and baseline rank.

Examples:
  # Check my team so far
  draftboard roster`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecuteMyRoster(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show roster", err)
		}
	},
}

// upcomingCmd projects my next picks.
var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Project my next picks in the snake order.",
	Long: `Show the overall numbers of my next picks under the snake order,
how many picks away each one is, and the best player projected to still be
available at that point.

The projection is naive: it assumes every intervening team takes the
top-ranked remaining player off this board.

Examples:
  # When do I pick next?
  draftboard upcoming

  # Plan further ahead
  draftboard upcoming --count 5`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		count, _ := cmd.Flags().GetInt("count")
		if err := draft.ExecuteUpcoming(cfg, storeManager, count); err != nil {
			contract.LogFatal("Cannot project upcoming picks", err)
		}
	},
}

// summaryCmd shows the draft summary aggregates.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the draft: position counts, best available, next picks.",
	Long: `Aggregate the draft at a glance: how many players of each position
remain near the top of the board, the best available players overall, and a
preview of my upcoming picks.

Examples:
  # Quick situational check between picks
  draftboard summary

  # Deeper pool scan
  draftboard summary --top 50 --best 10`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecuteSummary(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build summary", err)
		}
	},
}
