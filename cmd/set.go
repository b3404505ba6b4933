package cmd

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/draft"
	"github.com/spf13/cobra"
)

// intFlagIfChanged returns a pointer to the flag's value when the user
// passed it, nil otherwise. Nil means "leave the persisted value alone".
func intFlagIfChanged(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// setCmd persists league settings and weight sliders into the session.
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist league settings, weight sliders or the show-taken toggle.",
	Long: `Change session settings. Only flags you pass are applied; everything
else keeps its persisted value. Out-of-range values are clamped, never
rejected, so the board always has something sensible to work with.

League settings: --teams (2-16), --slot (1-teams), --rounds (1-30).
Role sliders (0-200, relative): --qb --rb --wr --te.
Scalar sliders (0-100): --rookie-boost --risk-averse --upside-weight
--adp-anchor --offense-weight.
Toggle: --show-taken yes|no.

Examples:
  # Configure the league before the draft
  draftboard set --teams 10 --slot 7 --rounds 16

  # Chase upside, fade injury-prone players
  draftboard set --upside-weight 80 --risk-averse 90

  # Trust the market more
  draftboard set --adp-anchor 85`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		opts := draft.SetOptions{
			Teams:         intFlagIfChanged(cmd, "teams"),
			MySlot:        intFlagIfChanged(cmd, "slot"),
			Rounds:        intFlagIfChanged(cmd, "rounds"),
			QB:            intFlagIfChanged(cmd, "qb"),
			RB:            intFlagIfChanged(cmd, "rb"),
			WR:            intFlagIfChanged(cmd, "wr"),
			TE:            intFlagIfChanged(cmd, "te"),
			RookieBoost:   intFlagIfChanged(cmd, "rookie-boost"),
			RiskAverse:    intFlagIfChanged(cmd, "risk-averse"),
			UpsideWeight:  intFlagIfChanged(cmd, "upside-weight"),
			ADPAnchor:     intFlagIfChanged(cmd, "adp-anchor"),
			OffenseWeight: intFlagIfChanged(cmd, "offense-weight"),
		}
		if cmd.Flags().Changed("show-taken") {
			raw, _ := cmd.Flags().GetString("show-taken")
			show, err := contract.ParseBoolString(raw)
			if err != nil {
				contract.LogFatal("Invalid show-taken value", err)
			}
			opts.ShowTaken = &show
		}
		if err := draft.ExecuteSet(cfg, storeManager, opts); err != nil {
			contract.LogFatal("Cannot save settings", err)
		}
	},
}

// weightsCmd shows the sliders and the derived weight configuration.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the raw sliders and the normalized weight configuration.",
	Long: `Print every raw slider value alongside the weight it resolves to:
role sliders normalized to sum to 1, scalar sliders mapped onto [0,1].

Examples:
  # Inspect the current tuning
  draftboard weights

  # Machine-readable form
  draftboard weights --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := draft.ExecuteWeights(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show weights", err)
		}
	},
}
