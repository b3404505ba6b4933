// Package cmd defines the command-line interface for draftboard.
package cmd

import (
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(picksCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the session subcommands to the parent session command
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionClearCmd)

	// Add the archive subcommands to the parent archive command
	archiveCmd.AddCommand(archiveStatusCmd)
	archiveCmd.AddCommand(archiveClearCmd)
	archiveCmd.AddCommand(archiveExportCmd)
	archiveCmd.AddCommand(archiveMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("pos", "p", "", "Filter the board by position: QB, RB, WR, TE or ALL")
	rootCmd.PersistentFlags().String("search", "", "Filter the board by case-insensitive name substring")
	rootCmd.PersistentFlags().String("show-taken", "", "Keep drafted players on the board (yes/no); overrides the persisted toggle")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display (0 = all)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("session", "s", contract.DefaultSessionKey, "Session key, allows multiple parallel drafts")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Session store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("archive-backend", "", "Draft archive backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("archive-db-connect", "", "Database connection string for the draft archive (must differ from store-db-connect)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of boardCmd to Viper
	boardCmd.Flags().Bool("explain", false, "Print per-player scoring term breakdown")
	boardCmd.Flags().Bool("detail", false, "Print per-player metadata columns (team, bye, risk, upside)")
	if err := viper.BindPFlags(boardCmd.Flags()); err != nil {
		contract.LogFatal("Error binding board flags", err)
	}

	// Bind all flags of summaryCmd to Viper
	summaryCmd.Flags().Int("top", 0, "Pool depth for the position counts (0 = default of 30)")
	summaryCmd.Flags().Int("best", 0, "Best-available list length (0 = default of 5)")
	if err := viper.BindPFlags(summaryCmd.Flags()); err != nil {
		contract.LogFatal("Error binding summary flags", err)
	}

	// Flags read directly from Cobra rather than Viper: the set command must
	// distinguish "flag not passed" from "flag set to the default value".
	upcomingCmd.Flags().Int("count", 3, "Number of upcoming picks to project")
	pickCmd.Flags().Bool("mine", false, "Record the pick for my slot")
	resetCmd.Flags().Bool("archive", false, "Record the finished draft in the archive store before clearing")

	setCmd.Flags().Int("teams", 0, "Number of drafting teams (2-16)")
	setCmd.Flags().Int("slot", 0, "My draft slot (1-teams)")
	setCmd.Flags().Int("rounds", 0, "Total draft rounds (1-30)")
	setCmd.Flags().Int("qb", 0, "QB role slider (0-200)")
	setCmd.Flags().Int("rb", 0, "RB role slider (0-200)")
	setCmd.Flags().Int("wr", 0, "WR role slider (0-200)")
	setCmd.Flags().Int("te", 0, "TE role slider (0-200)")
	setCmd.Flags().Int("rookie-boost", 0, "Rookie boost slider (0-100)")
	setCmd.Flags().Int("risk-averse", 0, "Risk aversion slider (0-100)")
	setCmd.Flags().Int("upside-weight", 0, "Upside weight slider (0-100)")
	setCmd.Flags().Int("adp-anchor", 0, "ADP anchor slider (0-100)")
	setCmd.Flags().Int("offense-weight", 0, "Offense weight slider (0-100)")

	// Bind all flags of archiveMigrateCmd to Viper
	archiveMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(archiveMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding archive migrate flags", err)
	}
}
