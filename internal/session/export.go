package session

import (
	"errors"
	"fmt"

	"github.com/3JRock3/Ver-2-Draft/internal/parquet"
)

// ExecuteArchiveExport performs the actual export of archived drafts to Parquet files.
func ExecuteArchiveExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the archive store
	store := Manager.GetArchiveStore()
	if store == nil {
		return errors.New("archiving is disabled, nothing to export")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get archive status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no archived drafts found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total archived drafts: %d\n", status.TotalRuns)
	fmt.Printf("Total recorded picks: %d\n", status.TotalPicks)

	// Retrieve all archived runs
	runs, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve archived runs: %w", err)
	}

	// Retrieve the picks of every run
	var picks []parquet.DraftPick
	for _, run := range runs {
		runPicks, err := store.ListPicks(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve picks for run %d: %w", run.RunID, err)
		}
		picks = append(picks, parquet.ConvertDraftPicks(runPicks)...)
	}

	// Write archived runs to Parquet
	runsFile := outputFile + ".draft_runs.parquet"
	if err := parquet.WriteDraftRunsParquet(parquet.ConvertDraftRuns(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write archived runs: %w", err)
	}
	fmt.Printf("Exported %d archived drafts to: %s\n", len(runs), runsFile)

	// Write picks to Parquet
	picksFile := outputFile + ".draft_run_picks.parquet"
	if err := parquet.WriteDraftPicksParquet(picks, picksFile); err != nil {
		return fmt.Errorf("failed to write archived picks: %w", err)
	}
	fmt.Printf("Exported %d pick records to: %s\n", len(picks), picksFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
