// Package parquet provides data structures and functions for exporting
// draft boards and archived drafts to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/parquet-go/parquet-go"
)

// BoardRow represents one ranked player of a live board export.
type BoardRow struct {
	// CurrentRank is the 1-based position in the live ranking
	CurrentRank int32 `parquet:"current_rank,snappy"`

	// Name is the player's unique display name
	Name string `parquet:"name,snappy"`

	// Pos is the player's position (QB/RB/WR/TE)
	Pos string `parquet:"pos,snappy"`

	// ADP is the average draft position consensus
	ADP float64 `parquet:"adp,snappy"`

	// Score is the output of the scoring function under current weights
	Score float64 `parquet:"score,snappy"`

	// BaselineRank is the position in the ascending-ADP ordering
	BaselineRank int32 `parquet:"baseline_rank,snappy"`

	// Delta is baseline rank minus current rank, positive means riser
	Delta int32 `parquet:"delta,snappy"`

	// Rookie marks a first-year player
	Rookie bool `parquet:"rookie,snappy"`

	// Taken marks a player present in the pick log
	Taken bool `parquet:"taken,snappy"`

	// Mine marks a player taken by my slot
	Mine bool `parquet:"mine,snappy"`

	// Bye is the player's bye week (nullable)
	Bye *int32 `parquet:"bye,optional,snappy"`
}

// DraftRun represents a single archived draft with metadata.
// This struct maps to the draft_runs database table.
type DraftRun struct {
	// RunID is the unique identifier for this archived draft
	RunID int64 `parquet:"run_id,snappy"`

	// ArchivedAt is when the draft was archived
	ArchivedAt time.Time `parquet:"archived_at,snappy"`

	// Teams is the number of drafting teams
	Teams int32 `parquet:"teams,snappy"`

	// MySlot is my draft slot within the snake order
	MySlot int32 `parquet:"my_slot,snappy"`

	// Rounds is the total number of draft rounds
	Rounds int32 `parquet:"rounds,snappy"`

	// PickCount is the number of recorded picks
	PickCount int32 `parquet:"pick_count,snappy"`

	// KnobsJSON contains the JSON-encoded weight sliders (nullable)
	KnobsJSON *string `parquet:"knobs_json,optional,snappy"`
}

// DraftPick represents one pick event of an archived draft.
// This struct maps to the draft_run_picks database table.
type DraftPick struct {
	// RunID references the parent archived draft
	RunID int64 `parquet:"run_id,snappy"`

	// Overall is the 1-based position in the pick log
	Overall int32 `parquet:"overall,snappy"`

	// Name is the drafted player's name
	Name string `parquet:"name,snappy"`

	// Pos is the drafted player's position
	Pos string `parquet:"pos,snappy"`

	// Mine marks picks made by my slot
	Mine bool `parquet:"mine,snappy"`

	// Round is the snake round of the pick
	Round int32 `parquet:"round,snappy"`

	// Slot is the team slot that made the pick
	Slot int32 `parquet:"slot,snappy"`
}

// WriteBoardParquet writes a slice of BoardRow structs to a Parquet file.
func WriteBoardParquet(data []BoardRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteDraftRunsParquet writes a slice of DraftRun structs to a Parquet file.
func WriteDraftRunsParquet(data []DraftRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteDraftPicksParquet writes a slice of DraftPick structs to a Parquet file.
func WriteDraftPicksParquet(data []DraftPick, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes records of any row type to a Parquet file using
// struct schema inference from the parquet tags.
func writeParquet[T any](data []T, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertBoard converts ranked players to BoardRow for Parquet export.
func ConvertBoard(board []schema.RankedPlayer) []BoardRow {
	result := make([]BoardRow, len(board))
	for i, rp := range board {
		row := BoardRow{
			CurrentRank:  int32(rp.CurrentRank),
			Name:         rp.Name,
			Pos:          string(rp.Pos),
			ADP:          rp.ADP,
			Score:        rp.Score,
			BaselineRank: int32(rp.BaselineRank),
			Delta:        int32(rp.Delta),
			Rookie:       rp.Rookie,
			Taken:        rp.Taken,
			Mine:         rp.Mine,
		}
		if rp.Bye != nil {
			bye := int32(*rp.Bye)
			row.Bye = &bye
		}
		result[i] = row
	}
	return result
}

// ConvertDraftRuns converts archived run records to DraftRun for Parquet export.
func ConvertDraftRuns(records []contract.ArchivedRun) []DraftRun {
	result := make([]DraftRun, len(records))
	for i, record := range records {
		run := DraftRun{
			RunID:      record.RunID,
			ArchivedAt: record.ArchivedAt,
			Teams:      int32(record.Teams),
			MySlot:     int32(record.MySlot),
			Rounds:     int32(record.Rounds),
			PickCount:  int32(record.PickCount),
		}
		if record.KnobsJSON != "" {
			knobs := record.KnobsJSON
			run.KnobsJSON = &knobs
		}
		result[i] = run
	}
	return result
}

// ConvertDraftPicks converts archived pick records to DraftPick for Parquet export.
func ConvertDraftPicks(records []contract.ArchivedPick) []DraftPick {
	result := make([]DraftPick, len(records))
	for i, record := range records {
		result[i] = DraftPick{
			RunID:   record.RunID,
			Overall: int32(record.Overall),
			Name:    record.Name,
			Pos:     record.Pos,
			Mine:    record.Mine,
			Round:   int32(record.Round),
			Slot:    int32(record.Slot),
		}
	}
	return result
}
