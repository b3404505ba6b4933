package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/parquet"
	"github.com/3JRock3/Ver-2-Draft/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteBoardResults outputs the ranked board, dispatching based on the output format configured.
func WriteBoardResults(board []schema.RankedPlayer, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeBoardJSONResults(board, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeBoardCSVResults(board, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		if err := parquet.WriteBoardParquet(parquet.ConvertBoard(board), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("Wrote %d board rows to %s\n", len(board), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardTable(board, cfg, fmtFloat, w)
		}, "Wrote table")
	}
	return nil
}

// writeBoardJSONResults handles opening the file and calling the JSON writer.
func writeBoardJSONResults(board []schema.RankedPlayer, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForBoard(w, board)
	}, "Wrote JSON")
}

// writeBoardCSVResults handles opening the file and calling the CSV writer.
func writeBoardCSVResults(board []schema.RankedPlayer, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "name", "pos", "adp", "score", "baseline_rank", "delta", "label", "taken", "mine"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForBoard(csvWriter, board, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeBoardTable generates and writes the human-readable board table.
func writeBoardTable(board []schema.RankedPlayer, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define headers
	headers := []string{"Rank", "Player", "Pos", "ADP", "Score", "Delta", "Label"}
	if cfg.Detail {
		headers = append(headers, "Team", "Bye", "Rookie", "Risk", "Upside", "Off")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure alignment to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate rows
	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, rp := range board {
		name := contract.TruncateName(rp.Name, nameWidth)
		if rp.Mine {
			name += " *"
		}
		row := []string{
			strconv.Itoa(rp.CurrentRank),
			name,
			string(rp.Pos),
			fmtFloat(rp.ADP),
			fmtFloat(rp.Score),
			contract.FormatDelta(rp.Delta),
			boardLabel(&rp, cfg.UseColors),
		}
		if cfg.Detail {
			row = append(
				row,
				rp.Team,
				formatOptionalInt(rp.Bye),
				formatRookie(rp.Rookie),
				fmtFloat(rp.InjuryRiskValue()),
				fmtFloat(rp.UpsideValue()),
				strconv.Itoa(rp.OffenseValue()),
			)
		}
		if cfg.Explain {
			row = append(row, formatTopTermBreakdown(&rp))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary line
	taken := 0
	mine := 0
	for _, rp := range board {
		if rp.Taken {
			taken++
		}
		if rp.Mine {
			mine++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d players (taken on board: %d, mine: %d)\n", len(board), taken, mine); err != nil {
		return err
	}
	return nil
}

// boardLabel renders the delta label column, marking taken players.
func boardLabel(rp *schema.RankedPlayer, useColors bool) string {
	if rp.Taken {
		if useColors && rp.Mine {
			return contract.MineColor.Sprint("Taken")
		}
		return "Taken"
	}
	if useColors {
		return contract.GetColorDeltaLabel(rp.Delta)
	}
	return contract.GetPlainDeltaLabel(rp.Delta)
}

// writeCSVResultsForBoard writes the board in CSV format.
func writeCSVResultsForBoard(w *csv.Writer, board []schema.RankedPlayer, fmtFloat func(float64) string) error {
	for _, rp := range board {
		rec := []string{
			strconv.Itoa(rp.CurrentRank),
			rp.Name,
			string(rp.Pos),
			fmtFloat(rp.ADP),
			fmtFloat(rp.Score),
			strconv.Itoa(rp.BaselineRank),
			strconv.Itoa(rp.Delta),
			contract.GetPlainDeltaLabel(rp.Delta),
			strconv.FormatBool(rp.Taken),
			strconv.FormatBool(rp.Mine),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForBoard writes the board in JSON format.
func writeJSONResultsForBoard(w io.Writer, board []schema.RankedPlayer) error {
	// 1. Prepare the data structure for JSON with the label added
	type JSONBoardRow struct {
		Label string `json:"label"`
		schema.RankedPlayer
	}

	output := make([]JSONBoardRow, len(board))
	for i, rp := range board {
		output[i] = JSONBoardRow{
			Label:        contract.GetPlainDeltaLabel(rp.Delta),
			RankedPlayer: rp,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
