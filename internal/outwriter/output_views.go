package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/3JRock3/Ver-2-Draft/core"
	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WritePickResults outputs the pick log, dispatching on the output format.
func WritePickResults(picks []schema.PickEvent, league schema.LeagueConfig, cfg *contract.Config) error {
	// Picks are annotated with their snake round and slot for display
	type pickRow struct {
		schema.PickEvent
		Round int `json:"round"`
		Slot  int `json:"slot"`
	}

	rows := make([]pickRow, len(picks))
	for i, ev := range picks {
		round, slot := core.PickRoundSlot(ev.Overall, league.Teams)
		rows[i] = pickRow{PickEvent: ev, Round: round, Slot: slot}
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"overall", "round", "slot", "name", "mine"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, row := range rows {
					rec := []string{
						strconv.Itoa(row.Overall),
						strconv.Itoa(row.Round),
						strconv.Itoa(row.Slot),
						row.Name,
						strconv.FormatBool(row.Mine),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Overall", "Round", "Slot", "Player", "Who"})
			table.Configure(func(tcfg *tablewriter.Config) {
				tcfg.Row.Alignment.Global = tw.AlignRight
			})

			var data [][]string
			for _, row := range rows {
				who := "Them"
				if row.Mine {
					who = "Me"
					if cfg.UseColors {
						who = contract.MineColor.Sprint(who)
					}
				}
				data = append(data, []string{
					strconv.Itoa(row.Overall),
					strconv.Itoa(row.Round),
					strconv.Itoa(row.Slot),
					row.Name,
					who,
				})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "%d picks recorded\n", len(rows))
			return err
		}, "Wrote table")
	}
}

// WriteUpcomingResults outputs my upcoming snake picks.
func WriteUpcomingResults(upcoming []schema.UpcomingPick, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, upcoming)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"overall", "round", "slot", "picks_away", "projected", "projected_pos"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, up := range upcoming {
					rec := []string{
						strconv.Itoa(up.Overall),
						strconv.Itoa(up.Round),
						strconv.Itoa(up.Slot),
						strconv.Itoa(up.PicksAway),
						up.Projected,
						string(up.ProjectedPos),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(upcoming) == 0 {
				_, err := fmt.Fprintln(w, "No picks left in this draft")
				return err
			}
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Overall", "Round", "Picks Away", "Projected"})
			table.Configure(func(tcfg *tablewriter.Config) {
				tcfg.Row.Alignment.Global = tw.AlignRight
			})

			var data [][]string
			for _, up := range upcoming {
				projected := "-"
				if up.Projected != "" {
					projected = fmt.Sprintf("%s (%s)", up.Projected, up.ProjectedPos)
				}
				data = append(data, []string{
					strconv.Itoa(up.Overall),
					strconv.Itoa(up.Round),
					strconv.Itoa(up.PicksAway),
					projected,
				})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

// WriteSummaryResults outputs the draft summary.
func WriteSummaryResults(summary schema.Summary, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	}

	fmtFloat, _ := createFormatters(cfg.Precision)
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Pool: %d players, %d taken, %d mine\n",
			summary.TotalPlayers, summary.TakenCount, summary.MyCount); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "\nPositions in top %d:\n", summary.TopN); err != nil {
			return err
		}
		for _, pos := range schema.AllPositions {
			if _, err := fmt.Fprintf(w, "  %s: %d\n", pos, summary.PositionCounts[pos]); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, "\nBest available:"); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Rank", "Player", "Pos", "Score", "Delta"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, rp := range summary.BestAvailable {
			data = append(data, []string{
				strconv.Itoa(rp.CurrentRank),
				rp.Name,
				string(rp.Pos),
				fmtFloat(rp.Score),
				contract.FormatDelta(rp.Delta),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, "\nMy upcoming picks:"); err != nil {
			return err
		}
		if len(summary.Upcoming) == 0 {
			_, err := fmt.Fprintln(w, "  none left")
			return err
		}
		for _, up := range summary.Upcoming {
			line := fmt.Sprintf("  #%d (round %d, %d picks away)", up.Overall, up.Round, up.PicksAway)
			if up.Projected != "" {
				line += fmt.Sprintf(" -> %s (%s)", up.Projected, up.ProjectedPos)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote summary")
}

// WriteMyRosterResults outputs the players my slot has drafted.
func WriteMyRosterResults(roster []schema.RankedPlayer, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, roster)
		}, "Wrote JSON")

	case schema.CSVOut:
		fmtFloat, _ := createFormatters(cfg.Precision)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"name", "pos", "adp", "baseline_rank"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, rp := range roster {
					rec := []string{
						rp.Name,
						string(rp.Pos),
						fmtFloat(rp.ADP),
						strconv.Itoa(rp.BaselineRank),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")

	default:
		fmtFloat, _ := createFormatters(cfg.Precision)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(roster) == 0 {
				_, err := fmt.Fprintln(w, "No picks yet")
				return err
			}
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Player", "Pos", "ADP", "Baseline"})
			table.Configure(func(tcfg *tablewriter.Config) {
				tcfg.Row.Alignment.Global = tw.AlignRight
			})
			var data [][]string
			for _, rp := range roster {
				data = append(data, []string{
					rp.Name,
					string(rp.Pos),
					fmtFloat(rp.ADP),
					strconv.Itoa(rp.BaselineRank),
				})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "%d players drafted\n", len(roster))
			return err
		}, "Wrote table")
	}
}

// WriteWeightsResults outputs the raw sliders alongside the normalized
// weights the scoring function actually uses.
func WriteWeightsResults(knobs schema.Knobs, weights schema.Weights, cfg *contract.Config) error {
	type weightsView struct {
		Knobs   schema.Knobs   `json:"knobs"`
		Weights schema.Weights `json:"weights"`
	}

	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, weightsView{Knobs: knobs, Weights: weights})
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, "Role sliders (0-200) and normalized position weights:"); err != nil {
			return err
		}
		roles := []struct {
			pos    schema.Position
			slider int
		}{
			{schema.QB, knobs.QB},
			{schema.RB, knobs.RB},
			{schema.WR, knobs.WR},
			{schema.TE, knobs.TE},
		}
		for _, role := range roles {
			if _, err := fmt.Fprintf(w, "  %-3s %4d -> %.3f\n", role.pos, role.slider, weights.Pos[role.pos]); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, "\nScalar sliders (0-100) and clamped weights:"); err != nil {
			return err
		}
		scalars := []struct {
			name   string
			slider int
			weight float64
		}{
			{"rookieBoost", knobs.RookieBoost, weights.RookieBoost},
			{"riskAverse", knobs.RiskAverse, weights.RiskAversion},
			{"upsideWeight", knobs.UpsideWeight, weights.UpsideWeight},
			{"adpAnchor", knobs.ADPAnchor, weights.ADPAnchor},
			{"offenseWeight", knobs.OffenseWeight, weights.OffenseWeight},
		}
		for _, sc := range scalars {
			if _, err := fmt.Fprintf(w, "  %-14s %4d -> %.2f\n", sc.name, sc.slider, sc.weight); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote weights")
}
