// Package roster reads and writes the tabular roster formats.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/3JRock3/Ver-2-Draft/schema"
)

// Import column names. Matching is case-insensitive and whitespace-trimmed.
const (
	colName       = "name"
	colPos        = "pos"
	colADP        = "adp"
	colTeam       = "team"
	colAge        = "age"
	colRookie     = "rookie"
	colInjuryRisk = "injuryrisk"
	colUpside     = "upside"
	colOffense    = "offense"
	colBye        = "bye"
)

// ExportHeader is the column layout of a board export.
var ExportHeader = []string{"name", "pos", "adp", "rookie", "upside", "injuryRisk", "offense", "bye", "rankNow"}

// ImportCSV parses a roster file. The whole import either succeeds or
// fails: a missing required column, an invalid position or an unparseable
// ADP abort with an error naming the offending player, leaving the caller's
// prior roster untouched. Rows with an empty name are silently dropped and
// optional numerics that fail to parse become absent so the scoring
// defaults apply. Duplicate names keep the last row.
func ImportCSV(r io.Reader) ([]schema.Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster file is empty, expected a header row")
	}

	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colName, colPos, colADP} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(row []string, col string) string {
		idx, ok := cols[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var players []schema.Player
	index := make(map[string]int)

	for _, row := range records[1:] {
		name := field(row, colName)
		if name == "" {
			continue
		}

		pos := schema.Position(strings.ToUpper(field(row, colPos)))
		if _, ok := schema.ValidPositions[pos]; !ok {
			return nil, fmt.Errorf("player %q has invalid position %q, must be QB, RB, WR or TE", name, field(row, colPos))
		}

		adp, err := strconv.ParseFloat(field(row, colADP), 64)
		if err != nil || math.IsNaN(adp) || math.IsInf(adp, 0) {
			return nil, fmt.Errorf("player %q has invalid adp %q", name, field(row, colADP))
		}

		p := schema.Player{
			Name:   name,
			Pos:    pos,
			ADP:    adp,
			Team:   field(row, colTeam),
			Rookie: parseTruthy(field(row, colRookie)),
		}
		p.Age = parseOptionalInt(field(row, colAge), 0, 99)
		p.Bye = parseOptionalInt(field(row, colBye), 0, 18)
		p.InjuryRisk = parseOptionalFloat(field(row, colInjuryRisk), 0, 1)
		p.Upside = parseOptionalFloat(field(row, colUpside), 0, 1)
		p.Offense = parseOptionalInt(field(row, colOffense), 1, 5)

		if at, dup := index[name]; dup {
			players[at] = p // last row wins
			continue
		}
		index[name] = len(players)
		players = append(players, p)
	}

	return players, nil
}

// parseTruthy accepts 1/true/yes/y case-insensitively; anything else is false.
func parseTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// parseOptionalFloat parses an optional numeric field, clamping to [lo,hi].
// Unparseable values become absent rather than erroring.
func parseOptionalFloat(s string, lo, hi float64) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	v = math.Min(math.Max(v, lo), hi)
	return &v
}

// parseOptionalInt parses an optional integer field, clamping to [lo,hi].
func parseOptionalInt(s string, lo, hi int) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return &v
}

// ExportCSV writes the currently ranked board in the import layout:
// rookie as 1/0, absent optionals as empty strings, rankNow as the live
// current rank. The output round-trips through ImportCSV.
func ExportCSV(w io.Writer, board []schema.RankedPlayer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rp := range board {
		rec := []string{
			rp.Name,
			string(rp.Pos),
			formatFloat(rp.ADP),
			formatBool(rp.Rookie),
			formatOptionalFloat(rp.Upside),
			formatOptionalFloat(rp.InjuryRisk),
			formatOptionalInt(rp.Offense),
			formatOptionalInt(rp.Bye),
			strconv.Itoa(rp.CurrentRank),
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write row for %q: %w", rp.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
