package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestImportCSVHappyPath checks a full-featured row parses into a player.
func TestImportCSVHappyPath(t *testing.T) {
	input := strings.Join([]string{
		"name,pos,adp,team,age,rookie,injuryRisk,upside,offense,bye",
		"Alpha Back,RB,3.5,SF,26,0,0.2,0.8,5,9",
		"Bravo Wideout,wr,11,DAL,22,1,,,4,",
	}, "\n")

	players, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, players, 2)

	alpha := players[0]
	assert.Equal(t, "Alpha Back", alpha.Name)
	assert.Equal(t, schema.RB, alpha.Pos)
	assert.Equal(t, 3.5, alpha.ADP)
	assert.Equal(t, "SF", alpha.Team)
	assert.False(t, alpha.Rookie)
	require.NotNil(t, alpha.InjuryRisk)
	assert.Equal(t, 0.2, *alpha.InjuryRisk)
	require.NotNil(t, alpha.Upside)
	assert.Equal(t, 0.8, *alpha.Upside)
	require.NotNil(t, alpha.Offense)
	assert.Equal(t, 5, *alpha.Offense)
	require.NotNil(t, alpha.Bye)
	assert.Equal(t, 9, *alpha.Bye)

	bravo := players[1]
	assert.Equal(t, schema.WR, bravo.Pos)
	assert.True(t, bravo.Rookie)
	assert.Nil(t, bravo.InjuryRisk)
	assert.Nil(t, bravo.Upside)
	assert.Nil(t, bravo.Bye)
}

// TestImportCSVHeaderMatching checks case-insensitive, padded headers work.
func TestImportCSVHeaderMatching(t *testing.T) {
	input := " Name , POS ,Adp\nAlpha Back,RB,3\n"

	players, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Alpha Back", players[0].Name)
}

// TestImportCSVMissingColumn checks required columns abort the import.
func TestImportCSVMissingColumn(t *testing.T) {
	_, err := ImportCSV(strings.NewReader("name,pos\nAlpha Back,RB\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"adp"`)
}

// TestImportCSVInvalidPosition checks a bad position names the player and
// fails the whole import.
func TestImportCSVInvalidPosition(t *testing.T) {
	input := "name,pos,adp\nAlpha Back,RB,3\nBravo Wideout,XX,11\n"

	players, err := ImportCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bravo Wideout")
	assert.Contains(t, err.Error(), "XX")
	assert.Nil(t, players)
}

// TestImportCSVInvalidADP checks a bad ADP names the player.
func TestImportCSVInvalidADP(t *testing.T) {
	input := "name,pos,adp\nAlpha Back,RB,not-a-number\n"

	_, err := ImportCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alpha Back")
}

// TestImportCSVEmptyNameDropped checks nameless rows are skipped, not fatal.
func TestImportCSVEmptyNameDropped(t *testing.T) {
	input := "name,pos,adp\n,RB,3\nBravo Wideout,WR,11\n   ,TE,50\n"

	players, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Bravo Wideout", players[0].Name)
}

// TestImportCSVTruthyRookie covers the accepted rookie spellings.
func TestImportCSVTruthyRookie(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{raw: "1", expected: true},
		{raw: "true", expected: true},
		{raw: "YES", expected: true},
		{raw: "y", expected: true},
		{raw: "0", expected: false},
		{raw: "no", expected: false},
		{raw: "", expected: false},
		{raw: "2", expected: false},
	}

	for _, tt := range tests {
		t.Run("rookie="+tt.raw, func(t *testing.T) {
			input := "name,pos,adp,rookie\nAlpha Back,RB,3," + tt.raw + "\n"
			players, err := ImportCSV(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, players, 1)
			assert.Equal(t, tt.expected, players[0].Rookie)
		})
	}
}

// TestImportCSVBadOptionalBecomesAbsent checks unparseable optional numerics
// fall back to absent instead of failing.
func TestImportCSVBadOptionalBecomesAbsent(t *testing.T) {
	input := "name,pos,adp,injuryRisk,upside,offense\nAlpha Back,RB,3,high,??,lots\n"

	players, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Nil(t, players[0].InjuryRisk)
	assert.Nil(t, players[0].Upside)
	assert.Nil(t, players[0].Offense)
}

// TestImportCSVDuplicateLastWins checks a repeated name keeps the later row.
func TestImportCSVDuplicateLastWins(t *testing.T) {
	input := "name,pos,adp\nAlpha Back,RB,3\nBravo Wideout,WR,11\nAlpha Back,RB,30\n"

	players, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Alpha Back", players[0].Name)
	assert.Equal(t, 30.0, players[0].ADP)
}

// TestImportCSVClampsOptionalRanges checks out-of-range optionals clamp.
func TestImportCSVClampsOptionalRanges(t *testing.T) {
	input := "name,pos,adp,injuryRisk,upside,offense\nAlpha Back,RB,3,1.5,-0.2,9\n"

	players, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 1.0, *players[0].InjuryRisk)
	assert.Equal(t, 0.0, *players[0].Upside)
	assert.Equal(t, 5, *players[0].Offense)
}

// TestExportCSVLayout checks the export column order and optional rendering.
func TestExportCSVLayout(t *testing.T) {
	upside := 0.7
	offense := 4
	board := []schema.RankedPlayer{
		{
			Player: schema.Player{
				Name:   "Alpha Back",
				Pos:    schema.RB,
				ADP:    3.5,
				Rookie: true,
				Upside: &upside,
			},
			CurrentRank: 1,
		},
		{
			Player: schema.Player{
				Name:    "Bravo Wideout",
				Pos:     schema.WR,
				ADP:     11,
				Offense: &offense,
			},
			CurrentRank: 2,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, board))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,pos,adp,rookie,upside,injuryRisk,offense,bye,rankNow", lines[0])
	assert.Equal(t, "Alpha Back,RB,3.5,1,0.7,,,,1", lines[1])
	assert.Equal(t, "Bravo Wideout,WR,11,0,,,4,,2", lines[2])
}

// TestExportImportRoundTrip checks an export is importable and preserves the
// scoring-relevant fields.
func TestExportImportRoundTrip(t *testing.T) {
	risk := 0.3
	board := []schema.RankedPlayer{
		{
			Player: schema.Player{
				Name:       "Alpha Back",
				Pos:        schema.RB,
				ADP:        3.5,
				Rookie:     true,
				InjuryRisk: &risk,
			},
			CurrentRank: 1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, board))

	players, err := ImportCSV(&buf)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Alpha Back", players[0].Name)
	assert.Equal(t, schema.RB, players[0].Pos)
	assert.Equal(t, 3.5, players[0].ADP)
	assert.True(t, players[0].Rookie)
	require.NotNil(t, players[0].InjuryRisk)
	assert.Equal(t, 0.3, *players[0].InjuryRisk)
}
