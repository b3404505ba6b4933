package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// termDisplayNames maps scoring term keys to their display names in
// explain output.
var termDisplayNames = map[schema.TermKey]string{
	schema.TermPos:     "pos",
	schema.TermADP:     "adp",
	schema.TermUpside:  "upside",
	schema.TermOffense: "offense",
	schema.TermRookie:  "rookie",
	schema.TermRisk:    "risk",
}

// termBreakdown holds one scoring term's contribution to the final score.
type termBreakdown struct {
	Name  string
	Value float64
}

const (
	termContribMinimum = 0.005
	topNTerms          = 3
)

// formatTopTermBreakdown computes the top 3 scoring terms that contribute
// to a player's final score, strongest first.
func formatTopTermBreakdown(rp *schema.RankedPlayer) string {
	var terms []termBreakdown

	// 1. Filter and convert map to slice
	for k, v := range rp.Breakdown {
		// Only include meaningful terms; risk contributes negatively
		if math.Abs(v) >= termContribMinimum {
			name, ok := termDisplayNames[k]
			if !ok {
				name = string(k)
			}
			terms = append(terms, termBreakdown{Name: name, Value: v})
		}
	}

	if len(terms) == 0 {
		return "Not applicable"
	}

	// 2. Sort by absolute contribution in descending order
	sort.Slice(terms, func(i, j int) bool {
		return math.Abs(terms[i].Value) > math.Abs(terms[j].Value)
	})

	// 3. Limit to top 3 and format the output
	var parts []string
	limit := min(len(terms), topNTerms)

	for i := range limit {
		parts = append(parts, terms[i].Name)
	}

	return strings.Join(parts, " > ")
}

// getMaxTableNameWidth calculates the maximum width for player names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 35 // Rank + Pos + ADP + Score + Delta + Label with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 40 // Team + Bye + Rookie + Risk + Upside + Off with formatting
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 25 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to prevent overly wide tables
		return 40
	}
	return available
}

// formatOptionalInt renders a nullable display column.
func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// formatRookie renders the rookie flag for table columns.
func formatRookie(rookie bool) string {
	if rookie {
		return "R"
	}
	return "-"
}
