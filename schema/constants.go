package schema

// Custom string types for type safety.
type (
	// Position represents a player's roster position.
	Position string

	// TermKey represents keys used in scoring term breakdowns.
	TermKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for session and archive storage.
	StoreBackend string
)

// All roster positions supported.
const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"

	// AllPositionsFilter disables position filtering on the board.
	AllPositionsFilter Position = "ALL"
)

// Term keys used in the scoring logic.
const (
	TermPos     TermKey = "pos"     // posWeight
	TermADP     TermKey = "adp"     // adpNorm
	TermUpside  TermKey = "upside"  // upsideBonus
	TermOffense TermKey = "offense" // offenseBonus
	TermRookie  TermKey = "rookie"  // rookieTerm
	TermRisk    TermKey = "risk"    // riskPenalty (negative contribution)
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// AllPositions returns a list of all draftable positions.
var AllPositions = []Position{QB, RB, WR, TE}

// ValidPositions lists all valid draftable positions.
var ValidPositions = map[Position]struct{}{
	QB: {},
	RB: {},
	WR: {},
	TE: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
