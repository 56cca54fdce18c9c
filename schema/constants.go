package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for the reading log.
	StoreBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// Grid cell glyphs that are not tied to a stage tier.
const (
	// BlankCell marks alignment padding outside the requested window.
	BlankCell = " "

	// EmptyCell marks a day inside the window with no logged reading.
	EmptyCell = "."
)

// WeekdayLabels are the row labels of the forest grid, Monday first.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
