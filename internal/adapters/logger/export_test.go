// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry exposes the chain entry type for testing.
type ErrorEntry = errorEntry

// Exported error formatting helpers.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
	EscapeData                  = escapeData
)
