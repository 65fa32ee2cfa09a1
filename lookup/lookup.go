// Package lookup loads the classification reference tables (BBK and UDC)
// the pipeline resolves raw codes against. Maps can come from the live
// PostgreSQL schema or from the legacy worksheet CSV exports.
package lookup

// Maps holds the code→id lookups for one run. A nil or empty map simply
// skips every code of that system.
type Maps struct {
	BBK map[string]int
	UDC map[string]int
}
