// Package sqlgen formats conversion results as a PostgreSQL insert dump.
// Definition rows appear once per surrogate identity; link and copy rows
// carry ON CONFLICT DO NOTHING so the dump is safe to apply more than once.
package sqlgen

import (
	"strconv"
	"strings"
)

// Escape doubles single quotes for inclusion in a SQL string literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// quote renders s as a SQL string literal.
func quote(s string) string {
	return "'" + Escape(s) + "'"
}

// quoteOrNull renders s as a literal, or NULL when empty.
func quoteOrNull(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}

// intOrNull renders n, or NULL when zero. Surrogate ids and years start
// at 1, so zero always means "absent".
func intOrNull(n int) string {
	if n == 0 {
		return "NULL"
	}
	return strconv.Itoa(n)
}
