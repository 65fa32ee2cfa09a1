package lookup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// RefRecord is one reference-table row assembled from a legacy worksheet
// export. Ids are assigned in row order, starting at 1, matching the ids
// the generated reference dump inserts.
type RefRecord struct {
	ID          int
	Code        string
	Description string
}

// Worksheet header fragments to skip in the BBK export.
var bbkHeaderPrefixes = []string{"bbk_full", "ББК.", "Рабочие таблицы"}

// ReadBBKCSV parses the semicolon-delimited BBK worksheet export: column 0
// the full code, column 1 the abbreviated code, column 2 the description.
// Rows with both code columns empty continue the previous description.
// Rows that never accumulate a description are dropped. encoding selects
// the source charset; the legacy exports are cp1251.
func ReadBBKCSV(r io.Reader, encoding string) ([]RefRecord, error) {
	reader, err := newRefReader(r, encoding)
	if err != nil {
		return nil, err
	}

	var records []RefRecord
	var cur *RefRecord

	flush := func() {
		if cur != nil && cur.Description != "" {
			cur.ID = len(records) + 1
			records = append(records, *cur)
		}
		cur = nil
	}

	for {
		raw, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading reference CSV: %w", err)
		}

		row := padRow(raw, 4)
		if isBBKHeader(raw, row) {
			continue
		}

		if row[0] != "" || row[1] != "" {
			flush()
			code := row[1]
			if code == "" {
				code = row[0]
			}
			cur = &RefRecord{Code: code, Description: row[2]}
			continue
		}
		if cur != nil && row[2] != "" {
			cur.Description = strings.TrimSpace(cur.Description + " " + stripLeadComma(row[2]))
		}
	}
	flush()

	return records, nil
}

// ReadUDCCSV parses the two-column UDC export: code then description, with
// code-less rows continuing the previous description.
func ReadUDCCSV(r io.Reader, encoding string) ([]RefRecord, error) {
	reader, err := newRefReader(r, encoding)
	if err != nil {
		return nil, err
	}

	var records []RefRecord
	var cur *RefRecord

	flush := func() {
		if cur != nil && cur.Description != "" {
			cur.ID = len(records) + 1
			records = append(records, *cur)
		}
		cur = nil
	}

	for {
		raw, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading reference CSV: %w", err)
		}

		row := padRow(raw, 2)
		switch {
		case row[0] != "":
			flush()
			cur = &RefRecord{Code: row[0], Description: row[1]}
		case cur != nil && row[1] != "":
			cur.Description = strings.TrimSpace(cur.Description + " " + row[1])
		}
	}
	flush()

	return records, nil
}

// CodeMap converts reference records to the code→id lookup the resolver
// consumes.
func CodeMap(records []RefRecord) map[string]int {
	m := make(map[string]int, len(records))
	for _, rec := range records {
		m[rec.Code] = rec.ID
	}
	return m
}

func newRefReader(r io.Reader, encoding string) (*csv.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		// already decoded
	case "cp1251", "windows-1251", "win1251":
		r = transform.NewReader(r, charmap.Windows1251.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported reference CSV encoding %q", encoding)
	}

	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader, nil
}

func padRow(raw []string, width int) []string {
	row := make([]string, width)
	for i := 0; i < width && i < len(raw); i++ {
		row[i] = strings.TrimSpace(raw[i])
	}
	return row
}

// isBBKHeader inspects the raw row for emptiness so stray content beyond
// the padded columns still counts, and the padded row for header prefixes.
func isBBKHeader(raw, row []string) bool {
	empty := true
	for _, cell := range raw {
		if strings.TrimSpace(cell) != "" {
			empty = false
			break
		}
	}
	if empty {
		return true
	}
	for _, prefix := range bbkHeaderPrefixes {
		if strings.HasPrefix(row[0], prefix) {
			return true
		}
	}
	return false
}

func stripLeadComma(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), ","))
}
