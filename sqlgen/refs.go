package sqlgen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/irbis-tools/irbis2sql/lookup"
)

// Reference-table targets for SerializeRefs.
const (
	RefBBK = "bbk"
	RefUDC = "udc"
)

// SerializeRefs writes reference records as inserts into the bbk or udc
// table. Ids are explicit so that CSV-loaded lookups and the inserted rows
// agree; re-running over an existing table is harmless.
func SerializeRefs(w io.Writer, system string, records []lookup.RefRecord, sourceName string) error {
	var table, codeCol string
	switch system {
	case RefBBK:
		table, codeCol = "public.bbk", "bbk_abb"
	case RefUDC:
		table, codeCol = "public.udc", "udc_abb"
	default:
		return fmt.Errorf("unknown reference system %q", system)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "-- %s reference rows generated from %s\n", system, sourceName)
	for _, rec := range records {
		fmt.Fprintf(bw, "INSERT INTO %s (id, %s, description) VALUES (%d, %s, %s) ON CONFLICT (%s) DO NOTHING;\n",
			table, codeCol, rec.ID, quote(rec.Code), quote(rec.Description), codeCol)
	}
	return bw.Flush()
}
