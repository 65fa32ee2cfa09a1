// Package copies resolves the repeated holdings field (#910) into discrete
// inventory-copy rows. One field value can describe several copies back to
// back; a small state machine splits them on the inventory-number subfield.
package copies

import (
	"github.com/irbis-tools/irbis2sql/irbis"
)

// Copy is one physical holding of a book.
type Copy struct {
	BookID      int
	InventoryNo string
	ReceiptDate string // ISO yyyy-mm-dd, empty when absent or unparseable
	Storage     string
	Price       string // decimal text, empty when absent
}

// BookCopies pairs a book with its raw holdings field values, in record
// order.
type BookCopies struct {
	BookID int
	Raw    []string
}

// Stats counts the outcomes of one resolution run.
type Stats struct {
	Accepted   int
	Malformed  int // holdings with no inventory number, or empty field values
	Duplicates int // repeated (book, inventory number) keys, dropped
}

// Subfield codes recognized inside #910.
const (
	codeInventory = "B"
	codeDate      = "C"
	codeStorage   = "D"
	codePrice     = "E"
)

// machine accumulates one copy at a time. It is idle when the buffer is
// all-empty and accumulating otherwise; a new inventory-number subfield
// flushes whatever is pending.
type machine struct {
	bookID                    int
	inv, date, storage, price string
	out                       []Copy
	malformed                 int
}

func (m *machine) pending() bool {
	return m.inv != "" || m.date != "" || m.storage != "" || m.price != ""
}

func (m *machine) feed(code, value string) {
	switch code {
	case codeInventory:
		if m.pending() {
			m.flush()
		}
		m.inv = value
	case codeDate:
		m.date = value
	case codeStorage:
		m.storage = value
	case codePrice:
		m.price = value
	}
}

// flush emits the buffered copy if it has an inventory number and counts it
// as malformed otherwise. The buffer is reset either way.
func (m *machine) flush() {
	if m.inv != "" {
		m.out = append(m.out, Copy{
			BookID:      m.bookID,
			InventoryNo: m.inv,
			ReceiptDate: NormalizeDate(m.date),
			Storage:     m.storage,
			Price:       NormalizePrice(m.price),
		})
	} else {
		m.malformed++
	}
	m.inv, m.date, m.storage, m.price = "", "", "", ""
}

// Resolve decodes every book's raw holdings fields and dedupes the result
// run-wide by (book id, inventory number): the first occurrence wins,
// later ones are dropped and counted.
func Resolve(books []BookCopies) ([]Copy, Stats) {
	var stats Stats
	var all []Copy

	for _, bc := range books {
		m := machine{bookID: bc.BookID}
		for _, raw := range bc.Raw {
			subs := irbis.SubfieldSeq(raw)
			if len(subs) == 0 {
				m.malformed++
				continue
			}
			for _, s := range subs {
				m.feed(s.Code, s.Value)
			}
		}
		if m.pending() {
			m.flush()
		}
		all = append(all, m.out...)
		stats.Malformed += m.malformed
	}

	type key struct {
		bookID int
		inv    string
	}
	seen := make(map[key]bool)
	kept := all[:0]
	for _, c := range all {
		k := key{c.BookID, c.InventoryNo}
		if seen[k] {
			stats.Duplicates++
			continue
		}
		seen[k] = true
		kept = append(kept, c)
	}
	stats.Accepted = len(kept)
	return kept, stats
}
