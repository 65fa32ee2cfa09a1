package sqlgen

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/irbis-tools/irbis2sql/pipeline"
	"github.com/irbis-tools/irbis2sql/xref"
)

// Options configures dump output.
type Options struct {
	// SourceName identifies the input in the dump header.
	SourceName string

	// Now is the generation timestamp for the header; zero means time.Now.
	Now time.Time
}

// Serialize writes res as an insert dump. Definitions come first so that
// foreign keys resolve when the dump is applied top to bottom.
func Serialize(w io.Writer, res *pipeline.Result, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	source := opts.SourceName
	if source == "" {
		source = "stdin"
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "-- ======================================================\n")
	fmt.Fprintf(bw, "-- irbis2sql insert dump\n")
	fmt.Fprintf(bw, "-- generated : %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "-- source    : %s\n", source)
	fmt.Fprintf(bw, "-- ======================================================\n\n")

	if len(res.Publishers) > 0 {
		fmt.Fprintf(bw, "-- publishers\n")
		for _, p := range res.Publishers {
			fmt.Fprintf(bw, "INSERT INTO public.publisher (id, name) VALUES (%d, %s);\n", p.ID, quote(p.Name))
		}
		fmt.Fprintf(bw, "\n")
	}

	if len(res.Authors) > 0 {
		fmt.Fprintf(bw, "-- authors\n")
		for _, a := range res.Authors {
			fmt.Fprintf(bw, "INSERT INTO public.author (id, last_name, first_name, patronymic) VALUES (%d, %s, %s, %s);\n",
				a.ID, quote(a.LastName), quote(a.FirstName), quoteOrNull(a.Patronymic))
		}
		fmt.Fprintf(bw, "\n")
	}

	rawBBK := pairsByBook(res.BBKRaw)
	rawUDC := pairsByBook(res.UDCRaw)

	for _, b := range res.Books {
		fmt.Fprintf(bw, "-- book #%d\n", b.ID)
		fmt.Fprintf(bw, "INSERT INTO public.book (id, title, \"type\", edit, edition_statement, phys_desc, series)\n")
		fmt.Fprintf(bw, "VALUES (%d, %s, %s, %s, %s, %s, %s);\n",
			b.ID, quote(b.Title), quote(b.Type), quote(b.Edit),
			quote(b.EditionStatement), quote(b.Pages), quote(b.Series))
		if b.LocalIndex != "" {
			fmt.Fprintf(bw, "-- local index: %s\n", b.LocalIndex)
		}

		fmt.Fprintf(bw, "INSERT INTO public.book_pub_place (book_id, publisher_id, city, pub_year) VALUES (%d, %s, %s, %s);\n",
			b.ID, intOrNull(b.PublisherID), quote(b.City), intOrNull(b.Year))

		for _, authorID := range b.AuthorIDs {
			fmt.Fprintf(bw, "INSERT INTO public.book_author (book_id, author_id) VALUES (%d, %d) ON CONFLICT DO NOTHING;\n",
				b.ID, authorID)
		}
		for _, code := range rawBBK[b.ID] {
			fmt.Fprintf(bw, "INSERT INTO public.book_bbk_raw (book_id, bbk_code) VALUES (%d, %s) ON CONFLICT DO NOTHING;\n",
				b.ID, quote(code))
		}
		for _, code := range rawUDC[b.ID] {
			fmt.Fprintf(bw, "INSERT INTO public.book_udc_raw (book_id, udc_code) VALUES (%d, %s) ON CONFLICT DO NOTHING;\n",
				b.ID, quote(code))
		}
		fmt.Fprintf(bw, "\n")
	}

	fmt.Fprintf(bw, "-- resolved BBK links\n")
	for _, l := range res.BBKLinks {
		fmt.Fprintf(bw, "INSERT INTO public.book_bbk (book_id, bbk_id) VALUES (%d, %d) ON CONFLICT DO NOTHING;\n",
			l.BookID, l.RefID)
	}
	fmt.Fprintf(bw, "-- BBK: resolved %d, skipped %d\n\n", res.Stats.BBK.Resolved, res.Stats.BBK.Skipped)

	fmt.Fprintf(bw, "-- resolved UDC links\n")
	for _, l := range res.UDCLinks {
		fmt.Fprintf(bw, "INSERT INTO public.book_udc (book_id, udc_id) VALUES (%d, %d) ON CONFLICT DO NOTHING;\n",
			l.BookID, l.RefID)
	}
	fmt.Fprintf(bw, "-- UDC: resolved %d, skipped %d\n\n", res.Stats.UDC.Resolved, res.Stats.UDC.Skipped)

	fmt.Fprintf(bw, "-- copies\n")
	for _, c := range res.Copies {
		fmt.Fprintf(bw, "INSERT INTO public.book_copy (book_id, inventory_no, receipt_date, storage_place, price) VALUES (%d, %s, %s, %s, %s) ON CONFLICT (book_id, inventory_no) DO NOTHING;\n",
			c.BookID, quote(c.InventoryNo), quoteOrNull(c.ReceiptDate), quoteOrNull(c.Storage), orNull(c.Price))
	}
	fmt.Fprintf(bw, "-- copies: inserted %d, duplicates dropped %d, malformed %d\n",
		res.Stats.Copies.Accepted, res.Stats.Copies.Duplicates, res.Stats.Copies.Malformed)

	return bw.Flush()
}

// orNull renders a numeric literal already validated by the price
// normalizer, or NULL when empty.
func orNull(s string) string {
	if s == "" {
		return "NULL"
	}
	return s
}

func pairsByBook(pairs []xref.CodePair) map[int][]string {
	byBook := make(map[int][]string)
	for _, p := range pairs {
		byBook[p.BookID] = append(byBook[p.BookID], p.Code)
	}
	return byBook
}
