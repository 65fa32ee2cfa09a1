// Package pipeline drives one conversion run: it consumes an export stream
// exactly once, normalizes each accepted record, assigns surrogate ids,
// resolves classification codes, and decodes holdings into copies. All run
// state lives in the Result and is discarded with it.
package pipeline

import (
	"fmt"
	"io"

	"github.com/irbis-tools/irbis2sql/copies"
	"github.com/irbis-tools/irbis2sql/helpers"
	"github.com/irbis-tools/irbis2sql/irbis"
	"github.com/irbis-tools/irbis2sql/lookup"
	"github.com/irbis-tools/irbis2sql/xref"
)

// Book is one converted record: the raw attributes plus everything the
// normalizers derived from them.
type Book struct {
	irbis.Book

	PublisherID int // 0 when the record names no publisher
	City        string
	Year        int // 0 when no trailing year was found

	// Pages is the semicolon-joined page-count summary extracted from the
	// physical description. Series on the embedded Book is already merged
	// with any parenthetical fragments.
	Pages string

	AuthorIDs []int
}

// Publisher is a deduplicated publisher definition, emitted once per run.
type Publisher struct {
	ID   int
	Name string
}

// Author is a deduplicated author definition, emitted once per run.
type Author struct {
	ID         int
	LastName   string
	FirstName  string
	Patronymic string
	Canonical  string
}

// BookAuthor links a book to an author. Link rows are safe to apply
// redundantly; the sink inserts them with conflict-tolerant statements.
type BookAuthor struct {
	BookID   int
	AuthorID int
}

// CodeStats counts one classification system's codes through resolution.
type CodeStats struct {
	Seen     int
	Resolved int
	Skipped  int
}

// Stats summarizes one run.
type Stats struct {
	Records     int
	BBK         CodeStats
	UDC         CodeStats
	Copies      copies.Stats
	Publishers  int
	Authors     int
	AuthorLinks int
}

// Result is everything one run produced, in emission order.
type Result struct {
	Books       []*Book
	Publishers  []Publisher
	Authors     []Author
	AuthorLinks []BookAuthor

	BBKRaw []xref.CodePair
	UDCRaw []xref.CodePair

	BBKLinks []xref.Link
	UDCLinks []xref.Link

	Copies []copies.Copy

	Stats Stats
}

// Options configures a run.
type Options struct {
	// Lookups are the classification code→id maps. Empty maps skip every
	// code of that system.
	Lookups lookup.Maps

	// Heuristics override the publication-statement tables; nil uses the
	// defaults.
	Heuristics *helpers.PubHeuristics
}

// Run converts an export stream in a single pass. Only a read failure on r
// is an error; malformed records degrade per field and are reflected in
// Stats, never in an error.
func Run(r io.Reader, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	heur := opts.Heuristics
	if heur == nil {
		heur = helpers.DefaultPubHeuristics()
	}

	res := &Result{}
	publisherIDs := xref.NewAssigner()
	authorIDs := xref.NewAssigner()
	var rawCopies []copies.BookCopies

	it := irbis.NewRecordIterator(r)
	for it.Next() {
		lines := it.Record()
		if !irbis.IsIBIS(lines) {
			continue
		}
		res.Stats.Records++

		b := &Book{Book: *irbis.ParseBook(lines)}
		b.ID = res.Stats.Records

		pub := heur.Parse(b.PubInfoRaw)
		b.City = pub.City
		b.Year = pub.Year
		if pub.Publisher != "" {
			id, fresh := publisherIDs.Assign(pub.Publisher)
			if fresh {
				res.Publishers = append(res.Publishers, Publisher{ID: id, Name: pub.Publisher})
			}
			b.PublisherID = id
		}

		b.Pages, b.Series = helpers.CleanPhysDesc(b.PhysDesc, b.Series)

		for _, canonical := range b.Authors {
			id, fresh := authorIDs.Assign(canonical)
			if fresh {
				last, first, patronymic := helpers.SplitAuthorFields(canonical)
				res.Authors = append(res.Authors, Author{
					ID:         id,
					LastName:   last,
					FirstName:  first,
					Patronymic: patronymic,
					Canonical:  canonical,
				})
			}
			b.AuthorIDs = append(b.AuthorIDs, id)
			res.AuthorLinks = append(res.AuthorLinks, BookAuthor{BookID: b.ID, AuthorID: id})
		}

		for _, code := range irbis.SplitCodes(b.BBKRaw) {
			res.BBKRaw = append(res.BBKRaw, xref.CodePair{BookID: b.ID, Code: code})
		}
		for _, code := range irbis.SplitCodes(b.UDCRaw) {
			res.UDCRaw = append(res.UDCRaw, xref.CodePair{BookID: b.ID, Code: code})
		}

		if len(b.Copies) > 0 {
			rawCopies = append(rawCopies, copies.BookCopies{BookID: b.ID, Raw: b.Copies})
		}
		res.Books = append(res.Books, b)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	var skipped int
	res.BBKLinks, skipped = xref.ResolveCodes(res.BBKRaw, opts.Lookups.BBK)
	res.Stats.BBK = CodeStats{Seen: len(res.BBKRaw), Resolved: len(res.BBKLinks), Skipped: skipped}

	res.UDCLinks, skipped = xref.ResolveCodes(res.UDCRaw, opts.Lookups.UDC)
	res.Stats.UDC = CodeStats{Seen: len(res.UDCRaw), Resolved: len(res.UDCLinks), Skipped: skipped}

	res.Copies, res.Stats.Copies = copies.Resolve(rawCopies)

	res.Stats.Publishers = publisherIDs.Len()
	res.Stats.Authors = authorIDs.Len()
	res.Stats.AuthorLinks = len(res.AuthorLinks)

	return res, nil
}
