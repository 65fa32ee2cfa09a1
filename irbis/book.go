package irbis

import (
	"regexp"
	"strings"

	"github.com/irbis-tools/irbis2sql/helpers"
)

// Book is one accepted catalog record with its raw per-field accumulations.
// Derived attributes (publication place, page counts, surrogate ids) are
// computed downstream; Book itself only reflects what the record said.
type Book struct {
	ID               int
	Title            string
	Type             string
	Edit             string
	EditionStatement string
	PhysDesc         string
	Series           string
	LocalIndex       string
	PubInfoRaw       string
	UDCRaw           string
	BBKRaw           string

	// Authors holds canonical author strings in first-seen order with
	// exact duplicates dropped.
	Authors []string

	// Copies holds the raw #910 values in record order, undecoded.
	Copies []string
}

// IsIBIS reports whether a logical record carries the #920 marker this
// pipeline accepts. The marker must start its line; records without it are
// discarded, not errors.
func IsIBIS(lines []string) bool {
	for _, line := range lines {
		rest, ok := strings.CutPrefix(line, "#"+TagRecordType+":")
		if ok && strings.TrimSpace(rest) == RecordTypeIBIS {
			return true
		}
	}
	return false
}

// ParseBook routes every field line of an accepted record to the Book
// attribute it populates. Malformed lines are skipped; a failed field never
// blocks the rest of the record.
func ParseBook(lines []string) *Book {
	b := &Book{}
	seenAuthors := make(map[string]bool)

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if line == "" || !strings.HasPrefix(line, "#") {
			continue
		}
		tag, content, ok := strings.Cut(line[1:], ":")
		if !ok {
			continue
		}

		switch tag {
		case TagTitle:
			s := Subfields(content)
			b.Title = s["A"]
			b.Type = s["E"]
			b.Edit = s["F"]
		case TagEdition:
			b.EditionStatement = Subfields(content)["A"]
		case TagPubInfo:
			s := Subfields(content)
			b.PubInfoRaw = joinNonEmpty(", ", s["A"], s["C"], s["D"])
		case TagPhysDesc:
			s := Subfields(content)
			b.PhysDesc = joinNonEmpty(" ", s["A"], s["1"])
		case TagSeries:
			s := Subfields(content)
			b.Series = joinNonEmpty(" ", s["V"], s["A"])
		case TagUDC:
			b.UDCRaw = strings.TrimSpace(content)
		case TagBBK:
			b.BBKRaw = strings.TrimSpace(content)
		case TagLocalIndex:
			b.LocalIndex = strings.TrimSpace(content)
		case TagAuthor, TagAltAuthor:
			a := helpers.NormalizeAuthor(ParseAuthorField(content))
			if a != "" && !seenAuthors[a] {
				seenAuthors[a] = true
				b.Authors = append(b.Authors, a)
			}
		case TagCopy:
			b.Copies = append(b.Copies, strings.TrimSpace(content))
		}
	}
	return b
}

// ParseAuthorField extracts "Surname I.O." from a #700/#701 field: subfield
// A is the surname, B the initials. Initials without a trailing period get
// one appended. Whichever part is present is returned when the other is not.
func ParseAuthorField(content string) string {
	s := Subfields(content)
	surname := s["A"]
	initials := s["B"]
	if initials != "" && !strings.HasSuffix(initials, ".") {
		initials += "."
	}
	return strings.TrimSpace(surname + " " + initials)
}

var codeSepRe = regexp.MustCompile(`[;,]\s*|\s{2,}`)

// SplitCodes splits a raw classification string into individual codes.
// Commas, semicolons, and runs of two or more spaces all separate codes;
// single spaces may occur inside one code.
func SplitCodes(raw string) []string {
	var codes []string
	for _, c := range codeSepRe.Split(raw, -1) {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
