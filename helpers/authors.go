// Package helpers provides the text-normalization heuristics the pipeline
// applies to raw field values: author names, publication statements, and
// physical descriptions.
package helpers

import (
	"regexp"
	"strings"
	"unicode"
)

// spaceRun matches whitespace runs including the no-break and narrow
// spaces the legacy exports carry; \s alone is ASCII-only here.
var spaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// NormalizeAuthor canonicalizes a "Surname I.O." string: space runs of any
// kind collapse to single spaces, initials are uppercased and joined with
// periods, and a trailing period is guaranteed. A string
// with no internal space is returned as a bare surname. When the initials
// part contains anything besides letters and periods the input is returned
// with only the whitespace fixed; an odd name is kept, not rejected.
func NormalizeAuthor(full string) string {
	full = strings.TrimSpace(spaceRun.ReplaceAllString(full, " "))
	if full == "" {
		return ""
	}

	surname, rest, ok := strings.Cut(full, " ")
	if !ok {
		return full
	}
	rest = strings.ReplaceAll(rest, " ", "")

	var initials []string
	for _, r := range rest {
		if r == '.' {
			continue
		}
		if !isInitialLetter(r) {
			return surname + " " + rest
		}
		initials = append(initials, string(unicode.ToUpper(r)))
	}
	return surname + " " + strings.Join(initials, ".") + "."
}

// SplitAuthorFields splits a canonical author string into the relational
// (surname, first initial, patronymic initial) triple. A bare surname
// yields empty initials.
func SplitAuthorFields(canonical string) (surname, first, patronymic string) {
	surname, rest, ok := strings.Cut(canonical, " ")
	if !ok {
		return canonical, "", ""
	}

	var parts []string
	for _, p := range strings.Split(strings.Trim(rest, "."), ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		patronymic = parts[1]
	}
	return surname, first, patronymic
}

// SplitAuthors splits a semicolon-separated author list into normalized
// entries, dropping empties and exact duplicates while keeping first-seen
// order.
func SplitAuthors(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, token := range strings.Split(raw, ";") {
		token = NormalizeAuthor(token)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}

// isInitialLetter reports whether r can stand as a name initial: a Latin
// or Cyrillic letter, either case. The records mix both alphabets.
func isInitialLetter(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 'А' && r <= 'я', r == 'Ё', r == 'ё':
		return true
	}
	return false
}
