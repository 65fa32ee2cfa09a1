package copies

import (
	"regexp"
	"strings"
	"time"
)

var dateFormats = []struct {
	layout string
	re     *regexp.Regexp
}{
	{"02.01.2006", regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)},
	{"02.01.06", regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}$`)},
	{"2006-01-02", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)},
}

// NormalizeDate turns a raw receipt date into ISO yyyy-mm-dd. It tries
// dd.mm.yyyy, dd.mm.yy, and ISO in that order, then falls back to reading
// the first ten characters as an ISO date. Anything unparseable becomes
// the empty string; a bad date never fails a copy.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	for _, f := range dateFormats {
		if f.re.MatchString(raw) {
			t, err := time.Parse(f.layout, raw)
			if err != nil {
				break
			}
			return t.Format("2006-01-02")
		}
	}

	head := raw
	if len(head) > 10 {
		head = head[:10]
	}
	if t, err := time.Parse("2006-01-02", head); err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}

var priceRunRe = regexp.MustCompile(`[\d.,]+`)

// NormalizePrice extracts a decimal price from free text: spaces dropped,
// first run of digits, periods, and commas taken, comma replaced with a
// period, one trailing period stripped. Empty when no digits are present.
func NormalizePrice(raw string) string {
	if raw == "" {
		return ""
	}
	run := priceRunRe.FindString(strings.ReplaceAll(raw, " ", ""))
	if run == "" {
		return ""
	}
	run = strings.ReplaceAll(run, ",", ".")
	return strings.TrimSuffix(run, ".")
}
