package helpers

import (
	"regexp"
	"strings"
)

var (
	parensRe     = regexp.MustCompile(`\(([^)]*?)\)`)
	pageCountRe  = regexp.MustCompile(`(?i)(\d+)\s*[сc]\.?`)
	leadingNumRe = regexp.MustCompile(`^\s*(\d+)\b`)
	quoteSpaceRe = regexp.MustCompile(`"\s+`)
)

// CleanPhysDesc extracts page counts from a raw physical description and
// folds any parenthesized fragments into the series text, joined by "; ".
// Series fragments are accumulated as-is; repeats are not collapsed. Page
// counts match "<digits> с." in either alphabet; when none match, a digit
// run at the very start of the text is taken instead. Returns the
// semicolon-joined page counts and the merged series.
func CleanPhysDesc(raw, series string) (pages, mergedSeries string) {
	if raw == "" {
		return "", series
	}
	txt := strings.TrimSpace(raw)

	for _, m := range parensRe.FindAllStringSubmatch(txt, -1) {
		if inside := collapseSpace(m[1]); inside != "" {
			series = strings.Trim(series+"; "+inside, "; ")
		}
	}
	txt = parensRe.ReplaceAllString(txt, "")

	var counts []string
	for _, m := range pageCountRe.FindAllStringSubmatch(txt, -1) {
		counts = append(counts, stripLeadingZeros(m[1]))
	}
	if len(counts) == 0 {
		if m := leadingNumRe.FindStringSubmatch(txt); m != nil {
			counts = append(counts, stripLeadingZeros(m[1]))
		}
	}
	return strings.Join(counts, "; "), series
}

// collapseSpace squeezes whitespace runs and drops the space a typist left
// after an opening quote.
func collapseSpace(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = quoteSpaceRe.ReplaceAllString(s, `"`)
	return strings.TrimSpace(s)
}

func stripLeadingZeros(s string) string {
	if s = strings.TrimLeft(s, "0"); s == "" {
		return "0"
	}
	return s
}
