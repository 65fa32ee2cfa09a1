package helpers

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PubInfo is a publication statement classified into its parts. Empty
// strings and a zero year mean "not found"; the heuristics are best-effort
// and never fail.
type PubInfo struct {
	Publisher string
	City      string
	Year      int
}

// PubHeuristics holds the policy data the publication-statement classifier
// runs on. The tables are data, not code, so a library can adjust them for
// its own catalog without a rebuild.
type PubHeuristics struct {
	// CityAbbr maps short forms found in the exports to full city names.
	CityAbbr map[string]string `yaml:"city_abbreviations"`

	// PublisherHints are lowercase substrings that mark a token as a
	// publisher: organizational forms and trade words.
	PublisherHints []string `yaml:"publisher_hints"`

	// CitySuffixes are endings typical of Russian city names.
	CitySuffixes []string `yaml:"city_suffixes"`
}

// DefaultPubHeuristics returns the tables the municipal-library exports
// were tuned against.
func DefaultPubHeuristics() *PubHeuristics {
	return &PubHeuristics{
		CityAbbr: map[string]string{
			"М":      "Москва",
			"М.":     "Москва",
			"СПб":    "Санкт-Петербург",
			"М. СПб": "Санкт-Петербург",
		},
		PublisherHints: []string{
			"изд", "press", "publisher",
			"ao ", "ооо ", "zao ", "акц",
			"gmbh", "ltd", "srl", "llc",
		},
		CitySuffixes: []string{"ск", "ск-на-Дону", "бург"},
	}
}

// LoadPubHeuristics reads heuristic tables from a YAML file. Sections left
// empty in the file fall back to the defaults.
func LoadPubHeuristics(path string) (*PubHeuristics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heuristics file: %w", err)
	}

	var h PubHeuristics
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing heuristics YAML: %w", err)
	}

	defaults := DefaultPubHeuristics()
	if len(h.CityAbbr) == 0 {
		h.CityAbbr = defaults.CityAbbr
	}
	if len(h.PublisherHints) == 0 {
		h.PublisherHints = defaults.PublisherHints
	}
	if len(h.CitySuffixes) == 0 {
		h.CitySuffixes = defaults.CitySuffixes
	}
	return &h, nil
}

var (
	trailingYearRe = regexp.MustCompile(`(\d{4})\s*$`)
	cityWordRe     = regexp.MustCompile(`^[A-ZА-ЯЁ][A-Za-zА-Яа-яёЁ\-]+$`)
	tokenSepRe     = regexp.MustCompile(`[;,]`)
)

// Parse classifies a raw publication statement into publisher, city, and
// year. The year is a trailing 4-digit number. The remaining comma- or
// semicolon-separated tokens are claimed in a fixed priority order: a token
// matching the abbreviation table is the city; then each token in order is
// tried as a city by shape, then as a publisher by keyword; whatever is
// left fills the empty slots, publisher first. Ambiguous single tokens can
// land on the wrong side; that is an accepted limitation of the source
// data, not an error.
func (h *PubHeuristics) Parse(raw string) PubInfo {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return PubInfo{}
	}

	var info PubInfo
	if m := trailingYearRe.FindStringSubmatchIndex(txt); m != nil {
		info.Year, _ = strconv.Atoi(txt[m[2]:m[3]])
		txt = strings.TrimRight(txt[:m[0]], " ,;")
	}

	var tokens []string
	for _, t := range tokenSepRe.Split(txt, -1) {
		if t = cleanupToken(t); t != "" {
			tokens = append(tokens, t)
		}
	}

	// The abbreviation table outranks every other signal: a lone "М."
	// is Москва no matter what surrounds it.
	var rest []string
	for _, token := range tokens {
		if full, ok := h.CityAbbr[token]; ok && info.City == "" {
			info.City = full
			continue
		}
		rest = append(rest, token)
	}

	for _, token := range rest {
		if info.City == "" && h.looksLikeCity(token) {
			info.City = h.expandCity(token)
			continue
		}
		if info.Publisher == "" && h.looksLikePublisher(token) {
			info.Publisher = token
			continue
		}
		if info.Publisher == "" {
			info.Publisher = token
		} else if info.City == "" {
			info.City = h.expandCity(token)
		}
	}
	return info
}

// ParsePubInfo classifies raw using the default heuristic tables.
func ParsePubInfo(raw string) PubInfo {
	return defaultPubHeuristics.Parse(raw)
}

var defaultPubHeuristics = DefaultPubHeuristics()

func cleanupToken(token string) string {
	token = strings.Trim(strings.TrimSpace(token), `«»“”"`)
	return strings.TrimSpace(spaceRun.ReplaceAllString(token, " "))
}

func (h *PubHeuristics) looksLikeCity(token string) bool {
	if _, ok := h.CityAbbr[token]; ok {
		return true
	}
	if cityWordRe.MatchString(token) {
		return true
	}
	for _, suffix := range h.CitySuffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}

func (h *PubHeuristics) looksLikePublisher(token string) bool {
	low := strings.ToLower(token)
	for _, hint := range h.PublisherHints {
		if strings.Contains(low, hint) {
			return true
		}
	}
	return false
}

func (h *PubHeuristics) expandCity(token string) string {
	if full, ok := h.CityAbbr[token]; ok {
		return full
	}
	return token
}
