package irbis

import (
	"strings"
	"unicode"
)

// Subfield is one decoded (code, value) pair, in field order.
type Subfield struct {
	Code  string
	Value string
}

// SubfieldSeq decodes a field's content into its ordered subfields. The
// one-character code is uppercased and the value is trimmed. When the 0x1F
// separator is absent but a caret is present the caret is treated as the
// separator; some legacy exports were produced that way.
func SubfieldSeq(content string) []Subfield {
	if !strings.ContainsRune(content, SubfieldSep) && strings.ContainsRune(content, SubfieldSepAlt) {
		content = strings.ReplaceAll(content, string(SubfieldSepAlt), string(SubfieldSep))
	}

	var subs []Subfield
	for _, chunk := range strings.Split(content, string(SubfieldSep)) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		runes := []rune(chunk)
		subs = append(subs, Subfield{
			Code:  string(unicode.ToUpper(runes[0])),
			Value: strings.TrimSpace(string(runes[1:])),
		})
	}
	return subs
}

// Subfields decodes a field's content into a code→value map. When a code
// repeats within one field the last occurrence wins, matching the legacy
// decoder. Callers look up only the codes they expect; absent codes read
// as the empty string.
func Subfields(content string) map[string]string {
	subf := make(map[string]string)
	for _, s := range SubfieldSeq(content) {
		subf[s.Code] = s.Value
	}
	return subf
}
