package irbis

import (
	"reflect"
	"testing"
)

func TestParseBook(t *testing.T) {
	lines := []string{
		"#920:IBIS",
		"#200:\x1fAПрограммирование на Go\x1fEучебник\x1fFпод ред. Иванова",
		"#205:\x1fA2-е изд.",
		"#210:\x1fAЮнити-Дана\x1fCМ\x1fD1999",
		"#215:\x1fA127 с.\x1f1ил.",
		"#225:\x1fVТ. 1\x1fAСерия X",
		"#675:004.43",
		"#964:32.973",
		"#903:И20-4/22",
		"#700:\x1fAИванов\x1fBИ.И.",
		"#701:\x1fAИванов\x1fBИ. И.",
		"#701:\x1fAПетров\x1fBП.П.",
		"#910:\x1fB001\x1fC01.01.2020",
		"#910:\x1fB002",
		"not a field line",
		"#205",
	}

	b := ParseBook(lines)

	if b.Title != "Программирование на Go" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.Type != "учебник" {
		t.Errorf("Type = %q", b.Type)
	}
	if b.Edit != "под ред. Иванова" {
		t.Errorf("Edit = %q", b.Edit)
	}
	if b.EditionStatement != "2-е изд." {
		t.Errorf("EditionStatement = %q", b.EditionStatement)
	}
	if b.PubInfoRaw != "Юнити-Дана, М, 1999" {
		t.Errorf("PubInfoRaw = %q", b.PubInfoRaw)
	}
	if b.PhysDesc != "127 с. ил." {
		t.Errorf("PhysDesc = %q", b.PhysDesc)
	}
	if b.Series != "Т. 1 Серия X" {
		t.Errorf("Series = %q", b.Series)
	}
	if b.UDCRaw != "004.43" {
		t.Errorf("UDCRaw = %q", b.UDCRaw)
	}
	if b.BBKRaw != "32.973" {
		t.Errorf("BBKRaw = %q", b.BBKRaw)
	}
	if b.LocalIndex != "И20-4/22" {
		t.Errorf("LocalIndex = %q", b.LocalIndex)
	}

	// The second #701 normalizes to a duplicate of the first author.
	wantAuthors := []string{"Иванов И.И.", "Петров П.П."}
	if !reflect.DeepEqual(b.Authors, wantAuthors) {
		t.Errorf("Authors = %v, want %v", b.Authors, wantAuthors)
	}

	wantCopies := []string{"\x1fB001\x1fC01.01.2020", "\x1fB002"}
	if !reflect.DeepEqual(b.Copies, wantCopies) {
		t.Errorf("Copies = %v, want %v", b.Copies, wantCopies)
	}
}

func TestParseBookSkipsEmptyPubInfoParts(t *testing.T) {
	b := ParseBook([]string{"#210:\x1fAНовоуральск\x1fD1999"})
	if b.PubInfoRaw != "Новоуральск, 1999" {
		t.Errorf("PubInfoRaw = %q", b.PubInfoRaw)
	}
}

func TestParseAuthorField(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"surname and initials", "\x1fAИванов\x1fBИ.И.", "Иванов И.И."},
		{"caret separators", "^AПетров^BП.П.", "Петров П.П."},
		{"missing trailing period appended", "\x1fAИванов\x1fBИ.О", "Иванов И.О."},
		{"surname only", "\x1fAИванов", "Иванов"},
		{"initials only", "\x1fBИ.И.", "И.И."},
		{"empty field", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAuthorField(tt.content); got != tt.want {
				t.Errorf("ParseAuthorField(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestSplitCodes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma separated", "32.973, 74.26", []string{"32.973", "74.26"}},
		{"semicolon separated", "32.973;74.26", []string{"32.973", "74.26"}},
		{"wide space runs", "32.973   74.26", []string{"32.973", "74.26"}},
		{"single space kept inside code", "32.973 я73", []string{"32.973 я73"}},
		{"empty", "", nil},
		{"only separators", " ;, ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCodes(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCodes(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
