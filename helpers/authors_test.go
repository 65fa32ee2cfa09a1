package helpers

import (
	"reflect"
	"testing"
)

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "Иванов И.И.", "Иванов И.И."},
		{"double spaces", "Евтеев  Ю.И.", "Евтеев Ю.И."},
		{"space inside initials", "Чернышев А .А", "Чернышев А.А."},
		{"narrow no-break space", "Иванов И.И.", "Иванов И.И."},
		{"no-break space", "Иванов\u00a0И.И.", "Иванов И.И."},
		{"lowercase initials uppercased", "Иванов и.и.", "Иванов И.И."},
		{"latin initials", "Smith J.R", "Smith J.R."},
		{"surname only", "Иванов", "Иванов"},
		{"unexpected character keeps remainder verbatim", "Иванов И.И.2", "Иванов И.И.2"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthor(tt.in); got != tt.want {
				t.Errorf("NormalizeAuthor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAuthorIdempotent(t *testing.T) {
	inputs := []string{
		"Иванов И.И.",
		"Евтеев  Ю.И.",
		"Чернышев А .А",
		"Smith J.R",
		"Иванов",
	}
	for _, in := range inputs {
		once := NormalizeAuthor(in)
		twice := NormalizeAuthor(once)
		if once != twice {
			t.Errorf("NormalizeAuthor not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSplitAuthorFields(t *testing.T) {
	tests := []struct {
		name                       string
		in                         string
		surname, first, patronymic string
	}{
		{"two initials", "Иванов И.И.", "Иванов", "И", "И"},
		{"one initial", "Петров П.", "Петров", "П", ""},
		{"surname only", "Иванов", "Иванов", "", ""},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surname, first, patronymic := SplitAuthorFields(tt.in)
			if surname != tt.surname || first != tt.first || patronymic != tt.patronymic {
				t.Errorf("SplitAuthorFields(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.in, surname, first, patronymic, tt.surname, tt.first, tt.patronymic)
			}
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "normalized duplicate suppressed",
			in:   "Иванов И.И.; Петров П.П.; Иванов И. И.",
			want: []string{"Иванов И.И.", "Петров П.П."},
		},
		{
			name: "no-break space duplicate suppressed",
			in:   "Иванов И.И.; Иванов И.И.",
			want: []string{"Иванов И.И."},
		},
		{
			name: "empty tokens dropped",
			in:   ";; Иванов И.И. ;",
			want: []string{"Иванов И.И."},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAuthors(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitAuthors(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
