package irbis

import (
	"reflect"
	"testing"
)

func TestSubfields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "standard separator",
			content: "\x1fAИванов\x1fBИ.О.",
			want:    map[string]string{"A": "Иванов", "B": "И.О."},
		},
		{
			name:    "caret fallback",
			content: "^AПетров^BП.П.",
			want:    map[string]string{"A": "Петров", "B": "П.П."},
		},
		{
			name:    "caret kept when standard separator present",
			content: "\x1fATitle with ^ caret\x1fEType",
			want:    map[string]string{"A": "Title with ^ caret", "E": "Type"},
		},
		{
			name:    "duplicate code last wins",
			content: "\x1fAfirst\x1fAsecond",
			want:    map[string]string{"A": "second"},
		},
		{
			name:    "lowercase code uppercased",
			content: "\x1favalue",
			want:    map[string]string{"A": "value"},
		},
		{
			name:    "values trimmed and empty segments dropped",
			content: "\x1f\x1fA  spaced out  \x1f\x1fB x",
			want:    map[string]string{"A": "spaced out", "B": "x"},
		},
		{
			name:    "empty content",
			content: "",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subfields(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subfields(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestSubfieldSeqOrder(t *testing.T) {
	got := SubfieldSeq("\x1fB001\x1fC01.01.2020\x1fB002")
	want := []Subfield{
		{Code: "B", Value: "001"},
		{Code: "C", Value: "01.01.2020"},
		{Code: "B", Value: "002"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubfieldSeq = %v, want %v", got, want)
	}
}

func TestSubfieldSeqSeparatorEquivalence(t *testing.T) {
	standard := SubfieldSeq("\x1fAИванов\x1fBИ.О.")
	caret := SubfieldSeq("^AИванов^BИ.О.")
	if !reflect.DeepEqual(standard, caret) {
		t.Errorf("standard %v and caret %v decodes differ", standard, caret)
	}
}
