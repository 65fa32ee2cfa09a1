package xref

import (
	"reflect"
	"testing"
)

func TestAssigner(t *testing.T) {
	a := NewAssigner()

	id, fresh := a.Assign("Юнити-Дана")
	if id != 1 || !fresh {
		t.Errorf("first sighting = (%d, %v), want (1, true)", id, fresh)
	}

	id, fresh = a.Assign("Наука")
	if id != 2 || !fresh {
		t.Errorf("second identity = (%d, %v), want (2, true)", id, fresh)
	}

	id, fresh = a.Assign("Юнити-Дана")
	if id != 1 || fresh {
		t.Errorf("repeat sighting = (%d, %v), want (1, false)", id, fresh)
	}

	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
}

func TestResolveCodes(t *testing.T) {
	pairs := []CodePair{
		{BookID: 1, Code: "15"},
		{BookID: 1, Code: "99-missing"},
		{BookID: 2, Code: "15"},
	}
	lookup := map[string]int{"15": 7}

	links, skipped := ResolveCodes(pairs, lookup)
	want := []Link{{BookID: 1, RefID: 7}, {BookID: 2, RefID: 7}}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestResolveCodesEmptyLookup(t *testing.T) {
	links, skipped := ResolveCodes([]CodePair{{BookID: 1, Code: "15"}}, nil)
	if links != nil {
		t.Errorf("links = %v, want nil", links)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}
