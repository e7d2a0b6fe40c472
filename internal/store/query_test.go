package store

import (
	"errors"
	"reflect"
	"testing"
)

func TestAllTags_CountsDistinctFiles(t *testing.T) {
	st := newTestStore(t)

	mustAdd(t, st, "a.jpg", "r", "p")
	mustAdd(t, st, "b.jpg", "r")
	mustAdd(t, st, "c.jpg", "p")

	got, err := st.AllTags()
	if err != nil {
		t.Fatalf("AllTags failed: %v", err)
	}

	want := []TagCount{{Name: "p", Files: 2}, {Name: "r", Files: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAllTags_EmptyStore(t *testing.T) {
	st := newTestStore(t)

	got, err := st.AllTags()
	if err != nil {
		t.Fatalf("AllTags failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no tags, got %v", got)
	}
}

func TestFindFiles_IncludeAndExclude(t *testing.T) {
	st := newTestStore(t)

	mustAdd(t, st, "a.jpg", "r", "p")
	mustAdd(t, st, "b.jpg", "r")
	mustAdd(t, st, "c.jpg", "p")

	got, err := st.FindFiles([]string{"r"}, []string{"p"})
	if err != nil {
		t.Fatalf("FindFiles failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"b.jpg"}) {
		t.Errorf("expected [b.jpg], got %v", got)
	}
}

func TestFindFiles_SupersetMatch(t *testing.T) {
	st := newTestStore(t)

	mustAdd(t, st, "a.jpg", "x", "y", "z")
	mustAdd(t, st, "b.jpg", "x", "y")
	mustAdd(t, st, "c.jpg", "x")

	got, err := st.FindFiles([]string{"x", "y"}, nil)
	if err != nil {
		t.Fatalf("FindFiles failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("expected [a.jpg b.jpg], got %v", got)
	}
}

func TestFindFiles_DuplicateTagsInSets(t *testing.T) {
	st := newTestStore(t)

	mustAdd(t, st, "a.jpg", "r", "p")
	mustAdd(t, st, "b.jpg", "r")

	// A repeated include tag is the same one-element set.
	got, err := st.FindFiles([]string{"r", "r"}, nil)
	if err != nil {
		t.Fatalf("FindFiles failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("expected [a.jpg b.jpg], got %v", got)
	}

	got, err = st.FindFiles([]string{"r", "r"}, []string{"p", "p"})
	if err != nil {
		t.Fatalf("FindFiles failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"b.jpg"}) {
		t.Errorf("expected [b.jpg], got %v", got)
	}
}

func TestFindFiles_EmptyInclude(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.FindFiles(nil, []string{"x"}); !errors.Is(err, ErrEmptyInclude) {
		t.Errorf("expected ErrEmptyInclude, got %v", err)
	}
}

func TestFindFiles_NoMatches(t *testing.T) {
	st := newTestStore(t)
	mustAdd(t, st, "a.jpg", "x")

	got, err := st.FindFiles([]string{"missing"}, nil)
	if err != nil {
		t.Fatalf("FindFiles failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no files, got %v", got)
	}
}

func TestTagsOf_SortedAscending(t *testing.T) {
	st := newTestStore(t)
	mustAdd(t, st, "a.jpg", "zebra", "apple", "mango")

	got, err := st.TagsOf("a.jpg")
	if err != nil {
		t.Fatalf("TagsOf failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"apple", "mango", "zebra"}) {
		t.Errorf("expected ascending order, got %v", got)
	}
}

func TestDump_GroupsByPath(t *testing.T) {
	st := newTestStore(t)

	mustAdd(t, st, "b.jpg", "y")
	mustAdd(t, st, "a.jpg", "x", "y")

	got, err := st.Dump()
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	want := []FileTags{
		{Path: "a.jpg", Tags: []string{"x", "y"}},
		{Path: "b.jpg", Tags: []string{"y"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
