// Package query implements the pure in-memory half of listing and
// searching: sort/reverse modifiers, count formatting, and the
// include/exclude split for find. It reads through the store and holds
// no state of its own.
package query

import (
	"fmt"
	"sort"

	"github.com/skraft/ftag/internal/store"
)

// Reader is the subset of store reads the query engine needs.
type Reader interface {
	TagsOf(path string) ([]string, error)
	AllTags() ([]store.TagCount, error)
	FindFiles(include, exclude []string) ([]string, error)
}

// ListOptions carries the modifiers of the list command.
type ListOptions struct {
	ByCount    bool // sort by file count instead of tag name
	Reverse    bool // reverse the sorted result
	ShowCounts bool // format entries as "(count) name"
}

// SortTags orders entries by the primary sort (name ascending, or count
// ascending with name tiebreak when ByCount) and then reverses the whole
// slice if requested. Reversal is a post-step rather than a descending
// comparator so ties break as the ascending order reversed.
func SortTags(entries []store.TagCount, opts ListOptions) []store.TagCount {
	sorted := make([]store.TagCount, len(entries))
	copy(sorted, entries)

	if opts.ByCount {
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Files != sorted[j].Files {
				return sorted[i].Files < sorted[j].Files
			}
			return sorted[i].Name < sorted[j].Name
		})
	} else {
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	}

	if opts.Reverse {
		reverse(sorted)
	}
	return sorted
}

// FormatEntries renders tag entries one per line, either as the bare name
// or as "(count) name" when counts were requested.
func FormatEntries(entries []store.TagCount, showCounts bool) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		if showCounts {
			lines[i] = fmt.Sprintf("(%d) %s", e.Files, e.Name)
		} else {
			lines[i] = e.Name
		}
	}
	return lines
}

// ListFile returns the tags of a single file, optionally reversed.
// The store already yields ascending order, so reversal is a pure
// post-processing step.
func ListFile(r Reader, path string, reversed bool) ([]string, error) {
	tags, err := r.TagsOf(path)
	if err != nil {
		return nil, err
	}
	if reversed {
		reverse(tags)
	}
	return tags, nil
}

// ListAll returns every tag in the store, ordered and formatted per opts.
func ListAll(r Reader, opts ListOptions) ([]string, error) {
	entries, err := r.AllTags()
	if err != nil {
		return nil, err
	}
	return FormatEntries(SortTags(entries, opts), opts.ShowCounts), nil
}

// Find returns the files whose tag sets include all of include and none
// of exclude. Validation of the include set is the store's contract
// (store.ErrEmptyInclude); this is a straight delegation.
func Find(r Reader, include, exclude []string) ([]string, error) {
	return r.FindFiles(include, exclude)
}

// SplitAtDash splits a find argument list at the "--" separator into
// include (before) and exclude (after) sets. lenAtDash is the index cobra
// reports for the first argument after the dash, or -1 when no dash was
// given. Keeping the split here leaves the ambiguous-syntax decision out
// of the store's contract.
func SplitAtDash(args []string, lenAtDash int) (include, exclude []string) {
	if lenAtDash < 0 {
		return args, nil
	}
	return args[:lenAtDash], args[lenAtDash:]
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
