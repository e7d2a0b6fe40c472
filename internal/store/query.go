package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// TagCount pairs a tag name with the number of distinct files carrying it.
type TagCount struct {
	Name  string
	Files int
}

// FileTags pairs a path with its full tag set, ascending. Used by the
// export/import round trip.
type FileTags struct {
	Path string
	Tags []string
}

// TagsOf returns the tags associated with path, ascending.
// A path with no associations yields an empty (non-nil) slice.
func (s *Store) TagsOf(path string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT tag FROM file_tags
		WHERE path = ?
		ORDER BY tag
	`, path)
	if err != nil {
		return nil, fmt.Errorf("querying tags of %q: %w", path, err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// AllTags returns every tag with at least one associated file, paired
// with its distinct-file count, ascending by tag name. Tags whose last
// file reference was removed never appear: they exist only as edges.
func (s *Store) AllTags() ([]TagCount, error) {
	rows, err := s.db.Query(`
		SELECT tag, COUNT(DISTINCT path) FROM file_tags
		GROUP BY tag
		ORDER BY tag
	`)
	if err != nil {
		return nil, fmt.Errorf("querying all tags: %w", err)
	}
	defer rows.Close()

	var tags []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Name, &tc.Files); err != nil {
			return nil, err
		}
		tags = append(tags, tc)
	}
	return tags, rows.Err()
}

// FindFiles returns every path whose tag set is a superset of include and
// disjoint from exclude, ascending by path. Include must be non-empty;
// an empty include set returns ErrEmptyInclude.
//
// Superset matching counts distinct included tags per path and requires
// the count to equal len(include); exclusion is a NOT EXISTS on the same
// table.
func (s *Store) FindFiles(include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		return nil, ErrEmptyInclude
	}

	// Callers pass raw argument lists; repeated tags must not inflate the
	// superset count below.
	include = uniqueTags(include)
	exclude = uniqueTags(exclude)

	var args []any
	query := `
		SELECT path FROM file_tags
		WHERE tag IN (` + placeholders(len(include)) + `)`
	for _, tag := range include {
		args = append(args, tag)
	}

	if len(exclude) > 0 {
		query += `
		AND NOT EXISTS (
			SELECT 1 FROM file_tags ex
			WHERE ex.path = file_tags.path
			AND ex.tag IN (` + placeholders(len(exclude)) + `)
		)`
		for _, tag := range exclude {
			args = append(args, tag)
		}
	}

	query += `
		GROUP BY path
		HAVING COUNT(DISTINCT tag) = ?
		ORDER BY path`
	args = append(args, len(include))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding files: %w", err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// Dump returns the entire association grouped by path, paths ascending
// and each tag set ascending.
func (s *Store) Dump() ([]FileTags, error) {
	rows, err := s.db.Query(`
		SELECT path, tag FROM file_tags
		ORDER BY path, tag
	`)
	if err != nil {
		return nil, fmt.Errorf("dumping store: %w", err)
	}
	defer rows.Close()

	var files []FileTags
	for rows.Next() {
		var path, tag string
		if err := rows.Scan(&path, &tag); err != nil {
			return nil, err
		}
		if n := len(files); n > 0 && files[n-1].Path == path {
			files[n-1].Tags = append(files[n-1].Tags, tag)
		} else {
			files = append(files, FileTags{Path: path, Tags: []string{tag}})
		}
	}
	return files, rows.Err()
}

// uniqueTags drops repeated tag names, keeping first-seen order.
func uniqueTags(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimRight(strings.Repeat("?,", n), ",")
}

// scanStrings collects a single-column string result set.
func scanStrings(rows *sql.Rows) ([]string, error) {
	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
