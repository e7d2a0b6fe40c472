package store

import "fmt"

// AddTags associates tags with path, ignoring pairs that already exist.
// The whole set is inserted in one transaction. Returns the file's
// complete tag set after the operation, ascending.
func (s *Store) AddTags(path string, tags []string) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO file_tags (path, tag) VALUES (?, ?)")
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, tag := range tags {
		if _, err := stmt.Exec(path, tag); err != nil {
			return nil, fmt.Errorf("adding tag %q: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	return s.TagsOf(path)
}

// RemoveTags dissociates tags from path. Tags not currently associated
// with the file are ignored; removing from an untagged file is a no-op.
// Returns the file's remaining tag set, ascending (possibly empty).
func (s *Store) RemoveTags(path string, tags []string) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("DELETE FROM file_tags WHERE path = ? AND tag = ?")
	if err != nil {
		return nil, fmt.Errorf("preparing delete: %w", err)
	}
	defer stmt.Close()

	for _, tag := range tags {
		if _, err := stmt.Exec(path, tag); err != nil {
			return nil, fmt.Errorf("removing tag %q: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	return s.TagsOf(path)
}

// RenameTag replaces old with new on a single file. If old is not
// associated with path, nothing changes. Renaming onto a tag the file
// already carries collapses to the set union. Other files keeping the old
// tag are untouched. Returns the file's tag set after the operation,
// ascending.
func (s *Store) RenameTag(path, old, new string) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM file_tags WHERE path = ? AND tag = ?", path, old)
	if err != nil {
		return nil, fmt.Errorf("removing tag %q: %w", old, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rename: %w", err)
	}
	if removed > 0 {
		if _, err := tx.Exec("INSERT OR IGNORE INTO file_tags (path, tag) VALUES (?, ?)", path, new); err != nil {
			return nil, fmt.Errorf("adding tag %q: %w", new, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	return s.TagsOf(path)
}
