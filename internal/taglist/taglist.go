// Package taglist reads and writes the YAML document used by export and
// import: the full file-to-tag association as a list of path/tags entries.
package taglist

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/skraft/ftag/internal/store"
)

// document is the on-disk shape of an exported tag list.
type document struct {
	Files []entry `yaml:"files"`
}

type entry struct {
	Path string   `yaml:"path"`
	Tags []string `yaml:"tags"`
}

// Write renders the association as YAML. Entries keep the order the store
// yields (paths ascending, tags ascending), so exports are byte-stable
// for identical store contents.
func Write(w io.Writer, files []store.FileTags) error {
	doc := document{Files: make([]entry, len(files))}
	for i, f := range files {
		doc.Files[i] = entry{Path: f.Path, Tags: f.Tags}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding tag list: %w", err)
	}
	return enc.Close()
}

// Read parses a YAML tag list. Entries with no path or no tags are
// rejected rather than silently skipped.
func Read(r io.Reader) ([]store.FileTags, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing tag list: %w", err)
	}

	files := make([]store.FileTags, len(doc.Files))
	for i, e := range doc.Files {
		if e.Path == "" {
			return nil, fmt.Errorf("tag list entry %d has no path", i+1)
		}
		if len(e.Tags) == 0 {
			return nil, fmt.Errorf("tag list entry for %q has no tags", e.Path)
		}
		files[i] = store.FileTags{Path: e.Path, Tags: e.Tags}
	}
	return files, nil
}
