package catalog

import (
	"io/fs"
	"maps"
	"path/filepath"
	"sort"

	"book_browser/utils"
)

// LoadDir merges every dataset file found under dir into one Store. Files are
// visited in lexical path order, so catalog order is stable across runs.
// Author and genre tables are merged; a later file wins on a repeated id.
// Files with an unsupported extension are skipped.
func LoadDir(dir string) (*Store, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isDatasetFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}
	sort.Strings(paths)

	merged := Dataset{Authors: Table{}, Genres: Table{}}
	for _, path := range paths {
		text, enc, err := utils.ReadText(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		ds, err := Decode([]byte(text), formatOf(path))
		if err != nil {
			return nil, &LoadError{Path: path, Encoding: enc, Err: err}
		}
		merged.Books = append(merged.Books, ds.Books...)
		maps.Copy(merged.Authors, ds.Authors)
		maps.Copy(merged.Genres, ds.Genres)
	}

	store, err := merged.Store()
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}
	return store, nil
}

func isDatasetFile(name string) bool {
	switch formatOf(name) {
	case "json", "yaml", "toml":
		return true
	}
	return false
}
