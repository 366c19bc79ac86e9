package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"book_browser/utils"
)

//go:embed sample.json
var sampleCatalog []byte

// Dataset is the on-disk catalog document.
type Dataset struct {
	Books   []Book `json:"books" yaml:"books" toml:"books"`
	Authors Table  `json:"authors" yaml:"authors" toml:"authors"`
	Genres  Table  `json:"genres" yaml:"genres" toml:"genres"`
}

// LoadError reports a dataset file that could not be read or decoded.
// Encoding is set once the file's bytes have been read.
type LoadError struct {
	Path     string
	Encoding utils.Encoding
	Err      error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Encoding != "" && e.Encoding != utils.EncodingUTF8 {
		return fmt.Sprintf("load catalog %s (%s): %v", e.Path, e.Encoding, e.Err)
	}
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Load reads a .json, .yaml/.yml or .toml dataset and builds a Store. A
// directory is handed to LoadDir.
func Load(path string) (*Store, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return LoadDir(path)
	}

	text, enc, err := utils.ReadText(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	ds, err := Decode([]byte(text), formatOf(path))
	if err != nil {
		return nil, &LoadError{Path: path, Encoding: enc, Err: err}
	}

	store, err := ds.Store()
	if err != nil {
		return nil, &LoadError{Path: path, Encoding: enc, Err: err}
	}
	return store, nil
}

// LoadSample builds a Store from the catalog bundled with the binary.
func LoadSample() (*Store, error) {
	ds, err := Decode(sampleCatalog, "json")
	if err != nil {
		return nil, &LoadError{Path: "sample.json", Err: err}
	}
	return ds.Store()
}

// Decode parses a dataset document in the given format (json, yaml or toml).
func Decode(data []byte, format string) (*Dataset, error) {
	var ds Dataset
	switch format {
	case "json":
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &ds); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return &ds, nil
}

// Store flattens HTML descriptions and builds the indexed Store.
func (ds *Dataset) Store() (*Store, error) {
	books := make([]Book, len(ds.Books))
	for i, b := range ds.Books {
		b.Title = strings.TrimSpace(b.Title)
		b.Description = plainText(b.Description)
		books[i] = b
	}
	return NewStore(books, ds.Authors, ds.Genres)
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}

// plainText strips markup from a description and collapses whitespace.
func plainText(raw string) string {
	text := raw
	if strings.ContainsAny(raw, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
			text = doc.Text()
		}
	}
	return strings.Join(strings.Fields(text), " ")
}
