package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"book_browser/lang"
	"book_browser/utils"
)

var ErrDuplicateID = errors.New("duplicate book id")

// Store holds the static catalog and an id index built once at load time.
type Store struct {
	books   []*Book
	byID    map[string]*Book
	authors Table
	genres  Table
}

// NewStore validates and indexes the records. Catalog order is kept as given;
// genre ids are de-duplicated per record.
func NewStore(books []Book, authors, genres Table) (*Store, error) {
	s := &Store{
		books:   make([]*Book, 0, len(books)),
		byID:    make(map[string]*Book, len(books)),
		authors: copyTable(authors),
		genres:  copyTable(genres),
	}

	validate := utils.Validator()
	for i := range books {
		b := books[i]
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("book %d (%q): %w", i, b.ID, err)
		}
		if _, ok := s.byID[b.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
		}
		b.GenreIDs = dedupe(slices.Clone(b.GenreIDs))
		s.books = append(s.books, &b)
		s.byID[b.ID] = &b
	}

	return s, nil
}

func (s *Store) Books() []*Book {
	return s.books[:len(s.books):len(s.books)]
}

func (s *Store) Len() int { return len(s.books) }

func (s *Store) Authors() Table { return s.authors }

func (s *Store) Genres() Table { return s.genres }

// Lookup is an O(1) id lookup. Unknown ids return (nil, false).
func (s *Store) Lookup(id string) (*Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

func (s *Store) AuthorName(id string) string {
	if name, ok := s.authors[id]; ok {
		return name
	}
	return lang.Active().List.UnknownAuthor
}

func (s *Store) GenreName(id string) string {
	if name, ok := s.genres[id]; ok {
		return name
	}
	return id
}

// Detail builds the overlay model for a book id.
func (s *Store) Detail(id string) (Detail, bool) {
	b, ok := s.Lookup(id)
	if !ok {
		return Detail{}, false
	}
	return Detail{
		Title:       b.Title,
		Subtitle:    lang.DetailSubtitle(s.AuthorName(b.AuthorID), b.Year()),
		Description: b.Description,
		Image:       b.Image,
	}, true
}

func (s *Store) AuthorOptions() []Option {
	return Options(s.authors, lang.Active().Search.AllAuthors)
}

func (s *Store) GenreOptions() []Option {
	return Options(s.genres, lang.Active().Search.AllGenres)
}

// Options lists a table as selector entries: the "any" entry first, then
// every table entry sorted by label.
func Options(t Table, anyLabel string) []Option {
	out := make([]Option, 0, len(t)+1)
	for id, name := range t {
		out = append(out, Option{Value: id, Label: name})
	}
	slices.SortFunc(out, func(a, b Option) int {
		if c := strings.Compare(a.Label, b.Label); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	})
	return append([]Option{{Value: Any, Label: anyLabel}}, out...)
}

func copyTable(t Table) Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
