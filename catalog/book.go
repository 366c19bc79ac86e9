package catalog

import (
	"slices"
	"time"
)

// Book is one catalog record. Records are immutable once a Store owns them.
type Book struct {
	ID          string    `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title       string    `json:"title" yaml:"title" toml:"title" validate:"required"`
	AuthorID    string    `json:"author" yaml:"author" toml:"author" validate:"required"`
	Image       string    `json:"image" yaml:"image" toml:"image" validate:"omitempty,uri"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Published   time.Time `json:"published" yaml:"published" toml:"published"`
	GenreIDs    []string  `json:"genres" yaml:"genres" toml:"genres" validate:"dive,required"`
}

func (b *Book) HasGenre(id string) bool {
	return slices.Contains(b.GenreIDs, id)
}

// Year of publication, 0 when unknown.
func (b *Book) Year() int {
	if b.Published.IsZero() {
		return 0
	}
	return b.Published.Year()
}

// Table maps an author or genre id to its display name.
type Table map[string]string

// Option is one entry of an author/genre selector.
type Option struct {
	Value string
	Label string
}

// Detail is what the detail overlay shows for a book.
type Detail struct {
	Title       string
	Subtitle    string
	Description string
	Image       string
}
