package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Any is the query value meaning "no constraint on this dimension".
const Any = "any"

// Query is a normalized search submission.
type Query struct {
	Title  string
	Author string
	Genre  string
}

// NewQuery builds a normalized query from raw form values.
func NewQuery(title, author, genre string) Query {
	return Query{Title: title, Author: author, Genre: genre}.Normalize()
}

// Normalize trims the title and maps blank author/genre values to Any.
func (q Query) Normalize() Query {
	q.Title = strings.TrimSpace(q.Title)
	q.Author = strings.TrimSpace(q.Author)
	if q.Author == "" {
		q.Author = Any
	}
	q.Genre = strings.TrimSpace(q.Genre)
	if q.Genre == "" {
		q.Genre = Any
	}
	return q
}

// IsZero reports whether the query constrains nothing.
func (q Query) IsZero() bool {
	q = q.Normalize()
	return q.Title == "" && q.Author == Any && q.Genre == Any
}

// Predicate reports whether a book matches one filter dimension.
type Predicate func(*Book) bool

// All matches when every predicate matches. No predicates match everything.
func All(preds ...Predicate) Predicate {
	return func(b *Book) bool {
		for _, p := range preds {
			if !p(b) {
				return false
			}
		}
		return true
	}
}

// TitleContains is a case-insensitive substring match using Unicode case
// folding.
func TitleContains(sub string) Predicate {
	folded := cases.Fold().String(sub)
	return func(b *Book) bool {
		return strings.Contains(cases.Fold().String(b.Title), folded)
	}
}

func ByAuthor(id string) Predicate {
	return func(b *Book) bool { return b.AuthorID == id }
}

func InGenre(id string) Predicate {
	return func(b *Book) bool { return b.HasGenre(id) }
}

// Predicate composes the query's active dimensions.
func (q Query) Predicate() Predicate {
	q = q.Normalize()
	var preds []Predicate
	if q.Title != "" {
		preds = append(preds, TitleContains(q.Title))
	}
	if q.Author != Any {
		preds = append(preds, ByAuthor(q.Author))
	}
	if q.Genre != Any {
		preds = append(preds, InGenre(q.Genre))
	}
	return All(preds...)
}

// Filter returns the books matching q in their original order. The input is
// never modified and the result never aliases it.
func Filter(books []*Book, q Query) []*Book {
	match := q.Predicate()
	out := make([]*Book, 0, len(books))
	for _, b := range books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}
