package browse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_browser/catalog"
)

// fiveBooks has titles b0..b4; even ones are by "even", odd by "odd".
func fiveBooks(t *testing.T) *catalog.Store {
	t.Helper()
	books := make([]catalog.Book, 5)
	for i := range books {
		author := "even"
		if i%2 == 1 {
			author = "odd"
		}
		books[i] = catalog.Book{
			ID:       fmt.Sprintf("b%d", i),
			Title:    fmt.Sprintf("Book %d", i),
			AuthorID: author,
			GenreIDs: []string{"g"},
		}
	}
	store, err := catalog.NewStore(books, catalog.Table{"even": "Even", "odd": "Odd"}, catalog.Table{"g": "Genre"})
	require.NoError(t, err)
	return store
}

func ids(books []*catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestControllerInitialState(t *testing.T) {
	c := NewController(fiveBooks(t), 2)

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 3, c.CurrentRemaining())
	assert.False(t, c.NoResults())
	assert.Equal(t, []string{"b0", "b1"}, ids(c.FirstPage()))
}

func TestControllerAdvancePage(t *testing.T) {
	c := NewController(fiveBooks(t), 2)

	got := c.AdvancePage()
	assert.Equal(t, 2, c.Page())
	assert.Equal(t, 1, c.CurrentRemaining())
	assert.Equal(t, []string{"b2", "b3"}, ids(got))
	assert.Equal(t, []string{"b0", "b1", "b2", "b3"}, ids(c.Revealed()))

	got = c.AdvancePage()
	assert.Equal(t, 3, c.Page())
	assert.Equal(t, 0, c.CurrentRemaining())
	assert.Equal(t, []string{"b4"}, ids(got))
}

func TestControllerAdvanceWithNothingRemaining(t *testing.T) {
	c := NewController(fiveBooks(t), 5)
	require.Equal(t, 0, c.CurrentRemaining())

	got := c.AdvancePage()
	assert.Empty(t, got)
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 0, c.CurrentRemaining())
}

func TestControllerApplyFilterResetsPage(t *testing.T) {
	c := NewController(fiveBooks(t), 2)
	c.AdvancePage()
	require.Equal(t, 2, c.Page())

	c.ApplyFilter(catalog.NewQuery("", "even", catalog.Any))
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, []string{"b0", "b2", "b4"}, ids(c.Matches()))
	assert.Equal(t, 1, c.CurrentRemaining())
}

func TestControllerApplyFilterIsIdempotent(t *testing.T) {
	c := NewController(fiveBooks(t), 2)
	q := catalog.NewQuery("book", "odd", "g")

	c.ApplyFilter(q)
	first := ids(c.Matches())
	firstRemaining := c.CurrentRemaining()

	c.ApplyFilter(q)
	assert.Equal(t, first, ids(c.Matches()))
	assert.Equal(t, firstRemaining, c.CurrentRemaining())
	assert.Equal(t, 1, c.Page())
}

func TestControllerNoResults(t *testing.T) {
	c := NewController(fiveBooks(t), 2)

	c.ApplyFilter(catalog.NewQuery("", catalog.Any, "zzz"))
	assert.True(t, c.NoResults())
	assert.Equal(t, 0, c.CurrentRemaining())
	assert.Empty(t, c.FirstPage())
	assert.Empty(t, c.AdvancePage())

	c.ApplyFilter(catalog.Query{})
	assert.False(t, c.NoResults())
	assert.Len(t, c.Matches(), 5)
}

func TestControllerEmptyCatalog(t *testing.T) {
	store, err := catalog.NewStore(nil, nil, nil)
	require.NoError(t, err)

	c := NewController(store, 0)
	assert.Equal(t, DefaultPageSize, c.PageSize())
	assert.True(t, c.NoResults())
	assert.Equal(t, 0, c.CurrentRemaining())
}

// Walking every page reveals each match exactly once, in order.
func TestControllerPagesPartitionMatches(t *testing.T) {
	store, err := catalog.LoadSample()
	require.NoError(t, err)

	for _, size := range []int{1, 2, 4, 7, 15, 36} {
		c := NewController(store, size)
		seen := ids(c.FirstPage())
		for c.CurrentRemaining() > 0 {
			before := c.CurrentRemaining()
			next := c.AdvancePage()
			require.NotEmpty(t, next)
			assert.Equal(t, before-len(next), c.CurrentRemaining())
			seen = append(seen, ids(next)...)
		}
		assert.Equal(t, ids(store.Books()), seen, "page size %d", size)
	}
}
