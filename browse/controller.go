package browse

import (
	"book_browser/catalog"
)

// DefaultPageSize matches the number of previews revealed per "show more".
const DefaultPageSize = 36

// Controller owns the view state: the current match set and how many pages
// of it are revealed. It is not safe for concurrent use; a caller serving
// several users keeps one Controller per session.
type Controller struct {
	store     *catalog.Store
	pageSize  int
	page      int
	matches   []*catalog.Book
	noResults bool
}

// NewController starts on page 1 of the full catalog. Non-positive page sizes
// fall back to DefaultPageSize.
func NewController(store *catalog.Store, pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	matches := store.Books()
	return &Controller{
		store:     store,
		pageSize:  pageSize,
		page:      1,
		matches:   matches,
		noResults: len(matches) == 0,
	}
}

// ApplyFilter replaces the match set and resets to page 1. It is the only
// operation that changes the match set.
func (c *Controller) ApplyFilter(q catalog.Query) {
	c.matches = catalog.Filter(c.store.Books(), q)
	c.page = 1
	c.noResults = len(c.matches) == 0
}

// AdvancePage reveals the next page and returns only that window. With
// nothing remaining it returns an empty slice and the page stays put.
func (c *Controller) AdvancePage() []*catalog.Book {
	if c.CurrentRemaining() <= 0 {
		return nil
	}
	c.page++
	return Window(c.matches, c.page, c.pageSize)
}

func (c *Controller) CurrentRemaining() int {
	return Remaining(c.matches, c.page, c.pageSize)
}

// FirstPage is the slice rendered from scratch after a filter.
func (c *Controller) FirstPage() []*catalog.Book {
	return Window(c.matches, 1, c.pageSize)
}

// Revealed is every book shown so far, for a full re-render.
func (c *Controller) Revealed() []*catalog.Book {
	return Visible(c.matches, c.page, c.pageSize)
}

func (c *Controller) Page() int { return c.page }

func (c *Controller) PageSize() int { return c.pageSize }

func (c *Controller) Matches() []*catalog.Book { return c.matches[:len(c.matches):len(c.matches)] }

func (c *Controller) NoResults() bool { return c.noResults }

func (c *Controller) Store() *catalog.Store { return c.store }
