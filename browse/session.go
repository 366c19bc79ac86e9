package browse

import (
	"book_browser/catalog"
	"book_browser/utils"
)

// Snapshot is what a presentation layer needs to draw the list.
type Snapshot struct {
	// Books is the full visible list, or only the newly revealed window
	// when Append is set.
	Books     []*catalog.Book
	Append    bool
	Remaining int
	Empty     bool
	Page      int
	Total     int
}

// Session is the in-process API a presentation layer drives. It wraps one
// Controller and logs each transition.
type Session struct {
	ctrl  *Controller
	query catalog.Query
	log   *utils.Logger
}

// NewSession starts on page 1 of the full catalog. log may be nil.
func NewSession(store *catalog.Store, pageSize int, log *utils.Logger) *Session {
	s := &Session{
		ctrl:  NewController(store, pageSize),
		query: catalog.Query{}.Normalize(),
		log:   log.WithFields(map[string]any{"component": "session"}),
	}
	s.log.Debugf("session started: %d books, page size %d", store.Len(), s.ctrl.PageSize())
	return s
}

// InitialCatalog returns the static data backing the session.
func (s *Session) InitialCatalog() ([]*catalog.Book, catalog.Table, catalog.Table) {
	store := s.ctrl.Store()
	return store.Books(), store.Authors(), store.Genres()
}

// Current renders from scratch: every book revealed so far.
func (s *Session) Current() Snapshot {
	return s.snapshot(s.ctrl.Revealed(), false)
}

// SubmitFilter applies q and returns the first page of the new match set.
func (s *Session) SubmitFilter(q catalog.Query) Snapshot {
	s.query = q.Normalize()
	s.ctrl.ApplyFilter(s.query)
	s.log.Debugf("filter title=%q author=%s genre=%s: %d matches",
		s.query.Title, s.query.Author, s.query.Genre, len(s.ctrl.Matches()))
	return s.snapshot(s.ctrl.FirstPage(), false)
}

// ShowMore reveals the next page and returns only the new books.
func (s *Session) ShowMore() Snapshot {
	books := s.ctrl.AdvancePage()
	s.log.Debugf("show more: page %d, %d new, %d remaining", s.ctrl.Page(), len(books), s.ctrl.CurrentRemaining())
	return s.snapshot(books, true)
}

func (s *Session) LookupBook(id string) (*catalog.Book, bool) {
	b, ok := s.ctrl.Store().Lookup(id)
	if !ok {
		s.log.Debugf("lookup miss: %q", id)
	}
	return b, ok
}

func (s *Session) Detail(id string) (catalog.Detail, bool) {
	return s.ctrl.Store().Detail(id)
}

func (s *Session) Query() catalog.Query { return s.query }

func (s *Session) Store() *catalog.Store { return s.ctrl.Store() }

func (s *Session) snapshot(books []*catalog.Book, appended bool) Snapshot {
	return Snapshot{
		Books:     books,
		Append:    appended,
		Remaining: s.ctrl.CurrentRemaining(),
		Empty:     s.ctrl.NoResults(),
		Page:      s.ctrl.Page(),
		Total:     len(s.ctrl.Matches()),
	}
}
