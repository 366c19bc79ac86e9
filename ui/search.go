package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"book_browser/catalog"
	"book_browser/lang"
)

type searchField int

const (
	fieldTitle searchField = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

type searchSubmitMsg struct {
	Query catalog.Query
}

type searchCancelMsg struct{}

// SearchModel is the filter form: a title input and two option selectors.
type SearchModel struct {
	store   *catalog.Store
	input   textinput.Model
	authors []catalog.Option
	genres  []catalog.Option
	author  int
	genre   int
	focus   searchField
}

func NewSearchModel(store *catalog.Store, styles *Styles) SearchModel {
	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 30
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := SearchModel{store: store, input: ti}
	m.ApplyStyles(styles)
	m.ApplyLanguage()
	return m
}

func (m *SearchModel) ApplyStyles(styles *Styles) {
	m.input.TextStyle = styles.PromptText
	m.input.PlaceholderStyle = styles.Placeholder
	m.input.Cursor.Style = styles.Prompt
}

// ApplyLanguage reloads option labels, keeping the selected values.
func (m *SearchModel) ApplyLanguage() {
	author, genre := m.selected()
	m.authors = m.store.AuthorOptions()
	m.genres = m.store.GenreOptions()
	m.author = optionIndex(m.authors, author)
	m.genre = optionIndex(m.genres, genre)
	m.input.Placeholder = lang.Active().Search.TitlePlaceholder
}

// Open resets the form to q and focuses the title input.
func (m *SearchModel) Open(q catalog.Query) tea.Cmd {
	q = q.Normalize()
	m.input.SetValue(q.Title)
	m.input.CursorEnd()
	m.author = optionIndex(m.authors, q.Author)
	m.genre = optionIndex(m.genres, q.Genre)
	m.focus = fieldTitle
	return m.input.Focus()
}

func (m SearchModel) Query() catalog.Query {
	author, genre := m.selected()
	return catalog.NewQuery(m.input.Value(), author, genre)
}

func (m SearchModel) selected() (author, genre string) {
	author, genre = catalog.Any, catalog.Any
	if m.author >= 0 && m.author < len(m.authors) {
		author = m.authors[m.author].Value
	}
	if m.genre >= 0 && m.genre < len(m.genres) {
		genre = m.genres[m.genre].Value
	}
	return author, genre
}

func (m *SearchModel) moveFocus(delta int) {
	m.focus = searchField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	if m.focus == fieldTitle {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *SearchModel) cycle(delta int) {
	switch m.focus {
	case fieldAuthor:
		m.author = wrapIndex(m.author+delta, len(m.authors))
	case fieldGenre:
		m.genre = wrapIndex(m.genre+delta, len(m.genres))
	}
}

func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return searchCancelMsg{} }
		case "enter":
			q := m.Query()
			return m, func() tea.Msg { return searchSubmitMsg{Query: q} }
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		}

		if m.focus != fieldTitle {
			switch keyMsg.String() {
			case "h", "left":
				m.cycle(-1)
			case "l", "right", " ":
				m.cycle(1)
			}
			return m, nil
		}
	}

	if m.focus != fieldTitle {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchModel) View(styles Styles, width int) string {
	texts := lang.Active()
	dlgW, contentW := dialogWidths(width)
	m.input.Width = max(contentW-12, 8)

	label := func(f searchField, text string) string {
		if m.focus == f {
			return styles.FieldLabelActive.Render(text)
		}
		return styles.FieldLabel.Render(text)
	}
	option := func(opts []catalog.Option, idx int) string {
		if idx < 0 || idx >= len(opts) {
			return ""
		}
		return styles.FieldValue.Render("‹ " + opts[idx].Label + " ›")
	}

	rows := []string{
		styles.DialogTitle.Render(texts.Search.Title),
		"",
		label(fieldTitle, texts.Search.TitleLabel) + m.input.View(),
		label(fieldAuthor, texts.Search.AuthorLabel) + option(m.authors, m.author),
		label(fieldGenre, texts.Search.GenreLabel) + option(m.genres, m.genre),
		styles.DialogHint.Render(texts.Search.Hint),
	}
	return styles.DialogBox.Width(dlgW).Render(strings.Join(rows, "\n"))
}

func optionIndex(opts []catalog.Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return 0
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
