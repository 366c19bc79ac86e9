package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"book_browser/catalog"
	"book_browser/lang"
)

// bookItem adapts a catalog record to the list.Item contract.
type bookItem struct {
	book   *catalog.Book
	author string
}

func (i bookItem) Title() string { return i.book.Title }

func (i bookItem) Description() string {
	if y := i.book.Year(); y != 0 {
		return i.author + " · " + strconv.Itoa(y)
	}
	return i.author
}

func (i bookItem) FilterValue() string { return i.book.Title }

func (i bookItem) ID() string { return i.book.ID }

func bookItems(store *catalog.Store, books []*catalog.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookItem{book: b, author: store.AuthorName(b.AuthorID)}
	}
	return items
}

// ---------------- BookDelegate ----------------
type BookDelegate struct {
	list.DefaultDelegate
	styles *Styles
}

func newBookDelegate(styles *Styles) *BookDelegate {
	return &BookDelegate{styles: styles}
}

func (d *BookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var title, desc string
	switch v := item.(type) {
	case bookItem:
		title = runewidth.Truncate(v.Title(), m.Width()-4, "…")
		desc = runewidth.Truncate(v.Description(), m.Width()-10, "…")
	case SettingItem:
		title = v.Title()
		desc = runewidth.Truncate(v.Description(), m.Width()-10, "…")
	default:
		title = lang.Active().Common.UnknownState
	}
	if index == m.Index() {
		title = d.styles.SelectedTitle.Render(title)
		desc = d.styles.SelectedDesc.Render(desc)
	} else {
		title = d.styles.NormalTitle.Render(title)
		desc = d.styles.NormalDesc.Render(desc)
	}
	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func (d *BookDelegate) Height() int { return 2 }

func (d *BookDelegate) Spacing() int { return 1 }

func (d *BookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// ---------------- List styling ----------------
func listSettings(l *list.Model) {
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
}
