package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_browser/browse"
	"book_browser/catalog"
	"book_browser/lang"
)

func newTestApp(t *testing.T, books, pageSize int) AppModel {
	t.Helper()
	records := make([]catalog.Book, books)
	for i := range records {
		records[i] = catalog.Book{
			ID:          fmt.Sprintf("b%d", i),
			Title:       fmt.Sprintf("Book %d", i),
			AuthorID:    "a1",
			Description: "A long description that will need wrapping in the detail overlay.",
			GenreIDs:    []string{"g1"},
		}
	}
	store, err := catalog.NewStore(records, catalog.Table{"a1": "Author One"}, catalog.Table{"g1": "Genre One"})
	require.NoError(t, err)

	m := NewAppModel(browse.NewSession(store, pageSize, nil), Options{Theme: ThemeDay})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and then feeds any message produced by the returned command
// back into the model, the way the bubbletea runtime would.
func press(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case searchSubmitMsg, searchCancelMsg, settingsCloseMsg, themeChangedMsg, languageChangedMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestAppShowMoreAppends(t *testing.T) {
	m := newTestApp(t, 5, 2)
	require.Len(t, m.list.Items(), 2)
	assert.Equal(t, 3, m.remaining)
	assert.Contains(t, m.View(), "Show more (3)")

	m = press(t, m, runes("m"))
	assert.Len(t, m.list.Items(), 4)
	assert.Equal(t, 1, m.remaining)
	assert.Equal(t, 2, m.list.Index())

	m = press(t, m, runes("m"))
	m = press(t, m, runes("m"))
	assert.Len(t, m.list.Items(), 5)
	assert.Equal(t, 0, m.remaining)
	assert.Contains(t, m.View(), "Show more (0)")
}

func TestAppSearchSubmitReplacesList(t *testing.T) {
	m := newTestApp(t, 5, 2)
	m = press(t, m, runes("m"))

	m = press(t, m, runes("/"))
	require.Equal(t, StateSearch, m.State())
	for _, r := range "Book 3" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, StateList, m.State())
	require.Len(t, m.list.Items(), 1)
	assert.Equal(t, "b3", m.list.Items()[0].(bookItem).ID())
	assert.Equal(t, "Book 3", m.session.Query().Title)
}

func TestAppSearchCyclesAuthorAndGenre(t *testing.T) {
	m := newTestApp(t, 3, 10)

	m = press(t, m, runes("/"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, catalog.Query{Title: "", Author: "a1", Genre: "g1"}, m.search.Query())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, catalog.Any, m.search.Query().Genre)
}

func TestAppSearchCancelKeepsList(t *testing.T) {
	m := newTestApp(t, 5, 2)

	m = press(t, m, runes("/"))
	m = press(t, m, runes("x"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, StateList, m.State())
	assert.Len(t, m.list.Items(), 2)
	assert.Empty(t, m.session.Query().Title)
}

func TestAppNoResults(t *testing.T) {
	m := newTestApp(t, 5, 2)

	m = press(t, m, runes("/"))
	for _, r := range "zzz" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.empty)
	assert.Contains(t, m.View(), lang.Active().List.NoResults)

	m = press(t, m, runes("m"))
	assert.Empty(t, m.list.Items())
}

func TestAppDetailOverlay(t *testing.T) {
	m := newTestApp(t, 5, 2)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateDetail, m.State())
	assert.Equal(t, "Book 1", m.detail.Title)
	assert.Equal(t, "Author One", m.detail.Subtitle)
	assert.Contains(t, m.View(), "Book 1")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateList, m.State())
}

func TestAppSettingsToggleTheme(t *testing.T) {
	m := newTestApp(t, 2, 2)

	m = press(t, m, runes("s"))
	require.Equal(t, StateSettings, m.State())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, ThemeNight, m.styles.Theme)
	assert.Equal(t, PaletteFor(ThemeNight), m.styles.Palette)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateList, m.State())
}

func TestAppSettingsChangeLanguage(t *testing.T) {
	t.Cleanup(func() { lang.SetLocale(lang.LocaleEnglish) })
	m := newTestApp(t, 2, 2)

	m = press(t, m, runes("s"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, lang.LocaleChinese, lang.CurrentLocale())
	assert.Equal(t, "全部作者", m.search.authors[0].Label)
}

func TestAppQuit(t *testing.T) {
	m := newTestApp(t, 1, 1)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, ThemeDay, ResolveTheme("day"))
	assert.Equal(t, ThemeNight, ResolveTheme("night"))
	assert.Equal(t, ThemeDay, ResolveTheme("bogus"))
	assert.Equal(t, ThemeDay, ThemeNight.Toggle())
	assert.Equal(t, PaletteFor(ThemeDay).Dark, PaletteFor(ThemeNight).Light)
}
