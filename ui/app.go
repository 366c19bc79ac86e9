package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"book_browser/browse"
	"book_browser/catalog"
	"book_browser/lang"
	"book_browser/utils"
)

type AppState int

const (
	StateList AppState = iota
	StateSearch
	StateDetail
	StateSettings
)

func (s AppState) String() string {
	switch s {
	case StateList:
		return "list"
	case StateSearch:
		return "search"
	case StateDetail:
		return "detail"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

type Options struct {
	Theme Theme
	Log   *utils.Logger
}

type AppModel struct {
	state    AppState
	session  *browse.Session
	list     list.Model
	search   SearchModel
	settings SettingsModel
	detail   catalog.Detail
	styles   *Styles

	remaining int
	total     int
	empty     bool

	width  int
	height int
	log    *utils.Logger
}

func NewAppModel(session *browse.Session, opts Options) AppModel {
	theme := opts.Theme
	if theme != ThemeDay && theme != ThemeNight {
		theme = ResolveTheme(string(theme))
	}
	styles := NewStyles(theme)

	l := list.New(nil, newBookDelegate(&styles), 0, 0)
	listSettings(&l)

	m := AppModel{
		state:    StateList,
		session:  session,
		list:     l,
		search:   NewSearchModel(session.Store(), &styles),
		settings: NewSettingsModel(theme, &styles),
		styles:   &styles,
		log:      opts.Log.WithFields(map[string]any{"component": "ui"}),
	}
	m.replaceBooks(session.Current())
	return m
}

func (m AppModel) State() AppState { return m.state }

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch tm := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(tm.Width, tm.Height)
		return m, nil
	case searchSubmitMsg:
		m.replaceBooks(m.session.SubmitFilter(tm.Query))
		m.setState(StateList)
		return m, nil
	case searchCancelMsg, settingsCloseMsg:
		m.setState(StateList)
		return m, nil
	case themeChangedMsg:
		m.applyTheme(tm.Theme)
		return m, nil
	case languageChangedMsg:
		m.search.ApplyLanguage()
		m.refreshLabels()
		m.log.Debugf("language changed to %s", tm.Locale)
		return m, nil
	}

	switch m.state {
	case StateList:
		return m.handleStateList(msg)
	case StateSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case StateDetail:
		return m.handleStateDetail(msg)
	case StateSettings:
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m AppModel) handleStateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.setState(StateSearch)
		return m, m.search.Open(m.session.Query())
	case "s":
		m.setState(StateSettings)
		return m, nil
	case "m":
		return m, m.showMore()
	case "enter":
		item, ok := m.list.SelectedItem().(bookItem)
		if !ok {
			return m, nil
		}
		detail, found := m.session.Detail(item.ID())
		if !found {
			return m, nil
		}
		m.detail = detail
		m.setState(StateDetail)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m AppModel) handleStateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter", "q":
			m.detail = catalog.Detail{}
			m.setState(StateList)
		}
	}
	return m, nil
}

func (m *AppModel) setState(s AppState) {
	if m.state != s {
		m.log.Debugf("state %s -> %s", m.state, s)
	}
	m.state = s
}

// replaceBooks renders a snapshot from scratch.
func (m *AppModel) replaceBooks(snap browse.Snapshot) {
	m.list.SetItems(bookItems(m.session.Store(), snap.Books))
	m.list.Select(0)
	m.remaining = snap.Remaining
	m.total = snap.Total
	m.empty = snap.Empty
}

// showMore appends only the newly revealed window.
func (m *AppModel) showMore() tea.Cmd {
	if m.remaining <= 0 {
		return nil
	}
	snap := m.session.ShowMore()
	m.remaining = snap.Remaining
	m.total = snap.Total
	m.empty = snap.Empty
	if len(snap.Books) == 0 {
		return nil
	}

	prev := len(m.list.Items())
	items := append(slices.Clip(m.list.Items()), bookItems(m.session.Store(), snap.Books)...)
	cmd := m.list.SetItems(items)
	m.list.Select(prev)
	return cmd
}

// refreshLabels re-reads author names after a locale change.
func (m *AppModel) refreshLabels() {
	store := m.session.Store()
	for i, item := range m.list.Items() {
		if b, ok := item.(bookItem); ok {
			b.author = store.AuthorName(b.book.AuthorID)
			m.list.SetItem(i, b)
		}
	}
}

func (m *AppModel) applyTheme(t Theme) {
	styles := NewStyles(t)
	m.styles = &styles
	m.list.SetDelegate(newBookDelegate(m.styles))
	m.settings.SetDelegate(m.styles)
	m.search.ApplyStyles(m.styles)
	m.log.Debugf("theme changed to %s", t)
}

func (m *AppModel) resize(width, height int) {
	m.width = width
	m.height = height

	availHeight := height - 9
	if availHeight < 3 {
		availHeight = 3
	}
	m.list.SetSize(listWidth(width), availHeight)
	_, contentW := dialogWidths(width)
	m.settings.SetSize(contentW, 6)
}

func (m AppModel) View() string {
	texts := lang.Active()
	styles := *m.styles

	header := styles.Header.Width(m.width).Render(texts.Header.Title)
	maxUnderline := texts.Layout.UnderlineLength
	if maxUnderline <= 0 {
		maxUnderline = 48
	}
	underline := styles.Underline.Width(m.width).Render(strings.Repeat("─", min(m.width, maxUnderline)))
	top := header + "\n" + underline

	var dialog string
	switch m.state {
	case StateList:
		return top + "\n" + m.listView(styles)
	case StateSearch:
		dialog = m.search.View(styles, m.width)
	case StateDetail:
		dialog = renderDetail(m.detail, styles, m.width)
	case StateSettings:
		dialog = m.settings.View(styles, m.width)
	default:
		return texts.Common.UnknownState
	}

	overlay := gloss.Place(m.width, max(m.height-3, 0), gloss.Center, gloss.Center, dialog)
	return top + "\n" + overlay
}

func (m AppModel) listView(styles Styles) string {
	texts := lang.Active()

	if m.empty {
		return styles.StatusMuted.Width(m.width).Render(texts.List.NoResults) + "\n\n" +
			styles.StatusMuted.Width(m.width).Render(texts.Help.List)
	}

	block := styles.ListBox.Width(listWidth(m.width) + 8).Render(m.list.View())
	body := styles.Centered.Width(m.width).Render(block)

	footer := []string{
		styles.StatusMuted.Width(m.width).Render(lang.BookCount(len(m.list.Items()), m.total)),
		styles.Centered.Width(m.width).Render(m.showMoreLabel(styles)),
		styles.StatusMuted.Width(m.width).Render(texts.Help.List),
	}
	return body + "\n" + strings.Join(footer, "\n")
}

func (m AppModel) showMoreLabel(styles Styles) string {
	label := lang.Active().List.ShowMore + lang.Remaining(m.remaining)
	if m.remaining <= 0 {
		return styles.ShowMoreOff.Render(label)
	}
	return styles.ShowMore.Render(label)
}

func RunApp(session *browse.Session, opts Options) error {
	p := tea.NewProgram(NewAppModel(session, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
