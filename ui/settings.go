package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"book_browser/lang"
)

type SettingKind int

const (
	SettingTheme SettingKind = iota
	SettingLanguage
)

type SettingItem struct {
	Kind   SettingKind
	Label  string
	Detail string
	Value  string
}

func (s SettingItem) Title() string {
	if strings.TrimSpace(s.Value) == "" {
		return s.Label
	}
	return fmt.Sprintf("%s: %s", s.Label, s.Value)
}

func (s SettingItem) Description() string { return s.Detail }

func (s SettingItem) FilterValue() string {
	return strings.TrimSpace(s.Label + " " + s.Value)
}

type themeChangedMsg struct {
	Theme Theme
}

type languageChangedMsg struct {
	Locale lang.Locale
}

type settingsCloseMsg struct{}

// SettingsModel is the theme/language overlay.
type SettingsModel struct {
	list     list.Model
	theme    Theme
	language lang.Locale
}

func NewSettingsModel(theme Theme, styles *Styles) SettingsModel {
	l := list.New(nil, newBookDelegate(styles), 0, 0)
	listSettings(&l)
	l.SetShowPagination(false)

	m := SettingsModel{
		list:     l,
		theme:    theme,
		language: lang.CurrentLocale(),
	}
	m.rebuild()
	return m
}

func (m *SettingsModel) rebuild() {
	texts := lang.Active()

	var selectedKind SettingKind = -1
	if item, ok := m.list.SelectedItem().(SettingItem); ok {
		selectedKind = item.Kind
	}

	items := []list.Item{
		SettingItem{
			Kind:   SettingTheme,
			Label:  texts.Settings.ThemeLabel,
			Detail: texts.Settings.ThemeDetail,
			Value:  lang.ThemeName(string(m.theme)),
		},
		SettingItem{
			Kind:   SettingLanguage,
			Label:  texts.Settings.LanguageLabel,
			Detail: texts.Settings.LanguageDetail,
			Value:  lang.LanguageName(m.language),
		},
	}
	m.list.SetItems(items)

	for i, item := range items {
		if s, ok := item.(SettingItem); ok && s.Kind == selectedKind {
			m.list.Select(i)
			return
		}
	}
	m.list.Select(0)
}

func (m *SettingsModel) SetDelegate(styles *Styles) {
	m.list.SetDelegate(newBookDelegate(styles))
}

func (m *SettingsModel) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m *SettingsModel) changeLanguage(delta int) tea.Cmd {
	locales := lang.AvailableLocales()
	if len(locales) == 0 {
		return nil
	}
	currentIdx := 0
	for i, loc := range locales {
		if loc == m.language {
			currentIdx = i
			break
		}
	}
	nextIdx := (currentIdx + delta) % len(locales)
	if nextIdx < 0 {
		nextIdx += len(locales)
	}
	newLocale := locales[nextIdx]
	if newLocale == m.language || !lang.SetLocale(newLocale) {
		return nil
	}
	m.language = newLocale
	m.rebuild()
	return func() tea.Msg { return languageChangedMsg{Locale: newLocale} }
}

func (m *SettingsModel) toggleTheme() tea.Cmd {
	m.theme = m.theme.Toggle()
	m.rebuild()
	theme := m.theme
	return func() tea.Msg { return themeChangedMsg{Theme: theme} }
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "s":
		return m, func() tea.Msg { return settingsCloseMsg{} }
	case "h", "left", "l", "right", "enter", " ":
		delta := 1
		if k := keyMsg.String(); k == "h" || k == "left" {
			delta = -1
		}
		s, ok := m.list.SelectedItem().(SettingItem)
		if !ok {
			return m, nil
		}
		switch s.Kind {
		case SettingTheme:
			return m, m.toggleTheme()
		case SettingLanguage:
			return m, m.changeLanguage(delta)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m SettingsModel) View(styles Styles, width int) string {
	texts := lang.Active()
	dlgW, _ := dialogWidths(width)

	body := strings.Join([]string{
		styles.DialogTitle.Render(texts.Settings.Title),
		m.list.View(),
		styles.DialogHint.Render(texts.Settings.Hint),
	}, "\n\n")
	return styles.DialogBox.Width(dlgW).Render(body)
}
