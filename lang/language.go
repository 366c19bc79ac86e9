package lang

import (
	"fmt"
	"sync"
)

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

type HeaderStrings struct {
	Title    string
	Search   string
	Settings string
}

type ListStrings struct {
	ShowMore          string
	RemainingTemplate string
	NoResults         string
	CountTemplate     string
	UnknownAuthor     string
}

type SearchStrings struct {
	Title            string
	TitleLabel       string
	TitlePlaceholder string
	AuthorLabel      string
	GenreLabel       string
	AllAuthors       string
	AllGenres        string
	Hint             string
}

type DetailStrings struct {
	SubtitleTemplate string
	Hint             string
}

type SettingsStrings struct {
	Title          string
	ThemeLabel     string
	ThemeDetail    string
	ThemeNames     map[string]string
	LanguageLabel  string
	LanguageDetail string
	LanguageNames  map[Locale]string
	Hint           string
}

type HelpStrings struct {
	List string
}

type CommonStrings struct {
	UnknownState string
}

type LayoutStrings struct {
	UnderlineLength int
}

type Strings struct {
	Header   HeaderStrings
	List     ListStrings
	Search   SearchStrings
	Detail   DetailStrings
	Settings SettingsStrings
	Help     HelpStrings
	Common   CommonStrings
	Layout   LayoutStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocaleEnglish: {
			Header: HeaderStrings{
				Title:    "Book Browser",
				Search:   "Search",
				Settings: "Settings",
			},
			List: ListStrings{
				ShowMore:          "Show more",
				RemainingTemplate: " (%d)",
				NoResults:         "No results found. Your filters might be too narrow.",
				CountTemplate:     "%d of %d books",
				UnknownAuthor:     "Unknown author",
			},
			Search: SearchStrings{
				Title:            "Search",
				TitleLabel:       "Title",
				TitlePlaceholder: "Any",
				AuthorLabel:      "Author",
				GenreLabel:       "Genre",
				AllAuthors:       "All Authors",
				AllGenres:        "All Genres",
				Hint:             "tab: next field • ←/→: change • enter: search • esc: cancel",
			},
			Detail: DetailStrings{
				SubtitleTemplate: "%s (%d)",
				Hint:             "esc: close",
			},
			Settings: SettingsStrings{
				Title:       "Settings",
				ThemeLabel:  "Theme",
				ThemeDetail: "Use left/right to switch between day and night",
				ThemeNames: map[string]string{
					"day":   "Day",
					"night": "Night",
				},
				LanguageLabel:  "Language",
				LanguageDetail: "Use left/right to switch language",
				LanguageNames: map[Locale]string{
					LocaleChinese: "Chinese",
					LocaleEnglish: "English",
				},
				Hint: "←/→: change • esc: close",
			},
			Help: HelpStrings{
				List: "/: search • enter: details • m: show more • s: settings • q: quit",
			},
			Common: CommonStrings{
				UnknownState: "Unknown state",
			},
			Layout: LayoutStrings{
				UnderlineLength: 60,
			},
		},
		LocaleChinese: {
			Header: HeaderStrings{
				Title:    "书目浏览",
				Search:   "搜索",
				Settings: "设置",
			},
			List: ListStrings{
				ShowMore:          "显示更多",
				RemainingTemplate: "（%d）",
				NoResults:         "没有找到结果，筛选条件可能过于严格。",
				CountTemplate:     "%d / %d 本书",
				UnknownAuthor:     "未知作者",
			},
			Search: SearchStrings{
				Title:            "搜索",
				TitleLabel:       "书名",
				TitlePlaceholder: "任意",
				AuthorLabel:      "作者",
				GenreLabel:       "类型",
				AllAuthors:       "全部作者",
				AllGenres:        "全部类型",
				Hint:             "tab：下一项 • ←/→：切换 • enter：搜索 • esc：取消",
			},
			Detail: DetailStrings{
				SubtitleTemplate: "%s（%d）",
				Hint:             "esc：关闭",
			},
			Settings: SettingsStrings{
				Title:       "设置",
				ThemeLabel:  "主题",
				ThemeDetail: "使用左右键切换日间与夜间",
				ThemeNames: map[string]string{
					"day":   "日间",
					"night": "夜间",
				},
				LanguageLabel:  "语言",
				LanguageDetail: "使用左右键切换语言",
				LanguageNames: map[Locale]string{
					LocaleChinese: "中文",
					LocaleEnglish: "英文",
				},
				Hint: "←/→：切换 • esc：关闭",
			},
			Help: HelpStrings{
				List: "/：搜索 • enter：详情 • m：显示更多 • s：设置 • q：退出",
			},
			Common: CommonStrings{
				UnknownState: "未知状态",
			},
			Layout: LayoutStrings{
				UnderlineLength: 48,
			},
		},
	}

	availableLocales = []Locale{
		LocaleEnglish,
		LocaleChinese,
	}

	currentLocale = LocaleEnglish
	current       = translations[currentLocale]
)

func AvailableLocales() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Locale, len(availableLocales))
	copy(out, availableLocales)
	return out
}

func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strings, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strings
	return true
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func LanguageName(loc Locale) string {
	s := Active()
	if name, ok := s.Settings.LanguageNames[loc]; ok {
		return name
	}
	return string(loc)
}

func ThemeName(theme string) string {
	s := Active()
	if name, ok := s.Settings.ThemeNames[theme]; ok {
		return name
	}
	return theme
}

func Remaining(count int) string {
	s := Active()
	return fmt.Sprintf(s.List.RemainingTemplate, count)
}

func BookCount(shown, total int) string {
	s := Active()
	return fmt.Sprintf(s.List.CountTemplate, shown, total)
}

// DetailSubtitle renders "author (year)"; a zero year leaves just the author.
func DetailSubtitle(author string, year int) string {
	if year == 0 {
		return author
	}
	s := Active()
	return fmt.Sprintf(s.Detail.SubtitleTemplate, author, year)
}
