package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"book_browser/catalog"
	"book_browser/lang"
)

func renderDetail(d catalog.Detail, styles Styles, width int) string {
	dlgW, contentW := dialogWidths(width)

	parts := []string{
		styles.DialogTitle.Render(wordwrap.String(d.Title, contentW)),
	}
	if d.Subtitle != "" {
		parts = append(parts, styles.DialogSub.Render(wordwrap.String(d.Subtitle, contentW)))
	}
	if d.Description != "" {
		parts = append(parts, "", styles.DialogBody.Render(wordwrap.String(d.Description, contentW)))
	}
	if d.Image != "" {
		parts = append(parts, "", styles.DialogSub.Render(wordwrap.String(d.Image, contentW)))
	}
	parts = append(parts, styles.DialogHint.Render(lang.Active().Detail.Hint))

	return styles.DialogBox.Width(dlgW).Render(strings.Join(parts, "\n"))
}
