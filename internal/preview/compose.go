package preview

import (
	"strings"

	"github.com/meridianpress/storybook-backend/internal/catalog"
)

// maxRenderTextLength bounds composed text before it reaches the renderer,
// which cannot lay out arbitrarily long strings.
const maxRenderTextLength = 80

// ComposePageText splices the child's name into the template text. Cover
// pages favor title/subtitle composition over body text.
func ComposePageText(page catalog.PageTemplate, childName string) string {
	content := page.Content

	if page.Type == catalog.PageCover {
		if content.Title != "" && content.InterpolateName {
			return truncate(content.Title + " " + childName)
		}
		return truncate(strings.TrimSpace(content.Title + " " + content.Subtitle))
	}

	var text string
	if content.Text != "" {
		text = content.Text
		if content.InterpolateName {
			text += " " + childName
		}
		if content.Text2 != "" {
			text += " " + content.Text2
		}
	}
	return truncate(text)
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxRenderTextLength {
		return text
	}
	return string(runes[:maxRenderTextLength])
}
