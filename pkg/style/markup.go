package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// innermost [tag]text[/tag] pair; nested tags resolve from the inside out.
// Content may hold the escape sequences of an already styled inner tag.
var tagPattern = regexp.MustCompile(`\[([a-z]+)\]((?:[^\[]|\x1b\[)*)\[/([a-z]+)\]`)

// Markup renders messages carrying [tag]...[/tag] style tags
type Markup struct {
	styles map[string]lipgloss.Style
}

// NewMarkup knows the text styles plus one tag per link method
func NewMarkup() *Markup {
	m := &Markup{styles: map[string]lipgloss.Style{
		"subtitle": SubtitleStyle,
		"error":    ErrorStyle,
		"warning":  WarningStyle,
		"code":     CodeStyle,
		"path":     PathStyle,
		"muted":    MutedStyle,
		"bold":     lipgloss.NewStyle().Bold(true),
		"italic":   lipgloss.NewStyle().Italic(true),
	}}
	for _, method := range linkMethods {
		m.styles[string(method)] = MethodStyle(method)
	}
	return m
}

// Render replaces known tags with their styled content. Unknown or
// mismatched tags are left in the text.
func (m *Markup) Render(text string) string {
	for {
		changed := false
		text = tagPattern.ReplaceAllStringFunc(text, func(match string) string {
			parts := tagPattern.FindStringSubmatch(match)
			style, ok := m.styles[parts[1]]
			if !ok || parts[1] != parts[3] {
				return match
			}
			changed = true
			return style.Render(parts[2])
		})
		if !changed {
			return text
		}
	}
}

// RenderTemplate fills {{name}} placeholders, then renders the markup
func (m *Markup) RenderTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return m.Render(strings.NewReplacer(pairs...).Replace(template))
}

var defaultMarkup = NewMarkup()

// Render uses the default markup
func Render(text string) string {
	return defaultMarkup.Render(text)
}

// RenderTemplate uses the default markup
func RenderTemplate(template string, vars map[string]string) string {
	return defaultMarkup.RenderTemplate(template, vars)
}
