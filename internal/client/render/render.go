// Package render prepares article text for terminal output.
package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlTagPattern matches common HTML tags produced by rich text editors.
var htmlTagPattern = regexp.MustCompile(`<(p|br|div|span|b|i|u|strong|em|a|ul|ol|li|h[1-6]|blockquote|pre|code|img)[\s>/]`)

// ContainsHTML reports whether s appears to contain HTML markup.
func ContainsHTML(s string) bool {
	return htmlTagPattern.MatchString(strings.ToLower(s))
}

// Body converts an article body to Markdown when it contains HTML.
// Plain text is returned unchanged; a failed conversion falls back to the input.
func Body(s string) string {
	if s == "" || !ContainsHTML(s) {
		return s
	}

	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}

	return strings.TrimSpace(markdown)
}

// Excerpt returns the first line of the rendered body cut to max runes.
func Excerpt(s string, max int) string {
	text := strings.TrimSpace(Body(s))
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	if max <= 3 {
		return string([]rune(text)[:max])
	}
	return string([]rune(text)[:max-3]) + "..."
}

// Tags joins labels for a single line of output.
func Tags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
