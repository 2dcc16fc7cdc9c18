package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/articlekeeper/internal/client/render"
	"github.com/iudanet/articlekeeper/internal/models"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.showDetail {
		b.WriteString(m.detail.View())
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(t.String()))
		}
	}

	title := m.styles.Title.Render("ArticleKeeper")
	if name := m.app.Profile.Name(); name != "" {
		title += m.styles.Muted.Render(" · " + name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderList() string {
	if m.tab == TabTags {
		return m.renderTags()
	}

	items := m.items()
	if len(items) == 0 {
		if m.loading {
			return m.styles.Muted.Render("Loading...")
		}
		return m.styles.Muted.Render("Nothing here yet.")
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, m.renderRow(i, item))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, item models.ContentItem) string {
	title := item.Title
	if m.app.Likes.IsLiked(item.ID) {
		title += " " + m.styles.Accent.Render("♥")
	}
	line := fmt.Sprintf("%s  %s", title, m.styles.Muted.Render(render.Tags(item.Tags)))
	if i == m.cursor {
		return m.styles.Selected.Render("> " + line)
	}
	return m.styles.Item.Render("  " + line)
}

func (m Model) renderTags() string {
	catalog := m.app.Tags.Catalog()
	if len(catalog) == 0 {
		return m.styles.Muted.Render("No tags available.")
	}

	lines := make([]string, 0, len(catalog))
	for i, label := range catalog {
		mark := "[ ]"
		if m.app.Tags.IsSelected(label) {
			mark = "[x]"
		}
		line := mark + " " + label
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("> "+line))
		} else {
			lines = append(lines, m.styles.Item.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	switch {
	case m.searching:
		return m.search.View()
	case m.err != nil:
		return m.styles.Error.Render("Error: " + m.err.Error())
	}

	parts := make([]string, 0, 2)
	if m.query != "" {
		parts = append(parts, "Search: "+m.query)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}

func (m Model) renderDetail(item models.ContentItem) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(item.Title))
	b.WriteString("\n")

	meta := []string{string(item.State), "tags: " + render.Tags(item.Tags)}
	if item.PublishedAt != "" {
		meta = append(meta, "published "+item.PublishedAt)
	} else if item.UpdatedAt != "" {
		meta = append(meta, "updated "+item.UpdatedAt)
	}
	b.WriteString(m.styles.Muted.Render(strings.Join(meta, " · ")))
	b.WriteString("\n\n")

	body := render.Body(item.Body)
	if m.width > 0 {
		body = lipgloss.NewStyle().Width(m.width).Render(body)
	}
	b.WriteString(body)
	return b.String()
}
