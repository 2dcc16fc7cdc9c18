// Package tui is the interactive Bubble Tea front-end of the client.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/articlekeeper/internal/client/app"
	"github.com/iudanet/articlekeeper/internal/models"
)

// Tab is the active list of the screen.
type Tab int

const (
	TabFeed Tab = iota
	TabFavorites
	TabDrafts
	TabTags
	tabCount
)

var tabNames = [tabCount]string{"Feed", "Favorites", "Drafts", "Tags"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

// Model is the root state of the interactive mode.
// All store calls run inside tea.Cmd functions; their results come back
// as messages and are applied on the single Update loop.
type Model struct {
	ctx    context.Context
	app    *app.App
	keys   keyMap
	styles styles
	help   help.Model
	search textinput.Model
	detail viewport.Model

	err    error
	status string
	query  string
	tab    Tab
	cursor int
	width  int
	height int

	searching  bool
	showDetail bool
	loading    bool
}

// New creates the model over an assembled client.
func New(ctx context.Context, a *app.App) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.Prompt = "/"
	ti.CharLimit = 100

	return Model{
		ctx:     ctx,
		app:     a,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		help:    help.New(),
		search:  ti,
		detail:  viewport.New(80, 20),
		loading: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return startCmd(m.ctx, m.app)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-5, 1)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startedMsg:
		m.loading = false
		if f := m.app.Articles.Snapshot().LastFailure; f != nil {
			m.err = fmt.Errorf("%s: %w", f.Op, f.Err)
		}
		m.clampCursor()
		return m, nil

	case refreshedMsg:
		m.loading = false
		m.setResult(msg.err, "Refreshed")
		m.clampCursor()
		return m, nil

	case catalogMsg:
		m.loading = false
		m.setResult(msg.err, "")
		m.clampCursor()
		return m, nil

	case likedMsg:
		if msg.liked {
			m.setResult(msg.err, "Liked")
		} else {
			m.setResult(msg.err, "Like removed")
		}
		m.clampCursor()
		return m, nil

	case tagToggledMsg:
		if msg.err != nil {
			m.setResult(msg.err, "")
			return m, nil
		}
		state := "deselected"
		if msg.selected {
			state = "selected"
		}
		m.setResult(nil, fmt.Sprintf("Tag %s %s", msg.label, state))
		// сервер фильтрует ленту по выбранным меткам
		m.loading = true
		return m, refreshCmd(m.ctx, m.app, m.query)

	case movedMsg:
		if msg.published {
			m.setResult(msg.err, "Published: "+msg.item.Title)
		} else {
			m.setResult(msg.err, "Moved to drafts: "+msg.item.Title)
		}
		m.clampCursor()
		return m, nil
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab + 1) % tabCount)

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab + tabCount - 1) % tabCount)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		if m.tab == TabFeed || m.tab == TabFavorites {
			m.searching = true
			m.search.SetValue(m.query)
			return m, m.search.Focus()
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		if m.tab == TabTags {
			return m, catalogCmd(m.ctx, m.app)
		}
		return m, refreshCmd(m.ctx, m.app, m.query)

	case key.Matches(msg, m.keys.Open):
		if m.tab == TabTags {
			return m, m.toggleSelectedTag()
		}
		if item, ok := m.selectedItem(); ok {
			m.showDetail = true
			m.detail.SetContent(m.renderDetail(item))
			m.detail.GotoTop()
		}

	case key.Matches(msg, m.keys.ToggleTag):
		if m.tab == TabTags {
			return m, m.toggleSelectedTag()
		}

	case key.Matches(msg, m.keys.Like):
		if m.tab == TabFeed || m.tab == TabFavorites {
			if item, ok := m.selectedItem(); ok {
				return m, likeCmd(m.ctx, m.app, item.ID)
			}
		}

	case key.Matches(msg, m.keys.Publish):
		if m.tab == TabDrafts {
			if item, ok := m.selectedItem(); ok {
				m.status = "Publishing..."
				return m, publishCmd(m.ctx, m.app, item.ID)
			}
		}

	case key.Matches(msg, m.keys.Unpublish):
		if m.tab == TabFeed {
			if item, ok := m.selectedItem(); ok {
				m.status = "Unpublishing..."
				return m, unpublishCmd(m.ctx, m.app, item.ID)
			}
		}
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.query = strings.TrimSpace(m.search.Value())
		m.cursor = 0
		m.loading = true
		return m, refreshCmd(m.ctx, m.app, m.query)

	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.showDetail = false
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.cursor = 0
	if tab == TabTags {
		m.loading = true
		return m, catalogCmd(m.ctx, m.app)
	}
	return m, nil
}

func (m *Model) toggleSelectedTag() tea.Cmd {
	catalog := m.app.Tags.Catalog()
	if m.cursor < 0 || m.cursor >= len(catalog) {
		return nil
	}
	return toggleTagCmd(m.ctx, m.app, catalog[m.cursor])
}

func (m *Model) setResult(err error, status string) {
	m.err = err
	if err == nil {
		m.status = status
	} else {
		m.status = ""
	}
}

// items returns the rows of the current article tab.
func (m Model) items() []models.ContentItem {
	switch m.tab {
	case TabFeed:
		return m.app.Feed(m.query, false)
	case TabFavorites:
		return m.app.Feed(m.query, true)
	case TabDrafts:
		return m.app.Articles.Drafts()
	default:
		return nil
	}
}

func (m Model) rowCount() int {
	if m.tab == TabTags {
		return len(m.app.Tags.Catalog())
	}
	return len(m.items())
}

func (m *Model) clampCursor() {
	n := m.rowCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selectedItem() (models.ContentItem, bool) {
	items := m.items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return models.ContentItem{}, false
	}
	return items[m.cursor], true
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
