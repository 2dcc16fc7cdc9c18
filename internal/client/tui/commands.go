package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/articlekeeper/internal/client/app"
	"github.com/iudanet/articlekeeper/internal/models"
)

// Messages

type startedMsg struct{}

type refreshedMsg struct{ err error }

type catalogMsg struct{ err error }

type likedMsg struct {
	err   error
	id    string
	liked bool
}

type tagToggledMsg struct {
	err      error
	label    string
	selected bool
}

type movedMsg struct {
	err       error
	item      models.ContentItem
	published bool
}

// Commands

func startCmd(ctx context.Context, a *app.App) tea.Cmd {
	return func() tea.Msg {
		<-a.Start(ctx)
		return startedMsg{}
	}
}

func refreshCmd(ctx context.Context, a *app.App, query string) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: a.Refresh(ctx, query)}
	}
}

func catalogCmd(ctx context.Context, a *app.App) tea.Cmd {
	return func() tea.Msg {
		return catalogMsg{err: a.Tags.LoadCatalog(ctx)}
	}
}

func likeCmd(ctx context.Context, a *app.App, id string) tea.Cmd {
	return func() tea.Msg {
		liked, err := a.Likes.Toggle(ctx, id)
		return likedMsg{id: id, liked: liked, err: err}
	}
}

func toggleTagCmd(ctx context.Context, a *app.App, label string) tea.Cmd {
	return func() tea.Msg {
		selected, err := a.Tags.Toggle(ctx, label)
		return tagToggledMsg{label: label, selected: selected, err: err}
	}
}

func publishCmd(ctx context.Context, a *app.App, id string) tea.Cmd {
	return func() tea.Msg {
		item, err := a.Publish(ctx, id)
		return movedMsg{item: item, published: true, err: err}
	}
}

func unpublishCmd(ctx context.Context, a *app.App, id string) tea.Cmd {
	return func() tea.Msg {
		item, err := a.Unpublish(ctx, id)
		return movedMsg{item: item, err: err}
	}
}
