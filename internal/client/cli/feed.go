package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/articlekeeper/internal/client/render"
	"github.com/iudanet/articlekeeper/internal/models"
)

type listedItem struct {
	models.ContentItem
	Liked bool
}

type listView struct {
	Heading string
	Notice  string
	Empty   string
	Items   []listedItem
}

func (c *Cli) runFeed(ctx context.Context, args []string) error {
	fs := c.newFlagSet("feed")
	query := fs.String("q", "", "Search in titles")
	favourites := fs.Bool("favorites", false, "Only liked articles")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w. Usage: articlekeeper feed [-q query] [-favorites]", err)
	}

	view := listView{Heading: "Feed", Empty: "No articles found."}
	if err := c.app.Articles.RefreshPublished(ctx, *query, c.app.Tags.Selected()); err != nil {
		// сервер недоступен: коллекции уже заполнены из кэша в Run
		view.Notice = fmt.Sprintf("Showing cached articles: %v", err)
	}
	if *favourites {
		view.Heading = "Favorites"
		view.Empty = "No liked articles yet. Use 'articlekeeper like <id>'."
	}
	if selected := c.app.Tags.Selected(); len(selected) > 0 {
		view.Heading += fmt.Sprintf(" (tags: %s)", render.Tags(selected))
	}

	view.Items = c.listed(c.app.Feed(*query, *favourites))
	return itemList.Execute(c.io, view)
}

func (c *Cli) runDrafts(ctx context.Context) error {
	view := listView{Heading: "Drafts", Empty: "No drafts. Use 'articlekeeper create' to write one."}
	if err := c.app.Articles.RefreshDrafts(ctx); err != nil {
		view.Notice = fmt.Sprintf("Showing cached drafts: %v", err)
	}

	view.Items = c.listed(c.app.Articles.Drafts())
	return itemList.Execute(c.io, view)
}

func (c *Cli) listed(items []models.ContentItem) []listedItem {
	out := make([]listedItem, 0, len(items))
	for _, item := range items {
		out = append(out, listedItem{ContentItem: item, Liked: c.app.Likes.IsLiked(item.ID)})
	}
	return out
}
