package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/articlekeeper/internal/client/api"
	"github.com/iudanet/articlekeeper/internal/models"
)

const showUsage = "articlekeeper show <post|draft> <id>"

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: %s", showUsage)
	}

	kind, id := args[0], args[1]

	var (
		item models.ContentItem
		err  error
	)
	switch kind {
	case "post", "article":
		item, err = c.app.Articles.GetPost(ctx, id)
	case "draft":
		item, err = c.app.Articles.GetDraft(ctx, id)
	default:
		return fmt.Errorf("unknown item kind: %s. Usage: %s", kind, showUsage)
	}
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("%s not found with ID: %s", kind, id)
		}
		return err
	}

	return itemView.Execute(c.io, listedItem{ContentItem: item, Liked: c.app.Likes.IsLiked(item.ID)})
}
