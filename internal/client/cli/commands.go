package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Локальное состояние (метки, лайки, профиль) и
// коллекции статей из кэша восстанавливаются перед каждой командой,
// иначе сохранение после команды затерло бы кэш неполными данными.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	c.app.Load(ctx)
	c.app.Articles.Seed(ctx)

	switch command {
	case "feed":
		return c.runFeed(ctx, args)
	case "drafts":
		return c.runDrafts(ctx)
	case "show":
		return c.runShow(ctx, args)
	case "create":
		return c.runCreate(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "publish":
		return c.runPublish(ctx, args)
	case "unpublish":
		return c.runUnpublish(ctx, args)
	case "tags":
		return c.runTags(ctx)
	case "toggle-tag":
		return c.runToggleTag(ctx, args)
	case "my-tags":
		return c.runMyTags(ctx, args)
	case "like":
		return c.runLike(ctx, args)
	case "profile":
		return c.runProfile()
	case "set-name":
		return c.runSetName(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "tui":
		if c.runTUI == nil {
			return fmt.Errorf("interactive mode is not available")
		}
		return c.runTUI(ctx, c.app)
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
