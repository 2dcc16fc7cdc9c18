package cli

import (
	"context"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := requireID(args, "articlekeeper delete <id>")
	if err != nil {
		return err
	}

	ok, err := c.confirm("Are you sure you want to delete draft " + id + "?")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.app.Articles.DeleteDraft(ctx, id); err != nil {
		return err
	}
	c.io.Println("✓ Draft deleted.")
	return nil
}

func (c *Cli) runPublish(ctx context.Context, args []string) error {
	id, err := requireID(args, "articlekeeper publish <id>")
	if err != nil {
		return err
	}

	item, err := c.app.Publish(ctx, id)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Published: %s (%s)\n", item.Title, item.ID)
	return nil
}

func (c *Cli) runUnpublish(ctx context.Context, args []string) error {
	id, err := requireID(args, "articlekeeper unpublish <id>")
	if err != nil {
		return err
	}

	item, err := c.app.Unpublish(ctx, id)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Moved to drafts: %s (%s)\n", item.Title, item.ID)
	return nil
}
