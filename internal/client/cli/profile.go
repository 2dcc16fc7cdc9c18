package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runLike(ctx context.Context, args []string) error {
	id, err := requireID(args, "articlekeeper like <id>")
	if err != nil {
		return err
	}

	liked, err := c.app.Likes.Toggle(ctx, id)
	if err != nil {
		return err
	}
	if liked {
		c.io.Printf("♥ Liked %s\n", id)
	} else {
		c.io.Printf("Removed like from %s\n", id)
	}
	return nil
}

func (c *Cli) runProfile() error {
	return profileView.Execute(c.io, c.app.Profile.Profile())
}

func (c *Cli) runSetName(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("missing name. Usage: articlekeeper set-name <name>")
	}

	if err := c.app.Profile.SetName(ctx, name); err != nil {
		return err
	}
	c.io.Printf("✓ Name set to %s\n", name)
	return nil
}

// runStatus показывает локальное состояние без обращения к серверу
func (c *Cli) runStatus(ctx context.Context) error {
	c.app.Articles.Seed(ctx)
	return statusView.Execute(c.io, c.app.Articles.Snapshot())
}
