package cli

import (
	"context"
	"fmt"
)

type tagEntry struct {
	Label    string
	Selected bool
}

func (c *Cli) runTags(ctx context.Context) error {
	view := struct {
		Notice   string
		Catalog  []tagEntry
		UserTags []string
	}{UserTags: c.app.UserTags.List()}

	if err := c.app.Tags.LoadCatalog(ctx); err != nil {
		view.Notice = fmt.Sprintf("(%v)", err)
	}
	for _, label := range c.app.Tags.Catalog() {
		view.Catalog = append(view.Catalog, tagEntry{Label: label, Selected: c.app.Tags.IsSelected(label)})
	}
	return tagsView.Execute(c.io, view)
}

func (c *Cli) runToggleTag(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing tag label. Usage: articlekeeper toggle-tag <label>")
	}

	selected, err := c.app.Tags.Toggle(ctx, args[0])
	if err != nil {
		return err
	}
	if selected {
		c.io.Printf("✓ Tag selected: %s\n", args[0])
	} else {
		c.io.Printf("✓ Tag deselected: %s\n", args[0])
	}
	return nil
}

func (c *Cli) runMyTags(ctx context.Context, args []string) error {
	const myTagsUsage = "articlekeeper my-tags [add|remove <label>]"

	if len(args) == 0 {
		labels := c.app.UserTags.List()
		if len(labels) == 0 {
			c.io.Println("No tags yet. Use 'articlekeeper my-tags add <label>'.")
			return nil
		}
		for _, l := range labels {
			c.io.Println("-", l)
		}
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("missing tag label. Usage: %s", myTagsUsage)
	}

	switch args[0] {
	case "add":
		if err := c.app.UserTags.Add(ctx, args[1]); err != nil {
			return err
		}
		c.io.Printf("✓ Tag added: %s\n", args[1])
	case "remove":
		if err := c.app.UserTags.Remove(ctx, args[1]); err != nil {
			return err
		}
		c.io.Printf("✓ Tag removed: %s\n", args[1])
	default:
		return fmt.Errorf("unknown action: %s. Usage: %s", args[0], myTagsUsage)
	}
	return nil
}
