package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/iudanet/articlekeeper/internal/client/render"
	"github.com/iudanet/articlekeeper/internal/models"
)

const bodyPrompt = "Body (finish with a single '.' line):\n"

// draftFlags поля черновика из командной строки
type draftFlags struct {
	set     map[string]bool
	title   string
	tags    string
	body    string
	publish bool
}

func (c *Cli) parseDraftFlags(name string, args []string) (*draftFlags, []string, error) {
	fs := c.newFlagSet(name)
	f := &draftFlags{set: map[string]bool{}}
	fs.StringVar(&f.title, "title", "", "Article title")
	fs.StringVar(&f.tags, "tags", "", "Comma separated tags")
	fs.StringVar(&f.body, "body", "", "Article body")
	fs.BoolVar(&f.publish, "publish", false, "Publish right away")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, fs.Args(), nil
}

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	f, _, err := c.parseDraftFlags("create", args)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w. Usage: articlekeeper create [-title T] [-tags a,b] [-body B] [-publish]", err)
	}

	c.io.Println("=== New Article ===")
	c.io.Println()

	input := models.DraftInput{Title: strings.TrimSpace(f.title), Body: f.body, Tags: models.ParseTags(f.tags)}
	if !f.set["title"] {
		if input.Title, err = c.io.ReadInput("Title: "); err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}
	if input.Title == "" {
		return errors.New("title cannot be empty")
	}
	if !f.set["tags"] {
		raw, err := c.io.ReadInput("Tags (comma separated): ")
		if err != nil {
			return fmt.Errorf("failed to read tags: %w", err)
		}
		input.Tags = models.ParseTags(raw)
	}
	if !f.set["body"] {
		if input.Body, err = c.io.ReadMultiline(bodyPrompt); err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
	}

	if !f.publish {
		item, err := c.app.Articles.CreateDraft(ctx, input)
		if err != nil {
			return err
		}
		c.io.Println()
		c.io.Printf("✓ Draft saved. ID: %s\n", item.ID)
		return nil
	}

	item, err := c.app.CreateAndPublish(ctx, input)
	if err != nil {
		if item.ID != "" {
			c.io.Printf("Draft saved (ID: %s), but publishing failed.\n", item.ID)
		}
		return err
	}
	c.io.Println()
	c.io.Printf("✓ Article published. ID: %s\n", item.ID)
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	const editUsage = "articlekeeper edit <id> [-title T] [-tags a,b] [-body B] [-publish]"

	id, err := requireID(args, editUsage)
	if err != nil {
		return err
	}
	f, _, err := c.parseDraftFlags("edit", args[1:])
	if err != nil {
		return fmt.Errorf("invalid arguments: %w. Usage: %s", err, editUsage)
	}

	current, err := c.app.Articles.GetDraft(ctx, id)
	if err != nil {
		return err
	}

	c.io.Println("=== Edit Draft ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	input := models.DraftInput{Title: current.Title, Body: current.Body, Tags: current.Tags}
	if f.set["title"] {
		input.Title = strings.TrimSpace(f.title)
	} else if v, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", current.Title)); err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	} else if v != "" {
		input.Title = v
	}
	if input.Title == "" {
		return errors.New("title cannot be empty")
	}

	if f.set["tags"] {
		input.Tags = models.ParseTags(f.tags)
	} else if v, err := c.io.ReadInput(fmt.Sprintf("Tags [%s]: ", render.Tags(current.Tags))); err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	} else if v != "" {
		input.Tags = models.ParseTags(v)
	}

	if f.set["body"] {
		input.Body = f.body
	} else if v, err := c.io.ReadMultiline(bodyPrompt); err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	} else if v != "" {
		input.Body = v
	}

	if !f.publish {
		if _, err := c.app.Articles.EditDraft(ctx, id, input); err != nil {
			return err
		}
		c.io.Println()
		c.io.Println("✓ Draft saved.")
		return nil
	}

	item, err := c.app.SaveAndPublish(ctx, id, input)
	if err != nil {
		if item.ID != "" {
			c.io.Println("Draft saved, but publishing failed.")
		}
		return err
	}
	c.io.Println()
	c.io.Printf("✓ Article published. ID: %s\n", item.ID)
	return nil
}
