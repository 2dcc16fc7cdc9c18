package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/articlekeeper/internal/client/app"
	"github.com/iudanet/articlekeeper/internal/client/iocli"
)

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// TUIRunner запускает интерактивный интерфейс
type TUIRunner func(ctx context.Context, a *app.App) error

type Cli struct {
	io     iocli.IO
	app    *app.App
	runTUI TUIRunner
}

// New создает CLI поверх фасада клиента.
// runTUI может быть nil, тогда команда tui недоступна.
func New(io iocli.IO, a *app.App, runTUI TUIRunner) *Cli {
	return &Cli{
		io:     io,
		app:    a,
		runTUI: runTUI,
	}
}

// PrintUsage печатает справку
func (c *Cli) PrintUsage() {
	_ = usage.Execute(c.io, nil)
}

// newFlagSet набор флагов подкоманды; ошибки разбора возвращаются вызывающему
func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return answer == "yes" || answer == "y", nil
}

func requireID(args []string, usage string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("missing article ID. Usage: %s", usage)
	}
	return args[0], nil
}
