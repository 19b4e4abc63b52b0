package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/tada/internal/script"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type replayOptions struct {
	group bool
	json  bool
}

func (a *app) replayCommand() *cobra.Command {
	var opts replayOptions
	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Apply a command script to an empty list and print the result",
		Long: `Apply a command script to an empty list and print the result.

Reads the script from file, or from stdin when file is omitted or "-".
One command per line; blank lines and lines starting with # are skipped:

  add <text...>          add an item
  rm <id>                delete an item (alias: delete)
  done <id>              toggle done (alias: toggle)
  edit <id>              start editing an item
  commit <id> [text...]  save the edited text
  clear                  remove every item

Ids are assigned from 1 in the order items are added.`,
		Example: `  tada replay groceries.todo
  tada replay --group groceries.todo
  echo "add Buy milk" | tada replay --json`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usagef("replay: want at most one file, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.replay(path, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.group, "group", false, "group output by pending/done")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the final list as JSON")
	return cmd
}

func (a *app) replay(path string, opts replayOptions) error {
	r, closeFn, err := a.openScript(path)
	if err != nil {
		return err
	}
	defer closeFn()

	cmds, err := script.Parse(r)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}

	s := store.New()
	for _, c := range cmds {
		s.Dispatch(c)
	}
	a.log.WithField("commands", len(cmds)).Debug("replay finished")

	if opts.json {
		return ui.WriteJSON(a.stdout, s.Items())
	}
	lines := a.theme.Lines(s.Items(), ui.ListOptions{Group: opts.group, MaxText: a.textWidth()})
	fmt.Fprintln(a.stdout, a.theme.Panel(lines))
	a.ok(fmt.Sprintf("applied %d commands", len(cmds)))
	return nil
}

func (a *app) openScript(path string) (io.Reader, func(), error) {
	if path == "-" {
		return a.stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// textWidth leaves room for the frame, id and checkbox on a terminal. Off a
// terminal it returns 0, the renderer default.
func (a *app) textWidth() int {
	f, ok := a.stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w < 30 {
		return 0
	}
	return w - 16
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
