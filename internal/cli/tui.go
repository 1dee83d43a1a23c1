package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"slate/internal/settings"
	"slate/internal/store"
	"slate/internal/tui"
)

// TUIOptions holds flags for the tui command.
type TUIOptions struct {
	*RootOptions
	SettingsFile string
}

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TUIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task screen",
		Long: `Open the interactive task screen.

The screen shows the full list and edits it in place. Keys:

  up/k, down/j   move the cursor
  a              add a task (type the title, enter to confirm)
  space          toggle completion under the cursor
  m              toggle selection under the cursor
  x              remove the task under the cursor
  d              remove every selected task
  D              remove every task
  t              toggle dark mode
  +/-            grow/shrink the font size
  q, ctrl+c      quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SettingsFile, "settings-file", "", "path to settings file (default: $XDG_CONFIG_HOME/slate/settings.yaml)")

	return cmd
}

func runTUI(opts *TUIOptions, cmd *cobra.Command) error {
	path := opts.SettingsFile
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to resolve settings path", err)
		}
	}

	return withStore(cmd, opts.RootOptions, func(ctx context.Context, st *store.Store) error {
		cfg := settings.Load(path)

		p := tea.NewProgram(tui.New(ctx, st, cfg, path))
		if _, err := p.Run(); err != nil {
			return WrapExitError(ExitFailure, "interactive screen failed", err)
		}
		return nil
	})
}
