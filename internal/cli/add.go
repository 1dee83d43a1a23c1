package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/store"
	"slate/internal/task"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Add a task to the end of the list",
		Long: `Add a task to the end of the list.

All arguments are joined into a single title, so quoting is optional.

Example:
  slate add Buy milk
  slate add "Call mom about the trip"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		_ = formatter.Error(ErrCodeBadArgument, "title must not be empty", nil)
		return NewExitError(ExitCommandError, "title must not be empty")
	}

	return withStore(cmd, opts, func(ctx context.Context, st *store.Store) error {
		created := st.Add(ctx, title)
		return outputAdded(formatter, created, st.Len())
	})
}

func outputAdded(formatter *OutputFormatter, created task.Task, total int) error {
	if formatter.Format == "json" {
		return formatter.Success(created)
	}

	fmt.Fprintf(formatter.Writer, "Added %q (%d in list)\n", created.Title, total)
	return nil
}
