package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/store"
	"slate/internal/task"
)

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <position>...",
		Short: "Toggle selection for tasks by position",
		Long: `Toggle the selection flag for one or more tasks.

Selection marks tasks for a later "rm --selected". Positions are
1-based, as printed by list. Positions outside the list are reported
and skipped, not treated as errors.

Example:
  slate select 1 3
  slate rm --selected`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runSelect(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	positions, err := parsePositions(args)
	if err != nil {
		_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	return withStore(cmd, opts, func(ctx context.Context, st *store.Store) error {
		toggled, missing := toggleAt(ctx, st, positions, st.ToggleSelection)
		return outputSelected(formatter, toggled, missing)
	})
}

func outputSelected(formatter *OutputFormatter, toggled []task.Task, missing []int) error {
	if formatter.Format == "json" {
		if toggled == nil {
			toggled = []task.Task{}
		}
		return formatter.Success(ToggleResult{Toggled: toggled, Missing: missing})
	}

	for _, t := range toggled {
		state := "deselected"
		if t.IsSelected {
			state = "selected"
		}
		fmt.Fprintf(formatter.Writer, "%s: %s\n", state, t.Title)
	}
	for _, pos := range missing {
		fmt.Fprintf(formatter.Writer, "no task at position %d\n", pos)
	}
	return nil
}
