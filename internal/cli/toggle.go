package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/store"
	"slate/internal/task"
)

// ToggleResult is the JSON payload for the toggle and select commands.
type ToggleResult struct {
	Toggled []task.Task `json:"toggled"`
	Missing []int       `json:"missing,omitempty"`
}

// NewToggleCommand creates the toggle command.
func NewToggleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <position>...",
		Short: "Toggle completion for tasks by position",
		Long: `Toggle the completion flag for one or more tasks.

Positions are 1-based, as printed by list. Positions outside the list
are reported and skipped, not treated as errors.

Example:
  slate toggle 1
  slate toggle 2 4`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runToggle(opts *RootOptions, args []string, cmd *cobra.Command) error {
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
		toggled, missing := toggleAt(ctx, st, positions, st.ToggleCompletion)
		return outputToggled(formatter, toggled, missing)
	})
}

// toggleAt flips one flag for each requested position and reports the
// tasks in their new state. Positions outside the list are collected
// separately.
func toggleAt(ctx context.Context, st *store.Store, positions []int, flip func(context.Context, string) bool) ([]task.Task, []int) {
	var toggled []task.Task
	var missing []int

	for _, pos := range positions {
		tasks := st.Tasks()
		idx := pos - 1
		if idx < 0 || idx >= len(tasks) {
			missing = append(missing, pos)
			continue
		}
		flip(ctx, tasks[idx].ID)
		toggled = append(toggled, st.Tasks()[idx])
	}
	return toggled, missing
}

func outputToggled(formatter *OutputFormatter, toggled []task.Task, missing []int) error {
	if formatter.Format == "json" {
		if toggled == nil {
			toggled = []task.Task{}
		}
		return formatter.Success(ToggleResult{Toggled: toggled, Missing: missing})
	}

	for _, t := range toggled {
		box := " "
		if t.IsCompleted {
			box = "x"
		}
		fmt.Fprintf(formatter.Writer, "[%s] %s\n", box, t.Title)
	}
	for _, pos := range missing {
		fmt.Fprintf(formatter.Writer, "no task at position %d\n", pos)
	}
	return nil
}
