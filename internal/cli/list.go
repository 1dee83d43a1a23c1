package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/store"
	"slate/internal/task"
)

// ListResult is the JSON payload for the list command.
type ListResult struct {
	Tasks []task.Task `json:"tasks"`
	Count int         `json:"count"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list",
		Long: `Print the task list in order.

Positions are 1-based and match the positions the toggle, select and rm
commands accept. Completed tasks are marked with [x], selected tasks
carry a (selected) suffix.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	return withStore(cmd, opts, func(ctx context.Context, st *store.Store) error {
		return outputList(formatter, st.Tasks())
	})
}

func outputList(formatter *OutputFormatter, tasks []task.Task) error {
	if formatter.Format == "json" {
		return formatter.Success(ListResult{Tasks: tasks, Count: len(tasks)})
	}

	fmt.Fprint(formatter.Writer, renderTasks(tasks))
	return nil
}

// renderTasks formats the task sequence the way the list screen shows
// it: 1-based positions, a checkbox for completion, and a selection
// marker.
func renderTasks(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "No tasks.\n"
	}

	var sb strings.Builder
	for i, t := range tasks {
		box := " "
		if t.IsCompleted {
			box = "x"
		}
		fmt.Fprintf(&sb, "%2d. [%s] %s", i+1, box, t.Title)
		if t.IsSelected {
			sb.WriteString("  (selected)")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
