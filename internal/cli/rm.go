package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/store"
)

// RmOptions holds flags for the rm command.
type RmOptions struct {
	*RootOptions
	Selected bool
	All      bool
}

// RmResult is the JSON payload for the rm command.
type RmResult struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

// NewRmCommand creates the rm command.
func NewRmCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RmOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rm [<position>...]",
		Short: "Remove tasks by position, by selection, or all at once",
		Long: `Remove tasks from the list.

Pass 1-based positions, or --selected to remove every selected task,
or --all to clear the list. Exactly one of the three must be used.
Positions outside the list are ignored.

Example:
  slate rm 2
  slate rm 1 3 5
  slate rm --selected
  slate rm --all`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Selected, "selected", false, "remove every selected task")
	cmd.Flags().BoolVar(&opts.All, "all", false, "remove every task")

	return cmd
}

func runRm(opts *RmOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	// Exactly one removal mode.
	modes := 0
	if len(args) > 0 {
		modes++
	}
	if opts.Selected {
		modes++
	}
	if opts.All {
		modes++
	}
	if modes != 1 {
		msg := "pass positions, --selected, or --all (exactly one)"
		_ = formatter.Error(ErrCodeBadArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	var positions []int
	if len(args) > 0 {
		var err error
		positions, err = parsePositions(args)
		if err != nil {
			_ = formatter.Error(ErrCodeBadArgument, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
	}

	return withStore(cmd, opts.RootOptions, func(ctx context.Context, st *store.Store) error {
		var removed int
		switch {
		case opts.All:
			removed = st.Len()
			st.DeleteAll(ctx)
		case opts.Selected:
			removed = st.DeleteSelected(ctx)
		default:
			indices := make([]int, 0, len(positions))
			for _, pos := range positions {
				indices = append(indices, pos-1)
			}
			removed = st.DeleteAt(ctx, indices...)
		}
		return outputRemoved(formatter, removed, st.Len())
	})
}

func outputRemoved(formatter *OutputFormatter, removed, remaining int) error {
	if formatter.Format == "json" {
		return formatter.Success(RmResult{Removed: removed, Remaining: remaining})
	}

	fmt.Fprintf(formatter.Writer, "Removed %d task(s), %d remaining\n", removed, remaining)
	return nil
}
