package cli

import (
	"fmt"
	"strconv"
)

// parsePositions converts 1-based position arguments to integers.
// Range checking is left to the store, which ignores positions that
// fall outside the list.
func parsePositions(args []string) ([]int, error) {
	positions := make([]int, 0, len(args))
	for _, arg := range args {
		pos, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: expected an integer", arg)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
