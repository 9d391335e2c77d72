package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], cmd)
		},
	}
}

func runGet(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	id, err := parseID(arg)
	if err != nil {
		return formatter.Fail(ExitCommandError, "invalid id", err)
	}

	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}

	r, err := s.eng.SearchByID(id)
	if err != nil {
		return formatter.Fail(ExitFailure, "lookup failed", err)
	}
	return formatter.Success(reviewView(r))
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", arg)
	}
	return id, nil
}
