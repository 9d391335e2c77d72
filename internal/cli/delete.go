package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/critic/internal/review"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a review by id",
		Long: `Remove a review from the database. Its id is never reused.

Example:
  critic delete 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
}

func runDelete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	id, err := parseID(arg)
	if err != nil {
		return formatter.Fail(ExitCommandError, "invalid id", err)
	}

	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}

	if err := s.eng.DeleteByID(id); err != nil {
		if review.IsNotFound(err) {
			return formatter.Fail(ExitFailure, "delete failed", err)
		}
		return formatter.Fail(ExitCommandError, "delete failed", err)
	}
	if err := s.save(cmd); err != nil {
		return err
	}

	return formatter.Success(deleteView{ID: id, Remaining: s.eng.Size()})
}
