package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/critic/internal/review"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Label string
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <path>",
		Short: "Import a review file or a directory of reviews",
		Long: `Import one review file, or every matching file directly inside a
directory, classify each review and store it under a fresh id.

The label is the polarity the operator expects for every imported review.
It is compared with the prediction to report accuracy; use "unknown" when
there is no ground truth.

Example:
  critic load --label negative ./reviews/neg
  critic load --label 1 ./reviews/pos/10_9.txt
  critic load --label unknown --format json ./reviews/unsup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Label, "label", "l", "", "actual polarity: negative|positive|unknown or 0|1|2 (required)")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func runLoad(opts *LoadOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	label, err := review.ParseLabelArg(opts.Label)
	if err != nil {
		return formatter.Fail(ExitCommandError, "invalid --label", err)
	}

	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	report, err := s.eng.Load(commandContext(cmd), path, label)
	if err != nil {
		return formatter.Fail(ExitCommandError, "load failed", err)
	}
	if err := s.save(cmd); err != nil {
		return err
	}

	return formatter.Success((*loadView)(report))
}
