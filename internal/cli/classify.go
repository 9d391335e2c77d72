package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text...>",
		Short: "Classify text without storing it",
		Long: `Score arbitrary text against the word lists and print the verdict.
Nothing is stored and no id is consumed.

Example:
  critic classify "A dull, boring film with one great scene."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			label, score := s.eng.Classify(text)
			return s.formatter.Success(classifyView{Text: text, Label: label, Score: score})
		},
	}
}
