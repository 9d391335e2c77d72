package cli

import (
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <substring>",
		Short: "List reviews whose text contains a substring",
		Long: `List every review whose text contains the substring. Matching is
case-sensitive and runs against the normalized text (line breaks removed,
"<br />" replaced by a space).

Example:
  critic search "special effects"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			return s.formatter.Success(reviewListView(s.eng.SearchBySubstring(args[0])))
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every stored review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			return s.formatter.Success(reviewListView(s.eng.AllValues()))
		},
	}
}
