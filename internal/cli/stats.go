package cli

import (
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the database",
		Long:  "Show the number of stored reviews, the next id and the label distribution.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			return s.formatter.Success(statsView{
				Database: s.eng.DatabasePath(),
				Format:   s.cfg.Database.Format,
				Stats:    s.eng.Stats(),
			})
		},
	}
}
