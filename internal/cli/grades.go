package cli

import (
	"github.com/spf13/cobra"

	"github.com/whauf/sportscard-tracker/internal/models"
)

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades [grading_service]",
		Short: "List the grades a grading service can assign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			RenderGradeOptions(cmd.OutOrStdout(), models.GradeOptionsFor(args[0]))
			return nil
		},
	}
}
