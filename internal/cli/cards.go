package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whauf/sportscard-tracker/internal/models"
	"github.com/whauf/sportscard-tracker/internal/services"
)

func newCardsCmd(a *app) *cobra.Command {
	cards := &cobra.Command{
		Use:   "cards",
		Short: "List and add cards",
	}
	cards.AddCommand(newCardsListCmd(a))
	cards.AddCommand(newCardsAddCmd(a))
	return cards
}

func newCardsListCmd(a *app) *cobra.Command {
	var criteria services.Criteria
	var serverSide bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the card table, optionally filtered",
		Long: `List fetches every card and filters locally. Each filter accepts "all"
to mean no constraint. Player names match by case-sensitive substring; the
other filters must match exactly.

With --server the filtering is done by the backend's search endpoint instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var view services.CardTableView

			if serverSide {
				client, err := a.client()
				if err != nil {
					return err
				}
				cards, err := client.SearchCards(cmd.Context(), criteria)
				if err != nil {
					return fmt.Errorf("error searching cards: %w", err)
				}
				view = services.BuildCardTable(services.AppState{Cards: cards, Criteria: criteria})
			} else {
				shell, err := a.shell()
				if err != nil {
					return err
				}
				defer shell.Close()

				if err := shell.Refresh(cmd.Context()); err != nil {
					return err
				}
				shell.ApplyCriteria(criteria)
				view = shell.View()
			}

			RenderCardTable(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.PlayerName, "player", "", "Player name substring")
	cmd.Flags().StringVar(&criteria.Sport, "sport", "", "Sport")
	cmd.Flags().StringVar(&criteria.CardVariant, "variant", "", "Card variant")
	cmd.Flags().StringVar(&criteria.GradingService, "grading-service", "", "Grading service")
	cmd.Flags().StringVar(&criteria.Grade, "grade", "", "Grade, matched exactly (9 does not match 9.0)")
	cmd.Flags().BoolVar(&serverSide, "server", false, "Filter on the backend")

	return cmd
}

func newCardsAddCmd(a *app) *cobra.Command {
	var req models.CreateCardRequest
	var condition string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to the inventory",
		Example: `  cardctl cards add --player "Mike Trout" --set "Topps Update" --year 2011 \
    --number US175 --sport Baseball --condition Mint --variant Rookie \
    --grading-service PSA --grade 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Condition = models.Condition(condition)
			if err := checkCardChoices(req); err != nil {
				return err
			}

			shell, err := a.shell()
			if err != nil {
				return err
			}
			defer shell.Close()

			card, err := shell.AddCard(cmd.Context(), req)
			printNotification(cmd, shell)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n", card.ID, card.DisplayTitle())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.PlayerName, "player", "", "Player name")
	cmd.Flags().StringVar(&req.CardSet, "set", "", "Card set")
	cmd.Flags().IntVar(&req.Year, "year", 0, "Year")
	cmd.Flags().StringVar(&req.CardNumber, "number", "", "Card number")
	cmd.Flags().StringVar(&req.Sport, "sport", "", "Sport")
	cmd.Flags().StringVar(&condition, "condition", "", "Condition: "+conditionChoices())
	cmd.Flags().StringVar(&req.CardVariant, "variant", models.VariantBase, "Card variant")
	cmd.Flags().StringVar(&req.GradingService, "grading-service", models.GradingServiceUngraded, "Grading service")
	cmd.Flags().StringVar(&req.Grade, "grade", "", "Grade, one of the values listed by cardctl grades <service>")
	cmd.Flags().StringVar(&req.Description, "description", "", "Free-form description")

	return cmd
}

// checkCardChoices enforces the same choice lists the entry form offers:
// a known condition when one is given, and a grade valid for the service.
// Required fields are left for the backend to reject.
func checkCardChoices(req models.CreateCardRequest) error {
	if req.Condition != "" {
		known := false
		for _, c := range models.AllConditions() {
			if c == req.Condition {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown condition %q, expected one of: %s", req.Condition, conditionChoices())
		}
	}
	if req.Grade != "" && !models.IsValidGrade(req.GradingService, req.Grade) {
		return fmt.Errorf("grade %q is not offered for %s", req.Grade, req.GradingService)
	}
	return nil
}

func conditionChoices() string {
	names := make([]string, 0, len(models.AllConditions()))
	for _, c := range models.AllConditions() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
