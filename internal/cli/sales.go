package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/whauf/sportscard-tracker/internal/models"
)

func newSalesCmd(a *app) *cobra.Command {
	sales := &cobra.Command{
		Use:   "sales",
		Short: "Show and record card sales",
	}
	sales.AddCommand(newSalesListCmd(a))
	sales.AddCommand(newSalesLastCmd(a))
	sales.AddCommand(newSalesAddCmd(a))
	return sales
}

func parseCardID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid card id %q", arg)
	}
	return id, nil
}

func newSalesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [card_id]",
		Short: "Show a card's sales history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseCardID(args[0])
			if err != nil {
				return err
			}

			shell, err := a.shell()
			if err != nil {
				return err
			}
			defer shell.Close()

			// The snapshot only supplies the title; the history loads without it.
			_ = shell.Refresh(cmd.Context())

			history, err := shell.SalesHistory(cmd.Context(), cardID)
			if err != nil {
				return err
			}
			RenderSalesHistory(cmd.OutOrStdout(), history)
			return nil
		},
	}
}

func newSalesLastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "last [card_id]",
		Short: "Show a card's most recent sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseCardID(args[0])
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			sale, err := client.GetLastSale(cmd.Context(), cardID)
			if err != nil {
				return fmt.Errorf("error loading last sale: %w", err)
			}
			if sale == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No sales")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", sale.FormattedPrice(), sale.SaleDate.DateString(), sale.Platform)
			return nil
		},
	}
}

func newSalesAddCmd(a *app) *cobra.Command {
	var req models.CreateSaleRequest
	var date string

	cmd := &cobra.Command{
		Use:     "add [card_id]",
		Short:   "Record a sale for a card",
		Example: `  cardctl sales add 1 --price 3900 --platform eBay --date 2024-01-15`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseCardID(args[0])
			if err != nil {
				return err
			}
			req.CardID = cardID

			if date != "" {
				saleDate, err := models.ParseLocalTime(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				req.SaleDate = &saleDate
			}

			shell, err := a.shell()
			if err != nil {
				return err
			}
			defer shell.Close()

			sale, err := shell.AddSale(cmd.Context(), req)
			printNotification(cmd, shell)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sale #%d: %s on %s via %s\n", sale.ID, sale.FormattedPrice(), sale.SaleDate.DateString(), sale.Platform)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.SalePrice, "price", 0, "Sale price in dollars")
	cmd.Flags().StringVar(&req.Platform, "platform", "", "Where it sold, e.g. eBay or PWCC")
	cmd.Flags().StringVar(&date, "date", "", "Sale date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&req.BuyerInfo, "buyer", "", "Buyer details")
	cmd.Flags().StringVar(&req.SellerInfo, "seller", "", "Seller details")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")

	return cmd
}
