package services

import (
	"github.com/whauf/sportscard-tracker/internal/models"
)

// noSalesText is shown in the last-sale column for cards that never sold
const noSalesText = "No sales"

// LastSaleCell is the formatted last-sale column
type LastSaleCell struct {
	Price    string `json:"price"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
}

// CardRow is one rendered row of the card table
type CardRow struct {
	Card           models.Card       `json:"card"`
	Badges         models.CardBadges `json:"badges"`
	ConditionClass string            `json:"condition_class"`
	VariantClass   string            `json:"variant_class"`
	GradeClass     string            `json:"grade_class"`
	LastSale       *LastSaleCell     `json:"last_sale_display,omitempty"`
	LastSaleText   string            `json:"last_sale_text"`
}

// CardTableView is everything the presentation shell needs to draw the table
type CardTableView struct {
	Rows         []CardRow            `json:"rows"`
	TotalCards   int                  `json:"total_cards"`
	Criteria     Criteria             `json:"criteria"`
	GradeOptions []models.GradeOption `json:"grade_options,omitempty"`
	Suggestions  []string             `json:"suggestions,omitempty"`
	Notification *Notification        `json:"notification,omitempty"`
}

// NewCardRow classifies a card for display
func NewCardRow(card models.Card) CardRow {
	badges := models.ClassifyCard(card)
	row := CardRow{
		Card:           card,
		Badges:         badges,
		ConditionClass: badges.Condition.CSSClass(),
		VariantClass:   badges.Variant.CSSClass(),
		GradeClass:     badges.Grade.CSSClass(),
		LastSaleText:   noSalesText,
	}
	if sale := card.LastSale; sale != nil {
		row.LastSale = &LastSaleCell{
			Price:    sale.FormattedPrice(),
			Date:     sale.SaleDate.DateString(),
			Platform: sale.Platform,
		}
		row.LastSaleText = sale.FormattedPrice() + " " + sale.SaleDate.DateString() + " " + sale.Platform
	}
	return row
}

// BuildCardTable filters the state and classifies each surviving card.
// When a player-name search matches nothing, close names are suggested.
func BuildCardTable(state AppState) CardTableView {
	filtered := state.Filtered()
	criteria := state.Criteria.Normalize()

	view := CardTableView{
		Rows:       make([]CardRow, 0, len(filtered)),
		TotalCards: len(state.Cards),
		Criteria:   criteria,
	}
	for i := range filtered {
		view.Rows = append(view.Rows, NewCardRow(filtered[i]))
	}
	if criteria.GradingService != "" {
		view.GradeOptions = models.GradeOptionsFor(criteria.GradingService)
	}
	if len(filtered) == 0 && criteria.PlayerName != "" {
		view.Suggestions = SuggestPlayers(state.Cards, criteria.PlayerName, defaultSuggestionLimit)
	}
	return view
}

// SalesHistoryView backs the sales history dialog
type SalesHistoryView struct {
	CardID int           `json:"card_id"`
	Title  string        `json:"title"`
	Sales  []models.Sale `json:"sales"`
	Empty  bool          `json:"empty"`
}
