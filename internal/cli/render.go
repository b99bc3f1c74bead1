package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/whauf/sportscard-tracker/internal/models"
	"github.com/whauf/sportscard-tracker/internal/services"
)

var conditionColors = map[models.ConditionTier]*color.Color{
	models.ConditionTierMint:      color.New(color.FgHiGreen, color.Bold),
	models.ConditionTierNearMint:  color.New(color.FgHiGreen),
	models.ConditionTierExcellent: color.New(color.FgGreen),
	models.ConditionTierVeryGood:  color.New(color.FgCyan),
	models.ConditionTierGood:      color.New(color.FgYellow),
	models.ConditionTierFair:      color.New(color.FgHiYellow),
	models.ConditionTierPoor:      color.New(color.FgRed),
}

var variantColors = map[models.VariantTier]*color.Color{
	models.VariantTierBase:         color.New(color.FgWhite),
	models.VariantTierRookie:       color.New(color.FgHiBlue),
	models.VariantTierRefractor:    color.New(color.FgHiCyan),
	models.VariantTierPrizm:        color.New(color.FgHiMagenta),
	models.VariantTierPrizmSpecial: color.New(color.FgMagenta, color.Bold),
	models.VariantTierAutograph:    color.New(color.FgHiYellow, color.Bold),
	models.VariantTierMemorabilia:  color.New(color.FgYellow),
	models.VariantTierRare:         color.New(color.FgHiRed, color.Bold),
	models.VariantTierNumbered:     color.New(color.FgRed),
}

var gradeColors = map[models.GradeTier]*color.Color{
	models.GradeTierGemMint:      color.New(color.FgHiGreen, color.Bold),
	models.GradeTierMintPlus:     color.New(color.FgHiGreen),
	models.GradeTierMint:         color.New(color.FgGreen),
	models.GradeTierNearMintPlus: color.New(color.FgCyan),
	models.GradeTierNearMint:     color.New(color.FgBlue),
	models.GradeTierGood:         color.New(color.FgYellow),
	models.GradeTierPoor:         color.New(color.FgRed),
}

var neutralColor = color.New(color.FgHiBlack)

func paint(c *color.Color, text string) string {
	if c == nil {
		c = neutralColor
	}
	return c.Sprint(text)
}

var cardTableHeader = []string{"ID", "PLAYER", "YEAR", "SET", "#", "SPORT", "CONDITION", "VARIANT", "GRADE", "LAST SALE"}

// RenderCardTable writes the card table with colored badges. tablewriter
// sizes columns by display width with escape codes stripped, so colored and
// wide-character cells stay aligned.
func RenderCardTable(w io.Writer, view services.CardTableView) {
	if len(view.Rows) == 0 {
		fmt.Fprintln(w, "No cards found")
		if len(view.Suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(view.Suggestions, ", "))
		}
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(cardTableHeader)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowSeparator("")
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range view.Rows {
		card := row.Card
		grade := card.Grade
		if card.GradingService != "" && card.GradingService != models.GradingServiceUngraded {
			grade = card.GradingService + " " + card.Grade
		}
		table.Append([]string{
			strconv.Itoa(card.ID),
			card.PlayerName,
			strconv.Itoa(card.Year),
			card.CardSet,
			card.CardNumber,
			card.Sport,
			paint(badgeColor(conditionColors, row.Badges.Condition), string(card.Condition)),
			paint(badgeColor(variantColors, row.Badges.Variant), card.CardVariant),
			paint(badgeColor(gradeColors, row.Badges.Grade), grade),
			row.LastSaleText,
		})
	}
	table.Render()

	fmt.Fprintf(w, "\n%d of %d cards\n", len(view.Rows), view.TotalCards)
}

// badgeColor returns the tier's color, or the neutral color for tiers
// without one
func badgeColor[T comparable](colors map[T]*color.Color, tier T) *color.Color {
	if c, ok := colors[tier]; ok {
		return c
	}
	return neutralColor
}

// RenderSalesHistory writes the sales history dialog as text
func RenderSalesHistory(w io.Writer, history *services.SalesHistoryView) {
	color.New(color.Bold).Fprintln(w, history.Title)
	if history.Empty {
		fmt.Fprintln(w, "No sales recorded for this card")
		return
	}
	for _, sale := range history.Sales {
		line := fmt.Sprintf("%s  %10s  %s", sale.SaleDate.DateString(), sale.FormattedPrice(), sale.Platform)
		if sale.Notes != "" {
			line += "  " + sale.Notes
		}
		fmt.Fprintln(w, line)
	}
}

// RenderGradeOptions lists the grade choices for a grading service
func RenderGradeOptions(w io.Writer, options []models.GradeOption) {
	for _, option := range options {
		fmt.Fprintf(w, "%-4s %s\n", option.Value, paint(badgeColor(gradeColors, models.ClassifyGrade(option.Value)), option.Label))
	}
}

// RenderNotification prints a banner in the color of its type
func RenderNotification(w io.Writer, n services.Notification) {
	c := color.New(color.FgGreen)
	if n.Type == services.NotificationDanger {
		c = color.New(color.FgRed, color.Bold)
	}
	c.Fprintln(w, n.Message)
}
