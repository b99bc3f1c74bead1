package models

import (
	"fmt"
)

type Condition string

const (
	ConditionPoor      Condition = "Poor"
	ConditionFair      Condition = "Fair"
	ConditionGood      Condition = "Good"
	ConditionVeryGood  Condition = "Very Good"
	ConditionExcellent Condition = "Excellent"
	ConditionNearMint  Condition = "Near Mint"
	ConditionMint      Condition = "Mint"
)

// AllConditions returns the fixed condition scale, worst to best
func AllConditions() []Condition {
	return []Condition{
		ConditionPoor,
		ConditionFair,
		ConditionGood,
		ConditionVeryGood,
		ConditionExcellent,
		ConditionNearMint,
		ConditionMint,
	}
}

// Known card variants. The set is open; anything else is stored as-is.
const (
	VariantBase                  = "Base"
	VariantRookie                = "Rookie"
	VariantRefractor             = "Refractor"
	VariantPrizm                 = "Prizm"
	VariantSilverPrizm           = "Silver Prizm"
	VariantGoldPrizm             = "Gold Prizm"
	VariantRainbowPrizm          = "Rainbow Prizm"
	VariantAutograph             = "Autograph"
	VariantRookieTicketAutograph = "Rookie Ticket Autograph"
	VariantJersey                = "Jersey"
	VariantPatch                 = "Patch"
	VariantOneOfOne              = "One of One"
	VariantSerialNumbered        = "Serial Numbered"
)

const (
	GradingServiceUngraded = "Ungraded"
	GradingServicePSA      = "PSA"
	GradingServiceSGC      = "SGC"
	GradingServiceJSA      = "JSA"
	GradingServiceBGS      = "BGS"
)

const (
	GradeNotApplicable = "N/A"
	GradeAuthentic     = "A"
)

type Card struct {
	ID             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerName     string    `json:"player_name" gorm:"size:100;not null;index"`
	CardSet        string    `json:"card_set" gorm:"size:100;not null"`
	Year           int       `json:"year" gorm:"not null"`
	CardNumber     string    `json:"card_number" gorm:"size:20;not null"`
	Sport          string    `json:"sport" gorm:"size:50;not null;index"`
	Condition      Condition `json:"condition" gorm:"size:20;not null"`
	CardVariant    string    `json:"card_variant" gorm:"size:100;default:'Base'"`
	GradingService string    `json:"grading_service" gorm:"size:20;default:'Ungraded'"`
	Grade          string    `json:"grade" gorm:"size:10;default:'N/A'"`
	Description    string    `json:"description"`
	CreatedAt      LocalTime `json:"created_at"`
	LastSale       *Sale     `json:"last_sale" gorm:"-"` // server-computed, nil when never sold
}

// DisplayTitle is the heading used for a card's sales history, e.g.
// "Michael Jordan 1991 Upper Deck #44"
func (c Card) DisplayTitle() string {
	return fmt.Sprintf("%s %d %s #%s", c.PlayerName, c.Year, c.CardSet, c.CardNumber)
}

// CreateCardRequest is the body of POST /api/cards. Validation is left to
// the backend; the client forwards whatever the user entered.
type CreateCardRequest struct {
	PlayerName     string    `json:"player_name" binding:"required"`
	CardSet        string    `json:"card_set" binding:"required"`
	Year           int       `json:"year" binding:"required"`
	CardNumber     string    `json:"card_number" binding:"required"`
	Sport          string    `json:"sport" binding:"required"`
	Condition      Condition `json:"condition" binding:"required"`
	CardVariant    string    `json:"card_variant,omitempty"`
	GradingService string    `json:"grading_service,omitempty"`
	Grade          string    `json:"grade,omitempty"`
	Description    string    `json:"description,omitempty"`
}

// ToCard applies the backend defaults for omitted classification fields
func (r CreateCardRequest) ToCard() Card {
	card := Card{
		PlayerName:     r.PlayerName,
		CardSet:        r.CardSet,
		Year:           r.Year,
		CardNumber:     r.CardNumber,
		Sport:          r.Sport,
		Condition:      r.Condition,
		CardVariant:    r.CardVariant,
		GradingService: r.GradingService,
		Grade:          r.Grade,
		Description:    r.Description,
	}
	if card.CardVariant == "" {
		card.CardVariant = VariantBase
	}
	if card.GradingService == "" {
		card.GradingService = GradingServiceUngraded
	}
	if card.Grade == "" {
		card.Grade = GradeNotApplicable
	}
	return card
}
