package models

import (
	"errors"
	"strconv"
	"strings"
)

// neutralBadgeClass is the fallback styling for values with no dedicated tier
const neutralBadgeClass = "bg-secondary"

// ConditionTier is the badge bucket for a card's raw condition
type ConditionTier string

const (
	ConditionTierMint      ConditionTier = "mint"
	ConditionTierNearMint  ConditionTier = "near-mint"
	ConditionTierExcellent ConditionTier = "excellent"
	ConditionTierVeryGood  ConditionTier = "very-good"
	ConditionTierGood      ConditionTier = "good"
	ConditionTierFair      ConditionTier = "fair"
	ConditionTierPoor      ConditionTier = "poor"
	ConditionTierNeutral   ConditionTier = "neutral"
)

var conditionTiers = map[Condition]ConditionTier{
	ConditionMint:      ConditionTierMint,
	ConditionNearMint:  ConditionTierNearMint,
	ConditionExcellent: ConditionTierExcellent,
	ConditionVeryGood:  ConditionTierVeryGood,
	ConditionGood:      ConditionTierGood,
	ConditionFair:      ConditionTierFair,
	ConditionPoor:      ConditionTierPoor,
}

// ClassifyCondition maps a condition to its badge tier. Unknown values get
// the neutral tier.
func ClassifyCondition(condition Condition) ConditionTier {
	if tier, ok := conditionTiers[condition]; ok {
		return tier
	}
	return ConditionTierNeutral
}

// CSSClass returns the badge classes the card table uses
func (t ConditionTier) CSSClass() string {
	if t == ConditionTierNeutral || t == "" {
		return "condition-badge " + neutralBadgeClass
	}
	return "condition-badge condition-" + string(t)
}

// VariantTier groups card variants for badge styling
type VariantTier string

const (
	VariantTierBase         VariantTier = "base"
	VariantTierRookie       VariantTier = "rookie"
	VariantTierRefractor    VariantTier = "refractor"
	VariantTierPrizm        VariantTier = "prizm"
	VariantTierPrizmSpecial VariantTier = "prizm-special"
	VariantTierAutograph    VariantTier = "autograph"
	VariantTierMemorabilia  VariantTier = "memorabilia"
	VariantTierRare         VariantTier = "rare"
	VariantTierNumbered     VariantTier = "numbered"
	VariantTierNeutral      VariantTier = "neutral"
)

var variantTiers = map[string]VariantTier{
	VariantBase:                  VariantTierBase,
	VariantRookie:                VariantTierRookie,
	VariantRefractor:             VariantTierRefractor,
	VariantPrizm:                 VariantTierPrizm,
	VariantSilverPrizm:           VariantTierPrizm,
	VariantGoldPrizm:             VariantTierPrizmSpecial,
	VariantRainbowPrizm:          VariantTierPrizmSpecial,
	VariantAutograph:             VariantTierAutograph,
	VariantRookieTicketAutograph: VariantTierAutograph,
	VariantJersey:                VariantTierMemorabilia,
	VariantPatch:                 VariantTierMemorabilia,
	VariantOneOfOne:              VariantTierRare,
	VariantSerialNumbered:        VariantTierNumbered,
}

// ClassifyVariant maps a variant name to its badge tier. Unknown variants
// get the neutral tier.
func ClassifyVariant(variant string) VariantTier {
	if tier, ok := variantTiers[variant]; ok {
		return tier
	}
	return VariantTierNeutral
}

// KnownVariants returns the variant names that have a dedicated tier
func KnownVariants() []string {
	return []string{
		VariantBase,
		VariantRookie,
		VariantRefractor,
		VariantPrizm,
		VariantSilverPrizm,
		VariantGoldPrizm,
		VariantRainbowPrizm,
		VariantAutograph,
		VariantRookieTicketAutograph,
		VariantJersey,
		VariantPatch,
		VariantOneOfOne,
		VariantSerialNumbered,
	}
}

func (t VariantTier) CSSClass() string {
	if t == VariantTierNeutral || t == "" {
		return "variant-badge " + neutralBadgeClass
	}
	return "variant-badge variant-" + string(t)
}

// GradeTier buckets a numeric grade for badge styling
type GradeTier string

const (
	GradeTierGemMint      GradeTier = "gem-mint"
	GradeTierMintPlus     GradeTier = "mint-plus"
	GradeTierMint         GradeTier = "mint"
	GradeTierNearMintPlus GradeTier = "near-mint-plus"
	GradeTierNearMint     GradeTier = "near-mint"
	GradeTierGood         GradeTier = "good"
	GradeTierPoor         GradeTier = "poor"
)

// gradeThresholds is ordered highest first; each minimum is inclusive
var gradeThresholds = []struct {
	min  float64
	tier GradeTier
}{
	{10, GradeTierGemMint},
	{9.5, GradeTierMintPlus},
	{9, GradeTierMint},
	{8.5, GradeTierNearMintPlus},
	{8, GradeTierNearMint},
	{7, GradeTierGood},
}

// ClassifyGrade buckets a grade string. Non-numeric grades such as "N/A"
// and "A" land in the lowest tier. Only plain decimal notation counts as
// numeric; "inf", "NaN" and hex floats are non-numeric.
func ClassifyGrade(grade string) GradeTier {
	grade = strings.TrimSpace(grade)
	if !isDecimalNumber(grade) {
		return GradeTierPoor
	}
	value, err := strconv.ParseFloat(grade, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return GradeTierPoor
	}
	for _, threshold := range gradeThresholds {
		if value >= threshold.min {
			return threshold.tier
		}
	}
	return GradeTierPoor
}

// isDecimalNumber reports whether s uses only sign, digits, a decimal point
// and an exponent. ParseFloat still validates the arrangement.
func isDecimalNumber(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == '+' || r == '-' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return hasDigit
}

func (t GradeTier) CSSClass() string {
	if t == "" {
		return "grade-badge " + neutralBadgeClass
	}
	return "grade-badge grade-" + string(t)
}

// CardBadges is the full visual classification of one card
type CardBadges struct {
	Condition    ConditionTier `json:"condition_tier"`
	Variant      VariantTier   `json:"variant_tier"`
	Grade        GradeTier     `json:"grade_tier"`
	GradeOptions []GradeOption `json:"grade_options"`
}

func ClassifyCard(card Card) CardBadges {
	return CardBadges{
		Condition:    ClassifyCondition(card.Condition),
		Variant:      ClassifyVariant(card.CardVariant),
		Grade:        ClassifyGrade(card.Grade),
		GradeOptions: GradeOptionsFor(card.GradingService),
	}
}
