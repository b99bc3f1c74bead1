package services

import (
	"net/url"
	"strings"

	"github.com/whauf/sportscard-tracker/internal/models"
)

// AllValue is the sentinel a filter field carries when it places no constraint
const AllValue = "all"

// Criteria is the set of optional filter constraints. An empty field or the
// "all" sentinel means no constraint on that field.
type Criteria struct {
	PlayerName     string `json:"player_name,omitempty" form:"player_name"`
	Sport          string `json:"sport,omitempty" form:"sport"`
	CardVariant    string `json:"card_variant,omitempty" form:"card_variant"`
	GradingService string `json:"grading_service,omitempty" form:"grading_service"`
	Grade          string `json:"grade,omitempty" form:"grade"`
}

// CriteriaFromQuery reads the search query parameters used by
// GET /api/cards/search
func CriteriaFromQuery(values url.Values) Criteria {
	return Criteria{
		PlayerName:     values.Get("player_name"),
		Sport:          values.Get("sport"),
		CardVariant:    values.Get("card_variant"),
		GradingService: values.Get("grading_service"),
		Grade:          values.Get("grade"),
	}
}

// criteriaParams are the query parameter names CriteriaFromQuery reads
var criteriaParams = []string{"player_name", "sport", "card_variant", "grading_service", "grade"}

// HasCriteriaParams reports whether values carries a non-blank value for any
// criteria parameter. Unrelated or empty parameters do not count.
func HasCriteriaParams(values url.Values) bool {
	for _, key := range criteriaParams {
		if strings.TrimSpace(values.Get(key)) != "" {
			return true
		}
	}
	return false
}

// Query renders the active constraints as query parameters. Unconstrained
// fields are omitted.
func (c Criteria) Query() url.Values {
	n := c.Normalize()
	values := url.Values{}
	for _, p := range []struct{ key, value string }{
		{"player_name", n.PlayerName},
		{"sport", n.Sport},
		{"card_variant", n.CardVariant},
		{"grading_service", n.GradingService},
		{"grade", n.Grade},
	} {
		if p.value != "" {
			values.Set(p.key, p.value)
		}
	}
	return values
}

// Normalize trims whitespace and folds the "all" sentinel to empty
func (c Criteria) Normalize() Criteria {
	return Criteria{
		PlayerName:     normalizeConstraint(c.PlayerName),
		Sport:          normalizeConstraint(c.Sport),
		CardVariant:    normalizeConstraint(c.CardVariant),
		GradingService: normalizeConstraint(c.GradingService),
		Grade:          normalizeConstraint(c.Grade),
	}
}

func normalizeConstraint(value string) string {
	value = strings.TrimSpace(value)
	if value == AllValue {
		return ""
	}
	return value
}

// IsEmpty reports whether the criteria constrain nothing
func (c Criteria) IsEmpty() bool {
	return c.Normalize() == Criteria{}
}

// Matches reports whether a card satisfies every active constraint
func (c Criteria) Matches(card models.Card) bool {
	return c.Normalize().matches(card)
}

// matches expects normalized criteria. Player name is a case-sensitive
// substring test; every other field is exact string equality, including
// grade ("9" does not match "9.0").
func (c Criteria) matches(card models.Card) bool {
	if c.PlayerName != "" && !strings.Contains(card.PlayerName, c.PlayerName) {
		return false
	}
	if c.Sport != "" && card.Sport != c.Sport {
		return false
	}
	if c.CardVariant != "" && card.CardVariant != c.CardVariant {
		return false
	}
	if c.GradingService != "" && card.GradingService != c.GradingService {
		return false
	}
	if c.Grade != "" && card.Grade != c.Grade {
		return false
	}
	return true
}

// FilterCards returns the cards matching every active constraint, in input
// order. With no active constraint the input slice itself is returned.
// Neither the slice nor its cards are modified.
func FilterCards(cards []models.Card, criteria Criteria) []models.Card {
	c := criteria.Normalize()
	if c == (Criteria{}) {
		return cards
	}

	filtered := make([]models.Card, 0, len(cards))
	for i := range cards {
		if c.matches(cards[i]) {
			filtered = append(filtered, cards[i])
		}
	}
	return filtered
}

// AppState is the presentation shell's snapshot: the last card list fetched
// from the backend and the criteria currently applied to it.
type AppState struct {
	Cards    []models.Card `json:"cards"`
	Criteria Criteria      `json:"criteria"`
}

// Filtered evaluates the state's criteria against its cards
func (s AppState) Filtered() []models.Card {
	return FilterCards(s.Cards, s.Criteria)
}
