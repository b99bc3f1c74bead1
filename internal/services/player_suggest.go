package services

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/whauf/sportscard-tracker/internal/models"
)

const defaultSuggestionLimit = 5

// SuggestPlayers offers close player names from the snapshot for a query
// that matched nothing. It never influences FilterCards results.
func SuggestPlayers(cards []models.Card, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || query == AllValue || len(cards) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	seen := make(map[string]struct{}, len(cards))
	names := make([]string, 0, len(cards))
	for i := range cards {
		name := cards[i].PlayerName
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	// fuzzy.Find returns matches best score first
	matches := fuzzy.Find(query, names)
	suggestions := make([]string, 0, min(limit, len(matches)))
	for _, match := range matches {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}
