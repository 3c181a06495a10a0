// Package taxonomy maps the upstream service's free-text category names
// and origin strings onto the dashboard's closed enums.
package taxonomy

import (
	"strings"

	"github.com/mgdov/eco-place/internal/model"
)

// FallbackCategoryName substitutes for a task with no categories at all.
// It classifies to PollutionOther.
const FallbackCategoryName = "Другое ❓"

type rule struct {
	tokens []string
	result model.PollutionType
}

// Rules are evaluated top to bottom and the first match wins. The order
// is load-bearing: category names routinely contain more than one
// matching substring ("Бытовой мусор" matches both "бытов" and "мусор").
var pollutionRules = []rule{
	{[]string{"биомусор", "тюлен", "медуз"}, model.PollutionBioWaste},
	{[]string{"пластик"}, model.PollutionPlastic},
	{[]string{"стекло"}, model.PollutionGlass},
	{[]string{"нефт", "мазут"}, model.PollutionOil},
	{[]string{"бытов", "мусор"}, model.PollutionHumanTrash},
	{[]string{"водоросл"}, model.PollutionSeaweed},
}

// PollutionTypeFor classifies a category name. Total: unmatched input
// resolves to PollutionOther so the UI never sees an undefined type.
func PollutionTypeFor(categoryName string) model.PollutionType {
	name := strings.ToLower(categoryName)
	for _, r := range pollutionRules {
		for _, tok := range r.tokens {
			if strings.Contains(name, tok) {
				return r.result
			}
		}
	}
	return model.PollutionOther
}

var (
	telegramTokens = []string{"telegram", "телеграм", "bot", "бот"}
	mobileTokens   = []string{"mobile", "мобил", "app", "прилож"}
)

// SourceFor classifies a task's free-text origin. An absent or
// unrecognized origin defaults to the mobile app; that is the safe
// answer, not an error.
func SourceFor(origin string) model.ReportSource {
	if origin == "" {
		return model.SourceMobileApp
	}
	text := strings.ToLower(origin)
	for _, tok := range telegramTokens {
		if strings.Contains(text, tok) {
			return model.SourceTelegramBot
		}
	}
	for _, tok := range mobileTokens {
		if strings.Contains(text, tok) {
			return model.SourceMobileApp
		}
	}
	return model.SourceMobileApp
}
