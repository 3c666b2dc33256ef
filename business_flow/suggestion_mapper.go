package businessflow

import (
	"fmt"

	"github.com/voyzlab/voyz-marketing/models"
)

// Confidence assigned to special days that carry no ML suggestion: worth
// showing, but clearly below anything the model actually scored.
const noSuggestionConfidence = 0.60

// categoryRule maps keywords found in the special day's type (or the feed's
// category field) to a marketing category. First match wins.
type categoryRule struct {
	keywords []string
	category models.MarketingCategory
}

// Type-label rules, checked first. Ordering matters: the holiday check must
// precede the anniversary check because the feed labels national holidays
// with both terms.
var specialDayTypeRules = []categoryRule{
	{keywords: []string{"공휴일", "holiday"}, category: models.CategoryHoliday},
	{keywords: []string{"절기", "season", "계절"}, category: models.CategorySeason},
	{keywords: []string{"기념일", "특별"}, category: models.CategorySpecialDay},
	{keywords: []string{"이벤트", "event"}, category: models.CategoryEvent},
}

// Fallback rules against the feed's optional category field.
var specialDayCategoryRules = []categoryRule{
	{keywords: []string{"날씨", "weather"}, category: models.CategoryWeather},
	{keywords: []string{"대학", "university"}, category: models.CategoryUniversity},
}

// targetCustomerRules derive a target-customer template from the special day
// type when the suggestion does not name one.
var targetCustomerRules = []struct {
	keywords []string
	target   string
}{
	{keywords: []string{"공휴일"}, target: "가족 단위 고객"},
	{keywords: []string{"절기", "계절"}, target: "건강 관심층"},
	{keywords: []string{"기념일"}, target: "커플, 가족"},
	{keywords: []string{"이벤트"}, target: "젊은층, 이벤트 참여층"},
}

const defaultTargetCustomer = "일반 고객"

// MapDaySuggestion converts a special day (with or without an attached ML
// suggestion) into an opportunity template. Pure; never fails.
func MapDaySuggestion(day models.DaySuggestion, storeCategory string) OpportunityTemplate {
	if day.HasSuggestion() {
		return mapWithSuggestion(day.SpecialDay, *day.Suggestion, storeCategory)
	}
	return mapWithoutSuggestion(day.SpecialDay)
}

func mapWithSuggestion(specialDay models.SpecialDay, suggestion models.SpecialDaySuggestion, storeCategory string) OpportunityTemplate {
	return OpportunityTemplate{
		Title:          suggestion.Title,
		Description:    suggestion.Content,
		TargetCustomer: firstNonEmpty(suggestion.TargetCustomer, specialDayTargetCustomer(specialDay.Type)),
		SuggestedAction: firstNonEmpty(suggestion.SuggestedAction,
			fmt.Sprintf("• %s 활용한 마케팅\n• 특별 메뉴 출시\n• 테마 이벤트 진행", specialDay.Name)),
		ExpectedEffect: firstNonEmpty(suggestion.ExpectedEffect,
			fmt.Sprintf("%s 관련 매출 증대", specialDay.Name)),
		Category:   specialDayCategory(specialDay.Type, specialDay.Category),
		Confidence: ScoreConfidence(specialDay, storeCategory, suggestion.Confidence),
		Priority:   models.PriorityMedium,
		DataSource: models.DataSourceSpecialCalendar,
	}
}

func mapWithoutSuggestion(specialDay models.SpecialDay) OpportunityTemplate {
	description := fmt.Sprintf("%s입니다. 이 날을 활용한 마케팅을 고려해보세요.", specialDay.Name)
	if specialDay.Content != nil && *specialDay.Content != "" {
		description = *specialDay.Content
	}

	return OpportunityTemplate{
		Title:           specialDay.Name,
		Description:     description,
		TargetCustomer:  defaultTargetCustomer,
		SuggestedAction: "• 특별한 날 홍보\n• 관련 테마 활용\n• 고객 관심 유도",
		ExpectedEffect:  "브랜드 인지도 향상",
		Category:        specialDayCategory(specialDay.Type, specialDay.Category),
		Confidence:      noSuggestionConfidence,
		Priority:        models.PriorityLow,
		DataSource:      models.DataSourceSpecialCalendar,
	}
}

// specialDayCategory infers the marketing category from the feed's type
// label, falling back to its optional category field, then SPECIAL_DAY.
func specialDayCategory(dayType string, feedCategory *string) models.MarketingCategory {
	for _, rule := range specialDayTypeRules {
		if containsAnyFold(dayType, rule.keywords) {
			return rule.category
		}
	}
	if feedCategory != nil {
		for _, rule := range specialDayCategoryRules {
			if containsAnyFold(*feedCategory, rule.keywords) {
				return rule.category
			}
		}
	}
	return models.CategorySpecialDay
}

func specialDayTargetCustomer(dayType string) string {
	for _, rule := range targetCustomerRules {
		if containsAnyFold(dayType, rule.keywords) {
			return rule.target
		}
	}
	return defaultTargetCustomer
}

func firstNonEmpty(preferred *string, fallback string) string {
	if preferred != nil && *preferred != "" {
		return *preferred
	}
	return fallback
}
