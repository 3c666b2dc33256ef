// Package businessflow contains the core business logic for the marketing
// opportunity engine.
package businessflow

import (
	"strings"

	"github.com/voyzlab/voyz-marketing/models"
)

// Confidence bounds. The ceiling keeps a perfect ML score from reading as
// certainty; the floor keeps weak signals visible instead of disappearing
// from the calendar (they are de-prioritized via Priority instead).
const (
	ConfidenceFloor = 0.30
	ConfidenceCeil  = 0.95

	// defaultMLConfidence is assumed when the ML service returned no score
	// (0-100 scale).
	defaultMLConfidence = 85.0
)

// keywordRule pairs a keyword set with the weight applied on first match.
// Rules are evaluated in slice order; the first rule whose keywords hit wins.
type keywordRule struct {
	keywords []string
	weight   float64
}

// Food-themed promotion days ("chicken day", samgyetang on boknal, ...).
// Checked against the special day NAME before any type-based rule: a food day
// often also carries a seasonal type string and must not fall into the
// broader season bucket.
var foodDayNameKeywords = []string{
	"치킨", "삼계탕", "피자", "삼겹살", "빼빼로", "한우", "막걸리", "떡볶이", "커피",
	"chicken", "pizza", "samgyetang", "coffee",
}

// typeWeightRules map the special day TYPE label to a weight. Evaluated in
// order after the food-day name check.
var typeWeightRules = []keywordRule{
	{keywords: []string{"절기", "계절", "환절기", "season", "equinox"}, weight: 0.9},
	{keywords: []string{"공휴일", "명절", "국경일", "holiday", "festival"}, weight: 0.95},
	{keywords: []string{"기념일", "anniversary", "commemor"}, weight: 0.8},
}

const defaultTypeWeight = 0.7

// storeProfile holds the per-store-category weighting of special day names.
type storeProfile struct {
	category string
	aliases  []string
	rules    []keywordRule
	baseline float64
}

var storeProfiles = []storeProfile{
	{
		category: models.StoreCategoryKorean,
		aliases:  []string{"한식", "korean"},
		rules: []keywordRule{
			{keywords: []string{"삼계탕", "복날", "초복", "중복", "말복", "설날", "추석", "김장", "한식"}, weight: 1.0},
			{keywords: []string{"막걸리", "김치", "전통"}, weight: 0.9},
		},
		baseline: 0.8,
	},
	{
		category: models.StoreCategoryChicken,
		aliases:  []string{"치킨", "chicken"},
		rules: []keywordRule{
			{keywords: []string{"치킨", "chicken"}, weight: 1.0},
			{keywords: []string{"맥주", "월드컵", "축구", "경기"}, weight: 0.95},
		},
		baseline: 0.8,
	},
	{
		category: models.StoreCategoryPizza,
		aliases:  []string{"피자", "pizza"},
		rules: []keywordRule{
			{keywords: []string{"피자", "pizza"}, weight: 1.0},
			{keywords: []string{"파티", "party", "어린이날"}, weight: 0.9},
		},
		baseline: 0.75,
	},
	{
		category: models.StoreCategoryCafe,
		aliases:  []string{"카페", "cafe", "café", "coffee"},
		rules: []keywordRule{
			{keywords: []string{"커피", "카페", "coffee"}, weight: 1.0},
			{keywords: []string{"디저트", "발렌타인", "빼빼로", "초콜릿"}, weight: 0.95},
		},
		baseline: 0.8,
	},
}

const defaultCategoryWeight = 0.7

// seasonalBoost pairs season-themed day names with the store categories that
// benefit from them.
type seasonalBoost struct {
	nameKeywords []string
	stores       []string
	factor       float64
}

var seasonalBoosts = []seasonalBoost{
	{
		nameKeywords: []string{"크리스마스", "성탄", "christmas"},
		stores:       []string{models.StoreCategoryCafe},
		factor:       1.15,
	},
	{
		nameKeywords: []string{"여름", "초복", "중복", "말복", "삼복", "폭염", "summer"},
		stores:       []string{models.StoreCategoryCafe, models.StoreCategoryChicken},
		factor:       1.10,
	},
	{
		nameKeywords: []string{"겨울", "동지", "한파", "winter"},
		stores:       []string{models.StoreCategoryKorean},
		factor:       1.10,
	},
}

// ScoreConfidence computes the final confidence for a special-day suggestion
// from the raw ML score and the day/store weighting model. Pure and total:
// every input yields a value in [ConfidenceFloor, ConfidenceCeil].
func ScoreConfidence(specialDay models.SpecialDay, storeCategory string, mlConfidence *float64) float64 {
	raw := defaultMLConfidence
	if mlConfidence != nil {
		raw = *mlConfidence
	}
	base := raw / 100

	score := base *
		typeWeight(specialDay) *
		categoryWeight(specialDay.Name, storeCategory) *
		seasonalWeight(specialDay.Name, storeCategory)

	return clampConfidence(score)
}

func typeWeight(specialDay models.SpecialDay) float64 {
	if containsAnyFold(specialDay.Name, foodDayNameKeywords) {
		return 1.0
	}
	for _, rule := range typeWeightRules {
		if containsAnyFold(specialDay.Type, rule.keywords) {
			return rule.weight
		}
	}
	return defaultTypeWeight
}

func categoryWeight(dayName, storeCategory string) float64 {
	profile := profileFor(storeCategory)
	if profile == nil {
		return defaultCategoryWeight
	}
	for _, rule := range profile.rules {
		if containsAnyFold(dayName, rule.keywords) {
			return rule.weight
		}
	}
	return profile.baseline
}

func seasonalWeight(dayName, storeCategory string) float64 {
	normalized := NormalizeStoreCategory(storeCategory)
	for _, boost := range seasonalBoosts {
		if !containsAnyFold(dayName, boost.nameKeywords) {
			continue
		}
		for _, store := range boost.stores {
			if store == normalized {
				return boost.factor
			}
		}
	}
	return 1.0
}

// NormalizeStoreCategory maps a merchant's free-form store category label to
// a canonical category constant, or "" when unrecognized.
func NormalizeStoreCategory(storeCategory string) string {
	for _, profile := range storeProfiles {
		if containsAnyFold(storeCategory, profile.aliases) {
			return profile.category
		}
	}
	return ""
}

func profileFor(storeCategory string) *storeProfile {
	normalized := NormalizeStoreCategory(storeCategory)
	for i := range storeProfiles {
		if storeProfiles[i].category == normalized {
			return &storeProfiles[i]
		}
	}
	return nil
}

func clampConfidence(v float64) float64 {
	if v < ConfidenceFloor {
		return ConfidenceFloor
	}
	if v > ConfidenceCeil {
		return ConfidenceCeil
	}
	return v
}

func containsAnyFold(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	lowered := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
