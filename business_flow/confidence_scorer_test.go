package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/utils"
)

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name          string
		specialDay    models.SpecialDay
		storeCategory string
		mlConfidence  *float64
		expected      float64
	}{
		{
			name:          "weak signal clamps to floor",
			specialDay:    models.SpecialDay{Name: "알 수 없는 날", Type: "기타"},
			storeCategory: "베이커리",
			mlConfidence:  utils.ToPtr(10.0),
			// 0.10 * 0.7 * 0.7 * 1.0 = 0.049
			expected: ConfidenceFloor,
		},
		{
			name:          "boosted perfect score clamps to ceiling",
			specialDay:    models.SpecialDay{Name: "초복 치킨 데이", Type: "기념일"},
			storeCategory: "치킨",
			mlConfidence:  utils.ToPtr(100.0),
			// 1.0 * 1.0 * 1.0 * 1.10 = 1.10
			expected: ConfidenceCeil,
		},
		{
			name:          "food day with matching store scores raw",
			specialDay:    models.SpecialDay{Name: "치킨데이", Type: "기념일"},
			storeCategory: "치킨",
			mlConfidence:  utils.ToPtr(90.0),
			// 0.90 * 1.0 * 1.0 * 1.0
			expected: 0.90,
		},
		{
			name:          "nil ml score falls back to default",
			specialDay:    models.SpecialDay{Name: "동지", Type: "절기"},
			storeCategory: "한식",
			mlConfidence:  nil,
			// 0.85 * 0.9 * 0.8 * 1.10
			expected: 0.6732,
		},
		{
			name:          "holiday type for unrelated store",
			specialDay:    models.SpecialDay{Name: "설날 연휴", Type: "공휴일"},
			storeCategory: "피자",
			mlConfidence:  utils.ToPtr(85.0),
			// 0.85 * 0.95 * 0.75 * 1.0
			expected: 0.6055625,
		},
		{
			name:          "christmas boosts cafes",
			specialDay:    models.SpecialDay{Name: "크리스마스", Type: "공휴일"},
			storeCategory: "카페",
			mlConfidence:  utils.ToPtr(80.0),
			// 0.80 * 0.95 * 0.8 * 1.15 = 0.6992
			expected: 0.6992,
		},
		{
			name:          "unknown store category uses default weight",
			specialDay:    models.SpecialDay{Name: "추석", Type: "명절"},
			storeCategory: "",
			mlConfidence:  utils.ToPtr(85.0),
			// 0.85 * 0.95 * 0.7 * 1.0
			expected: 0.565250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreConfidence(tt.specialDay, tt.storeCategory, tt.mlConfidence)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, ConfidenceFloor)
			assert.LessOrEqual(t, got, ConfidenceCeil)
		})
	}
}

func TestScoreConfidenceFoodDayOverridesTypeWeight(t *testing.T) {
	// A food-themed name must win over a seasonal type label: 삼계탕 days are
	// labeled 절기 by the feed but score with full type weight.
	foodDay := models.SpecialDay{Name: "초복 삼계탕", Type: "절기"}
	seasonDay := models.SpecialDay{Name: "춘분", Type: "절기"}

	assert.InDelta(t, 1.0, typeWeight(foodDay), 1e-9)
	assert.InDelta(t, 0.9, typeWeight(seasonDay), 1e-9)
}

func TestTypeWeight(t *testing.T) {
	tests := []struct {
		name     string
		dayType  string
		expected float64
	}{
		{name: "seasonal term", dayType: "절기", expected: 0.9},
		{name: "english season", dayType: "season", expected: 0.9},
		{name: "public holiday", dayType: "공휴일", expected: 0.95},
		{name: "traditional festival", dayType: "명절", expected: 0.95},
		{name: "national day", dayType: "국경일", expected: 0.95},
		{name: "anniversary", dayType: "기념일", expected: 0.8},
		{name: "english anniversary", dayType: "Anniversary", expected: 0.8},
		{name: "unrecognized type", dayType: "기타", expected: 0.7},
		{name: "empty type", dayType: "", expected: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := models.SpecialDay{Name: "무난한 날", Type: tt.dayType}
			assert.InDelta(t, tt.expected, typeWeight(day), 1e-9)
		})
	}
}

func TestCategoryWeight(t *testing.T) {
	tests := []struct {
		name          string
		dayName       string
		storeCategory string
		expected      float64
	}{
		{name: "korean store on boknal", dayName: "초복", storeCategory: "한식", expected: 1.0},
		{name: "korean store on makgeolli day", dayName: "막걸리의 날", storeCategory: "한식", expected: 0.9},
		{name: "korean store baseline", dayName: "발렌타인데이", storeCategory: "한식", expected: 0.8},
		{name: "chicken store on chicken day", dayName: "치킨데이", storeCategory: "치킨", expected: 1.0},
		{name: "chicken store on world cup", dayName: "월드컵 개막", storeCategory: "치킨", expected: 0.95},
		{name: "pizza store on children's day", dayName: "어린이날", storeCategory: "피자", expected: 0.9},
		{name: "pizza store baseline", dayName: "한글날", storeCategory: "피자", expected: 0.75},
		{name: "cafe on pepero day", dayName: "빼빼로데이", storeCategory: "카페", expected: 0.95},
		{name: "cafe alias matches", dayName: "커피의 날", storeCategory: "coffee shop", expected: 1.0},
		{name: "unknown store", dayName: "초복", storeCategory: "정육점", expected: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, categoryWeight(tt.dayName, tt.storeCategory), 1e-9)
		})
	}
}

func TestSeasonalWeight(t *testing.T) {
	tests := []struct {
		name          string
		dayName       string
		storeCategory string
		expected      float64
	}{
		{name: "christmas cafe", dayName: "크리스마스 이브", storeCategory: "카페", expected: 1.15},
		{name: "christmas chicken store unaffected", dayName: "크리스마스", storeCategory: "치킨", expected: 1.0},
		{name: "summer boknal chicken", dayName: "중복", storeCategory: "치킨", expected: 1.10},
		{name: "summer cafe", dayName: "폭염주의", storeCategory: "카페", expected: 1.10},
		{name: "winter korean", dayName: "동지", storeCategory: "한식", expected: 1.10},
		{name: "winter cafe unaffected", dayName: "동지", storeCategory: "카페", expected: 1.0},
		{name: "no seasonal term", dayName: "한글날", storeCategory: "한식", expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, seasonalWeight(tt.dayName, tt.storeCategory), 1e-9)
		})
	}
}

func TestNormalizeStoreCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "korean label", input: "한식", expected: models.StoreCategoryKorean},
		{name: "korean alias in longer label", input: "Korean BBQ", expected: models.StoreCategoryKorean},
		{name: "chicken", input: "치킨", expected: models.StoreCategoryChicken},
		{name: "cafe english uppercase", input: "CAFE", expected: models.StoreCategoryCafe},
		{name: "coffee alias", input: "coffee", expected: models.StoreCategoryCafe},
		{name: "pizza", input: "pizza", expected: models.StoreCategoryPizza},
		{name: "unrecognized", input: "베이커리", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStoreCategory(tt.input))
		})
	}
}
