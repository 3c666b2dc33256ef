package models

import (
	"time"

	"github.com/lib/pq"
)

// SpecialDay is a system-known calendar date of interest (holiday, seasonal
// turn, themed day), collected from the public special-day feed. Type and
// Category carry the feed's natural-language labels; FoodCategories is the
// ML classifier's output (store categories this day is relevant to).
type SpecialDay struct {
	ID             uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string         `json:"name" gorm:"not null;size:200"`
	Type           string         `json:"type" gorm:"not null;size:100"`
	Category       *string        `json:"category,omitempty" gorm:"size:100"`
	Content        *string        `json:"content,omitempty" gorm:"type:text"`
	StartDate      time.Time      `json:"start_date" gorm:"type:date;not null;index"`
	EndDate        time.Time      `json:"end_date" gorm:"type:date;not null"`
	IsHoliday      bool           `json:"is_holiday" gorm:"not null;default:false"`
	FoodCategories pq.StringArray `json:"food_categories,omitempty" gorm:"type:text[]"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for SpecialDay
func (SpecialDay) TableName() string {
	return "special_days"
}

// SpecialDaySuggestion is an ML-generated marketing recommendation attached
// to a special day. At most one per special day per merchant.
type SpecialDaySuggestion struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SpecialDayID uint      `json:"special_day_id" gorm:"not null;index"`
	MerchantID   uint      `json:"merchant_id" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null;size:200"`
	Content      string    `json:"content" gorm:"not null;type:text"`
	StartDate    time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate      time.Time `json:"end_date" gorm:"type:date;not null"`
	// Confidence is the raw ML score on a 0-100 scale; nil when the model
	// produced no score.
	Confidence      *float64 `json:"confidence,omitempty"`
	TargetCustomer  *string  `json:"target_customer,omitempty" gorm:"size:200"`
	SuggestedAction *string  `json:"suggested_action,omitempty" gorm:"type:text"`
	ExpectedEffect  *string  `json:"expected_effect,omitempty" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	SpecialDay *SpecialDay `json:"special_day,omitempty" gorm:"foreignKey:SpecialDayID"`
}

// TableName returns the table name for SpecialDaySuggestion
func (SpecialDaySuggestion) TableName() string {
	return "special_day_suggestions"
}

// DaySuggestion pairs a special day with its optional suggestion. The two
// cases are explicit so every consumer handles both.
type DaySuggestion struct {
	SpecialDay SpecialDay            `json:"special_day"`
	Suggestion *SpecialDaySuggestion `json:"suggestion,omitempty"`
}

// HasSuggestion reports whether an ML suggestion is attached
func (d DaySuggestion) HasSuggestion() bool {
	return d.Suggestion != nil
}

// SpecialDayFilter represents filters for special day queries
type SpecialDayFilter struct {
	ID           *uint
	Name         *string
	Type         *string
	IsHoliday    *bool
	OverlapsFrom *time.Time
	OverlapsTo   *time.Time
}

// SpecialDaySuggestionFilter represents filters for suggestion queries
type SpecialDaySuggestionFilter struct {
	ID           *uint
	SpecialDayID *uint
	MerchantID   *uint
}
