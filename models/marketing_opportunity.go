package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// MarketingCategory classifies what kind of calendar signal produced an opportunity
type MarketingCategory string

const (
	CategoryWeather    MarketingCategory = "WEATHER"
	CategoryUniversity MarketingCategory = "UNIVERSITY"
	CategorySpecialDay MarketingCategory = "SPECIAL_DAY"
	CategorySeason     MarketingCategory = "SEASON"
	CategoryEvent      MarketingCategory = "EVENT"
	CategoryHoliday    MarketingCategory = "HOLIDAY"
)

// String returns the string representation of the category
func (c MarketingCategory) String() string {
	return string(c)
}

// Valid checks if the category is valid
func (c MarketingCategory) Valid() bool {
	switch c {
	case CategoryWeather, CategoryUniversity, CategorySpecialDay,
		CategorySeason, CategoryEvent, CategoryHoliday:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for MarketingCategory
func (c *MarketingCategory) Scan(value any) error {
	if value == nil {
		*c = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*c = MarketingCategory(v)
	case []byte:
		*c = MarketingCategory(string(v))
	default:
		return fmt.Errorf("cannot scan %T into MarketingCategory", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for MarketingCategory
func (c MarketingCategory) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid MarketingCategory: %s", c)
	}
	return string(c), nil
}

// OpportunityPriority is the coarse urgency bucket, distinct from confidence
type OpportunityPriority string

const (
	PriorityHigh   OpportunityPriority = "HIGH"
	PriorityMedium OpportunityPriority = "MEDIUM"
	PriorityLow    OpportunityPriority = "LOW"
)

// String returns the string representation of the priority
func (p OpportunityPriority) String() string {
	return string(p)
}

// Valid checks if the priority is valid
func (p OpportunityPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for OpportunityPriority
func (p *OpportunityPriority) Scan(value any) error {
	if value == nil {
		*p = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*p = OpportunityPriority(v)
	case []byte:
		*p = OpportunityPriority(string(v))
	default:
		return fmt.Errorf("cannot scan %T into OpportunityPriority", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for OpportunityPriority
func (p OpportunityPriority) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid OpportunityPriority: %s", p)
	}
	return string(p), nil
}

// OpportunityDataSource tags where the underlying signal came from; informational only
type OpportunityDataSource string

const (
	DataSourceWeatherAPI         OpportunityDataSource = "WEATHER_API"
	DataSourceUniversitySchedule OpportunityDataSource = "UNIVERSITY_SCHEDULE"
	DataSourceSpecialCalendar    OpportunityDataSource = "SPECIAL_CALENDAR"
	DataSourceGovernmentData     OpportunityDataSource = "GOVERNMENT_DATA"
	DataSourceSocialTrend        OpportunityDataSource = "SOCIAL_TREND"
)

// String returns the string representation of the data source
func (s OpportunityDataSource) String() string {
	return string(s)
}

// Valid checks if the data source is valid
func (s OpportunityDataSource) Valid() bool {
	switch s {
	case DataSourceWeatherAPI, DataSourceUniversitySchedule, DataSourceSpecialCalendar,
		DataSourceGovernmentData, DataSourceSocialTrend:
		return true
	default:
		return false
	}
}

// MarketingOpportunity is one actionable calendar entry for a single day.
// Instances are produced by the aggregation engine and never mutated afterwards.
type MarketingOpportunity struct {
	ID              string                `json:"id"`
	Date            time.Time             `json:"date"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	TargetCustomer  string                `json:"target_customer"`
	SuggestedAction string                `json:"suggested_action"`
	ExpectedEffect  string                `json:"expected_effect"`
	Category        MarketingCategory     `json:"category"`
	Confidence      float64               `json:"confidence"`
	Priority        OpportunityPriority   `json:"priority"`
	DataSource      OpportunityDataSource `json:"data_source"`
}

// DailyOpportunities groups all opportunities that fall on one calendar day.
// Insertion order is reminders first, then suggestions.
type DailyOpportunities struct {
	Date          time.Time              `json:"date"`
	Opportunities []MarketingOpportunity `json:"opportunities"`
}

// HasHighPriority reports whether any opportunity of the day is HIGH priority
func (d DailyOpportunities) HasHighPriority() bool {
	for _, o := range d.Opportunities {
		if o.Priority == PriorityHigh {
			return true
		}
	}
	return false
}

// TotalCount returns the number of opportunities on this day
func (d DailyOpportunities) TotalCount() int {
	return len(d.Opportunities)
}
