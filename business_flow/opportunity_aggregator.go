package businessflow

import (
	"fmt"
	"sort"
	"time"

	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/utils"
)

// OpportunityTemplate is a mapped input record before date-range expansion:
// everything of a MarketingOpportunity except its per-instance id and date.
type OpportunityTemplate struct {
	Title           string
	Description     string
	TargetCustomer  string
	SuggestedAction string
	ExpectedEffect  string
	Category        models.MarketingCategory
	Confidence      float64
	Priority        models.OpportunityPriority
	DataSource      models.OpportunityDataSource
}

// AggregationInput carries both event sources plus the merchant's store
// category. The store category is threaded explicitly; the engine performs
// no ambient lookups.
type AggregationInput struct {
	Reminders     []models.Reminder
	Suggestions   []models.DaySuggestion
	StoreCategory string
}

// AggregationStats reports what a single aggregation pass did. The engine
// itself keeps no counters; callers log and export these.
type AggregationStats struct {
	ReminderInstances   int
	SuggestionInstances int
	// InvalidRanges counts input records whose end date preceded their start
	// date. Such records expand to zero days and are otherwise ignored.
	InvalidRanges int
}

// OpportunityAggregator merges reminders and special-day suggestions into a
// per-day opportunity timeline. Stateless and safe for concurrent use.
type OpportunityAggregator struct{}

// NewOpportunityAggregator creates a new aggregator instance
func NewOpportunityAggregator() *OpportunityAggregator {
	return &OpportunityAggregator{}
}

// Aggregate expands every input record across its date range, assigns stable
// identities, and groups all instances by calendar day, ascending.
//
// Identity rules differ between the two sources and the asymmetry is kept on
// purpose (the client's click routing relies on it):
//   - a reminder keeps one id, "reminder_<id>", across every day it spans;
//   - a suggestion instance gets a per-day id, "<base>_<yyyy-mm-dd>", where
//     base is "suggestion_<id>" when an ML suggestion exists and
//     "special_day_<id>" otherwise.
//
// Ids are unique within one Aggregate call only; no cross-run identity is
// guaranteed.
func (a *OpportunityAggregator) Aggregate(input AggregationInput) ([]models.DailyOpportunities, AggregationStats) {
	var all []models.MarketingOpportunity
	var stats AggregationStats

	for _, reminder := range input.Reminders {
		template := MapReminder(reminder)
		id := fmt.Sprintf("reminder_%d", reminder.ID)

		days := expandRange(reminder.StartDate, reminder.EndDate)
		if days == nil {
			stats.InvalidRanges++
			continue
		}
		for _, day := range days {
			all = append(all, instantiate(template, id, day))
			stats.ReminderInstances++
		}
	}

	for _, suggestion := range input.Suggestions {
		template := MapDaySuggestion(suggestion, input.StoreCategory)
		base := suggestionBaseID(suggestion)

		days := expandRange(suggestion.SpecialDay.StartDate, suggestion.SpecialDay.EndDate)
		if days == nil {
			stats.InvalidRanges++
			continue
		}
		for _, day := range days {
			id := fmt.Sprintf("%s_%s", base, utils.FormatDate(day))
			all = append(all, instantiate(template, id, day))
			stats.SuggestionInstances++
		}
	}

	return groupByDate(all), stats
}

func suggestionBaseID(day models.DaySuggestion) string {
	if day.HasSuggestion() {
		return fmt.Sprintf("suggestion_%d", day.Suggestion.ID)
	}
	return fmt.Sprintf("special_day_%d", day.SpecialDay.ID)
}

// expandRange lists every calendar day from start to end inclusive. Returns
// nil for an inverted range so the record degrades to zero instances instead
// of failing the whole aggregation.
func expandRange(start, end time.Time) []time.Time {
	from := utils.DateOnly(start)
	to := utils.DateOnly(end)
	if to.Before(from) {
		return nil
	}

	days := make([]time.Time, 0, 1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func instantiate(template OpportunityTemplate, id string, date time.Time) models.MarketingOpportunity {
	return models.MarketingOpportunity{
		ID:              id,
		Date:            date,
		Title:           template.Title,
		Description:     template.Description,
		TargetCustomer:  template.TargetCustomer,
		SuggestedAction: template.SuggestedAction,
		ExpectedEffect:  template.ExpectedEffect,
		Category:        template.Category,
		Confidence:      template.Confidence,
		Priority:        template.Priority,
		DataSource:      template.DataSource,
	}
}

// groupByDate buckets instances by calendar day, preserving their relative
// order within a day, and returns the days sorted ascending.
func groupByDate(all []models.MarketingOpportunity) []models.DailyOpportunities {
	buckets := make(map[string]*models.DailyOpportunities)
	var keys []string

	for _, opportunity := range all {
		key := utils.FormatDate(opportunity.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.DailyOpportunities{Date: opportunity.Date}
			buckets[key] = bucket
			keys = append(keys, key)
		}
		bucket.Opportunities = append(bucket.Opportunities, opportunity)
	}

	sort.Strings(keys)

	daily := make([]models.DailyOpportunities, 0, len(keys))
	for _, key := range keys {
		daily = append(daily, *buckets[key])
	}
	return daily
}
