package businessflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/utils"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMergesBothSources(t *testing.T) {
	aggregator := NewOpportunityAggregator()

	input := AggregationInput{
		Reminders: []models.Reminder{
			{
				ID:        42,
				Title:     "오픈 이벤트 준비",
				Type:      models.ReminderTypeMarketing,
				StartDate: day(2026, 5, 1),
				EndDate:   day(2026, 5, 3),
			},
		},
		Suggestions: []models.DaySuggestion{
			{
				SpecialDay: models.SpecialDay{
					ID:        11,
					Name:      "어린이날",
					Type:      "공휴일",
					StartDate: day(2026, 5, 5),
					EndDate:   day(2026, 5, 5),
				},
				Suggestion: &models.SpecialDaySuggestion{
					ID:      3,
					Title:   "어린이날 가족 세트",
					Content: "가족 방문객 대상 프로모션",
				},
			},
			{
				SpecialDay: models.SpecialDay{
					ID:        12,
					Name:      "입하",
					Type:      "절기",
					StartDate: day(2026, 5, 5),
					EndDate:   day(2026, 5, 6),
				},
			},
		},
		StoreCategory: "피자",
	}

	daily, stats := aggregator.Aggregate(input)

	assert.Equal(t, 3, stats.ReminderInstances)
	assert.Equal(t, 3, stats.SuggestionInstances)
	assert.Equal(t, 0, stats.InvalidRanges)

	// Five distinct days, ascending.
	require.Len(t, daily, 5)
	dates := make([]string, 0, len(daily))
	for _, d := range daily {
		dates = append(dates, utils.FormatDate(d.Date))
	}
	assert.Equal(t, []string{"2026-05-01", "2026-05-02", "2026-05-03", "2026-05-05", "2026-05-06"}, dates)

	// A reminder keeps one id across every day it spans.
	for _, d := range daily[:3] {
		require.Len(t, d.Opportunities, 1)
		assert.Equal(t, "reminder_42", d.Opportunities[0].ID)
		assert.Equal(t, "[리마인더] 오픈 이벤트 준비", d.Opportunities[0].Title)
	}

	// Suggestion instances get per-day ids; both sources share the day bucket
	// in insertion order (reminders first).
	may5 := daily[3]
	require.Len(t, may5.Opportunities, 2)
	assert.Equal(t, "suggestion_3_2026-05-05", may5.Opportunities[0].ID)
	assert.Equal(t, "special_day_12_2026-05-05", may5.Opportunities[1].ID)

	may6 := daily[4]
	require.Len(t, may6.Opportunities, 1)
	assert.Equal(t, "special_day_12_2026-05-06", may6.Opportunities[0].ID)
}

func TestAggregateAssignsDatesToInstances(t *testing.T) {
	aggregator := NewOpportunityAggregator()

	daily, _ := aggregator.Aggregate(AggregationInput{
		Reminders: []models.Reminder{
			{ID: 1, Title: "재고 정리", Type: models.ReminderTypeSchedule, StartDate: day(2026, 2, 27), EndDate: day(2026, 3, 1)},
		},
	})

	// Month boundary is crossed day by day.
	require.Len(t, daily, 3)
	assert.Equal(t, day(2026, 2, 27), daily[0].Opportunities[0].Date)
	assert.Equal(t, day(2026, 2, 28), daily[1].Opportunities[0].Date)
	assert.Equal(t, day(2026, 3, 1), daily[2].Opportunities[0].Date)
}

func TestAggregateInvalidRanges(t *testing.T) {
	aggregator := NewOpportunityAggregator()

	input := AggregationInput{
		Reminders: []models.Reminder{
			{ID: 1, Title: "뒤집힌 일정", Type: models.ReminderTypeSchedule, StartDate: day(2026, 5, 10), EndDate: day(2026, 5, 8)},
			{ID: 2, Title: "정상 일정", Type: models.ReminderTypeSchedule, StartDate: day(2026, 5, 8), EndDate: day(2026, 5, 8)},
		},
		Suggestions: []models.DaySuggestion{
			{
				SpecialDay: models.SpecialDay{ID: 9, Name: "이상한 날", Type: "기념일", StartDate: day(2026, 6, 2), EndDate: day(2026, 6, 1)},
			},
		},
	}

	daily, stats := aggregator.Aggregate(input)

	// Inverted ranges expand to zero instances but the pass still succeeds.
	assert.Equal(t, 2, stats.InvalidRanges)
	assert.Equal(t, 1, stats.ReminderInstances)
	assert.Equal(t, 0, stats.SuggestionInstances)
	require.Len(t, daily, 1)
	assert.Equal(t, "reminder_2", daily[0].Opportunities[0].ID)
}

func TestAggregateEmptyInput(t *testing.T) {
	aggregator := NewOpportunityAggregator()

	daily, stats := aggregator.Aggregate(AggregationInput{})

	assert.Empty(t, daily)
	assert.Equal(t, AggregationStats{}, stats)
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{name: "single day", start: day(2026, 5, 1), end: day(2026, 5, 1), expected: 1},
		{name: "inclusive multi day", start: day(2026, 5, 1), end: day(2026, 5, 4), expected: 4},
		{name: "inverted range", start: day(2026, 5, 2), end: day(2026, 5, 1), expected: 0},
		{name: "multi-year range expands in full", start: day(2026, 1, 1), end: day(2027, 2, 1), expected: 397},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := expandRange(tt.start, tt.end)
			assert.Len(t, days, tt.expected)
		})
	}
}

func TestAggregateLongRangeCoversFinalDay(t *testing.T) {
	aggregator := NewOpportunityAggregator()

	daily, stats := aggregator.Aggregate(AggregationInput{
		Reminders: []models.Reminder{
			{ID: 1, Title: "연중 캠페인", Type: models.ReminderTypeMarketing, StartDate: day(2026, 1, 1), EndDate: day(2027, 2, 1)},
		},
	})

	// Every day of the range is emitted, however long it is.
	require.Len(t, daily, 397)
	assert.Equal(t, 397, stats.ReminderInstances)
	assert.Equal(t, day(2026, 1, 1), daily[0].Date)
	assert.Equal(t, day(2027, 2, 1), daily[len(daily)-1].Date)
}

func TestAggregateIsDeterministic(t *testing.T) {
	aggregator := NewOpportunityAggregator()

	input := AggregationInput{
		Reminders: []models.Reminder{
			{ID: 1, Title: "재고 조사", Type: models.ReminderTypeSchedule, StartDate: day(2026, 5, 1), EndDate: day(2026, 5, 3)},
		},
		Suggestions: []models.DaySuggestion{
			{
				SpecialDay: models.SpecialDay{ID: 11, Name: "어린이날", Type: "공휴일", StartDate: day(2026, 5, 5), EndDate: day(2026, 5, 5)},
				Suggestion: &models.SpecialDaySuggestion{ID: 3, Title: "가족 세트", Content: "가족 단위 프로모션"},
			},
			{
				SpecialDay: models.SpecialDay{ID: 12, Name: "입하", Type: "절기", StartDate: day(2026, 5, 5), EndDate: day(2026, 5, 6)},
			},
		},
		StoreCategory: "치킨",
	}

	firstDays, firstStats := aggregator.Aggregate(input)
	secondDays, secondStats := aggregator.Aggregate(input)

	// Identical input yields structurally identical output.
	assert.Equal(t, firstDays, secondDays)
	assert.Equal(t, firstStats, secondStats)
}

func TestExpandRangeIgnoresTimeOfDay(t *testing.T) {
	// Timestamps within the same calendar day collapse to midnight.
	start := time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 5, 2, 0, 15, 0, 0, time.UTC)

	days := expandRange(start, end)

	require.Len(t, days, 2)
	assert.Equal(t, day(2026, 5, 1), days[0])
	assert.Equal(t, day(2026, 5, 2), days[1])
}
