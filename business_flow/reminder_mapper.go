package businessflow

import (
	"strings"

	"github.com/voyzlab/voyz-marketing/models"
)

// ReminderTitlePrefix marks reminder-born opportunities so the client can
// tell them apart from suggestions without inspecting the data source.
const ReminderTitlePrefix = "[리마인더] "

// Fixed recommendation texts for reminders; user-authored entries are not
// customized per record.
const (
	reminderTargetCustomer  = "나의 일정"
	reminderSuggestedAction = "• 일정 확인\n• 필요한 준비 사항 체크\n• 관련 자료 준비"
	reminderExpectedEffect  = "개인 일정 관리 향상"
)

// MapReminder converts a user reminder into an opportunity template.
// Reminders carry full user intent, so confidence is always 1.0. Never fails:
// every Reminder field is required and validated upstream.
func MapReminder(reminder models.Reminder) OpportunityTemplate {
	return OpportunityTemplate{
		Title:           ReminderTitlePrefix + reminder.Title,
		Description:     reminder.Content,
		TargetCustomer:  reminderTargetCustomer,
		SuggestedAction: reminderSuggestedAction,
		ExpectedEffect:  reminderExpectedEffect,
		Category:        models.CategorySpecialDay,
		Confidence:      1.0,
		Priority:        reminderPriority(reminder.Type),
		DataSource:      models.DataSourceGovernmentData,
	}
}

// reminderPriority maps the client's reminder type code to a priority.
// Legacy numeric codes and Korean labels are accepted alongside the named
// codes; anything unrecognized is MEDIUM.
func reminderPriority(reminderType string) models.OpportunityPriority {
	switch {
	case matchesAnyFold(reminderType, "1", models.ReminderTypeMarketing, "마케팅"):
		return models.PriorityHigh
	case matchesAnyFold(reminderType, "2", models.ReminderTypeSchedule, "일정"):
		return models.PriorityMedium
	default:
		return models.PriorityMedium
	}
}

// matchesAnyFold reports whether s equals any candidate, case-insensitively.
func matchesAnyFold(s string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
