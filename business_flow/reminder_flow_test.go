package businessflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyzlab/voyz-marketing/app/dto"
	"github.com/voyzlab/voyz-marketing/models"
)

func TestCreateReminder(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	cache := newMemorySnapshotCache()
	flow := NewReminderFlow(reminderRepo, cache)

	resp, err := flow.CreateReminder(context.Background(), &dto.CreateReminderRequest{
		MerchantID: 7,
		Title:      "  가정의 달 프로모션  ",
		Type:       models.ReminderTypeMarketing,
		Content:    "전단지 제작",
		StartDate:  "2026-04-28",
		EndDate:    "2026-05-02",
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Reminder created successfully", resp.Message)

	saved, err := reminderRepo.ByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "가정의 달 프로모션", saved.Title)
	assert.Equal(t, day(2026, 4, 28), saved.StartDate)
	assert.Equal(t, day(2026, 5, 2), saved.EndDate)

	// Both touched months were invalidated.
	assert.Equal(t, []string{"7:2026-04", "7:2026-05"}, cache.invalidated)
}

func TestCreateReminderValidation(t *testing.T) {
	tests := []struct {
		name      string
		req       *dto.CreateReminderRequest
		errCheck  func(error) bool
		errorName string
	}{
		{
			name: "empty title",
			req: &dto.CreateReminderRequest{
				MerchantID: 7, Title: "   ", Type: "schedule",
				StartDate: "2026-05-01", EndDate: "2026-05-01",
			},
			errCheck:  IsReminderTitleRequired,
			errorName: "title required",
		},
		{
			name: "inverted range",
			req: &dto.CreateReminderRequest{
				MerchantID: 7, Title: "t", Type: "schedule",
				StartDate: "2026-05-02", EndDate: "2026-05-01",
			},
			errCheck:  IsStartDateAfterEndDate,
			errorName: "start after end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminderRepo := newFakeReminderRepo()
			flow := NewReminderFlow(reminderRepo, nil)

			_, err := flow.CreateReminder(context.Background(), tt.req)

			assert.True(t, tt.errCheck(err), tt.errorName)
			assert.Empty(t, reminderRepo.reminders)
		})
	}
}

func TestCreateReminderMalformedDates(t *testing.T) {
	flow := NewReminderFlow(newFakeReminderRepo(), nil)

	for _, req := range []*dto.CreateReminderRequest{
		{MerchantID: 7, Title: "t", Type: "schedule", StartDate: "2026/05/01", EndDate: "2026-05-02"},
		{MerchantID: 7, Title: "t", Type: "schedule", StartDate: "2026-05-01", EndDate: "not-a-date"},
	} {
		_, err := flow.CreateReminder(context.Background(), req)
		assert.Error(t, err)
	}
}

func TestListReminders(t *testing.T) {
	reminderRepo := newFakeReminderRepo(
		&models.Reminder{ID: 1, MerchantID: 7, Title: "월초 정산", Type: "schedule", StartDate: day(2026, 5, 1), EndDate: day(2026, 5, 1)},
		&models.Reminder{ID: 2, MerchantID: 7, Title: "다음 달 일정", Type: "schedule", StartDate: day(2026, 6, 1), EndDate: day(2026, 6, 1)},
		&models.Reminder{ID: 3, MerchantID: 8, Title: "남의 일정", Type: "schedule", StartDate: day(2026, 5, 1), EndDate: day(2026, 5, 1)},
	)
	flow := NewReminderFlow(reminderRepo, nil)

	resp, err := flow.ListReminders(context.Background(), &dto.ListRemindersRequest{MerchantID: 7, Year: 2026, Month: 5})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Reminders, 1)
	assert.Equal(t, uint(1), resp.Reminders[0].ID)
	assert.Equal(t, "2026-05-01", resp.Reminders[0].StartDate)
}

func TestListRemindersInvalidMonth(t *testing.T) {
	flow := NewReminderFlow(newFakeReminderRepo(), nil)

	_, err := flow.ListReminders(context.Background(), &dto.ListRemindersRequest{MerchantID: 7, Year: 2026, Month: 13})

	assert.True(t, IsInvalidMonth(err))
}

func TestDeleteReminder(t *testing.T) {
	reminderRepo := newFakeReminderRepo(
		&models.Reminder{ID: 5, MerchantID: 7, Title: "지울 일정", Type: "schedule", StartDate: day(2026, 5, 1), EndDate: day(2026, 5, 1)},
	)
	cache := newMemorySnapshotCache()
	flow := NewReminderFlow(reminderRepo, cache)

	resp, err := flow.DeleteReminder(context.Background(), 7, 5)

	require.NoError(t, err)
	assert.Equal(t, "Reminder deleted successfully", resp.Message)
	assert.Empty(t, reminderRepo.reminders)
	assert.Equal(t, []string{"7:2026-05"}, cache.invalidated)
}

func TestDeleteReminderNotFound(t *testing.T) {
	flow := NewReminderFlow(newFakeReminderRepo(), nil)

	_, err := flow.DeleteReminder(context.Background(), 7, 99)

	assert.True(t, IsReminderNotFound(err))
}

func TestDeleteReminderOwnership(t *testing.T) {
	reminderRepo := newFakeReminderRepo(
		&models.Reminder{ID: 5, MerchantID: 8, Title: "남의 일정", Type: "schedule", StartDate: day(2026, 5, 1), EndDate: day(2026, 5, 1)},
	)
	flow := NewReminderFlow(reminderRepo, nil)

	_, err := flow.DeleteReminder(context.Background(), 7, 5)

	assert.True(t, IsReminderAccessDenied(err))
	// The reminder survives a denied delete.
	assert.Len(t, reminderRepo.reminders, 1)
}
