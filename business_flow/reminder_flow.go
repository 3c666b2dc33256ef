package businessflow

import (
	"context"
	"strings"
	"time"

	"github.com/voyzlab/voyz-marketing/app/dto"
	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/repository"
	"github.com/voyzlab/voyz-marketing/utils"
)

// ReminderFlow manages merchant-authored calendar entries
type ReminderFlow interface {
	CreateReminder(ctx context.Context, req *dto.CreateReminderRequest) (*dto.CreateReminderResponse, error)
	ListReminders(ctx context.Context, req *dto.ListRemindersRequest) (*dto.ListRemindersResponse, error)
	DeleteReminder(ctx context.Context, merchantID uint, reminderID uint) (*dto.DeleteReminderResponse, error)
}

// ReminderFlowImpl implements the reminder business flow
type ReminderFlowImpl struct {
	reminderRepo repository.ReminderRepository
	cache        SnapshotCache
}

// NewReminderFlow creates a new reminder flow instance
func NewReminderFlow(reminderRepo repository.ReminderRepository, cache SnapshotCache) ReminderFlow {
	return &ReminderFlowImpl{
		reminderRepo: reminderRepo,
		cache:        cache,
	}
}

// CreateReminder validates and persists a new reminder, then invalidates the
// cached timeline for every month the reminder touches.
func (f *ReminderFlowImpl) CreateReminder(ctx context.Context, req *dto.CreateReminderRequest) (*dto.CreateReminderResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewBusinessError("REMINDER_TITLE_REQUIRED", "Reminder title is required", ErrReminderTitleRequired)
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, NewBusinessError("INVALID_START_DATE", "Invalid start date", err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, NewBusinessError("INVALID_END_DATE", "Invalid end date", err)
	}
	if endDate.Before(startDate) {
		return nil, NewBusinessError("START_DATE_AFTER_END_DATE", "Start date must not be after end date", ErrStartDateAfterEndDate)
	}

	reminder := &models.Reminder{
		MerchantID: req.MerchantID,
		Title:      title,
		Type:       strings.TrimSpace(req.Type),
		Content:    req.Content,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if err := f.reminderRepo.Save(ctx, reminder); err != nil {
		return nil, NewBusinessError("REMINDER_SAVE_FAILED", "Failed to save reminder", err)
	}

	f.invalidateMonths(ctx, req.MerchantID, startDate, endDate)

	return &dto.CreateReminderResponse{
		Message:   "Reminder created successfully",
		ID:        reminder.ID,
		CreatedAt: reminder.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListReminders returns the merchant's reminders overlapping the given month
func (f *ReminderFlowImpl) ListReminders(ctx context.Context, req *dto.ListRemindersRequest) (*dto.ListRemindersResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, NewBusinessError("INVALID_MONTH", "Invalid month", ErrInvalidMonth)
	}

	from, to := utils.MonthWindow(req.Year, time.Month(req.Month))

	reminders, err := f.reminderRepo.ListOverlapping(ctx, req.MerchantID, from, to)
	if err != nil {
		return nil, NewBusinessError("REMINDER_FETCH_FAILED", "Failed to fetch reminders", err)
	}

	items := make([]dto.ReminderDTO, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, dto.ReminderDTO{
			ID:        r.ID,
			Title:     r.Title,
			Type:      r.Type,
			Content:   r.Content,
			StartDate: utils.FormatDate(r.StartDate),
			EndDate:   utils.FormatDate(r.EndDate),
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.ListRemindersResponse{
		Reminders: items,
		Total:     len(items),
	}, nil
}

// DeleteReminder removes a reminder after checking the caller owns it
func (f *ReminderFlowImpl) DeleteReminder(ctx context.Context, merchantID uint, reminderID uint) (*dto.DeleteReminderResponse, error) {
	reminder, err := f.reminderRepo.ByID(ctx, reminderID)
	if err != nil {
		return nil, NewBusinessError("REMINDER_LOOKUP_FAILED", "Failed to lookup reminder", err)
	}
	if reminder == nil {
		return nil, NewBusinessError("REMINDER_NOT_FOUND", "Reminder not found", ErrReminderNotFound)
	}
	if reminder.MerchantID != merchantID {
		return nil, NewBusinessError("REMINDER_ACCESS_DENIED", "Reminder belongs to another merchant", ErrReminderAccessDenied)
	}

	if err := f.reminderRepo.Delete(ctx, reminder.ID); err != nil {
		return nil, NewBusinessError("REMINDER_DELETE_FAILED", "Failed to delete reminder", err)
	}

	f.invalidateMonths(ctx, merchantID, reminder.StartDate, reminder.EndDate)

	return &dto.DeleteReminderResponse{
		Message: "Reminder deleted successfully",
	}, nil
}

// invalidateMonths drops cached snapshots for every month in [start, end].
// Cache errors are ignored: a stale snapshot is recomputed on hash mismatch
// anyway.
func (f *ReminderFlowImpl) invalidateMonths(ctx context.Context, merchantID uint, start, end time.Time) {
	if f.cache == nil || end.Before(start) {
		return
	}

	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(last) {
		_ = f.cache.Invalidate(ctx, merchantID, utils.MonthKey(cursor.Year(), cursor.Month()))
		cursor = cursor.AddDate(0, 1, 0)
	}
}
