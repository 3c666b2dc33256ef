package repository

import (
	"context"
	"time"

	"github.com/voyzlab/voyz-marketing/models"
	"gorm.io/gorm"
)

// ReminderRepositoryImpl implements the ReminderRepository interface
type ReminderRepositoryImpl struct {
	*BaseRepository[models.Reminder, models.ReminderFilter]
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &ReminderRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Reminder, models.ReminderFilter](db),
	}
}

// ListOverlapping retrieves a merchant's reminders whose date range intersects [from, to)
func (r *ReminderRepositoryImpl) ListOverlapping(ctx context.Context, merchantID uint, from, to time.Time) ([]*models.Reminder, error) {
	filter := models.ReminderFilter{
		MerchantID:   &merchantID,
		OverlapsFrom: &from,
		OverlapsTo:   &to,
	}
	return r.ByFilter(ctx, filter, "start_date ASC, id ASC", 0, 0)
}

// ByFilter retrieves reminders based on filter criteria
func (r *ReminderRepositoryImpl) ByFilter(ctx context.Context, filter models.ReminderFilter, orderBy string, limit, offset int) ([]*models.Reminder, error) {
	db := r.getDB(ctx)

	var reminders []*models.Reminder
	query := r.applyFilter(db, filter)

	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	return reminders, nil
}

// Count returns the number of reminders matching the filter
func (r *ReminderRepositoryImpl) Count(ctx context.Context, filter models.ReminderFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	query := r.applyFilter(db.Model(&models.Reminder{}), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *ReminderRepositoryImpl) applyFilter(db *gorm.DB, filter models.ReminderFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.MerchantID != nil {
		db = db.Where("merchant_id = ?", *filter.MerchantID)
	}
	if filter.Type != nil {
		db = db.Where("type = ?", *filter.Type)
	}
	if filter.OverlapsFrom != nil {
		db = db.Where("end_date >= ?", *filter.OverlapsFrom)
	}
	if filter.OverlapsTo != nil {
		db = db.Where("start_date < ?", *filter.OverlapsTo)
	}

	return db
}
