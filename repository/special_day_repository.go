package repository

import (
	"context"
	"time"

	"github.com/voyzlab/voyz-marketing/models"
	"gorm.io/gorm"
)

// SpecialDayRepositoryImpl implements the SpecialDayRepository interface
type SpecialDayRepositoryImpl struct {
	*BaseRepository[models.SpecialDay, models.SpecialDayFilter]
}

// NewSpecialDayRepository creates a new special day repository
func NewSpecialDayRepository(db *gorm.DB) SpecialDayRepository {
	return &SpecialDayRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SpecialDay, models.SpecialDayFilter](db),
	}
}

// ListDaySuggestions pairs every special day overlapping [from, to) with the
// merchant's ML suggestion for that day, when one exists.
func (r *SpecialDayRepositoryImpl) ListDaySuggestions(ctx context.Context, merchantID uint, from, to time.Time) ([]models.DaySuggestion, error) {
	days, err := r.ByFilter(ctx, models.SpecialDayFilter{
		OverlapsFrom: &from,
		OverlapsTo:   &to,
	}, "start_date ASC, id ASC", 0, 0)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, nil
	}

	dayIDs := make([]uint, 0, len(days))
	for _, d := range days {
		dayIDs = append(dayIDs, d.ID)
	}

	db := r.getDB(ctx)
	var suggestions []*models.SpecialDaySuggestion
	err = db.Where("merchant_id = ? AND special_day_id IN ?", merchantID, dayIDs).
		Order("id ASC").
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}

	// Latest suggestion wins when duplicates exist for one day.
	byDay := make(map[uint]*models.SpecialDaySuggestion, len(suggestions))
	for _, s := range suggestions {
		byDay[s.SpecialDayID] = s
	}

	result := make([]models.DaySuggestion, 0, len(days))
	for _, d := range days {
		result = append(result, models.DaySuggestion{
			SpecialDay: *d,
			Suggestion: byDay[d.ID],
		})
	}
	return result, nil
}

// UpsertByNameAndDate inserts feed records that are not already stored,
// matching on (name, start_date). Returns the number of inserted rows.
func (r *SpecialDayRepositoryImpl) UpsertByNameAndDate(ctx context.Context, days []*models.SpecialDay) (int, error) {
	if len(days) == 0 {
		return 0, nil
	}

	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return 0, err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	inserted := 0
	for _, day := range days {
		var count int64
		err = db.Model(&models.SpecialDay{}).
			Where("name = ? AND start_date = ?", day.Name, day.StartDate).
			Count(&count).Error
		if err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}
		if err = db.Create(day).Error; err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

// ByFilter retrieves special days based on filter criteria
func (r *SpecialDayRepositoryImpl) ByFilter(ctx context.Context, filter models.SpecialDayFilter, orderBy string, limit, offset int) ([]*models.SpecialDay, error) {
	db := r.getDB(ctx)

	var days []*models.SpecialDay
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

	err := query.Find(&days).Error
	if err != nil {
		return nil, err
	}

	return days, nil
}

// Count returns the number of special days matching the filter
func (r *SpecialDayRepositoryImpl) Count(ctx context.Context, filter models.SpecialDayFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	query := r.applyFilter(db.Model(&models.SpecialDay{}), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *SpecialDayRepositoryImpl) applyFilter(db *gorm.DB, filter models.SpecialDayFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		db = db.Where("name ILIKE ?", "%"+*filter.Name+"%")
	}
	if filter.Type != nil {
		db = db.Where("type = ?", *filter.Type)
	}
	if filter.IsHoliday != nil {
		db = db.Where("is_holiday = ?", *filter.IsHoliday)
	}
	if filter.OverlapsFrom != nil {
		db = db.Where("end_date >= ?", *filter.OverlapsFrom)
	}
	if filter.OverlapsTo != nil {
		db = db.Where("start_date < ?", *filter.OverlapsTo)
	}

	return db
}
