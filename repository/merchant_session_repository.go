package repository

import (
	"context"

	"github.com/voyzlab/voyz-marketing/models"
	"gorm.io/gorm"
)

// MerchantSessionRepositoryImpl implements the MerchantSessionRepository interface
type MerchantSessionRepositoryImpl struct {
	*BaseRepository[models.MerchantSession, models.MerchantSessionFilter]
}

// NewMerchantSessionRepository creates a new merchant session repository
func NewMerchantSessionRepository(db *gorm.DB) MerchantSessionRepository {
	return &MerchantSessionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.MerchantSession, models.MerchantSessionFilter](db),
	}
}

// DeactivateByMerchant marks every active session of a merchant inactive
func (r *MerchantSessionRepositoryImpl) DeactivateByMerchant(ctx context.Context, merchantID uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.MerchantSession{}).
		Where("merchant_id = ? AND is_active = ?", merchantID, true).
		Update("is_active", false).Error
}

// ByFilter retrieves sessions based on filter criteria
func (r *MerchantSessionRepositoryImpl) ByFilter(ctx context.Context, filter models.MerchantSessionFilter, orderBy string, limit, offset int) ([]*models.MerchantSession, error) {
	db := r.getDB(ctx)

	var sessions []*models.MerchantSession
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

	err := query.Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Count returns the number of sessions matching the filter
func (r *MerchantSessionRepositoryImpl) Count(ctx context.Context, filter models.MerchantSessionFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	query := r.applyFilter(db.Model(&models.MerchantSession{}), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *MerchantSessionRepositoryImpl) applyFilter(db *gorm.DB, filter models.MerchantSessionFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.MerchantID != nil {
		db = db.Where("merchant_id = ?", *filter.MerchantID)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	return db
}
