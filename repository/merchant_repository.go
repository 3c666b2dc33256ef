package repository

import (
	"context"

	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/utils"
	"gorm.io/gorm"
)

// MerchantRepositoryImpl implements the MerchantRepository interface
type MerchantRepositoryImpl struct {
	*BaseRepository[models.Merchant, models.MerchantFilter]
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &MerchantRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Merchant, models.MerchantFilter](db),
	}
}

// ByEmail retrieves a merchant by email
func (r *MerchantRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.Merchant, error) {
	filter := models.MerchantFilter{Email: &email}
	merchants, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(merchants) == 0 {
		return nil, nil
	}
	return merchants[0], nil
}

// ListActive retrieves active merchants with pagination
func (r *MerchantRepositoryImpl) ListActive(ctx context.Context, limit, offset int) ([]*models.Merchant, error) {
	filter := models.MerchantFilter{IsActive: utils.ToPtr(true)}
	return r.ByFilter(ctx, filter, "id ASC", limit, offset)
}

// ByFilter retrieves merchants based on filter criteria
func (r *MerchantRepositoryImpl) ByFilter(ctx context.Context, filter models.MerchantFilter, orderBy string, limit, offset int) ([]*models.Merchant, error) {
	db := r.getDB(ctx)

	var merchants []*models.Merchant
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

	err := query.Find(&merchants).Error
	if err != nil {
		return nil, err
	}

	return merchants, nil
}

// Count returns the number of merchants matching the filter
func (r *MerchantRepositoryImpl) Count(ctx context.Context, filter models.MerchantFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	query := r.applyFilter(db.Model(&models.Merchant{}), filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *MerchantRepositoryImpl) applyFilter(db *gorm.DB, filter models.MerchantFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.Email != nil {
		db = db.Where("email = ?", *filter.Email)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	return db
}
