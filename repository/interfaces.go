// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/voyzlab/voyz-marketing/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
}

// MerchantRepository defines operations for merchant accounts
type MerchantRepository interface {
	Repository[models.Merchant, models.MerchantFilter]
	ByEmail(ctx context.Context, email string) (*models.Merchant, error)
	ListActive(ctx context.Context, limit, offset int) ([]*models.Merchant, error)
}

// MerchantSessionRepository defines operations for merchant sessions
type MerchantSessionRepository interface {
	Repository[models.MerchantSession, models.MerchantSessionFilter]
	DeactivateByMerchant(ctx context.Context, merchantID uint) error
}

// ReminderRepository defines operations for user reminders
type ReminderRepository interface {
	Repository[models.Reminder, models.ReminderFilter]
	ListOverlapping(ctx context.Context, merchantID uint, from, to time.Time) ([]*models.Reminder, error)
	Delete(ctx context.Context, id uint) error
}

// SpecialDayRepository defines operations for special days and their suggestions
type SpecialDayRepository interface {
	Repository[models.SpecialDay, models.SpecialDayFilter]
	// ListDaySuggestions returns every special day overlapping [from, to)
	// paired with the merchant's suggestion when one exists.
	ListDaySuggestions(ctx context.Context, merchantID uint, from, to time.Time) ([]models.DaySuggestion, error)
	// UpsertByNameAndDate inserts feed records, skipping days already stored
	// with the same name and start date.
	UpsertByNameAndDate(ctx context.Context, days []*models.SpecialDay) (int, error)
}
