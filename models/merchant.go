package models

import (
	"time"

	"github.com/google/uuid"
)

// Store categories understood by the confidence scorer. The client app sends
// the Korean labels; the scorer also accepts their English aliases.
const (
	StoreCategoryKorean  = "한식"
	StoreCategoryChicken = "치킨"
	StoreCategoryPizza   = "피자"
	StoreCategoryCafe    = "카페"
)

// Merchant is a store-owner account. StoreCategory feeds the confidence
// scorer and is required at signup.
type Merchant struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID          uuid.UUID `json:"uuid" gorm:"type:uuid;uniqueIndex;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string    `json:"-" gorm:"not null;size:255"`
	StoreName     string    `json:"store_name" gorm:"not null;size:200"`
	StoreCategory string    `json:"store_category" gorm:"not null;size:50"`
	IsActive      *bool     `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the table name for Merchant
func (Merchant) TableName() string {
	return "merchants"
}

// MerchantFilter represents filters for merchant queries
type MerchantFilter struct {
	ID       *uint
	UUID     *uuid.UUID
	Email    *string
	IsActive *bool
}

// MerchantSession tracks issued token pairs for a merchant
type MerchantSession struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CorrelationID uuid.UUID `json:"correlation_id" gorm:"type:uuid;not null;index"`
	MerchantID    uint      `json:"merchant_id" gorm:"not null;index"`
	SessionToken  string    `json:"-" gorm:"not null;size:512"`
	RefreshToken  string    `json:"-" gorm:"not null;size:512"`
	IPAddress     *string   `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent     *string   `json:"user_agent,omitempty" gorm:"size:512"`
	IsActive      *bool     `json:"is_active" gorm:"not null;default:true"`
	ExpiresAt     time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	Merchant *Merchant `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
}

// TableName returns the table name for MerchantSession
func (MerchantSession) TableName() string {
	return "merchant_sessions"
}

// MerchantSessionFilter represents filters for session queries
type MerchantSessionFilter struct {
	ID         *uint
	MerchantID *uint
	IsActive   *bool
}
