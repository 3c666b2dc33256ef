package models

import (
	"time"
)

// Reminder type codes as sent by the mobile client. Legacy numeric codes are
// still accepted alongside the named ones.
const (
	ReminderTypeMarketing = "marketing"
	ReminderTypeSchedule  = "schedule"
)

// Reminder is a user-authored calendar entry spanning an inclusive date range
type Reminder struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	MerchantID uint      `json:"merchant_id" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"not null;size:200"`
	Type       string    `json:"type" gorm:"not null;size:50"`
	Content    string    `json:"content" gorm:"type:text"`
	StartDate  time.Time `json:"start_date" gorm:"type:date;not null;index"`
	EndDate    time.Time `json:"end_date" gorm:"type:date;not null"`

	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	Merchant *Merchant `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
}

// TableName returns the table name for Reminder
func (Reminder) TableName() string {
	return "reminders"
}

// ReminderFilter represents filters for reminder queries
type ReminderFilter struct {
	ID         *uint
	MerchantID *uint
	Type       *string
	// Range filters select reminders whose [start_date, end_date] overlaps
	// the given window.
	OverlapsFrom *time.Time
	OverlapsTo   *time.Time
}
