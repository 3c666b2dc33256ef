package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Merchant-related errors
	ErrMerchantNotFound  = errors.New("merchant not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrIncorrectPassword = errors.New("incorrect password")

	// Reminder-related errors
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrReminderAccessDenied  = errors.New("reminder access denied")
	ErrReminderTitleRequired = errors.New("reminder title is required")
	ErrStartDateAfterEndDate = errors.New("start date cannot be after end date")

	// Calendar-related errors
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidYear    = errors.New("year is out of range")
	ErrEmptyTimeline  = errors.New("no opportunities for the requested month")
	ErrSnapshotDecode = errors.New("cached snapshot could not be decoded")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsMerchantNotFound(err error) bool {
	return errors.Is(err, ErrMerchantNotFound)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsReminderNotFound(err error) bool {
	return errors.Is(err, ErrReminderNotFound)
}

func IsReminderAccessDenied(err error) bool {
	return errors.Is(err, ErrReminderAccessDenied)
}

func IsReminderTitleRequired(err error) bool {
	return errors.Is(err, ErrReminderTitleRequired)
}

func IsStartDateAfterEndDate(err error) bool {
	return errors.Is(err, ErrStartDateAfterEndDate)
}

func IsInvalidMonth(err error) bool {
	return errors.Is(err, ErrInvalidMonth)
}
