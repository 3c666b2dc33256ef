package dto

// CreateReminderRequest represents the request to create a reminder
type CreateReminderRequest struct {
	MerchantID uint   `json:"-"`
	Title      string `json:"title" validate:"required,max=200"`
	Type       string `json:"type" validate:"required,max=50"`
	Content    string `json:"content" validate:"max=2000"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// CreateReminderResponse represents the response to create a reminder
type CreateReminderResponse struct {
	Message   string `json:"message"`
	ID        uint   `json:"id"`
	CreatedAt string `json:"created_at"`
}

// ReminderDTO represents a reminder in list responses
type ReminderDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
}

// ListRemindersRequest represents the query for a month's reminders
type ListRemindersRequest struct {
	MerchantID uint `json:"-"`
	Year       int  `json:"year" validate:"required,gte=2000,lte=2100"`
	Month      int  `json:"month" validate:"required,gte=1,lte=12"`
}

// ListRemindersResponse represents the response listing reminders
type ListRemindersResponse struct {
	Reminders []ReminderDTO `json:"reminders"`
	Total     int           `json:"total"`
}

// DeleteReminderResponse represents the response to delete a reminder
type DeleteReminderResponse struct {
	Message string `json:"message"`
}
