package dto

// LoginRequest represents the merchant login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// MerchantDTO represents merchant info in authentication responses
type MerchantDTO struct {
	ID            uint   `json:"id"`
	UUID          string `json:"uuid"`
	Email         string `json:"email"`
	StoreName     string `json:"store_name"`
	StoreCategory string `json:"store_category"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

// SessionDTO represents the issued token pair
type SessionDTO struct {
	SessionToken string `json:"session_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// LoginResponse represents the merchant login response
type LoginResponse struct {
	Merchant MerchantDTO `json:"merchant"`
	Session  SessionDTO  `json:"session"`
}
