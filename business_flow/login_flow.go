package businessflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/voyzlab/voyz-marketing/app/dto"
	"github.com/voyzlab/voyz-marketing/app/services"
	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/repository"
	"github.com/voyzlab/voyz-marketing/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginFlow handles merchant authentication
type LoginFlow interface {
	Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
}

// LoginFlowImpl implements the login business flow
type LoginFlowImpl struct {
	merchantRepo repository.MerchantRepository
	sessionRepo  repository.MerchantSessionRepository
	tokenService services.TokenService
	db           *gorm.DB
}

// NewLoginFlow creates a new login flow instance
func NewLoginFlow(
	merchantRepo repository.MerchantRepository,
	sessionRepo repository.MerchantSessionRepository,
	tokenService services.TokenService,
	db *gorm.DB,
) LoginFlow {
	return &LoginFlowImpl{
		merchantRepo: merchantRepo,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		db:           db,
	}
}

// Login authenticates a merchant with email and password and issues a token pair
func (f *LoginFlowImpl) Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	merchant, err := f.merchantRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, NewBusinessError("MERCHANT_LOOKUP_FAILED", "Failed to lookup merchant", err)
	}
	if merchant == nil {
		return nil, NewBusinessError("MERCHANT_NOT_FOUND", "Merchant not found", ErrMerchantNotFound)
	}
	if !utils.IsTrue(merchant.IsActive) {
		return nil, NewBusinessError("ACCOUNT_INACTIVE", "Account is inactive", ErrAccountInactive)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(merchant.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewBusinessError("INCORRECT_PASSWORD", "Incorrect password", ErrIncorrectPassword)
	}

	accessToken, refreshToken, err := f.tokenService.GenerateTokens(merchant.ID)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate tokens", err)
	}

	var session *models.MerchantSession
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		// One active session per merchant; older sessions are retired first.
		if err := f.sessionRepo.DeactivateByMerchant(txCtx, merchant.ID); err != nil {
			return err
		}

		session = &models.MerchantSession{
			CorrelationID: uuid.New(),
			MerchantID:    merchant.ID,
			SessionToken:  accessToken,
			RefreshToken:  refreshToken,
			IsActive:      utils.ToPtr(true),
			ExpiresAt:     utils.UTCNowAdd(utils.AccessTokenTTL),
		}
		if metadata != nil {
			if metadata.IPAddress != "" {
				session.IPAddress = utils.ToPtr(metadata.IPAddress)
			}
			if metadata.UserAgent != "" {
				session.UserAgent = utils.ToPtr(metadata.UserAgent)
			}
		}

		return f.sessionRepo.Save(txCtx, session)
	})
	if err != nil {
		return nil, NewBusinessError("SESSION_CREATION_FAILED", "Failed to create session", err)
	}

	return &dto.LoginResponse{
		Merchant: dto.MerchantDTO{
			ID:            merchant.ID,
			UUID:          merchant.UUID.String(),
			Email:         merchant.Email,
			StoreName:     merchant.StoreName,
			StoreCategory: merchant.StoreCategory,
			IsActive:      utils.IsTrue(merchant.IsActive),
			CreatedAt:     merchant.CreatedAt.Format(time.RFC3339),
		},
		Session: dto.SessionDTO{
			SessionToken: accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
			TokenType:    "Bearer",
		},
	}, nil
}
