package services

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

const tokenIssuer = "complex-service"

// AuthService exchanges credentials for a signed access token.
type AuthService struct {
	accountRepo repositories.AccountRepository
	resolver    *policy.Resolver
	privateKey  *rsa.PrivateKey
	tokenExpiry time.Duration
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	resolver *policy.Resolver,
	privateKey *rsa.PrivateKey,
	tokenExpiry time.Duration,
) *AuthService {
	return &AuthService{accountRepo, resolver, privateKey, tokenExpiry}
}

// LoginResult carries the token plus the resolved role so clients can
// shape their UI without a second round trip.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}

// Login checks credentials and issues an RS256 access token. Wrong
// username and wrong password are deliberately the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "invalid username or password",
			Err:        utils.ErrInvalidCredentials,
		}
	}

	role, err := s.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.tokenExpiry)
	claims := jwt.MapClaims{
		"iss": tokenIssuer,
		"sub": user.ID.String(),
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		utils.Logger.WithError(err).Error("sign access token")
		return nil, err
	}

	return &LoginResult{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Role:        role.Kind.String(),
	}, nil
}
