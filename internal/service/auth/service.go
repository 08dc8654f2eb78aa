package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devstudio/checkin-backend-go/internal/domain/auth"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/pkg/database"
	"github.com/devstudio/checkin-backend-go/internal/pkg/jwt"
	"github.com/devstudio/checkin-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	newUser, err := a.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: &passwordHash,
		Role:         user.RoleUser,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
		}
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(ctx, newUser, sessionReq)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if userData.PasswordHash == nil {
		// OAuth-only account, no password to compare against.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. An existing account with the
// same email is linked; a new account is provisioned otherwise.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail, googleID, name string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(googleEmail))

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}

		provider := "google"
		userData, err = a.UserRepository.Create(ctx, user.User{
			ID:              uuid.NewString(),
			Email:           email,
			Name:            name,
			Role:            user.RoleUser,
			OAuthProvider:   &provider,
			OAuthProviderID: &googleID,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
	} else if userData.OAuthProviderID == nil {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, googleID, email)
		if err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return a.issueTokens(ctx, userData, sessionReq)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	userID, err := a.Service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, err
	}

	var tokenResponse auth.AccessTokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return a.JWTRepository.RevokeRefreshToken(ctx, refreshToken)
}

// GetMe implements auth.AuthService.
func (a *AuthServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.UserResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(userData), nil
}

// issueTokens mints the access/refresh pair and records the refresh token
// hash, all inside one transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	tokenResponse.User = user.ToResponse(userData)

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.JWTRepository.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to store refresh token: %w", err)
		}

		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}
