package auth

import (
	"context"

	"github.com/devstudio/checkin-backend-go/internal/domain/user"
)

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleEmail, googleID, name string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context) (user.UserResponse, error)
}
