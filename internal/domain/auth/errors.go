package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")

	// OAuth flow errors
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrStateCookieEmpty           = errors.New("oauth state cookie is empty")
	ErrStateMismatch              = errors.New("oauth state mismatch")
	ErrGoogleAccessDenied         = errors.New("google access denied by user")
)
