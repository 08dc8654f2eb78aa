package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrInvalidRole            = errors.New("role must be user or admin")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
