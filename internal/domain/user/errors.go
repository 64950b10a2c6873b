package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrPermissionRequired = errors.New("insufficient permissions")
	ErrAccountLocked      = errors.New("account is locked")
)
